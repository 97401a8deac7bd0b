package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"property-service/internal/core/domain"
)

// RespondWithJSON отправляет JSON-ответ
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	w.Write(response)
}

// WriteDomainError превращает ошибку в тело {name, description}.
// Доменные ошибки (валидация, не найден район/объект) уходят как 400,
// все прочее — как 500 с обезличенным описанием.
func WriteDomainError(w http.ResponseWriter, err error) {
	var domainErr domain.DomainError
	if errors.As(err, &domainErr) {
		RespondWithJSON(w, http.StatusBadRequest, ErrorResponse{
			Name:        domainErr.Kind(),
			Description: domainErr.Error(),
		})
		return
	}

	RespondWithJSON(w, http.StatusInternalServerError, ErrorResponse{
		Name:        "InternalServerError",
		Description: "erro interno do servidor.",
	})
}

// WriteNotReadableError отвечает на синтаксически или структурно
// некорректное тело запроса.
func WriteNotReadableError(w http.ResponseWriter) {
	RespondWithJSON(w, http.StatusBadRequest, ErrorResponse{
		Name:        domain.KindMessageNotReadable,
		Description: "o corpo da requisição está mal formatado.",
	})
}
