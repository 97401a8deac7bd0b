package rest

import (
	"encoding/json"
	"io"
	"net/http"

	"property-service/internal/contextkeys"
	"property-service/internal/contracts"
	"property-service/internal/core/port"
	"property-service/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
)

type PropertyHandler struct {
	insertPropertyUC     usecases_port.InsertPropertyUseCase
	getAllPropertiesUC   usecases_port.GetAllPropertiesUseCase
	calculateTotalAreaUC usecases_port.CalculateTotalAreaUseCase
	findLargestRoomUC    usecases_port.FindLargestRoomUseCase
	calculateRoomAreasUC usecases_port.CalculateRoomAreasUseCase
	calculatePriceUC     usecases_port.CalculatePropertyPriceUseCase
}

func NewPropertyHandler(
	insertPropertyUC usecases_port.InsertPropertyUseCase,
	getAllPropertiesUC usecases_port.GetAllPropertiesUseCase,
	calculateTotalAreaUC usecases_port.CalculateTotalAreaUseCase,
	findLargestRoomUC usecases_port.FindLargestRoomUseCase,
	calculateRoomAreasUC usecases_port.CalculateRoomAreasUseCase,
	calculatePriceUC usecases_port.CalculatePropertyPriceUseCase,
) *PropertyHandler {
	return &PropertyHandler{
		insertPropertyUC:     insertPropertyUC,
		getAllPropertiesUC:   getAllPropertiesUC,
		calculateTotalAreaUC: calculateTotalAreaUC,
		findLargestRoomUC:    findLargestRoomUC,
		calculateRoomAreasUC: calculateRoomAreasUC,
		calculatePriceUC:     calculatePriceUC,
	}
}

// InsertProperty обрабатывает POST /property/insert
func (h *PropertyHandler) InsertProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	handlerLogger := logger.WithFields(port.Fields{"handler": "InsertProperty"})

	body, err := io.ReadAll(r.Body)
	if err != nil {
		handlerLogger.Warn("Failed to read request body", port.Fields{"error": err.Error()})
		WriteNotReadableError(w)
		return
	}

	// Сначала структурная проверка тела по схеме: ловим и битый JSON,
	// и неверные типы полей. Бизнес-правила проверяет ядро.
	if err := contracts.Validate(contracts.KeyPropertyInsertRequest, body); err != nil {
		handlerLogger.Warn("Request body failed contract validation", port.Fields{"error": err.Error()})
		WriteNotReadableError(w)
		return
	}

	var request PropertyRequest
	if err := json.Unmarshal(body, &request); err != nil {
		handlerLogger.Warn("Failed to unmarshal request body", port.Fields{"error": err.Error()})
		WriteNotReadableError(w)
		return
	}

	property, err := h.insertPropertyUC.Execute(r.Context(), propertyFromRequest(request))
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusCreated, propertyToResponse(*property))
}

// GetAllProperties обрабатывает GET /property/get-all-properties
func (h *PropertyHandler) GetAllProperties(w http.ResponseWriter, r *http.Request) {
	properties, err := h.getAllPropertiesUC.Execute(r.Context())
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	response := make([]PropertyResponse, len(properties))
	for i, property := range properties {
		response[i] = propertyToResponse(property)
	}

	RespondWithJSON(w, http.StatusOK, response)
}

// CalculateTotalArea обрабатывает GET /property/calculate-total-area-property/{propertyID}
func (h *PropertyHandler) CalculateTotalArea(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "propertyID")

	totalArea, err := h.calculateTotalAreaUC.Execute(r.Context(), propertyID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, TotalAreaResponse{TotalArea: totalArea})
}

// FindLargestRoom обрабатывает GET /property/find-largest-room/{propertyID}
func (h *PropertyHandler) FindLargestRoom(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "propertyID")

	room, err := h.findLargestRoomUC.Execute(r.Context(), propertyID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, LargestRoomResponse{
		RoomName:  room.Name,
		TotalArea: room.Area(),
	})
}

// CalculateRoomAreas обрабатывает GET /property/calculate-area-rooms/{propertyID}
func (h *PropertyHandler) CalculateRoomAreas(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "propertyID")

	areas, err := h.calculateRoomAreasUC.Execute(r.Context(), propertyID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, RoomAreasResponse{RoomAreas: areas})
}

// CalculatePropertyPrice обрабатывает GET /property/calculate-property-price/{propertyID}
func (h *PropertyHandler) CalculatePropertyPrice(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "propertyID")

	price, err := h.calculatePriceUC.Execute(r.Context(), propertyID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, PriceResponse{Price: price})
}
