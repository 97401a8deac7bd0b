package domain

import "fmt"

// Идентификаторы видов ошибок. Уходят наружу в поле "name" тела ошибки,
// поэтому их значения зафиксированы контрактом API.
const (
	KindDistrictNotFound   = "DistrictNotFoundException"
	KindRoomValidation     = "RoomValidationException"
	KindPropertyNotFound   = "PropertyNotFoundException"
	KindMessageNotReadable = "HttpMessageNotReadableException"
)

// DomainError — ошибка бизнес-правила. Kind() определяет вид ошибки в теле
// ответа, Error() — сообщение для пользователя.
type DomainError interface {
	error
	Kind() string
}

// DistrictNotFoundError — указанный район отсутствует в каталоге.
type DistrictNotFoundError struct {
	Name string
}

func (e *DistrictNotFoundError) Error() string {
	if e.Name == "" {
		// район вообще не указан — сообщение без подстановки имени
		return "o bairro não está cadastrado."
	}
	return fmt.Sprintf("o bairro %s não está cadastrado.", e.Name)
}

func (e *DistrictNotFoundError) Kind() string { return KindDistrictNotFound }

// RoomValidationError — комната не прошла проверку бизнес-правил.
type RoomValidationError struct {
	Message string
}

func (e *RoomValidationError) Error() string { return e.Message }

func (e *RoomValidationError) Kind() string { return KindRoomValidation }

// PropertyNotFoundError — запрошенный ID не зарегистрирован в хранилище.
type PropertyNotFoundError struct {
	ID string
}

func (e *PropertyNotFoundError) Error() string {
	return fmt.Sprintf("o ID: %s não está cadastrado.", e.ID)
}

func (e *PropertyNotFoundError) Kind() string { return KindPropertyNotFound }
