package rest

import "property-service/internal/core/domain"

// DistrictDTO - район в теле запроса на регистрацию объекта.
// unit_value клиентом может присылаться, но источником истины для цены
// всегда остается каталог районов.
type DistrictDTO struct {
	Name      string  `json:"name"`
	UnitValue float64 `json:"unit_value"`
}

type RoomDTO struct {
	Name   string  `json:"name"`
	Width  float64 `json:"width"`
	Length float64 `json:"length"`
}

// PropertyRequest - тело запроса POST /property/insert (без ID).
type PropertyRequest struct {
	Name     string      `json:"name"`
	District DistrictDTO `json:"district"`
	Rooms    []RoomDTO   `json:"rooms"`
}

// DistrictRefDTO - ссылка на район в ответах: район хранится по имени.
type DistrictRefDTO struct {
	Name string `json:"name"`
}

// PropertyResponse - сохраненный объект с назначенным ID.
type PropertyResponse struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	District DistrictRefDTO `json:"district"`
	Rooms    []RoomDTO      `json:"rooms"`
}

type TotalAreaResponse struct {
	TotalArea float64 `json:"total_area"`
}

type LargestRoomResponse struct {
	RoomName  string  `json:"room_name"`
	TotalArea float64 `json:"total_area"`
}

type RoomAreasResponse struct {
	RoomAreas map[string]float64 `json:"room_areas"`
}

type PriceResponse struct {
	Price float64 `json:"price"`
}

// ErrorResponse - тело любой ошибки API: вид ошибки и сообщение.
type ErrorResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// propertyFromRequest маппит внешнее представление во внутреннюю сущность.
func propertyFromRequest(req PropertyRequest) domain.Property {
	rooms := make([]domain.Room, len(req.Rooms))
	for i, room := range req.Rooms {
		rooms[i] = domain.Room{
			Name:   room.Name,
			Width:  room.Width,
			Length: room.Length,
		}
	}

	return domain.Property{
		Name:         req.Name,
		DistrictName: req.District.Name,
		Rooms:        rooms,
	}
}

// propertyToResponse маппит внутреннюю сущность во внешнее представление.
func propertyToResponse(property domain.Property) PropertyResponse {
	rooms := make([]RoomDTO, len(property.Rooms))
	for i, room := range property.Rooms {
		rooms[i] = RoomDTO{
			Name:   room.Name,
			Width:  room.Width,
			Length: room.Length,
		}
	}

	return PropertyResponse{
		ID:       property.ID,
		Name:     property.Name,
		District: DistrictRefDTO{Name: property.DistrictName},
		Rooms:    rooms,
	}
}
