package usecase

import (
	"context"

	"property-service/internal/contextkeys"
	"property-service/internal/core/port"
)

type CalculateRoomAreasUseCase struct {
	storage port.PropertyStoragePort
}

func NewCalculateRoomAreasUseCase(storage port.PropertyStoragePort) *CalculateRoomAreasUseCase {
	return &CalculateRoomAreasUseCase{storage: storage}
}

// Execute возвращает карту "имя комнаты -> площадь" для каждой комнаты
// объекта. При дублировании имен в карте остается последнее значение.
func (uc *CalculateRoomAreasUseCase) Execute(ctx context.Context, propertyID string) (map[string]float64, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "CalculateRoomAreas",
		"property_id": propertyID,
	})

	ucLogger.Debug("Use case started", nil)

	property, err := loadProperty(ctx, uc.storage, propertyID)
	if err != nil {
		ucLogger.Warn("Property lookup failed", port.Fields{"reason": err.Error()})
		return nil, err
	}

	areas := property.RoomAreas()

	ucLogger.Info("Use case finished successfully", port.Fields{"room_count": len(areas)})
	return areas, nil
}
