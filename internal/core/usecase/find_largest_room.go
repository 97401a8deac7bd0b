package usecase

import (
	"context"

	"property-service/internal/contextkeys"
	"property-service/internal/core/domain"
	"property-service/internal/core/port"
)

type FindLargestRoomUseCase struct {
	storage port.PropertyStoragePort
}

func NewFindLargestRoomUseCase(storage port.PropertyStoragePort) *FindLargestRoomUseCase {
	return &FindLargestRoomUseCase{storage: storage}
}

// Execute возвращает комнату с максимальной площадью. При равных площадях
// побеждает первая по порядку хранения.
func (uc *FindLargestRoomUseCase) Execute(ctx context.Context, propertyID string) (*domain.Room, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "FindLargestRoom",
		"property_id": propertyID,
	})

	ucLogger.Debug("Use case started", nil)

	property, err := loadProperty(ctx, uc.storage, propertyID)
	if err != nil {
		ucLogger.Warn("Property lookup failed", port.Fields{"reason": err.Error()})
		return nil, err
	}

	largest := property.LargestRoom()

	ucLogger.Info("Use case finished successfully", port.Fields{
		"room_name": largest.Name,
		"room_area": largest.Area(),
	})
	return &largest, nil
}
