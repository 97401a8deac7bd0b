package usecase

import (
	"context"

	"property-service/internal/contextkeys"
	"property-service/internal/core/port"
)

type CalculateTotalAreaUseCase struct {
	storage port.PropertyStoragePort
}

func NewCalculateTotalAreaUseCase(storage port.PropertyStoragePort) *CalculateTotalAreaUseCase {
	return &CalculateTotalAreaUseCase{storage: storage}
}

// Execute возвращает суммарную площадь всех комнат объекта.
func (uc *CalculateTotalAreaUseCase) Execute(ctx context.Context, propertyID string) (float64, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "CalculateTotalArea",
		"property_id": propertyID,
	})

	ucLogger.Debug("Use case started", nil)

	property, err := loadProperty(ctx, uc.storage, propertyID)
	if err != nil {
		ucLogger.Warn("Property lookup failed", port.Fields{"reason": err.Error()})
		return 0, err
	}

	totalArea := property.TotalArea()

	ucLogger.Info("Use case finished successfully", port.Fields{"total_area": totalArea})
	return totalArea, nil
}
