package usecase

import (
	"context"
	"fmt"

	"property-service/internal/contextkeys"
	"property-service/internal/core/domain"
	"property-service/internal/core/port"

	"github.com/google/uuid"
)

// InsertPropertyUseCase инкапсулирует логику регистрации объекта:
// валидация по бизнес-правилам, назначение ID, сохранение, публикация события.
type InsertPropertyUseCase struct {
	catalog port.DistrictCatalogPort
	storage port.PropertyStoragePort
	events  port.PropertyEventsPort
}

// NewInsertPropertyUseCase создает новый экземпляр use case.
func NewInsertPropertyUseCase(catalog port.DistrictCatalogPort, storage port.PropertyStoragePort, events port.PropertyEventsPort) *InsertPropertyUseCase {
	return &InsertPropertyUseCase{
		catalog: catalog,
		storage: storage,
		events:  events,
	}
}

// Execute применяет правила валидации по порядку (побеждает первое нарушение):
//  1. район должен существовать в каталоге;
//  2. имя каждой комнаты начинается с заглавной буквы;
//  3. размеры каждой комнаты строго положительны.
//
// При успехе объект получает ID и сохраняется целиком; частичных вставок нет.
func (uc *InsertPropertyUseCase) Execute(ctx context.Context, property domain.Property) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":      "InsertProperty",
		"property_name": property.Name,
		"district":      property.DistrictName,
	})

	ucLogger.Info("Use case started: attempting to insert property", nil)

	_, found, err := uc.catalog.GetByName(ctx, property.DistrictName)
	if err != nil {
		ucLogger.Error("Catalog returned an error", err, nil)
		return nil, fmt.Errorf("failed to look up district %q: %w", property.DistrictName, err)
	}
	if !found {
		ucLogger.Warn("District is not registered", nil)
		return nil, &domain.DistrictNotFoundError{Name: property.DistrictName}
	}

	if err := domain.ValidateRooms(property.Rooms); err != nil {
		ucLogger.Warn("Room validation failed", port.Fields{"reason": err.Error()})
		return nil, err
	}

	property.ID = uuid.New().String()

	if err := uc.storage.Insert(ctx, property); err != nil {
		ucLogger.Error("Storage returned an error during insert", err, nil)
		return nil, fmt.Errorf("failed to insert property %q: %w", property.Name, err)
	}

	// Публикация — побочный эффект: ошибку логируем, но вставку не отменяем,
	// объект уже сохранен.
	if err := uc.events.ReportPropertyRegistered(ctx, property); err != nil {
		ucLogger.Error("Failed to report property registered event after successful insert", err, nil)
	}

	ucLogger.Info("Use case finished: property inserted", port.Fields{"property_id": property.ID})
	return &property, nil
}
