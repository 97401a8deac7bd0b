package usecase

import (
	"context"
	"fmt"

	"property-service/internal/contextkeys"
	"property-service/internal/core/domain"
	"property-service/internal/core/port"
)

type GetAllPropertiesUseCase struct {
	storage port.PropertyStoragePort
}

func NewGetAllPropertiesUseCase(storage port.PropertyStoragePort) *GetAllPropertiesUseCase {
	return &GetAllPropertiesUseCase{storage: storage}
}

// Execute возвращает все зарегистрированные объекты в порядке вставки.
func (uc *GetAllPropertiesUseCase) Execute(ctx context.Context) ([]domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "GetAllProperties"})

	ucLogger.Debug("Use case started", nil)

	properties, err := uc.storage.ListAll(ctx)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"count": len(properties)})
	return properties, nil
}
