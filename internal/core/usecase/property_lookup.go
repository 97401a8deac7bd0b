package usecase

import (
	"context"
	"fmt"

	"property-service/internal/core/domain"
	"property-service/internal/core/port"
)

// loadProperty достает объект из хранилища и превращает отсутствие
// в доменную ошибку PropertyNotFoundError. Все калькуляторы начинают с
// этого шага.
func loadProperty(ctx context.Context, storage port.PropertyStoragePort, id string) (*domain.Property, error) {
	property, found, err := storage.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load property %s: %w", id, err)
	}
	if !found {
		return nil, &domain.PropertyNotFoundError{ID: id}
	}
	return property, nil
}
