package usecases_port

import (
	"context"

	"property-service/internal/core/domain"
)

type InsertPropertyUseCase interface {
	// Execute валидирует объект, назначает ID и сохраняет его.
	// Возвращает сохраненный объект с назначенным ID.
	Execute(ctx context.Context, property domain.Property) (*domain.Property, error)
}
