package usecases_port

import (
	"context"

	"property-service/internal/core/domain"
)

type FindLargestRoomUseCase interface {
	Execute(ctx context.Context, propertyID string) (*domain.Room, error)
}
