package usecases_port

import "context"

type CalculateRoomAreasUseCase interface {
	Execute(ctx context.Context, propertyID string) (map[string]float64, error)
}
