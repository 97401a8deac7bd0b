package usecases_port

import "context"

type CalculateTotalAreaUseCase interface {
	Execute(ctx context.Context, propertyID string) (float64, error)
}
