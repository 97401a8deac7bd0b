package usecases_port

import "context"

type CalculatePropertyPriceUseCase interface {
	Execute(ctx context.Context, propertyID string) (float64, error)
}
