package port

import (
	"context"

	"property-service/internal/core/domain"
)

// DistrictCatalogPort — контракт каталога районов.
// Каталог заполняется при старте приложения и во время обработки
// запросов доступен только на чтение.
type DistrictCatalogPort interface {
	// GetByName ищет район по точному совпадению имени.
	GetByName(ctx context.Context, name string) (*domain.District, bool, error)
}
