package memory

import (
	"context"
	"fmt"

	"property-service/internal/core/domain"
)

// DistrictCatalogAdapter реализует DistrictCatalogPort поверх карты в памяти.
// Каталог заполняется один раз при создании и дальше только читается,
// поэтому синхронизация не нужна.
type DistrictCatalogAdapter struct {
	districts map[string]domain.District
}

// NewDistrictCatalogAdapter создает каталог из переданного набора районов.
func NewDistrictCatalogAdapter(districts []domain.District) (*DistrictCatalogAdapter, error) {
	if len(districts) == 0 {
		return nil, fmt.Errorf("district catalog cannot be empty")
	}

	byName := make(map[string]domain.District, len(districts))
	for _, district := range districts {
		if district.Name == "" {
			return nil, fmt.Errorf("district catalog: district name cannot be empty")
		}
		if district.UnitValue <= 0 {
			return nil, fmt.Errorf("district catalog: unit value of %q must be > 0", district.Name)
		}
		byName[district.Name] = district
	}

	return &DistrictCatalogAdapter{districts: byName}, nil
}

// GetByName ищет район по точному совпадению имени.
func (a *DistrictCatalogAdapter) GetByName(ctx context.Context, name string) (*domain.District, bool, error) {
	district, ok := a.districts[name]
	if !ok {
		return nil, false, nil
	}
	return &district, true, nil
}
