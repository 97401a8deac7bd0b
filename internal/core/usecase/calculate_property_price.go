package usecase

import (
	"context"
	"fmt"

	"property-service/internal/contextkeys"
	"property-service/internal/core/domain"
	"property-service/internal/core/port"
)

type CalculatePropertyPriceUseCase struct {
	storage port.PropertyStoragePort
	catalog port.DistrictCatalogPort
}

func NewCalculatePropertyPriceUseCase(storage port.PropertyStoragePort, catalog port.DistrictCatalogPort) *CalculatePropertyPriceUseCase {
	return &CalculatePropertyPriceUseCase{
		storage: storage,
		catalog: catalog,
	}
}

// Execute возвращает оценочную стоимость объекта: суммарная площадь,
// умноженная на актуальную цену за м² из каталога. Цена района берется
// в момент расчета, а не фиксируется при вставке.
func (uc *CalculatePropertyPriceUseCase) Execute(ctx context.Context, propertyID string) (float64, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "CalculatePropertyPrice",
		"property_id": propertyID,
	})

	ucLogger.Debug("Use case started", nil)

	property, err := loadProperty(ctx, uc.storage, propertyID)
	if err != nil {
		ucLogger.Warn("Property lookup failed", port.Fields{"reason": err.Error()})
		return 0, err
	}

	district, found, err := uc.catalog.GetByName(ctx, property.DistrictName)
	if err != nil {
		ucLogger.Error("Catalog returned an error", err, nil)
		return 0, fmt.Errorf("failed to look up district %q: %w", property.DistrictName, err)
	}
	if !found {
		// объект ссылается на район, которого уже нет в каталоге
		ucLogger.Warn("District of a stored property is not registered", port.Fields{"district": property.DistrictName})
		return 0, &domain.DistrictNotFoundError{Name: property.DistrictName}
	}

	price := property.Price(district.UnitValue)

	ucLogger.Info("Use case finished successfully", port.Fields{"price": price})
	return price, nil
}
