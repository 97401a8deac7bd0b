package port

import (
	"context"

	"property-service/internal/core/domain"
)

// PropertyStoragePort — контракт хранилища объектов недвижимости.
//
// GetByID возвращает явный флаг наличия: отсутствие записи — не ошибка
// хранилища, а нормальный результат. Интерпретация отсутствия как
// PropertyNotFound — ответственность вызывающего слоя (use case).
type PropertyStoragePort interface {
	// Insert сохраняет объект. ID уже назначен вызывающей стороной.
	Insert(ctx context.Context, property domain.Property) error

	GetByID(ctx context.Context, id string) (*domain.Property, bool, error)

	// ListAll возвращает все объекты в порядке вставки.
	ListAll(ctx context.Context) ([]domain.Property, error)

	// ClearAll удаляет все объекты. Используется для изоляции тестов,
	// наружу через HTTP не выставляется.
	ClearAll(ctx context.Context) error
}
