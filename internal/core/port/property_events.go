package port

import (
	"context"

	"property-service/internal/core/domain"
)

// PropertyEventsPort — контракт публикации событий о зарегистрированных
// объектах. Публикация — побочный эффект после успешной вставки: ошибка
// публикации логируется, но не отменяет уже сохраненную вставку.
type PropertyEventsPort interface {
	ReportPropertyRegistered(ctx context.Context, property domain.Property) error

	Close() error
}
