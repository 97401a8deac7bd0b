package rabbitmq

import (
	"context"

	"property-service/internal/core/domain"
)

// NoopPublisher — заглушка PropertyEventsPort на случай, когда публикация
// событий выключена в конфигурации.
type NoopPublisher struct{}

func NewNoopPublisher() *NoopPublisher { return &NoopPublisher{} }

func (p *NoopPublisher) ReportPropertyRegistered(ctx context.Context, property domain.Property) error {
	return nil
}

func (p *NoopPublisher) Close() error { return nil }
