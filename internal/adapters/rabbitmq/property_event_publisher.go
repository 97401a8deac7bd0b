package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"property-service/internal/constants"
	"property-service/internal/core/domain"
	"property-service/internal/core/port"

	amqp "github.com/rabbitmq/amqp091-go"
)

// PropertyRegisteredEvent — полезная нагрузка события о регистрации объекта.
type PropertyRegisteredEvent struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	DistrictName string  `json:"district_name"`
	TotalArea    float64 `json:"total_area"`
	RoomCount    int     `json:"room_count"`
	RegisteredAt string  `json:"registered_at"`
}

// PropertyEventPublisherConfig конфигурация для издателя событий
type PropertyEventPublisherConfig struct {
	URL string

	ExchangeName    string
	DurableExchange bool

	Logger port.LoggerPort
}

// PropertyEventPublisher реализует PropertyEventsPort поверх RabbitMQ.
// Публикует события о зарегистрированных объектах в direct-обменник.
type PropertyEventPublisher struct {
	config     PropertyEventPublisherConfig
	connection *amqp.Connection
	channel    *amqp.Channel
	logger     port.LoggerPort
}

// NewPropertyEventPublisher создает нового издателя и объявляет обменник.
func NewPropertyEventPublisher(cfg PropertyEventPublisherConfig) (*PropertyEventPublisher, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("publisher: rabbitmq URL is required")
	}
	if cfg.ExchangeName == "" {
		cfg.ExchangeName = constants.PropertyExchange
	}

	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("publisher: failed to dial RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("publisher: failed to open a channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		cfg.ExchangeName,
		"direct",
		cfg.DurableExchange,
		false, // autoDelete
		false, // internal
		false, // noWait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("publisher: failed to declare exchange %q: %w", cfg.ExchangeName, err)
	}

	return &PropertyEventPublisher{
		config:     cfg,
		connection: conn,
		channel:    ch,
		logger:     cfg.Logger,
	}, nil
}

// ReportPropertyRegistered публикует событие о зарегистрированном объекте.
func (p *PropertyEventPublisher) ReportPropertyRegistered(ctx context.Context, property domain.Property) error {
	event := PropertyRegisteredEvent{
		ID:           property.ID,
		Name:         property.Name,
		DistrictName: property.DistrictName,
		TotalArea:    property.TotalArea(),
		RoomCount:    len(property.Rooms),
		RegisteredAt: time.Now().UTC().Format(time.RFC3339Nano),
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("publisher: failed to marshal event for property %s: %w", property.ID, err)
	}

	err = p.channel.PublishWithContext(ctx,
		p.config.ExchangeName,
		constants.RoutingKeyPropertyRegistered,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
			Timestamp:   time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("publisher: failed to publish event for property %s: %w", property.ID, err)
	}

	if p.logger != nil {
		p.logger.Debug("Published property registered event", port.Fields{
			"property_id": property.ID,
			"routing_key": constants.RoutingKeyPropertyRegistered,
		})
	}
	return nil
}

// Close закрывает канал и соединение.
func (p *PropertyEventPublisher) Close() error {
	var firstErr error
	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			firstErr = err
		}
	}
	if p.connection != nil {
		if err := p.connection.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
