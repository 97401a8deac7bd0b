package postgres

import (
	"context"
	"errors"
	"fmt"

	"property-service/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PropertyStorageAdapter реализует PropertyStoragePort для PostgreSQL.
//
// ID хранится как TEXT, а не как UUID: контракт хранилища требует, чтобы
// поиск по произвольной (в том числе невалидной) строке возвращал
// "не найдено", а не ошибку приведения типа.
type PropertyStorageAdapter struct {
	pool *pgxpool.Pool
}

// NewPropertyStorageAdapter создает новый экземпляр адаптера.
func NewPropertyStorageAdapter(pool *pgxpool.Pool) (*PropertyStorageAdapter, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &PropertyStorageAdapter{pool: pool}, nil
}

// EnsureSchema создает таблицы, если их еще нет. Вызывается один раз при
// старте приложения.
func (a *PropertyStorageAdapter) EnsureSchema(ctx context.Context) error {
	sql := `
		CREATE TABLE IF NOT EXISTS properties (
			id            TEXT PRIMARY KEY,
			name          TEXT NOT NULL,
			district_name TEXT NOT NULL,
			position      BIGSERIAL
		);

		CREATE TABLE IF NOT EXISTS property_rooms (
			property_id TEXT NOT NULL REFERENCES properties(id) ON DELETE CASCADE,
			ord         INT NOT NULL,
			name        TEXT NOT NULL,
			width       DOUBLE PRECISION NOT NULL,
			length      DOUBLE PRECISION NOT NULL,
			PRIMARY KEY (property_id, ord)
		);
	`
	if _, err := a.pool.Exec(ctx, sql); err != nil {
		return fmt.Errorf("failed to ensure properties schema: %w", err)
	}
	return nil
}

// Insert сохраняет объект и его комнаты в рамках одной транзакции.
func (a *PropertyStorageAdapter) Insert(ctx context.Context, property domain.Property) error {
	tx, err := a.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO properties (id, name, district_name) VALUES ($1, $2, $3)`,
		property.ID, property.Name, property.DistrictName,
	)
	if err != nil {
		return fmt.Errorf("failed to insert property %s: %w", property.ID, err)
	}

	for ord, room := range property.Rooms {
		_, err = tx.Exec(ctx,
			`INSERT INTO property_rooms (property_id, ord, name, width, length) VALUES ($1, $2, $3, $4, $5)`,
			property.ID, ord, room.Name, room.Width, room.Length,
		)
		if err != nil {
			return fmt.Errorf("failed to insert room %d of property %s: %w", ord, property.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit property insert: %w", err)
	}
	return nil
}

// GetByID возвращает объект и флаг его наличия.
func (a *PropertyStorageAdapter) GetByID(ctx context.Context, id string) (*domain.Property, bool, error) {
	property := domain.Property{ID: id}

	err := a.pool.QueryRow(ctx,
		`SELECT name, district_name FROM properties WHERE id = $1`, id,
	).Scan(&property.Name, &property.DistrictName)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to query property %s: %w", id, err)
	}

	rows, err := a.pool.Query(ctx,
		`SELECT name, width, length FROM property_rooms WHERE property_id = $1 ORDER BY ord`, id,
	)
	if err != nil {
		return nil, false, fmt.Errorf("failed to query rooms of property %s: %w", id, err)
	}
	defer rows.Close()

	for rows.Next() {
		var room domain.Room
		if err := rows.Scan(&room.Name, &room.Width, &room.Length); err != nil {
			return nil, false, fmt.Errorf("failed to scan room of property %s: %w", id, err)
		}
		property.Rooms = append(property.Rooms, room)
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("failed to read rooms of property %s: %w", id, err)
	}

	return &property, true, nil
}

// ListAll возвращает все объекты в порядке вставки.
func (a *PropertyStorageAdapter) ListAll(ctx context.Context) ([]domain.Property, error) {
	rows, err := a.pool.Query(ctx,
		`SELECT id, name, district_name FROM properties ORDER BY position`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}
	defer rows.Close()

	var properties []domain.Property
	index := make(map[string]int)
	for rows.Next() {
		var property domain.Property
		if err := rows.Scan(&property.ID, &property.Name, &property.DistrictName); err != nil {
			return nil, fmt.Errorf("failed to scan property: %w", err)
		}
		index[property.ID] = len(properties)
		properties = append(properties, property)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read properties: %w", err)
	}

	roomRows, err := a.pool.Query(ctx,
		`SELECT property_id, name, width, length FROM property_rooms ORDER BY property_id, ord`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query rooms: %w", err)
	}
	defer roomRows.Close()

	for roomRows.Next() {
		var propertyID string
		var room domain.Room
		if err := roomRows.Scan(&propertyID, &room.Name, &room.Width, &room.Length); err != nil {
			return nil, fmt.Errorf("failed to scan room: %w", err)
		}
		if i, ok := index[propertyID]; ok {
			properties[i].Rooms = append(properties[i].Rooms, room)
		}
	}
	if err := roomRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rooms: %w", err)
	}

	return properties, nil
}

// ClearAll удаляет все объекты. Нужен для изоляции тестов.
func (a *PropertyStorageAdapter) ClearAll(ctx context.Context) error {
	if _, err := a.pool.Exec(ctx, `TRUNCATE properties CASCADE`); err != nil {
		return fmt.Errorf("failed to clear properties: %w", err)
	}
	return nil
}
