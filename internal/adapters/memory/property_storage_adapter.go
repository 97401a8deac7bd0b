package memory

import (
	"context"
	"fmt"
	"sync"

	"property-service/internal/core/domain"
)

// PropertyStorageAdapter реализует PropertyStoragePort поверх памяти процесса.
// Записи хранятся в порядке вставки; запись никогда не изменяется после
// сохранения. Писатели сериализуются мьютексом, читатели могут работать
// параллельно — это сохраняет уникальность ID и порядок вставки при
// конкурентных запросах.
type PropertyStorageAdapter struct {
	mu      sync.RWMutex
	byID    map[string]int
	ordered []domain.Property
}

// NewPropertyStorageAdapter создает пустое хранилище.
func NewPropertyStorageAdapter() *PropertyStorageAdapter {
	return &PropertyStorageAdapter{
		byID: make(map[string]int),
	}
}

// Insert сохраняет объект. ID должен быть уже назначен и уникален.
func (a *PropertyStorageAdapter) Insert(ctx context.Context, property domain.Property) error {
	if property.ID == "" {
		return fmt.Errorf("memory storage: property ID cannot be empty")
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if _, exists := a.byID[property.ID]; exists {
		return fmt.Errorf("memory storage: property %s already exists", property.ID)
	}

	// копируем список комнат: объект владеет своими комнатами,
	// вызывающая сторона не должна иметь разделяемый срез
	property.Rooms = append([]domain.Room(nil), property.Rooms...)

	a.byID[property.ID] = len(a.ordered)
	a.ordered = append(a.ordered, property)
	return nil
}

// GetByID возвращает объект и флаг его наличия.
func (a *PropertyStorageAdapter) GetByID(ctx context.Context, id string) (*domain.Property, bool, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	idx, ok := a.byID[id]
	if !ok {
		return nil, false, nil
	}

	property := a.ordered[idx]
	property.Rooms = append([]domain.Room(nil), property.Rooms...)
	return &property, true, nil
}

// ListAll возвращает все объекты в порядке вставки.
func (a *PropertyStorageAdapter) ListAll(ctx context.Context) ([]domain.Property, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	properties := make([]domain.Property, len(a.ordered))
	for i, property := range a.ordered {
		property.Rooms = append([]domain.Room(nil), property.Rooms...)
		properties[i] = property
	}
	return properties, nil
}

// ClearAll удаляет все объекты. Нужен для изоляции тестов.
func (a *PropertyStorageAdapter) ClearAll(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.byID = make(map[string]int)
	a.ordered = nil
	return nil
}
