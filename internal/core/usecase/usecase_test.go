package usecase

import (
	"context"
	"fmt"
	"testing"

	"property-service/internal/adapters/memory"
	"property-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingEvents собирает опубликованные события для проверок.
type recordingEvents struct {
	registered []domain.Property
	failWith   error
}

func (e *recordingEvents) ReportPropertyRegistered(ctx context.Context, property domain.Property) error {
	if e.failWith != nil {
		return e.failWith
	}
	e.registered = append(e.registered, property)
	return nil
}

func (e *recordingEvents) Close() error { return nil }

func newTestCatalog(t *testing.T) *memory.DistrictCatalogAdapter {
	t.Helper()
	catalog, err := memory.NewDistrictCatalogAdapter([]domain.District{
		{Name: "Barra da Tijuca", UnitValue: 18000},
		{Name: "Alphaville", UnitValue: 14000},
	})
	require.NoError(t, err)
	return catalog
}

func validProperty() domain.Property {
	return domain.Property{
		Name:         "Brooklyn Village",
		DistrictName: "Barra da Tijuca",
		Rooms: []domain.Room{
			{Name: "Kitchen", Width: 10, Length: 5},
			{Name: "Living room", Width: 20, Length: 5},
		},
	}
}

func TestInsertPropertyAssignsIDAndStores(t *testing.T) {
	storage := memory.NewPropertyStorageAdapter()
	events := &recordingEvents{}
	uc := NewInsertPropertyUseCase(newTestCatalog(t), storage, events)

	inserted, err := uc.Execute(context.Background(), validProperty())
	require.NoError(t, err)
	require.NotEmpty(t, inserted.ID)
	assert.Equal(t, "Brooklyn Village", inserted.Name)

	stored, found, err := storage.GetByID(context.Background(), inserted.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Brooklyn Village", stored.Name)

	require.Len(t, events.registered, 1)
	assert.Equal(t, inserted.ID, events.registered[0].ID)
}

func TestInsertPropertyUnknownDistrict(t *testing.T) {
	storage := memory.NewPropertyStorageAdapter()
	uc := NewInsertPropertyUseCase(newTestCatalog(t), storage, &recordingEvents{})

	property := validProperty()
	property.DistrictName = "Random"

	_, err := uc.Execute(context.Background(), property)

	var notFound *domain.DistrictNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "o bairro Random não está cadastrado.", notFound.Error())

	// ничего не должно быть сохранено
	properties, listErr := storage.ListAll(context.Background())
	require.NoError(t, listErr)
	assert.Empty(t, properties)
}

func TestInsertPropertyEmptyDistrict(t *testing.T) {
	uc := NewInsertPropertyUseCase(newTestCatalog(t), memory.NewPropertyStorageAdapter(), &recordingEvents{})

	property := validProperty()
	property.DistrictName = ""

	_, err := uc.Execute(context.Background(), property)

	var notFound *domain.DistrictNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "o bairro não está cadastrado.", notFound.Error())
}

func TestInsertPropertyInvalidRoomName(t *testing.T) {
	storage := memory.NewPropertyStorageAdapter()
	uc := NewInsertPropertyUseCase(newTestCatalog(t), storage, &recordingEvents{})

	property := validProperty()
	property.Rooms[1].Name = "living room"

	_, err := uc.Execute(context.Background(), property)

	var validationErr *domain.RoomValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, domain.MsgRoomNameNotCapitalized, validationErr.Error())
}

func TestInsertPropertyPublishFailureDoesNotFailInsert(t *testing.T) {
	storage := memory.NewPropertyStorageAdapter()
	events := &recordingEvents{failWith: fmt.Errorf("broker is down")}
	uc := NewInsertPropertyUseCase(newTestCatalog(t), storage, events)

	inserted, err := uc.Execute(context.Background(), validProperty())
	require.NoError(t, err)

	// вставка прошла, несмотря на ошибку публикации
	_, found, err := storage.GetByID(context.Background(), inserted.ID)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestGetAllPropertiesOrder(t *testing.T) {
	storage := memory.NewPropertyStorageAdapter()
	uc := NewInsertPropertyUseCase(newTestCatalog(t), storage, &recordingEvents{})

	first := validProperty()
	second := validProperty()
	second.Name = "Moema Palace"
	second.DistrictName = "Alphaville"

	_, err := uc.Execute(context.Background(), first)
	require.NoError(t, err)
	_, err = uc.Execute(context.Background(), second)
	require.NoError(t, err)

	properties, err := NewGetAllPropertiesUseCase(storage).Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, properties, 2)
	assert.Equal(t, "Brooklyn Village", properties[0].Name)
	assert.Equal(t, "Moema Palace", properties[1].Name)
}

func insertFixture(t *testing.T, storage *memory.PropertyStorageAdapter, catalog *memory.DistrictCatalogAdapter, property domain.Property) string {
	t.Helper()
	inserted, err := NewInsertPropertyUseCase(catalog, storage, &recordingEvents{}).Execute(context.Background(), property)
	require.NoError(t, err)
	return inserted.ID
}

func TestCalculateTotalArea(t *testing.T) {
	storage := memory.NewPropertyStorageAdapter()
	catalog := newTestCatalog(t)
	id := insertFixture(t, storage, catalog, validProperty())

	totalArea, err := NewCalculateTotalAreaUseCase(storage).Execute(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 150.0, totalArea)
}

func TestFindLargestRoom(t *testing.T) {
	storage := memory.NewPropertyStorageAdapter()
	catalog := newTestCatalog(t)

	property := domain.Property{
		Name:         "Moema Palace",
		DistrictName: "Alphaville",
		Rooms: []domain.Room{
			{Name: "Kitchen", Width: 10, Length: 4},
			{Name: "Living room", Width: 15, Length: 5},
			{Name: "Bedroom", Width: 5, Length: 5},
		},
	}
	id := insertFixture(t, storage, catalog, property)

	room, err := NewFindLargestRoomUseCase(storage).Execute(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Living room", room.Name)
	assert.Equal(t, 75.0, room.Area())
}

func TestCalculateRoomAreas(t *testing.T) {
	storage := memory.NewPropertyStorageAdapter()
	catalog := newTestCatalog(t)
	id := insertFixture(t, storage, catalog, validProperty())

	areas, err := NewCalculateRoomAreasUseCase(storage).Execute(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{
		"Kitchen":     50.0,
		"Living room": 100.0,
	}, areas)
}

func TestCalculatePropertyPrice(t *testing.T) {
	storage := memory.NewPropertyStorageAdapter()
	catalog := newTestCatalog(t)
	id := insertFixture(t, storage, catalog, validProperty())

	price, err := NewCalculatePropertyPriceUseCase(storage, catalog).Execute(context.Background(), id)
	require.NoError(t, err)
	// 150 м² * 18000 за м²
	assert.Equal(t, 2700000.0, price)
}

func TestCalculatorsUnknownID(t *testing.T) {
	storage := memory.NewPropertyStorageAdapter()
	catalog := newTestCatalog(t)

	const unknownID = "XYZ12345-ABCD56789"

	checks := []func() error{
		func() error {
			_, err := NewCalculateTotalAreaUseCase(storage).Execute(context.Background(), unknownID)
			return err
		},
		func() error {
			_, err := NewFindLargestRoomUseCase(storage).Execute(context.Background(), unknownID)
			return err
		},
		func() error {
			_, err := NewCalculateRoomAreasUseCase(storage).Execute(context.Background(), unknownID)
			return err
		},
		func() error {
			_, err := NewCalculatePropertyPriceUseCase(storage, catalog).Execute(context.Background(), unknownID)
			return err
		},
	}

	for _, check := range checks {
		err := check()

		var notFound *domain.PropertyNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "o ID: XYZ12345-ABCD56789 não está cadastrado.", notFound.Error())
	}
}
