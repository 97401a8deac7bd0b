package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	logger_adapter "property-service/internal/adapters/logger"
	"property-service/internal/adapters/memory"
	"property-service/internal/adapters/rabbitmq"
	"property-service/internal/core/domain"
	"property-service/internal/core/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	router  http.Handler
	storage *memory.PropertyStorageAdapter
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	catalog, err := memory.NewDistrictCatalogAdapter([]domain.District{
		{Name: "Barra da Tijuca", UnitValue: 18000},
		{Name: "Alphaville", UnitValue: 14000},
	})
	require.NoError(t, err)

	storage := memory.NewPropertyStorageAdapter()
	events := rabbitmq.NewNoopPublisher()

	handlers := NewPropertyHandler(
		usecase.NewInsertPropertyUseCase(catalog, storage, events),
		usecase.NewGetAllPropertiesUseCase(storage),
		usecase.NewCalculateTotalAreaUseCase(storage),
		usecase.NewFindLargestRoomUseCase(storage),
		usecase.NewCalculateRoomAreasUseCase(storage),
		usecase.NewCalculatePropertyPriceUseCase(storage, catalog),
	)

	logger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{Writer: io.Discard})

	return &testEnv{
		router:  NewRouter(handlers, logger),
		storage: storage,
	}
}

func (env *testEnv) do(t *testing.T, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) insert(t *testing.T, request PropertyRequest) PropertyResponse {
	t.Helper()

	body, err := json.Marshal(request)
	require.NoError(t, err)

	rec := env.do(t, http.MethodPost, "/property/insert", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var response PropertyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	return response
}

func brooklynVillage() PropertyRequest {
	return PropertyRequest{
		Name:     "Brooklyn Village",
		District: DistrictDTO{Name: "Barra da Tijuca", UnitValue: 18000},
		Rooms: []RoomDTO{
			{Name: "Kitchen", Width: 10, Length: 5},
			{Name: "Living room", Width: 20, Length: 5},
		},
	}
}

func moemaPalace() PropertyRequest {
	return PropertyRequest{
		Name:     "Moema Palace",
		District: DistrictDTO{Name: "Alphaville", UnitValue: 14000},
		Rooms: []RoomDTO{
			{Name: "Kitchen", Width: 10, Length: 4},
			{Name: "Living room", Width: 15, Length: 5},
			{Name: "Bedroom", Width: 5, Length: 5},
		},
	}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var errResponse ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResponse))
	return errResponse
}

func TestInsertPropertyReturnsStoredEntity(t *testing.T) {
	env := newTestEnv(t)

	response := env.insert(t, brooklynVillage())

	assert.NotEmpty(t, response.ID)
	assert.Equal(t, "Brooklyn Village", response.Name)
	assert.Equal(t, "Barra da Tijuca", response.District.Name)
	assert.Len(t, response.Rooms, 2)
}

func TestGetAllPropertiesReturnsInsertionOrder(t *testing.T) {
	env := newTestEnv(t)
	env.insert(t, brooklynVillage())
	env.insert(t, moemaPalace())

	rec := env.do(t, http.MethodGet, "/property/get-all-properties", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var properties []PropertyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &properties))
	require.Len(t, properties, 2)
	assert.Equal(t, "Brooklyn Village", properties[0].Name)
	assert.Equal(t, "Moema Palace", properties[1].Name)
}

func TestCalculateTotalArea(t *testing.T) {
	env := newTestEnv(t)
	inserted := env.insert(t, brooklynVillage())

	rec := env.do(t, http.MethodGet, "/property/calculate-total-area-property/"+inserted.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var response TotalAreaResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, 150.0, response.TotalArea)
}

func TestFindLargestRoom(t *testing.T) {
	env := newTestEnv(t)
	inserted := env.insert(t, moemaPalace())

	rec := env.do(t, http.MethodGet, "/property/find-largest-room/"+inserted.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var response LargestRoomResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "Living room", response.RoomName)
	assert.Equal(t, 75.0, response.TotalArea)
}

func TestCalculateRoomAreas(t *testing.T) {
	env := newTestEnv(t)
	inserted := env.insert(t, brooklynVillage())

	rec := env.do(t, http.MethodGet, "/property/calculate-area-rooms/"+inserted.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var response RoomAreasResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, map[string]float64{
		"Kitchen":     50.0,
		"Living room": 100.0,
	}, response.RoomAreas)
}

func TestCalculatePropertyPrice(t *testing.T) {
	env := newTestEnv(t)
	inserted := env.insert(t, brooklynVillage())

	rec := env.do(t, http.MethodGet, "/property/calculate-property-price/"+inserted.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var response PriceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, 2700000.0, response.Price)
}

func TestInsertPropertyWithLowercaseRoomName(t *testing.T) {
	env := newTestEnv(t)

	request := brooklynVillage()
	request.Rooms[1].Name = "living room"

	body, err := json.Marshal(request)
	require.NoError(t, err)

	rec := env.do(t, http.MethodPost, "/property/insert", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	errResponse := decodeError(t, rec)
	assert.Equal(t, "RoomValidationException", errResponse.Name)
	assert.Equal(t, "O nome do cômodo deve começar com uma letra maiúscula.", errResponse.Description)
}

func TestInsertPropertyWithNonPositiveDimensions(t *testing.T) {
	env := newTestEnv(t)

	request := brooklynVillage()
	request.Rooms[1].Width = -2
	request.Rooms[1].Length = -2

	body, err := json.Marshal(request)
	require.NoError(t, err)

	rec := env.do(t, http.MethodPost, "/property/insert", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	errResponse := decodeError(t, rec)
	assert.Equal(t, "RoomValidationException", errResponse.Name)
	assert.Equal(t, "As dimensões do cômodo devem ser maiores que zero.", errResponse.Description)
}

func TestInsertPropertyWithUnknownDistrict(t *testing.T) {
	env := newTestEnv(t)

	request := brooklynVillage()
	request.District = DistrictDTO{Name: "Random", UnitValue: 15000}

	body, err := json.Marshal(request)
	require.NoError(t, err)

	rec := env.do(t, http.MethodPost, "/property/insert", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	errResponse := decodeError(t, rec)
	assert.Equal(t, "DistrictNotFoundException", errResponse.Name)
	assert.Equal(t, "o bairro Random não está cadastrado.", errResponse.Description)
}

func TestInsertPropertyWithoutDistrict(t *testing.T) {
	env := newTestEnv(t)

	request := brooklynVillage()
	request.District = DistrictDTO{}

	body, err := json.Marshal(request)
	require.NoError(t, err)

	rec := env.do(t, http.MethodPost, "/property/insert", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	errResponse := decodeError(t, rec)
	assert.Equal(t, "DistrictNotFoundException", errResponse.Name)
}

func TestInsertPropertyWithBadFormatting(t *testing.T) {
	env := newTestEnv(t)

	// обрезанный JSON
	truncated := []byte(`{
		"name": "Barra da Tijuca XYZ",
		"district": {
			"name": "Condominio dos ricos",
			"unit_value": 100
		},`)

	rec := env.do(t, http.MethodPost, "/property/insert", truncated)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	errResponse := decodeError(t, rec)
	assert.Equal(t, "HttpMessageNotReadableException", errResponse.Name)
}

func TestInsertPropertyWithWrongFieldTypes(t *testing.T) {
	env := newTestEnv(t)

	// ширина строкой — структурная ошибка, а не бизнес-правило
	badTypes := []byte(`{
		"name": "Tijuca Village",
		"district": {"name": "Barra da Tijuca"},
		"rooms": [{"name": "Kitchen", "width": "wide", "length": 5}]
	}`)

	rec := env.do(t, http.MethodPost, "/property/insert", badTypes)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	errResponse := decodeError(t, rec)
	assert.Equal(t, "HttpMessageNotReadableException", errResponse.Name)
}

func TestCalculationWithUnknownID(t *testing.T) {
	env := newTestEnv(t)

	paths := []string{
		"/property/calculate-total-area-property/XYZ12345-ABCD56789",
		"/property/find-largest-room/XYZ12345-ABCD56789",
		"/property/calculate-area-rooms/XYZ12345-ABCD56789",
		"/property/calculate-property-price/XYZ12345-ABCD56789",
	}

	for _, path := range paths {
		rec := env.do(t, http.MethodGet, path, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code, path)

		errResponse := decodeError(t, rec)
		assert.Equal(t, "PropertyNotFoundException", errResponse.Name)
		assert.Equal(t, "o ID: XYZ12345-ABCD56789 não está cadastrado.", errResponse.Description)
	}
}

func TestClearAllResetsListing(t *testing.T) {
	env := newTestEnv(t)
	env.insert(t, brooklynVillage())
	env.insert(t, moemaPalace())

	require.NoError(t, env.storage.ClearAll(context.Background()))

	rec := env.do(t, http.MethodGet, "/property/get-all-properties", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var properties []PropertyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &properties))
	assert.Empty(t, properties)
}
