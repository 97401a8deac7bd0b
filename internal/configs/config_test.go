package configs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "property-service", cfg.AppName)
	assert.Equal(t, "8080", cfg.Rest.PORT)
	assert.Equal(t, StorageBackendMemory, cfg.Storage.Backend)
	assert.False(t, cfg.RabbitMQ.Enabled)
	assert.False(t, cfg.FluentBit.Enabled)
	assert.Equal(t, "debug", cfg.StdoutLogger.Level)

	// каталог по умолчанию
	require.Len(t, cfg.Districts, 2)
	assert.Equal(t, DistrictSeed{Name: "Barra da Tijuca", UnitValue: 18000}, cfg.Districts[0])
	assert.Equal(t, DistrictSeed{Name: "Alphaville", UnitValue: 14000}, cfg.Districts[1])
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("APP_NAME", "property-service-test")
	t.Setenv("PORT", "9090")
	t.Setenv("STDOUT_LOG_LEVEL", "warn")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "property-service-test", cfg.AppName)
	assert.Equal(t, "9090", cfg.Rest.PORT)
	assert.Equal(t, "warn", cfg.StdoutLogger.Level)
}

func TestLoadConfigDistrictsOverride(t *testing.T) {
	t.Setenv("DISTRICTS", "Tijuca=15000; Moema=21000")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Len(t, cfg.Districts, 2)
	assert.Equal(t, DistrictSeed{Name: "Tijuca", UnitValue: 15000}, cfg.Districts[0])
	assert.Equal(t, DistrictSeed{Name: "Moema", UnitValue: 21000}, cfg.Districts[1])
}

func TestLoadConfigDistrictsMalformed(t *testing.T) {
	t.Setenv("DISTRICTS", "Tijuca")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigDistrictsNonPositiveValue(t *testing.T) {
	t.Setenv("DISTRICTS", "Tijuca=0")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigPostgresRequiresDatabaseURL(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", StorageBackendPostgres)

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigUnknownStorageBackend(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "cassandra")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigRabbitDisabledWithoutURL(t *testing.T) {
	t.Setenv("RABBITMQ_ENABLED", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	// без URL публикация событий отключается, а не валит старт
	assert.False(t, cfg.RabbitMQ.Enabled)
}
