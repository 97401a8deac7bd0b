package configs

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Бэкенды хранилища объектов.
const (
	StorageBackendMemory   = "memory"
	StorageBackendPostgres = "postgres"
)

type RESTconfig struct {
	PORT string
}

type StdoutLogConfig struct {
	Level string // По умолчанию DEBUG
}

type FluentBitConfig struct {
	Host    string
	Port    int
	Enabled bool
	Level   string // По умолчанию INFO
}

// StorageConfig определяет бэкенд хранилища объектов.
type StorageConfig struct {
	Backend     string // "memory" или "postgres"
	DatabaseURL string // обязателен только для postgres
}

// RabbitMQConfig хранит конфигурацию для RabbitMQ
type RabbitMQConfig struct {
	Enabled bool
	URL     string
}

// DistrictSeed — один район каталога, прочитанный из конфигурации.
type DistrictSeed struct {
	Name      string
	UnitValue float64
}

// AppConfig хранит всю конфигурацию приложения
type AppConfig struct {
	AppName      string
	Rest         RESTconfig
	Storage      StorageConfig
	RabbitMQ     RabbitMQConfig
	FluentBit    FluentBitConfig
	StdoutLogger StdoutLogConfig

	// Districts — набор районов для заполнения каталога при старте.
	// Если переменная DISTRICTS не задана, используется набор по умолчанию.
	Districts []DistrictSeed
}

// defaultDistricts — каталог по умолчанию.
var defaultDistricts = []DistrictSeed{
	{Name: "Barra da Tijuca", UnitValue: 18000},
	{Name: "Alphaville", UnitValue: 14000},
}

// LoadConfig загружает конфигурацию из переменных окружения.
// Рекомендуется использовать .env файл для локальной разработки.
func LoadConfig(envPath ...string) (*AppConfig, error) {
	var err error
	if len(envPath) > 0 {
		err = godotenv.Load(envPath[0])
	} else {
		err = godotenv.Load()
	}

	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &AppConfig{}

	cfg.AppName = getEnvAsString("APP_NAME", "property-service")

	cfg.Rest.PORT = getEnvAsString("PORT", "8080")

	cfg.Storage.Backend = getEnvAsString("STORAGE_BACKEND", StorageBackendMemory)
	switch cfg.Storage.Backend {
	case StorageBackendMemory:
		// БД не нужна
	case StorageBackendPostgres:
		cfg.Storage.DatabaseURL = os.Getenv("DATABASE_URL")
		if cfg.Storage.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL environment variable is required for postgres storage backend")
		}
	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q (expected %q or %q)",
			cfg.Storage.Backend, StorageBackendMemory, StorageBackendPostgres)
	}

	cfg.RabbitMQ.Enabled = getEnvAsBool("RABBITMQ_ENABLED", false)
	if cfg.RabbitMQ.Enabled {
		cfg.RabbitMQ.URL = os.Getenv("RABBITMQ_URL")
		if cfg.RabbitMQ.URL == "" {
			log.Println("WARNING: RABBITMQ_ENABLED is true, but RABBITMQ_URL is not set. Disabling RabbitMQ.")
			cfg.RabbitMQ.Enabled = false
		}
	}

	cfg.FluentBit.Enabled = getEnvAsBool("FLUENTBIT_ENABLED", false)
	if cfg.FluentBit.Enabled {
		cfg.FluentBit.Host = os.Getenv("FLUENTBIT_HOST")
		if cfg.FluentBit.Host == "" {
			log.Println("WARNING: FLUENTBIT_ENABLED is true, but FLUENTBIT_HOST is not set. Disabling Fluent Bit.")
			cfg.FluentBit.Enabled = false
		}

		cfg.FluentBit.Port = getEnvAsInt("FLUENTBIT_PORT", 24224)
		cfg.FluentBit.Level = getEnvAsString("FLUENTBIT_LOG_LEVEL", "info")
	}

	cfg.StdoutLogger.Level = getEnvAsString("STDOUT_LOG_LEVEL", "debug")

	cfg.Districts, err = parseDistricts(os.Getenv("DISTRICTS"))
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// parseDistricts разбирает строку вида "Barra da Tijuca=18000;Alphaville=14000".
// Пустая строка означает набор по умолчанию.
func parseDistricts(raw string) ([]DistrictSeed, error) {
	if strings.TrimSpace(raw) == "" {
		return defaultDistricts, nil
	}

	entries := strings.Split(raw, ";")
	seeds := make([]DistrictSeed, 0, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		name, valueStr, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, fmt.Errorf("DISTRICTS: entry %q is not in the form Name=UnitValue", entry)
		}

		name = strings.TrimSpace(name)
		unitValue, err := strconv.ParseFloat(strings.TrimSpace(valueStr), 64)
		if err != nil {
			return nil, fmt.Errorf("DISTRICTS: unit value of %q could not be parsed: %w", name, err)
		}
		if name == "" || unitValue <= 0 {
			return nil, fmt.Errorf("DISTRICTS: entry %q must have a non-empty name and a unit value > 0", entry)
		}

		seeds = append(seeds, DistrictSeed{Name: name, UnitValue: unitValue})
	}

	if len(seeds) == 0 {
		return nil, fmt.Errorf("DISTRICTS: no valid entries found")
	}

	return seeds, nil
}

func getEnvAsString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt читает переменную окружения как int или возвращает значение по умолчанию
// Логирует ошибку, если переменная есть, но не может быть преобразована в int
func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as int: %v. Using default value: %d\n", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return valueInt
}

// getEnvAsBool читает переменную окружения как bool или возвращает значение по умолчанию
func getEnvAsBool(key string, defaultValue bool) bool {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valBool, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as bool: %v. Using default value: %t\n", key, valStr, err, defaultValue)
		return defaultValue
	}
	return valBool
}
