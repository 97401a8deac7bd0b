package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	logger_adapter "property-service/internal/adapters/logger"
	memory_adapter "property-service/internal/adapters/memory"
	postgres_adapter "property-service/internal/adapters/postgres"
	rabbitmq_adapter "property-service/internal/adapters/rabbitmq"
	"property-service/internal/adapters/rest"
	"property-service/internal/configs"
	"property-service/internal/core/domain"
	"property-service/internal/core/port"
	"property-service/internal/core/usecase"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"
)

// App – структура приложения
type App struct {
	config       *configs.AppConfig
	dbPool       *pgxpool.Pool
	apiServer    *rest.Server
	events       port.PropertyEventsPort
	fluentClient *fluent.Fluent
	logger       port.LoggerPort
}

// NewApp создает новый экземпляр приложения.
// Это "Composition Root", где все зависимости создаются и связываются.
func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. ИНИЦИАЛИЗАЦИЯ ЛОГГЕРОВ ---
	var activeLoggers []port.LoggerPort

	slogCfg := logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false, // текстовый формат
		UseColor: true,
	}
	stdoutLogger := logger_adapter.NewSlogAdapter(slogCfg)
	activeLoggers = append(activeLoggers, stdoutLogger)

	// Добавляем Fluent Bit логгер, если он включен в конфигурации
	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = logger_adapter.NewFluentClient(logger_adapter.FluentClientConfig{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// --- 2. КАТАЛОГ РАЙОНОВ ---
	districts := make([]domain.District, len(appConfig.Districts))
	for i, seed := range appConfig.Districts {
		districts[i] = domain.District{Name: seed.Name, UnitValue: seed.UnitValue}
	}

	districtCatalog, err := memory_adapter.NewDistrictCatalogAdapter(districts)
	if err != nil {
		appLogger.Error("Failed to create district catalog", err, nil)
		return nil, fmt.Errorf("failed to create district catalog: %w", err)
	}
	appLogger.Info("District catalog initialized.", port.Fields{"district_count": len(districts)})

	// --- 3. ХРАНИЛИЩЕ ОБЪЕКТОВ ---
	var propertyStorage port.PropertyStoragePort
	var dbPool *pgxpool.Pool

	switch appConfig.Storage.Backend {
	case configs.StorageBackendPostgres:
		dbPool, err = postgres_adapter.NewClient(context.Background(), postgres_adapter.Config{DatabaseURL: appConfig.Storage.DatabaseURL})
		if err != nil {
			appLogger.Error("Failed to connect to PostgreSQL", err, nil)
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		appLogger.Info("Successfully connected to PostgreSQL pool!", nil)

		pgStorage, err := postgres_adapter.NewPropertyStorageAdapter(dbPool)
		if err != nil {
			appLogger.Error("Failed to create postgres storage adapter", err, nil)
			dbPool.Close()
			return nil, fmt.Errorf("failed to create postgres storage adapter: %w", err)
		}
		if err := pgStorage.EnsureSchema(context.Background()); err != nil {
			appLogger.Error("Failed to ensure postgres schema", err, nil)
			dbPool.Close()
			return nil, err
		}
		propertyStorage = pgStorage
	default:
		propertyStorage = memory_adapter.NewPropertyStorageAdapter()
	}
	appLogger.Info("Property storage initialized.", port.Fields{"backend": appConfig.Storage.Backend})

	// --- 4. ПУБЛИКАЦИЯ СОБЫТИЙ ---
	var propertyEvents port.PropertyEventsPort
	if appConfig.RabbitMQ.Enabled {
		publisherLogger := baseLogger.WithFields(port.Fields{"component": "rabbitmq_publisher"})
		publisher, err := rabbitmq_adapter.NewPropertyEventPublisher(rabbitmq_adapter.PropertyEventPublisherConfig{
			URL:             appConfig.RabbitMQ.URL,
			DurableExchange: true,
			Logger:          publisherLogger,
		})
		if err != nil {
			appLogger.Error("Failed to create property event publisher", err, nil)
			if dbPool != nil {
				dbPool.Close()
			}
			return nil, fmt.Errorf("failed to create property event publisher: %w", err)
		}
		propertyEvents = publisher
		appLogger.Info("RabbitMQ event publisher initialized.", nil)
	} else {
		propertyEvents = rabbitmq_adapter.NewNoopPublisher()
	}

	// --- 5. ИНИЦИАЛИЗАЦИЯ USE CASES (ядра бизнес-логики) ---
	insertPropertyUseCase := usecase.NewInsertPropertyUseCase(districtCatalog, propertyStorage, propertyEvents)
	getAllPropertiesUseCase := usecase.NewGetAllPropertiesUseCase(propertyStorage)
	calculateTotalAreaUseCase := usecase.NewCalculateTotalAreaUseCase(propertyStorage)
	findLargestRoomUseCase := usecase.NewFindLargestRoomUseCase(propertyStorage)
	calculateRoomAreasUseCase := usecase.NewCalculateRoomAreasUseCase(propertyStorage)
	calculatePriceUseCase := usecase.NewCalculatePropertyPriceUseCase(propertyStorage, districtCatalog)

	appLogger.Info("All use cases initialized.", nil)

	// --- 6. REST API Server ---
	propertyHandlers := rest.NewPropertyHandler(
		insertPropertyUseCase,
		getAllPropertiesUseCase,
		calculateTotalAreaUseCase,
		findLargestRoomUseCase,
		calculateRoomAreasUseCase,
		calculatePriceUseCase,
	)

	apiServer := rest.NewServer(appConfig.Rest.PORT, propertyHandlers, baseLogger)
	appLogger.Info("REST API server configured.", nil)

	application := &App{
		config:       appConfig,
		dbPool:       dbPool,
		apiServer:    apiServer,
		events:       propertyEvents,
		fluentClient: fluentClient,
		logger:       appLogger,
	}

	return application, nil
}

// Run запускает все компоненты приложения и управляет их жизненным циклом.
func (a *App) Run() error {
	appCtx, cancelApp := context.WithCancel(context.Background())

	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		if a.apiServer != nil {
			if err := a.apiServer.Stop(context.Background()); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
		}

		if a.events != nil {
			if err := a.events.Close(); err != nil {
				a.logger.Error("Error closing property event publisher", err, nil)
			}
		}

		if a.dbPool != nil {
			a.dbPool.Close()
			a.logger.Info("PostgreSQL pool closed.", nil)
		}

		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				// Логируем в stdout, так как fluent может быть уже недоступен
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	errorsCh := make(chan error, 1)

	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.PORT})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			errorsCh <- fmt.Errorf("failed to start HTTP server: %w", err)
		}
	}()

	// Ожидание сигнала на завершение или ошибки от одного из компонентов
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case err := <-errorsCh:
		a.logger.Error("A critical component failed, shutting down", err, nil)
	case <-appCtx.Done():
		a.logger.Warn("Context was cancelled unexpectedly, shutting down...", nil)
	}

	cancelApp()

	return nil
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		// Возвращаем безопасное значение по умолчанию и логируем предупреждение
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
