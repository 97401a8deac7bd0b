package rest

import (
	"context"
	"net/http"

	core_port "property-service/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

func NewServer(port string, propertyHandlers *PropertyHandler, baseLogger core_port.LoggerPort) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:    ":" + port,
			Handler: NewRouter(propertyHandlers, baseLogger),
		},
		logger: baseLogger,
	}
}

// NewRouter собирает маршруты сервиса. Вынесен отдельно, чтобы тесты
// могли гонять запросы через httptest без реального сервера.
func NewRouter(propertyHandlers *PropertyHandler, baseLogger core_port.LoggerPort) http.Handler {
	r := chi.NewRouter()

	r.Use(LoggerMiddleware(baseLogger), middleware.Recoverer)

	r.Route("/property", func(r chi.Router) {
		r.Post("/insert", propertyHandlers.InsertProperty)
		r.Get("/get-all-properties", propertyHandlers.GetAllProperties)

		r.Get("/calculate-total-area-property/{propertyID}", propertyHandlers.CalculateTotalArea)
		r.Get("/find-largest-room/{propertyID}", propertyHandlers.FindLargestRoom)
		r.Get("/calculate-area-rooms/{propertyID}", propertyHandlers.CalculateRoomAreas)
		r.Get("/calculate-property-price/{propertyID}", propertyHandlers.CalculatePropertyPrice)
	})

	return r
}

func (s *Server) Start() error {
	s.logger.Info("Starting REST server", core_port.Fields{"address": s.httpServer.Addr})
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST server...", nil)
	return s.httpServer.Shutdown(ctx)
}
