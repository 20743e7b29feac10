package server

import (
	"fmt"
	"net/http"
	"time"

	"sofa-stock/internal/config"
	"sofa-stock/internal/domain"
	"sofa-stock/internal/inventory"
	custommiddleware "sofa-stock/internal/middleware"
	"sofa-stock/internal/store"
	"sofa-stock/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Server struct {
	*http.Server
	config *config.Config
	logger *zap.Logger
}

// NewServer builds the composition root: seeded stores, the inventory
// service, handlers, and the HTTP server around them. The stores live for
// exactly as long as the server; nothing is persisted.
func NewServer(cfg *config.Config, logger *zap.Logger, seedProducts []*domain.Product) *Server {
	// Create router
	router := chi.NewRouter()

	// Add basic middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(custommiddleware.CORSMiddleware(cfg.CORS.AllowedOrigins, cfg.Server.Env == "development"))

	// Health check endpoint
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Initialize stores with seed data
	products := store.NewSeededProductStore(seedProducts)
	categories := store.NewCategoryRegistry(domain.DefaultCategories(time.Now()))

	// Initialize service
	inventoryService := inventory.NewService(products, categories)

	// Initialize handlers
	productHandler := transport.NewProductHandler(inventoryService, logger)
	categoryHandler := transport.NewCategoryHandler(inventoryService, logger)

	// Register routes
	productHandler.RegisterRoutes(router)
	categoryHandler.RegisterRoutes(router)

	server := &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config: cfg,
		logger: logger,
	}

	return server
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")
	s.logger.Sync()
	return nil
}
