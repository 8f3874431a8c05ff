// internal/wire/wire.go
package wire

import (
	"net/http"

	"github.com/Ravinder82/CineRating/internal/adaptor"
	"github.com/Ravinder82/CineRating/internal/data/repository"
	"github.com/Ravinder82/CineRating/internal/usecase"
	"github.com/Ravinder82/CineRating/pkg/cache"
	"github.com/Ravinder82/CineRating/pkg/middleware"
	"github.com/Ravinder82/CineRating/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and routes
func Wiring(repo *repository.Repository, statsCache *cache.Cache, logger *zap.Logger) *App {
	service := usecase.NewService(repo, statsCache, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the chi router
func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// API identity message, with and without the trailing slash
	identity := func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseSuccess(w, "Multi-Category Movie Rating API", nil)
	}
	r.Get("/api", identity)
	r.Get("/api/", identity)

	// Apply routes
	wireContent(r, handler.Content)
	wireSeed(r, handler.Seed)
	wireStats(r, handler.Stats)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
