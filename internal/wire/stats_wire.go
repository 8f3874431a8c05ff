package wire

import (
	"github.com/Ravinder82/CineRating/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireStats(r chi.Router, statsHandler *adaptor.StatsHandler) {
	// GET /api/stats - aggregate counts
	r.Get("/api/stats", statsHandler.GetStats)
}
