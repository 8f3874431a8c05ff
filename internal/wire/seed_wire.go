package wire

import (
	"github.com/Ravinder82/CineRating/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireSeed(r chi.Router, seedHandler *adaptor.SeedHandler) {
	// POST /api/seed - load the fixed demonstration catalog
	r.Post("/api/seed", seedHandler.SeedContent)
}
