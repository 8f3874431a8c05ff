package wire

import (
	"github.com/Ravinder82/CineRating/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireContent(r chi.Router, contentHandler *adaptor.ContentHandler) {
	r.Route("/api/movies", func(r chi.Router) {
		r.Post("/", contentHandler.CreateContent)          // POST /api/movies
		r.Get("/", contentHandler.GetContents)             // GET /api/movies
		r.Get("/{id}", contentHandler.GetContentByID)      // GET /api/movies/{id}
		r.Put("/{id}", contentHandler.UpdateContent)       // PUT /api/movies/{id}
		r.Delete("/{id}", contentHandler.DeleteContent)    // DELETE /api/movies/{id}
	})

	// GET /api/platforms - enumerate supported platforms
	r.Get("/api/platforms", contentHandler.GetPlatforms)
}
