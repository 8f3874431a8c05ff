package adaptor

import (
	"errors"
	"net/http"

	"github.com/Ravinder82/CineRating/internal/usecase"
	"github.com/Ravinder82/CineRating/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Content *ContentHandler
	Seed    *SeedHandler
	Stats   *StatsHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Content: NewContentHandler(service.Content, log),
		Seed:    NewSeedHandler(service.Seed, log),
		Stats:   NewStatsHandler(service.Stats, log),
	}
}

// handleServiceError maps the service error taxonomy onto HTTP
// statuses: validation -> 422, not found -> 404, everything else ->
// 500 with a generic message.
func handleServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	var validationErr *utils.ValidationError
	var notFoundErr *utils.NotFoundError

	switch {
	case errors.As(err, &validationErr):
		log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseUnprocessable(w, "Validation failed", validationErr.Fields)

	case errors.As(err, &notFoundErr):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, notFoundErr.Error())

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
