package adaptor

import (
	"net/http"

	"github.com/Ravinder82/CineRating/internal/usecase"
	"github.com/Ravinder82/CineRating/pkg/utils"

	"go.uber.org/zap"
)

type SeedHandler struct {
	service usecase.SeedService
	log     *zap.Logger
}

func NewSeedHandler(service usecase.SeedService, log *zap.Logger) *SeedHandler {
	return &SeedHandler{
		service: service,
		log:     log.With(zap.String("handler", "seed")),
	}
}

// SeedContent handles POST /api/seed
func (h *SeedHandler) SeedContent(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.Seed(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "seed content")
		return
	}

	utils.ResponseSuccess(w, report.Message, report)
}
