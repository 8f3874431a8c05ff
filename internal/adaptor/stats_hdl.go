package adaptor

import (
	"net/http"

	"github.com/Ravinder82/CineRating/internal/usecase"
	"github.com/Ravinder82/CineRating/pkg/utils"

	"go.uber.org/zap"
)

type StatsHandler struct {
	service usecase.StatsService
	log     *zap.Logger
}

func NewStatsHandler(service usecase.StatsService, log *zap.Logger) *StatsHandler {
	return &StatsHandler{
		service: service,
		log:     log.With(zap.String("handler", "stats")),
	}
}

// GetStats handles GET /api/stats
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get stats")
		return
	}

	utils.ResponseSuccess(w, "success", stats)
}
