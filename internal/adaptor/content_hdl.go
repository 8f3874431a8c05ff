package adaptor

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Ravinder82/CineRating/internal/data/entity"
	"github.com/Ravinder82/CineRating/internal/dto/request"
	"github.com/Ravinder82/CineRating/internal/usecase"
	"github.com/Ravinder82/CineRating/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ContentHandler struct {
	service usecase.ContentService
	log     *zap.Logger
}

func NewContentHandler(service usecase.ContentService, log *zap.Logger) *ContentHandler {
	return &ContentHandler{
		service: service,
		log:     log.With(zap.String("handler", "content")),
	}
}

// CreateContent handles POST /api/movies
func (h *ContentHandler) CreateContent(w http.ResponseWriter, r *http.Request) {
	var req request.ContentCreateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	item, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create content")
		return
	}

	utils.ResponseSuccess(w, "Content created successfully", item)
}

// GetContents handles GET /api/movies with optional platform,
// content_type and limit query parameters.
func (h *ContentHandler) GetContents(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	listQuery := &request.ContentListQuery{
		Platform:    query.Get("platform"),
		ContentType: query.Get("content_type"),
		Limit:       parseLimit(query.Get("limit")),
	}

	items, err := h.service.List(r.Context(), listQuery)
	if err != nil {
		handleServiceError(h.log, w, err, "list content")
		return
	}

	utils.ResponseSuccess(w, "success", items)
}

// GetContentByID handles GET /api/movies/{id}
func (h *ContentHandler) GetContentByID(w http.ResponseWriter, r *http.Request) {
	contentID := chi.URLParam(r, "id")
	if contentID == "" {
		utils.ResponseBadRequest(w, "Content ID is required", nil)
		return
	}

	item, err := h.service.GetByID(r.Context(), contentID)
	if err != nil {
		handleServiceError(h.log, w, err, "get content by ID")
		return
	}

	utils.ResponseSuccess(w, "Content retrieved successfully", item)
}

// UpdateContent handles PUT /api/movies/{id}
func (h *ContentHandler) UpdateContent(w http.ResponseWriter, r *http.Request) {
	contentID := chi.URLParam(r, "id")
	if contentID == "" {
		utils.ResponseBadRequest(w, "Content ID is required", nil)
		return
	}

	var req request.ContentUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	item, err := h.service.Update(r.Context(), contentID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update content")
		return
	}

	utils.ResponseSuccess(w, "Content updated successfully", item)
}

// DeleteContent handles DELETE /api/movies/{id}
func (h *ContentHandler) DeleteContent(w http.ResponseWriter, r *http.Request) {
	contentID := chi.URLParam(r, "id")
	if contentID == "" {
		utils.ResponseBadRequest(w, "Content ID is required", nil)
		return
	}

	if err := h.service.Delete(r.Context(), contentID); err != nil {
		handleServiceError(h.log, w, err, "delete content")
		return
	}

	utils.ResponseSuccess(w, "Content deleted successfully", nil)
}

// GetPlatforms handles GET /api/platforms
func (h *ContentHandler) GetPlatforms(w http.ResponseWriter, r *http.Request) {
	platforms := entity.AllPlatforms()

	names := make([]string, len(platforms))
	for i, p := range platforms {
		names[i] = string(p)
	}

	utils.ResponseSuccess(w, "success", names)
}

// parseLimit falls back to zero so the store applies its default.
func parseLimit(value string) int {
	if value == "" {
		return 0
	}

	result, err := strconv.Atoi(value)
	if err != nil || result < 1 {
		return 0
	}

	return result
}
