package adaptor_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Ravinder82/CineRating/internal/adaptor"
	"github.com/Ravinder82/CineRating/internal/dto/request"
	"github.com/Ravinder82/CineRating/internal/dto/response"
	"github.com/Ravinder82/CineRating/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type fakeContentService struct {
	item *response.ContentResponse
	list []response.ContentResponse
	err  error
}

func (f *fakeContentService) Create(ctx context.Context, req *request.ContentCreateRequest) (*response.ContentResponse, error) {
	return f.item, f.err
}

func (f *fakeContentService) GetByID(ctx context.Context, id string) (*response.ContentResponse, error) {
	return f.item, f.err
}

func (f *fakeContentService) List(ctx context.Context, query *request.ContentListQuery) ([]response.ContentResponse, error) {
	return f.list, f.err
}

func (f *fakeContentService) Update(ctx context.Context, id string, req *request.ContentUpdateRequest) (*response.ContentResponse, error) {
	return f.item, f.err
}

func (f *fakeContentService) Delete(ctx context.Context, id string) error {
	return f.err
}

func newContentRouter(svc *fakeContentService) *chi.Mux {
	h := adaptor.NewContentHandler(svc, zap.NewNop())

	r := chi.NewRouter()
	r.Post("/api/movies", h.CreateContent)
	r.Get("/api/movies", h.GetContents)
	r.Get("/api/movies/{id}", h.GetContentByID)
	r.Put("/api/movies/{id}", h.UpdateContent)
	r.Delete("/api/movies/{id}", h.DeleteContent)
	r.Get("/api/platforms", h.GetPlatforms)
	return r
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) utils.Response {
	t.Helper()
	var envelope utils.Response
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return envelope
}

func TestCreateContentMalformedBody(t *testing.T) {
	router := newContentRouter(&fakeContentService{})

	req := httptest.NewRequest(http.MethodPost, "/api/movies", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCreateContentValidationErrorMapsTo422(t *testing.T) {
	svc := &fakeContentService{
		err: utils.FieldError("Story", "Must be at most 10"),
	}
	router := newContentRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/movies", strings.NewReader(`{"title":"x"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}

	envelope := decodeEnvelope(t, rec)
	if envelope.Status {
		t.Fatalf("expected status false")
	}
	if envelope.Errors == nil {
		t.Fatalf("expected field errors in response")
	}
}

func TestGetContentByIDNotFoundMapsTo404(t *testing.T) {
	svc := &fakeContentService{
		err: utils.NewNotFoundError("content item", "missing-id"),
	}
	router := newContentRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/movies/missing-id", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestGetContentsStorageErrorMapsTo500(t *testing.T) {
	svc := &fakeContentService{
		err: utils.NewStorageError("list", context.DeadlineExceeded),
	}
	router := newContentRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/movies", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	envelope := decodeEnvelope(t, rec)
	if strings.Contains(envelope.Message, "deadline") {
		t.Fatalf("internal detail leaked to client: %q", envelope.Message)
	}
}

func TestGetContentByIDSuccess(t *testing.T) {
	svc := &fakeContentService{
		item: &response.ContentResponse{
			ID:    "f4b0c6de-31a1-4f6c-9d58-20c4a2f0b111",
			Title: "Roma",
		},
	}
	router := newContentRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/movies/f4b0c6de-31a1-4f6c-9d58-20c4a2f0b111", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	envelope := decodeEnvelope(t, rec)
	if !envelope.Status {
		t.Fatalf("expected status true")
	}
}

func TestDeleteContentSuccess(t *testing.T) {
	router := newContentRouter(&fakeContentService{})

	req := httptest.NewRequest(http.MethodDelete, "/api/movies/f4b0c6de-31a1-4f6c-9d58-20c4a2f0b111", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestGetPlatformsListsAllNine(t *testing.T) {
	router := newContentRouter(&fakeContentService{})

	req := httptest.NewRequest(http.MethodGet, "/api/platforms", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var envelope struct {
		Data []string `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}

	if len(envelope.Data) != 9 {
		t.Fatalf("expected 9 platforms, got %d", len(envelope.Data))
	}
	if envelope.Data[0] != "Netflix" {
		t.Fatalf("expected Netflix first, got %q", envelope.Data[0])
	}
}
