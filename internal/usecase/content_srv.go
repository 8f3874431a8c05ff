package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Ravinder82/CineRating/internal/data/entity"
	"github.com/Ravinder82/CineRating/internal/data/repository"
	"github.com/Ravinder82/CineRating/internal/dto/request"
	"github.com/Ravinder82/CineRating/internal/dto/response"
	"github.com/Ravinder82/CineRating/pkg/cache"
	"github.com/Ravinder82/CineRating/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ContentService interface {
	Create(ctx context.Context, req *request.ContentCreateRequest) (*response.ContentResponse, error)
	GetByID(ctx context.Context, contentID string) (*response.ContentResponse, error)
	List(ctx context.Context, query *request.ContentListQuery) ([]response.ContentResponse, error)
	Update(ctx context.Context, contentID string, req *request.ContentUpdateRequest) (*response.ContentResponse, error)
	Delete(ctx context.Context, contentID string) error
}

type contentService struct {
	repo  *repository.Repository
	cache *cache.Cache
	log   *zap.Logger
}

func NewContentService(
	repo *repository.Repository,
	statsCache *cache.Cache,
	log *zap.Logger,
) ContentService {
	return &contentService{
		repo:  repo,
		cache: statsCache,
		log:   log.With(zap.String("service", "content")),
	}
}

func (s *contentService) Create(ctx context.Context, req *request.ContentCreateRequest) (*response.ContentResponse, error) {
	// Validate request data before anything is written
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create content validation failed", zap.Any("errors", errs))
		return nil, utils.NewValidationError(errs)
	}

	ratings := ratingsFromPayload(req.Ratings)

	now := time.Now().UTC()
	item := &entity.ContentItem{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:             req.Title,
		ContentType:       entity.ContentType(req.ContentType),
		Year:              req.Year,
		Genre:             req.Genre,
		StreamingPlatform: entity.StreamingPlatform(req.StreamingPlatform),
		Description:       req.Description,
		Ratings:           ratings,
		OverallRating:     OverallRating(ratings),
	}

	if err := s.repo.Content.Create(ctx, item); err != nil {
		s.log.Error("Failed to create content item",
			zap.Error(err),
			zap.String("title", req.Title),
		)
		return nil, utils.NewStorageError("insert", err)
	}

	s.flushCache(ctx)

	s.log.Info("Content item created",
		zap.String("content_id", item.ID.String()),
		zap.String("title", item.Title),
		zap.Float64("overall_rating", item.OverallRating),
	)

	resp := response.ContentToResponse(item)
	return &resp, nil
}

func (s *contentService) GetByID(ctx context.Context, contentID string) (*response.ContentResponse, error) {
	id, err := uuid.Parse(contentID)
	if err != nil {
		// Malformed ids can never match a stored item
		return nil, utils.NewNotFoundError("content item", contentID)
	}

	item, err := s.repo.Content.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get content item by ID",
			zap.Error(err),
			zap.String("content_id", contentID),
		)
		return nil, utils.NewStorageError("find", err)
	}

	if item == nil {
		return nil, utils.NewNotFoundError("content item", contentID)
	}

	resp := response.ContentToResponse(item)
	return &resp, nil
}

func (s *contentService) List(ctx context.Context, query *request.ContentListQuery) ([]response.ContentResponse, error) {
	filter, err := buildListFilter(query)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.Content.FindAll(ctx, filter)
	if err != nil {
		s.log.Error("Failed to list content items", zap.Error(err))
		return nil, utils.NewStorageError("list", err)
	}

	s.log.Debug("Content items listed",
		zap.Int("count", len(items)),
		zap.String("platform", query.Platform),
		zap.String("content_type", query.ContentType),
	)

	return response.ContentListToResponse(items), nil
}

func (s *contentService) Update(ctx context.Context, contentID string, req *request.ContentUpdateRequest) (*response.ContentResponse, error) {
	id, err := uuid.Parse(contentID)
	if err != nil {
		return nil, utils.NewNotFoundError("content item", contentID)
	}

	// Only supplied fields are checked
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update content validation failed",
			zap.String("content_id", contentID),
			zap.Any("errors", errs),
		)
		return nil, utils.NewValidationError(errs)
	}

	item, err := s.repo.Content.FindByID(ctx, id)
	if err != nil {
		return nil, utils.NewStorageError("find", err)
	}
	if item == nil {
		return nil, utils.NewNotFoundError("content item", contentID)
	}

	// Merge supplied fields into the stored item
	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.ContentType != nil {
		item.ContentType = entity.ContentType(*req.ContentType)
	}
	if req.Year != nil {
		item.Year = *req.Year
	}
	if req.Genre != nil {
		item.Genre = *req.Genre
	}
	if req.StreamingPlatform != nil {
		item.StreamingPlatform = entity.StreamingPlatform(*req.StreamingPlatform)
	}
	if req.Description != nil {
		item.Description = req.Description
	}
	if req.Ratings != nil {
		item.Ratings = ratingsFromPayload(req.Ratings)
		item.OverallRating = OverallRating(item.Ratings)
	}

	// updated_at refreshes on every mutation, changed fields or not
	item.UpdatedAt = time.Now().UTC()

	if err := s.repo.Content.Update(ctx, item); err != nil {
		var notFound *utils.NotFoundError
		if errors.As(err, &notFound) {
			return nil, err
		}
		s.log.Error("Failed to update content item",
			zap.Error(err),
			zap.String("content_id", contentID),
		)
		return nil, utils.NewStorageError("update", err)
	}

	s.flushCache(ctx)

	s.log.Info("Content item updated",
		zap.String("content_id", contentID),
		zap.String("title", item.Title),
		zap.Bool("ratings_changed", req.Ratings != nil),
	)

	resp := response.ContentToResponse(item)
	return &resp, nil
}

func (s *contentService) Delete(ctx context.Context, contentID string) error {
	id, err := uuid.Parse(contentID)
	if err != nil {
		return utils.NewNotFoundError("content item", contentID)
	}

	if err := s.repo.Content.Delete(ctx, id); err != nil {
		var notFound *utils.NotFoundError
		if errors.As(err, &notFound) {
			return err
		}
		s.log.Error("Failed to delete content item",
			zap.Error(err),
			zap.String("content_id", contentID),
		)
		return utils.NewStorageError("delete", err)
	}

	s.flushCache(ctx)

	s.log.Info("Content item deleted", zap.String("content_id", contentID))
	return nil
}

// flushCache drops cached aggregates after a write. Failures are
// logged, not surfaced: the database already holds the truth.
func (s *contentService) flushCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Flush(ctx); err != nil {
		s.log.Warn("Failed to flush cache", zap.Error(err))
	}
}

func ratingsFromPayload(p *request.RatingsPayload) entity.RatingCategories {
	return entity.RatingCategories{
		Story:           *p.Story,
		Acting:          *p.Acting,
		Direction:       *p.Direction,
		MusicSound:      *p.MusicSound,
		Cinematography:  *p.Cinematography,
		ActionStunts:    *p.ActionStunts,
		EmotionalImpact: *p.EmotionalImpact,
	}
}

func buildListFilter(query *request.ContentListQuery) (repository.ListFilter, error) {
	filter := repository.ListFilter{Limit: query.Limit}

	if query.Platform != "" {
		platform := entity.StreamingPlatform(query.Platform)
		if !validPlatform(platform) {
			return filter, utils.FieldError("platform", fmt.Sprintf("unknown platform: %s", query.Platform))
		}
		filter.Platform = &platform
	}

	if query.ContentType != "" {
		contentType := entity.ContentType(query.ContentType)
		if contentType != entity.ContentTypeMovie && contentType != entity.ContentTypeTVSeries {
			return filter, utils.FieldError("content_type", fmt.Sprintf("unknown content type: %s", query.ContentType))
		}
		filter.ContentType = &contentType
	}

	return filter, nil
}

func validPlatform(p entity.StreamingPlatform) bool {
	for _, known := range entity.AllPlatforms() {
		if p == known {
			return true
		}
	}
	return false
}
