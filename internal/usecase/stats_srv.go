package usecase

import (
	"context"

	"github.com/Ravinder82/CineRating/internal/data/entity"
	"github.com/Ravinder82/CineRating/internal/data/repository"
	"github.com/Ravinder82/CineRating/internal/dto/response"
	"github.com/Ravinder82/CineRating/pkg/cache"
	"github.com/Ravinder82/CineRating/pkg/utils"

	"go.uber.org/zap"
)

const statsCacheKey = "stats"

type StatsService interface {
	Stats(ctx context.Context) (*response.StatsResponse, error)
}

type statsService struct {
	repo  *repository.Repository
	cache *cache.Cache
	log   *zap.Logger
}

func NewStatsService(
	repo *repository.Repository,
	statsCache *cache.Cache,
	log *zap.Logger,
) StatsService {
	return &statsService{
		repo:  repo,
		cache: statsCache,
		log:   log.With(zap.String("service", "stats")),
	}
}

// Stats aggregates counts by content type and per-platform counts
// ordered by count descending, platform name ascending on ties.
func (s *statsService) Stats(ctx context.Context) (*response.StatsResponse, error) {
	if s.cache != nil {
		var cached response.StatsResponse
		hit, err := s.cache.Get(ctx, statsCacheKey, &cached)
		if err != nil {
			s.log.Warn("Stats cache read failed", zap.Error(err))
		} else if hit {
			return &cached, nil
		}
	}

	totalMovies, err := s.repo.Content.CountByType(ctx, entity.ContentTypeMovie)
	if err != nil {
		s.log.Error("Failed to count movies", zap.Error(err))
		return nil, utils.NewStorageError("count movies", err)
	}

	totalTVShows, err := s.repo.Content.CountByType(ctx, entity.ContentTypeTVSeries)
	if err != nil {
		s.log.Error("Failed to count tv series", zap.Error(err))
		return nil, utils.NewStorageError("count tv series", err)
	}

	platformCounts, err := s.repo.Content.PlatformCounts(ctx)
	if err != nil {
		s.log.Error("Failed to get platform distribution", zap.Error(err))
		return nil, utils.NewStorageError("platform distribution", err)
	}

	stats := &response.StatsResponse{
		TotalMovies:          totalMovies,
		TotalTVShows:         totalTVShows,
		TotalContent:         totalMovies + totalTVShows,
		PlatformDistribution: response.PlatformCountsToResponse(platformCounts),
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, statsCacheKey, stats); err != nil {
			s.log.Warn("Stats cache write failed", zap.Error(err))
		}
	}

	return stats, nil
}
