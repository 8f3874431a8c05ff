package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Ravinder82/CineRating/internal/data/entity"
	"github.com/Ravinder82/CineRating/internal/data/repository"
	"github.com/Ravinder82/CineRating/internal/dto/response"
	"github.com/Ravinder82/CineRating/pkg/cache"
	"github.com/Ravinder82/CineRating/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SeedService interface {
	Seed(ctx context.Context) (*response.SeedResponse, error)
}

type seedService struct {
	repo  *repository.Repository
	cache *cache.Cache
	log   *zap.Logger
}

func NewSeedService(
	repo *repository.Repository,
	statsCache *cache.Cache,
	log *zap.Logger,
) SeedService {
	return &seedService{
		repo:  repo,
		cache: statsCache,
		log:   log.With(zap.String("service", "seed")),
	}
}

// Seed populates an empty store with the fixed catalog. A non-empty
// store makes it a no-op reporting the existing count.
func (s *seedService) Seed(ctx context.Context) (*response.SeedResponse, error) {
	existing, err := s.repo.Content.Count(ctx)
	if err != nil {
		s.log.Error("Failed to count content items before seeding", zap.Error(err))
		return nil, utils.NewStorageError("count", err)
	}

	if existing > 0 {
		s.log.Info("Seed skipped, store not empty", zap.Int64("existing", existing))
		return &response.SeedResponse{
			Message:  fmt.Sprintf("Database already contains %d items", existing),
			Inserted: 0,
			Existing: existing,
		}, nil
	}

	catalog := seedCatalog()
	now := time.Now().UTC()

	inserted := 0
	for i, entry := range catalog {
		item := &entity.ContentItem{
			Base: entity.Base{
				ID: uuid.New(),
				// Stagger creation times so listings have a stable order
				CreatedAt: now.Add(time.Duration(i) * time.Millisecond),
				UpdatedAt: now.Add(time.Duration(i) * time.Millisecond),
			},
			Title:             entry.Title,
			ContentType:       entry.ContentType,
			Year:              entry.Year,
			Genre:             entry.Genre,
			StreamingPlatform: entry.Platform,
			Description:       &catalog[i].Description,
			Ratings:           entry.Ratings,
			OverallRating:     OverallRating(entry.Ratings),
		}

		if err := s.repo.Content.Create(ctx, item); err != nil {
			s.log.Error("Failed to insert seed item",
				zap.Error(err),
				zap.String("title", entry.Title),
			)
			return nil, utils.NewStorageError("seed insert", err)
		}
		inserted++
	}

	if s.cache != nil {
		if err := s.cache.Flush(ctx); err != nil {
			s.log.Warn("Failed to flush cache after seeding", zap.Error(err))
		}
	}

	s.log.Info("Seed complete", zap.Int("inserted", inserted))

	return &response.SeedResponse{
		Message:  fmt.Sprintf("Successfully seeded database with %d movies and TV shows", inserted),
		Inserted: inserted,
		Existing: 0,
	}, nil
}
