package usecase

import (
	"github.com/Ravinder82/CineRating/internal/data/repository"
	"github.com/Ravinder82/CineRating/pkg/cache"

	"go.uber.org/zap"
)

type Service struct {
	Content ContentService
	Seed    SeedService
	Stats   StatsService
}

func NewService(repo *repository.Repository, statsCache *cache.Cache, log *zap.Logger) *Service {
	return &Service{
		Content: NewContentService(repo, statsCache, log),
		Seed:    NewSeedService(repo, statsCache, log),
		Stats:   NewStatsService(repo, statsCache, log),
	}
}
