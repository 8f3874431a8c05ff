package repository

import (
	"github.com/Ravinder82/CineRating/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Content ContentRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Content: NewContentRepository(db, log),
	}
}
