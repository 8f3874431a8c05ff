package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Ravinder82/CineRating/internal/data/entity"
	"github.com/Ravinder82/CineRating/pkg/database"
	"github.com/Ravinder82/CineRating/pkg/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// DefaultListLimit caps listings when the caller supplies no limit.
const DefaultListLimit = 50

// ListFilter is a conjunction of optional equality predicates applied
// to listings. Nil fields match everything.
type ListFilter struct {
	Platform    *entity.StreamingPlatform
	ContentType *entity.ContentType
	Limit       int
}

type ContentRepository interface {
	Create(ctx context.Context, item *entity.ContentItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ContentItem, error)
	FindAll(ctx context.Context, filter ListFilter) ([]*entity.ContentItem, error)
	Update(ctx context.Context, item *entity.ContentItem) error
	Delete(ctx context.Context, id uuid.UUID) error

	Count(ctx context.Context) (int64, error)
	CountByType(ctx context.Context, contentType entity.ContentType) (int64, error)
	PlatformCounts(ctx context.Context) ([]entity.PlatformCount, error)
}

type contentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewContentRepository(db database.PgxIface, log *zap.Logger) ContentRepository {
	return &contentRepository{
		db:  db,
		log: log.With(zap.String("repository", "content")),
	}
}

const contentColumns = `id, title, content_type, year, genre, streaming_platform, description,
	       story, acting, direction, music_sound, cinematography, action_stunts, emotional_impact,
	       overall_rating, created_at, updated_at`

func (r *contentRepository) Create(ctx context.Context, item *entity.ContentItem) error {
	query := `
		INSERT INTO content_items (` + contentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`

	_, err := r.db.Exec(ctx, query,
		item.ID,
		item.Title,
		item.ContentType,
		item.Year,
		item.Genre,
		item.StreamingPlatform,
		item.Description,
		item.Ratings.Story,
		item.Ratings.Acting,
		item.Ratings.Direction,
		item.Ratings.MusicSound,
		item.Ratings.Cinematography,
		item.Ratings.ActionStunts,
		item.Ratings.EmotionalImpact,
		item.OverallRating,
		item.CreatedAt,
		item.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create content item",
			zap.Error(err),
			zap.String("title", item.Title),
		)
		return fmt.Errorf("failed to create content item: %w", err)
	}

	return nil
}

func (r *contentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ContentItem, error) {
	query := `SELECT ` + contentColumns + ` FROM content_items WHERE id = $1`

	item, err := scanContentItem(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find content item by ID",
			zap.Error(err),
			zap.String("content_id", id.String()),
		)
		return nil, fmt.Errorf("failed to find content item: %w", err)
	}

	return item, nil
}

func (r *contentRepository) FindAll(ctx context.Context, filter ListFilter) ([]*entity.ContentItem, error) {
	// Build query with optional filters
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + contentColumns + ` FROM content_items`)

	conds := []string{}
	args := []interface{}{}

	if filter.Platform != nil {
		args = append(args, *filter.Platform)
		conds = append(conds, fmt.Sprintf("streaming_platform = $%d", len(args)))
	}
	if filter.ContentType != nil {
		args = append(args, *filter.ContentType)
		conds = append(conds, fmt.Sprintf("content_type = $%d", len(args)))
	}
	if len(conds) > 0 {
		queryBuilder.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	args = append(args, limit)
	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", len(args)))

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find content items",
			zap.Error(err),
			zap.Int("limit", limit),
		)
		return nil, fmt.Errorf("failed to find content items: %w", err)
	}
	defer rows.Close()

	var items []*entity.ContentItem
	for rows.Next() {
		item, err := scanContentItem(rows)
		if err != nil {
			r.log.Error("Failed to scan content item row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan content item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	r.log.Debug("Content items found",
		zap.Int("count", len(items)),
		zap.Int("limit", limit),
	)

	return items, nil
}

func (r *contentRepository) Update(ctx context.Context, item *entity.ContentItem) error {
	query := `
		UPDATE content_items
		SET title = $2, content_type = $3, year = $4, genre = $5,
		    streaming_platform = $6, description = $7,
		    story = $8, acting = $9, direction = $10, music_sound = $11,
		    cinematography = $12, action_stunts = $13, emotional_impact = $14,
		    overall_rating = $15, updated_at = $16
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		item.ID,
		item.Title,
		item.ContentType,
		item.Year,
		item.Genre,
		item.StreamingPlatform,
		item.Description,
		item.Ratings.Story,
		item.Ratings.Acting,
		item.Ratings.Direction,
		item.Ratings.MusicSound,
		item.Ratings.Cinematography,
		item.Ratings.ActionStunts,
		item.Ratings.EmotionalImpact,
		item.OverallRating,
		item.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update content item",
			zap.Error(err),
			zap.String("content_id", item.ID.String()),
		)
		return fmt.Errorf("failed to update content item: %w", err)
	}

	if result.RowsAffected() == 0 {
		return utils.NewNotFoundError("content item", item.ID.String())
	}

	return nil
}

func (r *contentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM content_items WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete content item",
			zap.Error(err),
			zap.String("content_id", id.String()),
		)
		return fmt.Errorf("failed to delete content item: %w", err)
	}

	if result.RowsAffected() == 0 {
		return utils.NewNotFoundError("content item", id.String())
	}

	r.log.Info("Content item deleted", zap.String("content_id", id.String()))
	return nil
}

func (r *contentRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM content_items`).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count content items", zap.Error(err))
		return 0, fmt.Errorf("failed to count content items: %w", err)
	}

	return total, nil
}

func (r *contentRepository) CountByType(ctx context.Context, contentType entity.ContentType) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM content_items WHERE content_type = $1`,
		contentType,
	).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count content items by type",
			zap.Error(err),
			zap.String("content_type", string(contentType)),
		)
		return 0, fmt.Errorf("failed to count content items by type: %w", err)
	}

	return total, nil
}

// PlatformCounts groups items by platform, most populated first.
// Equal counts are ordered alphabetically so the result is stable.
func (r *contentRepository) PlatformCounts(ctx context.Context) ([]entity.PlatformCount, error) {
	query := `
		SELECT streaming_platform, COUNT(*)
		FROM content_items
		GROUP BY streaming_platform
		ORDER BY COUNT(*) DESC, streaming_platform ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to group content items by platform", zap.Error(err))
		return nil, fmt.Errorf("failed to group by platform: %w", err)
	}
	defer rows.Close()

	var counts []entity.PlatformCount
	for rows.Next() {
		var pc entity.PlatformCount
		if err := rows.Scan(&pc.Platform, &pc.Count); err != nil {
			r.log.Error("Failed to scan platform count row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan platform count: %w", err)
		}
		counts = append(counts, pc)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return counts, nil
}

// scanContentItem reads one row in contentColumns order.
func scanContentItem(row pgx.Row) (*entity.ContentItem, error) {
	var item entity.ContentItem
	err := row.Scan(
		&item.ID,
		&item.Title,
		&item.ContentType,
		&item.Year,
		&item.Genre,
		&item.StreamingPlatform,
		&item.Description,
		&item.Ratings.Story,
		&item.Ratings.Acting,
		&item.Ratings.Direction,
		&item.Ratings.MusicSound,
		&item.Ratings.Cinematography,
		&item.Ratings.ActionStunts,
		&item.Ratings.EmotionalImpact,
		&item.OverallRating,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}
