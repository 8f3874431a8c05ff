package usecase_test

import (
	"context"
	"errors"
	"sort"

	"github.com/Ravinder82/CineRating/internal/data/entity"
	"github.com/Ravinder82/CineRating/internal/data/repository"
	"github.com/Ravinder82/CineRating/pkg/utils"

	"github.com/google/uuid"
)

// fakeContentRepo is an in-memory stand-in for the postgres repository,
// honoring the same ordering and default-limit contract.
type fakeContentRepo struct {
	items   map[uuid.UUID]entity.ContentItem
	failAll bool
}

func newFakeContentRepo() *fakeContentRepo {
	return &fakeContentRepo{items: make(map[uuid.UUID]entity.ContentItem)}
}

func newFakeRepository() (*repository.Repository, *fakeContentRepo) {
	fake := newFakeContentRepo()
	return &repository.Repository{Content: fake}, fake
}

var errStoreDown = errors.New("store unreachable")

func (f *fakeContentRepo) Create(ctx context.Context, item *entity.ContentItem) error {
	if f.failAll {
		return errStoreDown
	}
	f.items[item.ID] = *item
	return nil
}

func (f *fakeContentRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.ContentItem, error) {
	if f.failAll {
		return nil, errStoreDown
	}
	item, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (f *fakeContentRepo) FindAll(ctx context.Context, filter repository.ListFilter) ([]*entity.ContentItem, error) {
	if f.failAll {
		return nil, errStoreDown
	}

	var out []*entity.ContentItem
	for id := range f.items {
		item := f.items[id]
		if filter.Platform != nil && item.StreamingPlatform != *filter.Platform {
			continue
		}
		if filter.ContentType != nil && item.ContentType != *filter.ContentType {
			continue
		}
		out = append(out, &item)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	limit := filter.Limit
	if limit <= 0 {
		limit = repository.DefaultListLimit
	}
	if len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}

func (f *fakeContentRepo) Update(ctx context.Context, item *entity.ContentItem) error {
	if f.failAll {
		return errStoreDown
	}
	if _, ok := f.items[item.ID]; !ok {
		return utils.NewNotFoundError("content item", item.ID.String())
	}
	f.items[item.ID] = *item
	return nil
}

func (f *fakeContentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.failAll {
		return errStoreDown
	}
	if _, ok := f.items[id]; !ok {
		return utils.NewNotFoundError("content item", id.String())
	}
	delete(f.items, id)
	return nil
}

func (f *fakeContentRepo) Count(ctx context.Context) (int64, error) {
	if f.failAll {
		return 0, errStoreDown
	}
	return int64(len(f.items)), nil
}

func (f *fakeContentRepo) CountByType(ctx context.Context, contentType entity.ContentType) (int64, error) {
	if f.failAll {
		return 0, errStoreDown
	}
	var n int64
	for _, item := range f.items {
		if item.ContentType == contentType {
			n++
		}
	}
	return n, nil
}

func (f *fakeContentRepo) PlatformCounts(ctx context.Context) ([]entity.PlatformCount, error) {
	if f.failAll {
		return nil, errStoreDown
	}

	byPlatform := make(map[entity.StreamingPlatform]int64)
	for _, item := range f.items {
		byPlatform[item.StreamingPlatform]++
	}

	var counts []entity.PlatformCount
	for platform, count := range byPlatform {
		counts = append(counts, entity.PlatformCount{Platform: platform, Count: count})
	}

	// Same ordering as the SQL GROUP BY: count desc, platform asc
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Platform < counts[j].Platform
	})

	return counts, nil
}
