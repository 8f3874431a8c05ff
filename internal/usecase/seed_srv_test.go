package usecase_test

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/Ravinder82/CineRating/internal/data/entity"
	"github.com/Ravinder82/CineRating/internal/dto/request"
	"github.com/Ravinder82/CineRating/internal/usecase"

	"go.uber.org/zap"
)

func TestSeedOnEmptyStore(t *testing.T) {
	repos, fake := newFakeRepository()
	svc := usecase.NewSeedService(repos, nil, zap.NewNop())
	ctx := context.Background()

	report, err := svc.Seed(ctx)
	if err != nil {
		t.Fatalf("seed returned error: %v", err)
	}

	if report.Inserted != 12 {
		t.Fatalf("expected 12 inserted, got %d", report.Inserted)
	}
	if !strings.Contains(report.Message, "12") {
		t.Fatalf("expected message to report 12 items, got %q", report.Message)
	}
	if len(fake.items) != 12 {
		t.Fatalf("expected 12 items in store, got %d", len(fake.items))
	}

	// 6 movies / 6 tv series, 6 Netflix / 6 Amazon Prime Video,
	// 3 per platform-type cell
	typeCounts := map[entity.ContentType]int{}
	platformCounts := map[entity.StreamingPlatform]int{}
	cellCounts := map[string]int{}
	for _, item := range fake.items {
		typeCounts[item.ContentType]++
		platformCounts[item.StreamingPlatform]++
		cellCounts[string(item.StreamingPlatform)+"/"+string(item.ContentType)]++
	}

	if typeCounts[entity.ContentTypeMovie] != 6 || typeCounts[entity.ContentTypeTVSeries] != 6 {
		t.Fatalf("expected 6 movies and 6 tv series, got %v", typeCounts)
	}
	if platformCounts[entity.PlatformNetflix] != 6 || platformCounts[entity.PlatformAmazonPrime] != 6 {
		t.Fatalf("expected 6 Netflix and 6 Amazon Prime Video items, got %v", platformCounts)
	}
	for cell, n := range cellCounts {
		if n != 3 {
			t.Fatalf("expected 3 items per platform-type cell, got %d for %s", n, cell)
		}
	}

	// Every seeded item carries the derived overall rating
	for _, item := range fake.items {
		want := usecase.OverallRating(item.Ratings)
		if math.Abs(item.OverallRating-want) > 1e-9 {
			t.Fatalf("overall rating for %q is %v, want %v", item.Title, item.OverallRating, want)
		}
		if item.OverallRating < 0 || item.OverallRating > 10 {
			t.Fatalf("overall rating for %q out of range: %v", item.Title, item.OverallRating)
		}
	}
}

func TestSeededStoreFiltersByPlatformAndType(t *testing.T) {
	repos, _ := newFakeRepository()
	ctx := context.Background()

	if _, err := usecase.NewSeedService(repos, nil, zap.NewNop()).Seed(ctx); err != nil {
		t.Fatalf("seed returned error: %v", err)
	}

	contentSvc := usecase.NewContentService(repos, nil, zap.NewNop())

	items, err := contentSvc.List(ctx, &request.ContentListQuery{
		Platform:    "Netflix",
		ContentType: "movie",
	})
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}

	if len(items) != 3 {
		t.Fatalf("expected 3 Netflix movies after seeding, got %d", len(items))
	}
	for _, item := range items {
		if item.StreamingPlatform != "Netflix" || item.ContentType != "movie" {
			t.Fatalf("filter leaked item: %+v", item)
		}
	}
}

func TestSeedIdempotent(t *testing.T) {
	repos, fake := newFakeRepository()
	svc := usecase.NewSeedService(repos, nil, zap.NewNop())
	ctx := context.Background()

	if _, err := svc.Seed(ctx); err != nil {
		t.Fatalf("first seed returned error: %v", err)
	}

	report, err := svc.Seed(ctx)
	if err != nil {
		t.Fatalf("second seed returned error: %v", err)
	}

	if report.Inserted != 0 {
		t.Fatalf("expected second seed to insert nothing, got %d", report.Inserted)
	}
	if report.Existing != 12 {
		t.Fatalf("expected second seed to report 12 existing items, got %d", report.Existing)
	}
	if !strings.Contains(report.Message, "already contains") {
		t.Fatalf("expected already-contains message, got %q", report.Message)
	}
	if len(fake.items) != 12 {
		t.Fatalf("expected store to still hold 12 items, got %d", len(fake.items))
	}
}
