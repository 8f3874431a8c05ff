package usecase

import (
	"testing"

	"github.com/Ravinder82/CineRating/internal/data/entity"
)

func allScores(v float64) entity.RatingCategories {
	return entity.RatingCategories{
		Story:           v,
		Acting:          v,
		Direction:       v,
		MusicSound:      v,
		Cinematography:  v,
		ActionStunts:    v,
		EmotionalImpact: v,
	}
}

func TestOverallRatingAllZero(t *testing.T) {
	if got := OverallRating(allScores(0)); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestOverallRatingAllTen(t *testing.T) {
	if got := OverallRating(allScores(10)); got != 10 {
		t.Fatalf("expected 10, got %v", got)
	}
}

func TestOverallRatingMixedScores(t *testing.T) {
	ratings := entity.RatingCategories{
		Story:           9.5,
		Acting:          9.0,
		Direction:       9.8,
		MusicSound:      9.2,
		Cinematography:  9.7,
		ActionStunts:    8.9,
		EmotionalImpact: 8.5,
	}

	if got := OverallRating(ratings); got != 9.2 {
		t.Fatalf("expected 9.2, got %v", got)
	}
}

// Pins the rounding mode: .x5 means rounds half up, so a mean of 9.25
// becomes 9.3, not 9.2.
func TestOverallRatingHalfUpBoundary(t *testing.T) {
	if got := OverallRating(allScores(9.25)); got != 9.3 {
		t.Fatalf("expected 9.3, got %v", got)
	}
}
