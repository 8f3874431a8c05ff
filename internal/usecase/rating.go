package usecase

import (
	"math"

	"github.com/Ravinder82/CineRating/internal/data/entity"
)

// OverallRating returns the arithmetic mean of the seven category
// scores, rounded half-up to one decimal place. Scores are assumed to
// be range-checked by the request validator.
func OverallRating(r entity.RatingCategories) float64 {
	total := r.Story + r.Acting + r.Direction +
		r.MusicSound + r.Cinematography +
		r.ActionStunts + r.EmotionalImpact

	return math.Round(total/7*10) / 10
}
