package response

import (
	"time"

	"github.com/Ravinder82/CineRating/internal/data/entity"
)

type RatingsResponse struct {
	Story           float64 `json:"story"`
	Acting          float64 `json:"acting"`
	Direction       float64 `json:"direction"`
	MusicSound      float64 `json:"music_sound"`
	Cinematography  float64 `json:"cinematography"`
	ActionStunts    float64 `json:"action_stunts"`
	EmotionalImpact float64 `json:"emotional_impact"`
}

type ContentResponse struct {
	ID                string          `json:"id"`
	Title             string          `json:"title"`
	ContentType       string          `json:"content_type"`
	Year              int             `json:"year"`
	Genre             string          `json:"genre"`
	StreamingPlatform string          `json:"streaming_platform"`
	Description       *string         `json:"description,omitempty"`
	Ratings           RatingsResponse `json:"ratings"`
	OverallRating     float64         `json:"overall_rating"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// Helper converters
func ContentToResponse(item *entity.ContentItem) ContentResponse {
	return ContentResponse{
		ID:                item.ID.String(),
		Title:             item.Title,
		ContentType:       string(item.ContentType),
		Year:              item.Year,
		Genre:             item.Genre,
		StreamingPlatform: string(item.StreamingPlatform),
		Description:       item.Description,
		Ratings: RatingsResponse{
			Story:           item.Ratings.Story,
			Acting:          item.Ratings.Acting,
			Direction:       item.Ratings.Direction,
			MusicSound:      item.Ratings.MusicSound,
			Cinematography:  item.Ratings.Cinematography,
			ActionStunts:    item.Ratings.ActionStunts,
			EmotionalImpact: item.Ratings.EmotionalImpact,
		},
		OverallRating: item.OverallRating,
		CreatedAt:     item.CreatedAt,
		UpdatedAt:     item.UpdatedAt,
	}
}

func ContentListToResponse(items []*entity.ContentItem) []ContentResponse {
	out := make([]ContentResponse, len(items))
	for i, item := range items {
		out[i] = ContentToResponse(item)
	}
	return out
}
