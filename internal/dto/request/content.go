package request

// RatingsPayload carries the seven category scores. Pointers so a
// missing category is rejected rather than read as zero.
type RatingsPayload struct {
	Story           *float64 `json:"story" validate:"required,gte=0,lte=10"`
	Acting          *float64 `json:"acting" validate:"required,gte=0,lte=10"`
	Direction       *float64 `json:"direction" validate:"required,gte=0,lte=10"`
	MusicSound      *float64 `json:"music_sound" validate:"required,gte=0,lte=10"`
	Cinematography  *float64 `json:"cinematography" validate:"required,gte=0,lte=10"`
	ActionStunts    *float64 `json:"action_stunts" validate:"required,gte=0,lte=10"`
	EmotionalImpact *float64 `json:"emotional_impact" validate:"required,gte=0,lte=10"`
}

type ContentCreateRequest struct {
	Title             string          `json:"title" validate:"required,min=1,max=200"`
	ContentType       string          `json:"content_type" validate:"required,oneof=movie tv_series"`
	Year              int             `json:"year" validate:"required,gte=1900,lte=2030"`
	Genre             string          `json:"genre" validate:"required,min=1,max=100"`
	StreamingPlatform string          `json:"streaming_platform" validate:"required,oneof=Netflix 'Amazon Prime Video' 'Disney+ Hotstar' Hulu 'HBO Max' 'Apple TV+' 'Paramount+' YouTube Other"`
	Description       *string         `json:"description,omitempty" validate:"omitempty,max=1000"`
	Ratings           *RatingsPayload `json:"ratings" validate:"required"`
}

// ContentUpdateRequest is a partial update: nil fields keep their
// stored values.
type ContentUpdateRequest struct {
	Title             *string         `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	ContentType       *string         `json:"content_type,omitempty" validate:"omitempty,oneof=movie tv_series"`
	Year              *int            `json:"year,omitempty" validate:"omitempty,gte=1900,lte=2030"`
	Genre             *string         `json:"genre,omitempty" validate:"omitempty,min=1,max=100"`
	StreamingPlatform *string         `json:"streaming_platform,omitempty" validate:"omitempty,oneof=Netflix 'Amazon Prime Video' 'Disney+ Hotstar' Hulu 'HBO Max' 'Apple TV+' 'Paramount+' YouTube Other"`
	Description       *string         `json:"description,omitempty" validate:"omitempty,max=1000"`
	Ratings           *RatingsPayload `json:"ratings,omitempty"`
}

// ContentListQuery holds the listing query parameters. Empty strings
// mean no filter.
type ContentListQuery struct {
	Platform    string
	ContentType string
	Limit       int
}
