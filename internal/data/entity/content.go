package entity

type ContentType string

const (
	ContentTypeMovie    ContentType = "movie"
	ContentTypeTVSeries ContentType = "tv_series"
)

type StreamingPlatform string

const (
	PlatformNetflix     StreamingPlatform = "Netflix"
	PlatformAmazonPrime StreamingPlatform = "Amazon Prime Video"
	PlatformHotstar     StreamingPlatform = "Disney+ Hotstar"
	PlatformHulu        StreamingPlatform = "Hulu"
	PlatformHBOMax      StreamingPlatform = "HBO Max"
	PlatformAppleTV     StreamingPlatform = "Apple TV+"
	PlatformParamount   StreamingPlatform = "Paramount+"
	PlatformYouTube     StreamingPlatform = "YouTube"
	PlatformOther       StreamingPlatform = "Other"
)

// AllPlatforms lists every supported platform in declaration order.
func AllPlatforms() []StreamingPlatform {
	return []StreamingPlatform{
		PlatformNetflix,
		PlatformAmazonPrime,
		PlatformHotstar,
		PlatformHulu,
		PlatformHBOMax,
		PlatformAppleTV,
		PlatformParamount,
		PlatformYouTube,
		PlatformOther,
	}
}

// RatingCategories holds the seven per-category scores, each 0-10.
type RatingCategories struct {
	Story           float64 `db:"story"`
	Acting          float64 `db:"acting"`
	Direction       float64 `db:"direction"`
	MusicSound      float64 `db:"music_sound"`
	Cinematography  float64 `db:"cinematography"`
	ActionStunts    float64 `db:"action_stunts"`
	EmotionalImpact float64 `db:"emotional_impact"`
}

type ContentItem struct {
	Base
	Title             string            `db:"title"`
	ContentType       ContentType       `db:"content_type"`
	Year              int               `db:"year"`
	Genre             string            `db:"genre"`
	StreamingPlatform StreamingPlatform `db:"streaming_platform"`
	Description       *string           `db:"description"`
	Ratings           RatingCategories
	// OverallRating is derived from Ratings, never client-supplied.
	OverallRating float64 `db:"overall_rating"`
}

// PlatformCount is one entry of the platform distribution.
type PlatformCount struct {
	Platform StreamingPlatform
	Count    int64
}
