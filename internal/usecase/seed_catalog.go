package usecase

import (
	"github.com/Ravinder82/CineRating/internal/data/entity"
)

type seedEntry struct {
	Title       string
	ContentType entity.ContentType
	Year        int
	Genre       string
	Platform    entity.StreamingPlatform
	Description string
	Ratings     entity.RatingCategories
}

// seedCatalog is the fixed demonstration set: 6 movies and 6 TV
// series, split evenly between Netflix and Amazon Prime Video, 3 of
// each content type per platform.
func seedCatalog() []seedEntry {
	return []seedEntry{
		// Netflix movies
		{
			Title:       "The Irishman",
			ContentType: entity.ContentTypeMovie,
			Year:        2019,
			Genre:       "Crime Drama",
			Platform:    entity.PlatformNetflix,
			Description: "An aging hitman recalls his time with the mob and the hand he had in the disappearance of his longtime friend Jimmy Hoffa.",
			Ratings: entity.RatingCategories{
				Story: 9.0, Acting: 9.5, Direction: 9.5, MusicSound: 8.5,
				Cinematography: 9.0, ActionStunts: 7.5, EmotionalImpact: 8.5,
			},
		},
		{
			Title:       "Roma",
			ContentType: entity.ContentTypeMovie,
			Year:        2018,
			Genre:       "Drama",
			Platform:    entity.PlatformNetflix,
			Description: "A year in the life of a middle-class family's maid in Mexico City in the early 1970s.",
			Ratings: entity.RatingCategories{
				Story: 8.5, Acting: 9.0, Direction: 9.8, MusicSound: 8.0,
				Cinematography: 9.9, ActionStunts: 5.0, EmotionalImpact: 9.5,
			},
		},
		{
			Title:       "Extraction",
			ContentType: entity.ContentTypeMovie,
			Year:        2020,
			Genre:       "Action Thriller",
			Platform:    entity.PlatformNetflix,
			Description: "A black-market mercenary embarks on a deadly mission to rescue the kidnapped son of an imprisoned crime lord.",
			Ratings: entity.RatingCategories{
				Story: 7.0, Acting: 7.5, Direction: 8.0, MusicSound: 7.5,
				Cinematography: 8.5, ActionStunts: 9.5, EmotionalImpact: 7.0,
			},
		},
		// Netflix TV series
		{
			Title:       "Stranger Things",
			ContentType: entity.ContentTypeTVSeries,
			Year:        2016,
			Genre:       "Sci-Fi Horror",
			Platform:    entity.PlatformNetflix,
			Description: "When a young boy disappears, his mother and friends must confront terrifying supernatural forces to get him back.",
			Ratings: entity.RatingCategories{
				Story: 9.0, Acting: 8.5, Direction: 8.5, MusicSound: 9.5,
				Cinematography: 8.5, ActionStunts: 8.0, EmotionalImpact: 9.0,
			},
		},
		{
			Title:       "The Crown",
			ContentType: entity.ContentTypeTVSeries,
			Year:        2016,
			Genre:       "Historical Drama",
			Platform:    entity.PlatformNetflix,
			Description: "The political rivalries and romances of Queen Elizabeth II's reign and the events that shaped the twentieth century.",
			Ratings: entity.RatingCategories{
				Story: 8.5, Acting: 9.5, Direction: 9.0, MusicSound: 9.0,
				Cinematography: 9.5, ActionStunts: 5.5, EmotionalImpact: 8.5,
			},
		},
		{
			Title:       "Squid Game",
			ContentType: entity.ContentTypeTVSeries,
			Year:        2021,
			Genre:       "Thriller Drama",
			Platform:    entity.PlatformNetflix,
			Description: "Hundreds of cash-strapped players accept an invitation to compete in children's games for a tempting prize with deadly stakes.",
			Ratings: entity.RatingCategories{
				Story: 9.5, Acting: 9.0, Direction: 9.0, MusicSound: 8.5,
				Cinematography: 9.0, ActionStunts: 8.5, EmotionalImpact: 9.5,
			},
		},
		// Amazon Prime Video movies
		{
			Title:       "The Tomorrow War",
			ContentType: entity.ContentTypeMovie,
			Year:        2021,
			Genre:       "Sci-Fi Action",
			Platform:    entity.PlatformAmazonPrime,
			Description: "A family man is drafted to fight in a future war where the fate of humanity relies on his ability to confront the past.",
			Ratings: entity.RatingCategories{
				Story: 7.0, Acting: 7.5, Direction: 7.0, MusicSound: 7.5,
				Cinematography: 8.0, ActionStunts: 9.0, EmotionalImpact: 7.5,
			},
		},
		{
			Title:       "Sound of Metal",
			ContentType: entity.ContentTypeMovie,
			Year:        2019,
			Genre:       "Drama",
			Platform:    entity.PlatformAmazonPrime,
			Description: "A heavy-metal drummer's life is thrown into freefall when he begins to lose his hearing.",
			Ratings: entity.RatingCategories{
				Story: 8.5, Acting: 9.5, Direction: 9.0, MusicSound: 9.8,
				Cinematography: 8.5, ActionStunts: 5.0, EmotionalImpact: 9.5,
			},
		},
		{
			Title:       "The Big Sick",
			ContentType: entity.ContentTypeMovie,
			Year:        2017,
			Genre:       "Romantic Comedy",
			Platform:    entity.PlatformAmazonPrime,
			Description: "A couple deals with their cultural differences as their relationship grows, until an illness changes everything.",
			Ratings: entity.RatingCategories{
				Story: 8.5, Acting: 8.5, Direction: 8.0, MusicSound: 7.5,
				Cinematography: 7.5, ActionStunts: 5.5, EmotionalImpact: 9.0,
			},
		},
		// Amazon Prime Video TV series
		{
			Title:       "The Boys",
			ContentType: entity.ContentTypeTVSeries,
			Year:        2019,
			Genre:       "Superhero Satire",
			Platform:    entity.PlatformAmazonPrime,
			Description: "A group of vigilantes sets out to take down corrupt superheroes who abuse their superpowers.",
			Ratings: entity.RatingCategories{
				Story: 9.0, Acting: 9.0, Direction: 8.5, MusicSound: 8.0,
				Cinematography: 8.5, ActionStunts: 9.0, EmotionalImpact: 8.5,
			},
		},
		{
			Title:       "The Marvelous Mrs. Maisel",
			ContentType: entity.ContentTypeTVSeries,
			Year:        2017,
			Genre:       "Comedy Drama",
			Platform:    entity.PlatformAmazonPrime,
			Description: "A housewife in 1958 decides to become a stand-up comic after her perfect life suddenly falls apart.",
			Ratings: entity.RatingCategories{
				Story: 8.5, Acting: 9.5, Direction: 8.5, MusicSound: 9.0,
				Cinematography: 9.0, ActionStunts: 5.0, EmotionalImpact: 8.0,
			},
		},
		{
			Title:       "Invincible",
			ContentType: entity.ContentTypeTVSeries,
			Year:        2021,
			Genre:       "Animated Superhero",
			Platform:    entity.PlatformAmazonPrime,
			Description: "An ordinary teenager develops powers of his own and discovers his father's legacy may not be as heroic as it seems.",
			Ratings: entity.RatingCategories{
				Story: 9.0, Acting: 8.5, Direction: 8.5, MusicSound: 8.0,
				Cinematography: 8.0, ActionStunts: 9.5, EmotionalImpact: 9.0,
			},
		},
	}
}
