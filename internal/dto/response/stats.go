package response

import (
	"github.com/Ravinder82/CineRating/internal/data/entity"
)

type PlatformCountResponse struct {
	Platform string `json:"platform"`
	Count    int64  `json:"count"`
}

type StatsResponse struct {
	TotalMovies          int64                   `json:"total_movies"`
	TotalTVShows         int64                   `json:"total_tv_shows"`
	TotalContent         int64                   `json:"total_content"`
	PlatformDistribution []PlatformCountResponse `json:"platform_distribution"`
}

type SeedResponse struct {
	Message  string `json:"message"`
	Inserted int    `json:"inserted"`
	Existing int64  `json:"existing"`
}

func PlatformCountsToResponse(counts []entity.PlatformCount) []PlatformCountResponse {
	out := make([]PlatformCountResponse, len(counts))
	for i, pc := range counts {
		out[i] = PlatformCountResponse{
			Platform: string(pc.Platform),
			Count:    pc.Count,
		}
	}
	return out
}
