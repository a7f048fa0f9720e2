package dto

import (
	"kamau.dev/portfolio/internal/catalog"
	"kamau.dev/portfolio/internal/service"
)

type StarsResponse struct {
	TotalStars int `json:"total_stars"`
	RepoCount  int `json:"repo_count"`
}

func ToStarsResponse(s service.StarSummary) StarsResponse {
	return StarsResponse{
		TotalStars: s.TotalStars,
		RepoCount:  s.RepoCount,
	}
}

type ProjectsResponse struct {
	Projects []catalog.Project `json:"projects"`
}

type ContactResponse struct {
	Methods []catalog.ContactMethod `json:"methods"`
}
