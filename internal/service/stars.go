package service

import (
	"context"
	"fmt"
	"log/slog"

	"kamau.dev/portfolio/internal/github"
)

// StarSummary is the aggregate shown next to the portfolio header.
type StarSummary struct {
	TotalStars int
	RepoCount  int
}

type StarService interface {
	Summary(ctx context.Context) (StarSummary, error)
}

type starService struct {
	client   github.Client
	username string
}

func NewStarService(client github.Client, username string) StarService {
	return &starService{
		client:   client,
		username: username,
	}
}

// Summary reads through to the repository listing on every call; nothing is cached.
func (s *starService) Summary(ctx context.Context) (StarSummary, error) {
	repos, err := s.client.ListRepos(ctx, s.username)
	if err != nil {
		slog.WarnContext(ctx, "failed to fetch repositories", "error", err, "username", s.username)
		return StarSummary{}, fmt.Errorf("%w: %w", ErrStarsUnavailable, err)
	}

	summary := StarSummary{RepoCount: len(repos)}
	for _, repo := range repos {
		summary.TotalStars += repo.StargazersCount
	}
	return summary, nil
}
