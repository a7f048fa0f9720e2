package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	gh "github.com/google/go-github/v69/github"
)

// Repo is the subset of the repository listing the star counter needs.
type Repo struct {
	Name            string
	StargazersCount int
	HTMLURL         string
}

type Client interface {
	ListRepos(ctx context.Context, username string) ([]Repo, error)
}

type Config struct {
	BaseURL string // API root; empty means api.github.com
	Token   string // Optional: raises the unauthenticated rate limit
}

type client struct {
	gh *gh.Client
}

func New(cfg Config) Client {
	c := gh.NewClient(&http.Client{Timeout: 10 * time.Second})
	if cfg.Token != "" {
		c = c.WithAuthToken(cfg.Token)
	}
	if cfg.BaseURL != "" {
		// go-github resolves paths relative to BaseURL, which therefore needs a trailing slash.
		if u, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/") + "/"); err == nil {
			c.BaseURL = u
		}
	}
	return &client{gh: c}
}

// ListRepos returns the first page (up to 100) of the user's public repositories, most
// starred first.
func (c *client) ListRepos(ctx context.Context, username string) ([]Repo, error) {
	repos, _, err := c.gh.Repositories.ListByUser(ctx, username, &gh.RepositoryListByUserOptions{
		Sort:        "stars",
		ListOptions: gh.ListOptions{PerPage: 100},
	})
	if err != nil {
		return nil, fmt.Errorf("fetching repos: %w", err)
	}

	out := make([]Repo, 0, len(repos))
	for _, r := range repos {
		out = append(out, Repo{
			Name:            r.GetName(),
			StargazersCount: r.GetStargazersCount(),
			HTMLURL:         r.GetHTMLURL(),
		})
	}
	return out, nil
}
