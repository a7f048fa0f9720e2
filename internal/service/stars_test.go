package service_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"kamau.dev/portfolio/internal/github"
	"kamau.dev/portfolio/internal/service"
)

var _ = Describe("StarService", func() {
	var client *mockGitHubClient

	BeforeEach(func() {
		client = &mockGitHubClient{}
	})

	It("sums stars across repositories", func() {
		var gotUser string
		client.listReposFn = func(_ context.Context, username string) ([]github.Repo, error) {
			gotUser = username
			return []github.Repo{
				{Name: "a", StargazersCount: 5},
				{Name: "b", StargazersCount: 0},
				{Name: "c", StargazersCount: 7},
			}, nil
		}

		summary, err := service.NewStarService(client, "NewtonKamau").Summary(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(summary).To(Equal(service.StarSummary{TotalStars: 12, RepoCount: 3}))
		Expect(gotUser).To(Equal("NewtonKamau"))
	})

	It("returns zeros for a user without repositories", func() {
		summary, err := service.NewStarService(client, "empty").Summary(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(summary).To(Equal(service.StarSummary{}))
	})

	It("wraps listing failures", func() {
		client.listReposFn = func(context.Context, string) ([]github.Repo, error) {
			return nil, errors.New("rate limited")
		}

		_, err := service.NewStarService(client, "u").Summary(context.Background())
		Expect(err).To(MatchError(service.ErrStarsUnavailable))
		Expect(err).To(MatchError(ContainSubstring("rate limited")))
	})
})
