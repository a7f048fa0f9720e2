package service

import (
	"kamau.dev/portfolio/common/llm"
	"kamau.dev/portfolio/internal/github"
	"kamau.dev/portfolio/internal/metrics"
)

type Services struct {
	llmClient      llm.Client
	githubClient   github.Client
	githubUsername string
	metrics        *metrics.Metrics
}

type ServicesConfig struct {
	LLMClient      llm.Client // nil when the completion credential is missing
	GitHubClient   github.Client
	GitHubUsername string
	Metrics        *metrics.Metrics
}

func NewServices(cfg ServicesConfig) *Services {
	return &Services{
		llmClient:      cfg.LLMClient,
		githubClient:   cfg.GitHubClient,
		githubUsername: cfg.GitHubUsername,
		metrics:        cfg.Metrics,
	}
}

func (s *Services) Assistant() AssistantService {
	return NewAssistantService(s.llmClient, s.metrics)
}

func (s *Services) Stars() StarService {
	return NewStarService(s.githubClient, s.githubUsername)
}
