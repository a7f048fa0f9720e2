package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ErrMissingCredential is reported when neither GROQ_API_KEY nor GROQ_API_KEY_FILE yields a key.
var ErrMissingCredential = errors.New("completion API credential is not configured")

type Config struct {
	OTel            OTelConfig
	Completion      CompletionConfig
	GitHub          GitHubConfig
	Chat            ChatConfig
	Env             string
	Port            string
	TraceHeaderName string
	AssistantURL    string
	LogLevel        string // debug, info, warn, error; empty picks by environment
}

type OTelConfig struct {
	Endpoint       string
	Headers        string
	ServiceName    string
	ServiceVersion string
	Environment    string
	SampleRatio    float64 // fraction of new traces kept; remote parents decide for their own
}

type CompletionConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

type GitHubConfig struct {
	BaseURL  string
	Username string
	Token    string
}

type ChatConfig struct {
	RevealDuration time.Duration
	InitialDelay   time.Duration
	RequestTimeout time.Duration
}

type ServiceType string

const (
	ServiceTypeServer ServiceType = "server"
	ServiceTypeChat   ServiceType = "chat"
)

// Load loads configuration from environment variables.
// In development, it loads from service-specific .env files:
//   - .env.server for the relay server
//   - .env.chat for the terminal chat client
//
// Falls back to .env if service-specific file doesn't exist.
//
// The completion credential is resolved here, once, and never re-read. A missing credential
// is not an error at this point: callers decide whether to fail fast (see Completion.Enabled).
func Load(serviceType ServiceType) (Config, error) {
	if getEnv("PORTFOLIO_ENV", "development") == "development" {
		envFile := fmt.Sprintf(".env.%s", serviceType)
		if err := godotenv.Load(envFile); err != nil {
			_ = godotenv.Load(".env")
		}
	}

	apiKey, err := resolveSecret("GROQ_API_KEY")
	if err != nil && !errors.Is(err, ErrMissingCredential) {
		return Config{}, err
	}

	cfg := Config{
		Env:             getEnv("PORTFOLIO_ENV", "development"),
		Port:            getEnv("PORT", "8080"),
		TraceHeaderName: getEnv("TRACE_HEADER_NAME", "X-Trace-Id"),
		AssistantURL:    getEnv("ASSISTANT_URL", "http://localhost:8080"),
		LogLevel:        getEnv("LOG_LEVEL", ""),
		OTel: OTelConfig{
			Endpoint:       getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			Headers:        getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""),
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "portfolio"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "dev"),
			Environment:    getEnv("PORTFOLIO_ENV", "development"),
			SampleRatio:    getEnvFloat("OTEL_TRACES_SAMPLE_RATIO", 1.0),
		},
		Completion: CompletionConfig{
			APIKey:  apiKey,
			BaseURL: getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1/"),
			Model:   getEnv("GROQ_MODEL", "llama-3.1-8b-instant"),
		},
		GitHub: GitHubConfig{
			BaseURL:  getEnv("GITHUB_API_URL", "https://api.github.com"),
			Username: getEnv("GITHUB_USERNAME", "NewtonKamau"),
			Token:    getEnv("GITHUB_TOKEN", ""),
		},
		Chat: ChatConfig{
			RevealDuration: time.Duration(getEnvInt("CHAT_REVEAL_MS", 1500)) * time.Millisecond,
			InitialDelay:   time.Duration(getEnvInt("CHAT_INITIAL_DELAY_MS", 500)) * time.Millisecond,
			RequestTimeout: time.Duration(getEnvInt("CHAT_REQUEST_TIMEOUT_MS", 30000)) * time.Millisecond,
		},
	}

	if cfg.Port == "" {
		return Config{}, fmt.Errorf("PORT must not be empty")
	}

	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c OTelConfig) Enabled() bool {
	return c.Endpoint != ""
}

func (c CompletionConfig) Enabled() bool {
	return c.APIKey != ""
}

// LogValue keeps the credential out of every log line.
func (c CompletionConfig) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("base_url", c.BaseURL),
		slog.String("model", c.Model),
		slog.Bool("credential_set", c.Enabled()),
	)
}

// resolveSecret reads key from the environment, or from the file named by key_FILE.
func resolveSecret(key string) (string, error) {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value, nil
	}

	path, ok := os.LookupEnv(key + "_FILE")
	if !ok || path == "" {
		return "", ErrMissingCredential
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s_FILE: %w", key, err)
	}

	value := strings.TrimSpace(string(data))
	if value == "" {
		return "", ErrMissingCredential
	}
	return value, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}
