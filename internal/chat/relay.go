package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"kamau.dev/portfolio/internal/http/dto"
	"kamau.dev/portfolio/internal/model"
)

// Relay sends the transcript to the assistant and returns its raw answer.
type Relay interface {
	Ask(ctx context.Context, transcript []model.Message) (string, error)
}

// HTTPRelay talks to the portfolio server's /api endpoints.
type HTTPRelay struct {
	baseURL    string
	httpClient *http.Client
}

func NewHTTPRelay(baseURL string, timeout time.Duration) *HTTPRelay {
	return &HTTPRelay{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (r *HTTPRelay) Ask(ctx context.Context, transcript []model.Message) (string, error) {
	body, err := json.Marshal(dto.FromMessages(transcript))
	if err != nil {
		return "", fmt.Errorf("encoding transcript: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/api/ask", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var resp dto.AskResponse
	if err := r.do(req, &resp); err != nil {
		return "", err
	}
	return resp.Result, nil
}

// Stars fetches the repository star summary.
func (r *HTTPRelay) Stars(ctx context.Context) (dto.StarsResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/api/github/stars", nil)
	if err != nil {
		return dto.StarsResponse{}, fmt.Errorf("creating request: %w", err)
	}

	var resp dto.StarsResponse
	if err := r.do(req, &resp); err != nil {
		return dto.StarsResponse{}, err
	}
	return resp, nil
}

func (r *HTTPRelay) do(req *http.Request, into any) error {
	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp dto.ErrorResponse
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if json.Unmarshal(data, &errResp) == nil && errResp.Error != "" {
			return fmt.Errorf("%s %s: status %d: %s", req.Method, req.URL.Path, resp.StatusCode, errResp.Error)
		}
		return fmt.Errorf("%s %s: status %d", req.Method, req.URL.Path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(into); err != nil {
		return fmt.Errorf("decoding %s response: %w", req.URL.Path, err)
	}
	return nil
}
