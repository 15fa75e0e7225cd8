package explainer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

var ErrEmptyResponse = errors.New("explainer returned no text")

// maxErrorBody limits how much of a failed response ends up in the error.
const maxErrorBody = 200

type GeminiExplainer struct {
	client   *http.Client
	endpoint string
	model    string
	apiKey   string
}

// NewGeminiExplainer talks to the generateContent endpoint of the Gemini API.
// A nil client gets one with cfg.Timeout.
func NewGeminiExplainer(cfg Config, client *http.Client) *GeminiExplainer {
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	return &GeminiExplainer{
		client:   client,
		endpoint: strings.TrimRight(cfg.Endpoint, "/"),
		model:    cfg.Model,
		apiKey:   cfg.APIKey,
	}
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (g *GeminiExplainer) url() string {
	return fmt.Sprintf("%s/v1beta/models/%s:generateContent", g.endpoint, g.model)
}

func (g *GeminiExplainer) Explain(ctx context.Context, request Request) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: BuildPrompt(request)}}}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url(), bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	slog.Debug("Requesting explanation", "model", g.model, "expression", request.Expression)
	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call explainer: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read explainer response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("explainer responded %s: %s", resp.Status, truncate(string(respBody), maxErrorBody))
	}

	var parsed generateResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse explainer response: %w", err)
	}

	var sb strings.Builder
	if len(parsed.Candidates) > 0 {
		for _, p := range parsed.Candidates[0].Content.Parts {
			sb.WriteString(p.Text)
		}
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

func truncate(s string, max int) string {
	s = strings.TrimSpace(s)
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
