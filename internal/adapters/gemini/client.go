package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"gitartist/internal/domain"
	"gitartist/internal/logging"
	"gitartist/internal/patterns"
	"gitartist/internal/ports"
)

// DefaultBaseURL is the Generative Language API endpoint
const DefaultBaseURL = "https://generativelanguage.googleapis.com"

// DefaultTimeout bounds a single request attempt
const DefaultTimeout = 60 * time.Second

// DefaultMaxRetries is the number of retries on transient failures
const DefaultMaxRetries = 3

// Client implements ports.PatternArtist on Gemini generateContent
type Client struct {
	apiKey  string
	baseURL string
	http    *retryablehttp.Client
	model   string
}

// Verify interface compliance at compile time
var _ ports.PatternArtist = (*Client)(nil)

// Config holds configuration for Client
type Config struct {
	APIKey     string
	BaseURL    string
	MaxRetries int
	Model      string
	RetryWait  time.Duration
}

// NewClient creates a Gemini client. An API key is required.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: GOOGLE_API_KEY is not set", domain.ErrMissingCredentials)
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("gemini model is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = DefaultMaxRetries
	}

	rc := retryablehttp.NewClient()
	rc.RetryMax = cfg.MaxRetries
	if cfg.RetryWait > 0 {
		rc.RetryWaitMin = cfg.RetryWait
		rc.RetryWaitMax = cfg.RetryWait * 4
	}
	rc.HTTPClient.Timeout = DefaultTimeout
	rc.Logger = logging.Logger

	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    rc,
		model:   cfg.Model,
	}, nil
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Parts []part `json:"parts"`
	Role  string `json:"role,omitempty"`
}

type generationConfig struct {
	ResponseMimeType string  `json:"responseMimeType,omitempty"`
	Temperature      float64 `json:"temperature"`
}

type generateRequest struct {
	Contents          []content        `json:"contents"`
	GenerationConfig  generationConfig `json:"generationConfig"`
	SystemInstruction content          `json:"systemInstruction"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// generate sends one prompt and returns the concatenated text of the first candidate
func (c *Client) generate(ctx context.Context, system, user string, temperature float64) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents:          []content{{Role: "user", Parts: []part{{Text: user}}}},
		GenerationConfig:  generationConfig{ResponseMimeType: "application/json", Temperature: temperature},
		SystemInstruction: content{Parts: []part{{Text: system}}},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request body: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read gemini response: %w", err)
	}
	logging.Logger.Debug("Gemini response", "status", resp.StatusCode, "duration", time.Since(start), "bytes", len(data))

	if resp.StatusCode >= 400 {
		var apiErr apiError
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error.Message != "" {
			if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
				return "", fmt.Errorf("%w: gemini: %s", domain.ErrMissingCredentials, apiErr.Error.Message)
			}
			return "", fmt.Errorf("gemini error (%d %s): %s", resp.StatusCode, apiErr.Error.Status, apiErr.Error.Message)
		}
		return "", fmt.Errorf("gemini error: status %d", resp.StatusCode)
	}

	var parsed generateResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", fmt.Errorf("decode gemini response: %w", err)
	}
	if len(parsed.Candidates) == 0 {
		return "", nil
	}

	var sb strings.Builder
	for _, p := range parsed.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String(), nil
}

// extractJSON returns the span from the first '{' to the last '}'
func extractJSON(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < start {
		return "", false
	}
	return text[start : end+1], true
}

type triageAnswer struct {
	Intent     string `json:"intent"`
	Parameters struct {
		Description string `json:"description"`
		Name        string `json:"name"`
		Text        string `json:"text"`
	} `json:"parameters"`
	Plan string `json:"plan"`
}

// Classify implements PatternArtist.Classify. Answers that cannot be used
// fall back to a custom shape described by the request itself.
func (c *Client) Classify(ctx context.Context, request string, knownShapes []string) (*domain.ArtIntent, error) {
	text, err := c.generate(ctx, buildTriagePrompt(knownShapes), userRequest(request), 0)
	if err != nil {
		return nil, err
	}

	fallback := &domain.ArtIntent{
		Description: request,
		Kind:        domain.IntentCustomShape,
		Plan:        fmt.Sprintf("Generating a custom pixel art of %s.", request),
	}

	raw, ok := extractJSON(text)
	if !ok {
		logging.Logger.Warn("Triage answer had no JSON object", "answer", text)
		return fallback, nil
	}

	var answer triageAnswer
	if err := json.Unmarshal([]byte(raw), &answer); err != nil {
		logging.Logger.Warn("Triage answer was not valid JSON", "error", err)
		return fallback, nil
	}

	intent := &domain.ArtIntent{Plan: answer.Plan}
	switch domain.IntentKind(answer.Intent) {
	case domain.IntentText:
		if strings.TrimSpace(answer.Parameters.Text) == "" {
			return fallback, nil
		}
		intent.Kind = domain.IntentText
		intent.Text = answer.Parameters.Text
	case domain.IntentKnownShape:
		name := strings.ToLower(strings.TrimSpace(answer.Parameters.Name))
		if !slices.Contains(knownShapes, name) {
			logging.Logger.Warn("Triage picked an unknown shape", "name", answer.Parameters.Name)
			return fallback, nil
		}
		intent.Kind = domain.IntentKnownShape
		intent.ShapeName = name
	case domain.IntentCustomShape:
		intent.Kind = domain.IntentCustomShape
		intent.Description = answer.Parameters.Description
		if strings.TrimSpace(intent.Description) == "" {
			intent.Description = request
		}
	default:
		return fallback, nil
	}

	if intent.Plan == "" {
		intent.Plan = fallback.Plan
	}
	return intent, nil
}

// Draw implements PatternArtist.Draw. Malformed answers yield no pixels.
func (c *Client) Draw(ctx context.Context, description string) ([]domain.Pixel, error) {
	text, err := c.generate(ctx, artistPrompt, userRequest(description), 0.9)
	if err != nil {
		return nil, err
	}

	raw, ok := extractJSON(text)
	if !ok {
		logging.Logger.Warn("Artist answer had no JSON object")
		return nil, nil
	}

	var answer struct {
		Pixels []any `json:"pixels"`
	}
	if err := json.Unmarshal([]byte(raw), &answer); err != nil {
		logging.Logger.Warn("Artist answer was not valid JSON", "error", err)
		return nil, nil
	}

	pixels, dropped := patterns.DecodePixels(answer.Pixels)
	if dropped > 0 {
		logging.Logger.Warn("Dropped unusable pixels from artist answer", "dropped", dropped, "kept", len(pixels))
	}
	return pixels, nil
}
