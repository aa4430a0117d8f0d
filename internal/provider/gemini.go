package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

const (
	defaultTemperature     = 0.1
	defaultMaxOutputTokens = 5000
	generateTimeout        = 60 * time.Second
)

// ErrMalformedResponse is returned when a provider response cannot be
// decoded into the expected structure.
var ErrMalformedResponse = errors.New("malformed provider response")

// TextGenerator produces free-form text for a prompt. A provider that
// returns no content yields an empty string, not an error.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type geminiClient struct {
	client  *http.Client
	baseURL string
	apiKey  string
	model   string
}

// NewGeminiClient creates a TextGenerator backed by the Gemini REST API.
func NewGeminiClient(apiKey, model string) TextGenerator {
	return &geminiClient{
		client: &http.Client{
			Timeout: generateTimeout,
		},
		baseURL: geminiBaseURL,
		apiKey:  apiKey,
		model:   model,
	}
}

type generateContentRequest struct {
	Contents         []geminiContent  `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// GenerateText sends one prompt to the generateContent endpoint and
// returns the first candidate's text, or "" when the provider returns
// no candidates.
func (c *geminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	payload := generateContentRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
		GenerationConfig: generationConfig{
			Temperature:     defaultTemperature,
			MaxOutputTokens: defaultMaxOutputTokens,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode generation request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create generation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call text generation API: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read generation response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp struct {
			Error struct {
				Message string `json:"message"`
				Status  string `json:"status"`
			} `json:"error"`
		}
		if err := json.Unmarshal(respBody, &errorResp); err == nil && errorResp.Error.Message != "" {
			return "", fmt.Errorf("text generation failed: %s", errorResp.Error.Message)
		}
		return "", fmt.Errorf("text generation failed: HTTP %d", resp.StatusCode)
	}

	var decoded generateContentResponse
	if err := json.Unmarshal(respBody, &decoded); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return decoded.Candidates[0].Content.Parts[0].Text, nil
}
