package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestClient(server *httptest.Server) *geminiClient {
	return &geminiClient{
		client:  &http.Client{Timeout: 5 * time.Second},
		baseURL: server.URL,
		apiKey:  "test-key",
		model:   "test-model",
	}
}

func TestGenerateTextReturnsCandidateText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "test-model:generateContent") {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("expected api key query parameter, got %q", r.URL.RawQuery)
		}
		var req generateContentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		if req.GenerationConfig.Temperature != defaultTemperature {
			t.Errorf("expected temperature %v, got %v", defaultTemperature, req.GenerationConfig.Temperature)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"generated text"}]}}]}`))
	}))
	defer server.Close()

	got, err := newTestClient(server).GenerateText(context.Background(), "a prompt")
	if err != nil {
		t.Fatalf("GenerateText returned error: %v", err)
	}
	if got != "generated text" {
		t.Fatalf("expected generated text, got %q", got)
	}
}

func TestGenerateTextNoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	got, err := newTestClient(server).GenerateText(context.Background(), "a prompt")
	if err != nil {
		t.Fatalf("GenerateText returned error: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty result, got %q", got)
	}
}

func TestGenerateTextAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"message":"API key not valid","status":"PERMISSION_DENIED"}}`))
	}))
	defer server.Close()

	_, err := newTestClient(server).GenerateText(context.Background(), "a prompt")
	if err == nil {
		t.Fatal("expected error for non-200 response")
	}
	if !strings.Contains(err.Error(), "API key not valid") {
		t.Fatalf("expected provider message in error, got %v", err)
	}
}

func TestGenerateTextMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	_, err := newTestClient(server).GenerateText(context.Background(), "a prompt")
	if err == nil {
		t.Fatal("expected error for malformed body")
	}
}
