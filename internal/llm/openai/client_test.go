package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/byteKumar/pepperuni/internal/llm"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient("test-key", "gpt-4-turbo")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	client.baseURL = server.URL
	return client, server
}

func TestRewriteReturnsTrimmedTextAndScore(t *testing.T) {
	var gotReq chatRequest
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "\n\nRewritten resume body.\nTotal Score: 92\n"}},
			},
			"usage": map[string]int{"prompt_tokens": 10, "completion_tokens": 20, "total_tokens": 30},
		})
	})

	rewritten, score, err := client.Rewrite(context.Background(), "resume text", "job description")
	if err != nil {
		t.Fatalf("Rewrite: %v", err)
	}
	if rewritten != "Rewritten resume body.\nTotal Score: 92" {
		t.Fatalf("unexpected rewritten text %q", rewritten)
	}
	if score != "92" {
		t.Fatalf("expected score 92, got %q", score)
	}

	if gotReq.Model != "gpt-4-turbo" {
		t.Fatalf("unexpected model %q", gotReq.Model)
	}
	if gotReq.MaxTokens != 1500 {
		t.Fatalf("expected max_tokens 1500, got %d", gotReq.MaxTokens)
	}
	if gotReq.Temperature == nil || *gotReq.Temperature != 0.7 {
		t.Fatalf("expected temperature 0.7, got %v", gotReq.Temperature)
	}
	if len(gotReq.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(gotReq.Messages))
	}
	if gotReq.Messages[0].Role != "system" || gotReq.Messages[0].Content != llm.SystemPrompt {
		t.Fatal("first message must be the system persona")
	}
	if !strings.Contains(gotReq.Messages[1].Content, "resume text") {
		t.Fatal("user message must embed the resume text")
	}
	if !strings.Contains(gotReq.Messages[1].Content, "job description") {
		t.Fatal("user message must embed the job description")
	}
}

func TestRewriteWithoutScoreLine(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "Rewritten, but the model forgot the rubric."}},
			},
		})
	})

	_, score, err := client.Rewrite(context.Background(), "resume", "jd")
	if err != nil {
		t.Fatalf("Rewrite: %v", err)
	}
	if score != llm.ScoreNotFound {
		t.Fatalf("expected %q, got %q", llm.ScoreNotFound, score)
	}
}

func TestRewriteSurfacesProviderError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"message": "rate limit exceeded", "type": "rate_limit_error"},
		})
	})

	_, _, err := client.Rewrite(context.Background(), "resume", "jd")
	if err == nil {
		t.Fatal("expected provider error")
	}
	if !strings.Contains(err.Error(), "rate limit exceeded") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRewriteEmptyChoices(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	})

	if _, _, err := client.Rewrite(context.Background(), "resume", "jd"); err == nil {
		t.Fatal("expected error for missing choices")
	}
}

func TestNewClientValidation(t *testing.T) {
	if _, err := NewClient("", "gpt-4-turbo"); err == nil {
		t.Fatal("expected error for missing api key")
	}
	if _, err := NewClient("key", " "); err == nil {
		t.Fatal("expected error for missing model")
	}
}
