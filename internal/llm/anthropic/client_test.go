package anthropic

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/quotecraft/rfq-analyzer/constants"
	"github.com/quotecraft/rfq-analyzer/internal/common"
	"github.com/quotecraft/rfq-analyzer/internal/llm"
)

func messageBody(text string) string {
	b, _ := json.Marshal(map[string]any{
		"content": []map[string]any{
			{"type": "text", "text": text},
		},
	})
	return string(b)
}

func TestInvoke(t *testing.T) {
	var captured map[string]any
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.URL.Path != "/v1/messages" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("x-api-key"); got != "ak-test" {
			t.Errorf("x-api-key = %q", got)
		}
		if got := r.Header.Get("anthropic-version"); got != "2023-06-01" {
			t.Errorf("anthropic-version = %q", got)
		}
		_ = json.NewDecoder(r.Body).Decode(&captured)
		_, _ = w.Write([]byte(messageBody("Solid oak, four legs.")))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "ak-test", BaseURL: srv.URL, Model: "claude-3-sonnet-20240229"}, nil)
	res, err := c.Invoke(context.Background(), llm.Request{
		System:    "You are an analyst.",
		User:      "Analyze this drawing.",
		Image:     &llm.ImagePayload{Base64: "aGVsbG8=", MediaType: "image/jpeg"},
		MaxTokens: 500,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
	if res.Provider != constants.ProviderAnthropic {
		t.Errorf("provider = %q", res.Provider)
	}
	if res.Text != "Solid oak, four legs." {
		t.Errorf("text = %q", res.Text)
	}

	if captured["system"] != "You are an analyst." {
		t.Errorf("system = %v", captured["system"])
	}
	if captured["max_tokens"] != float64(500) {
		t.Errorf("max_tokens = %v", captured["max_tokens"])
	}
	messages := captured["messages"].([]any)
	content := messages[0].(map[string]any)["content"].([]any)
	if len(content) != 2 {
		t.Fatalf("expected text and image blocks, got %d", len(content))
	}
	source := content[1].(map[string]any)["source"].(map[string]any)
	if source["type"] != "base64" || source["media_type"] != "image/jpeg" || source["data"] != "aGVsbG8=" {
		t.Errorf("image source = %v", source)
	}
}

func TestInvokeDefaultMaxTokens(t *testing.T) {
	var captured map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&captured)
		_, _ = w.Write([]byte(messageBody("ok")))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "ak-test", BaseURL: srv.URL}, nil)
	if _, err := c.Invoke(context.Background(), llm.Request{User: "hi"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if captured["max_tokens"] != float64(1000) {
		t.Errorf("default max_tokens = %v, want 1000", captured["max_tokens"])
	}
}

func TestInvokeMissingCredential(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "", BaseURL: srv.URL}, nil)
	if c.Configured() {
		t.Error("empty key must not count as configured")
	}
	_, err := c.Invoke(context.Background(), llm.Request{User: "hi"})
	if !errors.Is(err, common.ErrMissingCredential) {
		t.Fatalf("expected ErrMissingCredential, got %v", err)
	}
	if calls != 0 {
		t.Errorf("no network call may happen without a credential, got %d", calls)
	}
}

func TestInvokeAuthRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "ak-bad", BaseURL: srv.URL}, nil)
	_, err := c.Invoke(context.Background(), llm.Request{User: "hi"})
	if !errors.Is(err, common.ErrAuthentication) {
		t.Fatalf("expected ErrAuthentication, got %v", err)
	}
}

func TestInvokeNoTextBlock(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"content": []}`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "ak-test", BaseURL: srv.URL}, nil)
	_, err := c.Invoke(context.Background(), llm.Request{User: "hi"})
	if !errors.Is(err, common.ErrResponseFormat) {
		t.Fatalf("expected ErrResponseFormat, got %v", err)
	}
}
