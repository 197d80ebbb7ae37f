package common

import (
	"errors"
	"testing"
	"time"
)

func TestHasKey(t *testing.T) {
	cases := map[string]bool{
		"sk-abc123": true,
		"":          false,
		"   ":       false,
		"\t\n":      false,
		" sk-x ":    true,
	}
	for key, want := range cases {
		if got := HasKey(key); got != want {
			t.Errorf("HasKey(%q) = %v, want %v", key, got, want)
		}
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("OPENAI_MODEL", "")
	t.Setenv("ANTHROPIC_MODEL", "")
	t.Setenv("OPENAI_TIMEOUT", "")
	t.Setenv("RFQ_DPI", "")

	cfg := LoadConfig()
	if cfg.OpenAI.Model != DefaultOpenAIModel {
		t.Errorf("default OpenAI model = %q, want %q", cfg.OpenAI.Model, DefaultOpenAIModel)
	}
	if cfg.Anthropic.Model != DefaultAnthropicModel {
		t.Errorf("default Anthropic model = %q, want %q", cfg.Anthropic.Model, DefaultAnthropicModel)
	}
	if cfg.OpenAI.Timeout != 60*time.Second {
		t.Errorf("default timeout = %v, want 60s", cfg.OpenAI.Timeout)
	}
	if cfg.Extract.DPI != 150 {
		t.Errorf("default DPI = %d, want 150", cfg.Extract.DPI)
	}
	if cfg.Extract.MaxPages != 0 {
		t.Errorf("default max pages = %d, want 0", cfg.Extract.MaxPages)
	}
}

func TestLoadConfigModelOverride(t *testing.T) {
	t.Setenv("OPENAI_MODEL", "gpt-4o-mini")
	t.Setenv("OPENAI_TIMEOUT", "90s")
	t.Setenv("RFQ_DPI", "200")

	cfg := LoadConfig()
	if cfg.OpenAI.Model != "gpt-4o-mini" {
		t.Errorf("model override = %q, want gpt-4o-mini", cfg.OpenAI.Model)
	}
	if cfg.OpenAI.Timeout != 90*time.Second {
		t.Errorf("timeout override = %v, want 90s", cfg.OpenAI.Timeout)
	}
	if cfg.Extract.DPI != 200 {
		t.Errorf("dpi override = %d, want 200", cfg.Extract.DPI)
	}
}

func TestValidateRequiresOpenAIKey(t *testing.T) {
	cfg := &Config{}
	err := cfg.Validate()
	if !errors.Is(err, ErrMissingCredential) {
		t.Fatalf("expected ErrMissingCredential, got %v", err)
	}

	cfg.OpenAI.APIKey = "   "
	if err := cfg.Validate(); !errors.Is(err, ErrMissingCredential) {
		t.Fatalf("blank key should be treated as absent, got %v", err)
	}

	cfg.OpenAI.APIKey = "sk-test"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestErrorUnwrapsBothKindAndCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewError(ErrTransport, "send request", cause)

	if !errors.Is(err, ErrTransport) {
		t.Error("expected errors.Is to match the kind")
	}
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to match the cause")
	}
	if errors.Is(err, ErrAuthentication) {
		t.Error("must not match an unrelated kind")
	}
}
