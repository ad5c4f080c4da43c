package llm

import (
	"testing"
	"time"
)

func TestConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("SUBJUNTO_LLM_PROVIDER", "openai")
	t.Setenv("SUBJUNTO_OPENAI_API_KEY", "sk-test")
	t.Setenv("SUBJUNTO_OPENAI_MODEL", "gpt-4o")
	t.Setenv("SUBJUNTO_LLM_TIMEOUT", "2s")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Errorf("Provider = %q", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-test" {
		t.Errorf("APIKey = %q", cfg.OpenAI.APIKey)
	}
	if cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("Model = %q", cfg.OpenAI.Model)
	}
	if cfg.Timeout != 2*time.Second {
		t.Errorf("Timeout = %v", cfg.Timeout)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"anthropic with key", Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "k"}}, false},
		{"anthropic without key", Config{Provider: "anthropic"}, true},
		{"mock needs nothing", Config{Provider: "mock"}, false},
		{"unknown provider", Config{Provider: "llama-at-home"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestResolveModel(t *testing.T) {
	if got := resolveModel("claude-haiku", anthropicModels); got != "claude-haiku-4-5-20251001" {
		t.Errorf("resolveModel friendly = %q", got)
	}
	if got := resolveModel("claude-haiku-4-5-20251001", anthropicModels); got != "claude-haiku-4-5-20251001" {
		t.Errorf("resolveModel passthrough = %q", got)
	}
}

func TestLookupCost(t *testing.T) {
	c := LookupCost("gpt-4o-mini")
	if c == nil {
		t.Fatal("LookupCost returned nil for a known model")
	}
	got := c.Cost(1_000_000, 1_000_000)
	want := 0.15 + 0.6
	if got != want {
		t.Errorf("Cost = %v, want %v", got, want)
	}
	if LookupCost("unknown-model") != nil {
		t.Error("LookupCost returned pricing for an unknown model")
	}
}
