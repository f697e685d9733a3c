package llm

import "testing"

func clearProviderEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PREPDECK_LLM_PROVIDER",
		"PREPDECK_ANTHROPIC_API_KEY", "ANTHROPIC_API_KEY", "PREPDECK_ANTHROPIC_MODEL",
		"PREPDECK_OPENAI_API_KEY", "OPENAI_API_KEY", "PREPDECK_OPENAI_MODEL", "PREPDECK_OPENAI_BASE_URL",
		"PREPDECK_GEMINI_API_KEY", "GEMINI_API_KEY", "PREPDECK_GEMINI_MODEL",
	} {
		t.Setenv(k, "")
	}
}

func TestConfigFromEnvDefaults(t *testing.T) {
	clearProviderEnv(t)

	cfg := ConfigFromEnv()
	if cfg.Provider != "gemini" {
		t.Errorf("Provider = %q, want gemini", cfg.Provider)
	}
	if cfg.Anthropic.Model != "claude-haiku" {
		t.Errorf("Anthropic.Model = %q, want claude-haiku", cfg.Anthropic.Model)
	}
	if cfg.OpenAI.Model != "gpt-4o-mini" {
		t.Errorf("OpenAI.Model = %q, want gpt-4o-mini", cfg.OpenAI.Model)
	}
}

func TestConfigFromEnvDiscoversProviderFromKey(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Errorf("Provider = %q, want openai", cfg.Provider)
	}
}

func TestConfigFromEnvExplicitProviderWins(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("PREPDECK_LLM_PROVIDER", "anthropic")

	cfg := ConfigFromEnv()
	if cfg.Provider != "anthropic" {
		t.Errorf("Provider = %q, want anthropic", cfg.Provider)
	}
}

func TestConfigFromEnvPrefixedKeysWin(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("GEMINI_API_KEY", "standard")
	t.Setenv("PREPDECK_GEMINI_API_KEY", "prefixed")

	cfg := ConfigFromEnv()
	if cfg.Gemini.APIKey != "prefixed" {
		t.Errorf("Gemini.APIKey = %q, want the prefixed value", cfg.Gemini.APIKey)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"anthropic with key", func(c *Config) { c.Provider = "anthropic"; c.Anthropic.APIKey = "k" }, false},
		{"anthropic without key", func(c *Config) { c.Provider = "anthropic" }, true},
		{"openai without key", func(c *Config) { c.Provider = "openai" }, true},
		{"gemini without key", func(c *Config) { c.Provider = "gemini" }, true},
		{"mock needs nothing", func(c *Config) { c.Provider = "mock" }, false},
		{"unknown provider", func(c *Config) { c.Provider = "bard" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
