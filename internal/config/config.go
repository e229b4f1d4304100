package config

import (
	"errors"

	"github.com/spf13/viper"

	"github.com/manthansinghshekhawat/personahitesh/internal/llm"
)

var (
	ErrMissingEndpoint = errors.New("AZURE_OPENAI_ENDPOINT is not set")
	ErrMissingAPIKey   = errors.New("AZURE_OPENAI_API_KEY is not set")
)

// Config holds everything the process reads from the environment. It
// is loaded once at startup; a missing endpoint or credential is a
// configuration error reported then, never mid-turn.
type Config struct {
	Port string

	Endpoint   string
	APIKey     string
	Deployment string
	APIVersion string

	PersonaFile string
	UseMockLLM  bool

	Generation llm.GenerationConfig
}

// Load reads the configuration from the environment via viper.
func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("port", "1323")
	v.SetDefault("deployment_name", "gpt-4o")
	v.SetDefault("api_version", "2025-01-01-preview")
	v.SetDefault("max_tokens", 1000)
	v.SetDefault("temperature", 0.7)
	v.SetDefault("top_p", 0.9)
	v.SetDefault("use_mock_llm", false)

	return &Config{
		Port: v.GetString("port"),

		Endpoint:   v.GetString("azure_openai_endpoint"),
		APIKey:     v.GetString("azure_openai_api_key"),
		Deployment: v.GetString("deployment_name"),
		APIVersion: v.GetString("api_version"),

		PersonaFile: v.GetString("persona_file"),
		UseMockLLM:  v.GetBool("use_mock_llm"),

		Generation: llm.GenerationConfig{
			MaxTokens:   v.GetInt("max_tokens"),
			Temperature: v.GetFloat64("temperature"),
			TopP:        v.GetFloat64("top_p"),
		},
	}
}

// Validate checks the settings the completion client cannot live
// without. Skipped entirely when the mock client is requested.
func (c *Config) Validate() error {
	if c.UseMockLLM {
		return nil
	}
	if c.Endpoint == "" {
		return ErrMissingEndpoint
	}
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}
