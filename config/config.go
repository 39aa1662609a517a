// Package config loads termdiscovery settings from a TOML file.
//
// Settings start from Default and are overridden by whatever keys the file
// sets. Unknown keys are rejected so typos surface early. Secrets are never
// read from the file: the model API key comes from the environment variable
// named by model.api_key_env.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/jonwraymond/termdiscovery/relevance"
	"github.com/jonwraymond/termdiscovery/translate"
	"github.com/jonwraymond/termdiscovery/vectorize"
)

// EnvPath names the environment variable holding the config file path.
const EnvPath = "TERMDISCOVERY_CONFIG"

// ErrInvalidConfig is returned when a config file cannot be decoded or
// fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all termdiscovery settings.
type Config struct {
	Glossary  GlossaryConfig  `toml:"glossary"`
	Relevance RelevanceConfig `toml:"relevance"`
	Model     ModelConfig     `toml:"model"`
	Server    ServerConfig    `toml:"server"`
}

// GlossaryConfig locates the glossary file.
type GlossaryConfig struct {
	Path string `toml:"path"`
}

// RelevanceConfig tunes term extraction.
type RelevanceConfig struct {
	Threshold         float64 `toml:"threshold"`
	FallbackThreshold float64 `toml:"fallback_threshold"`
	Limit             int     `toml:"limit"`
	MaxFeatures       int     `toml:"max_features"`
}

// ModelConfig selects the translation model.
type ModelConfig struct {
	Name      string `toml:"name"`
	MaxTokens int    `toml:"max_tokens"`
	APIKeyEnv string `toml:"api_key_env"`
	BaseURL   string `toml:"base_url"`
}

// ServerConfig describes the MCP server.
type ServerConfig struct {
	Name     string `toml:"name"`
	Version  string `toml:"version"`
	HTTPAddr string `toml:"http_addr"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Glossary: GlossaryConfig{Path: "glossary.json"},
		Relevance: RelevanceConfig{
			Threshold:         relevance.DefaultThreshold,
			FallbackThreshold: relevance.FallbackThreshold,
			Limit:             relevance.DefaultLimit,
			MaxFeatures:       vectorize.DefaultMaxFeatures,
		},
		Model: ModelConfig{
			Name:      translate.DefaultModel,
			MaxTokens: translate.DefaultMaxTokens,
			APIKeyEnv: "ANTHROPIC_API_KEY",
		},
		Server: ServerConfig{
			Name:     "termdiscovery",
			Version:  "0.1.0",
			HTTPAddr: "127.0.0.1:8080",
		},
	}
}

// Load reads the file at path over Default. An empty path returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := Decode(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromEnv loads the file named by TERMDISCOVERY_CONFIG, if set.
func LoadFromEnv() (Config, error) {
	return Load(os.Getenv(EnvPath))
}

// Decode applies the TOML document in data to cfg and validates the
// result.
func Decode(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return cfg.Validate()
}

// Validate checks value ranges.
func (c Config) Validate() error {
	var problems []string
	if strings.TrimSpace(c.Glossary.Path) == "" {
		problems = append(problems, "glossary.path is empty")
	}
	if c.Relevance.Threshold < 0 || c.Relevance.Threshold > 1 {
		problems = append(problems, fmt.Sprintf("relevance.threshold %v not in [0, 1]", c.Relevance.Threshold))
	}
	if c.Relevance.FallbackThreshold < 0 || c.Relevance.FallbackThreshold > 1 {
		problems = append(problems, fmt.Sprintf("relevance.fallback_threshold %v not in [0, 1]", c.Relevance.FallbackThreshold))
	}
	if c.Relevance.Limit <= 0 {
		problems = append(problems, fmt.Sprintf("relevance.limit %d must be positive", c.Relevance.Limit))
	}
	if c.Relevance.MaxFeatures <= 0 {
		problems = append(problems, fmt.Sprintf("relevance.max_features %d must be positive", c.Relevance.MaxFeatures))
	}
	if c.Model.MaxTokens <= 0 {
		problems = append(problems, fmt.Sprintf("model.max_tokens %d must be positive", c.Model.MaxTokens))
	}
	if strings.TrimSpace(c.Server.Name) == "" {
		problems = append(problems, "server.name is empty")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// APIKey returns the model API key from the environment.
func (c Config) APIKey() string {
	if c.Model.APIKeyEnv == "" {
		return ""
	}
	return os.Getenv(c.Model.APIKeyEnv)
}

// VectorizeOptions returns the vectorizer settings.
func (c Config) VectorizeOptions() vectorize.Options {
	return vectorize.Options{MaxFeatures: c.Relevance.MaxFeatures}
}

// AnthropicConfig returns the model settings with the API key resolved.
func (c Config) AnthropicConfig() translate.AnthropicConfig {
	return translate.AnthropicConfig{
		APIKey:    c.APIKey(),
		Model:     c.Model.Name,
		MaxTokens: c.Model.MaxTokens,
		BaseURL:   c.Model.BaseURL,
	}
}
