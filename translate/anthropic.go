package translate

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const (
	// DefaultModel is the model used when AnthropicConfig.Model is empty.
	DefaultModel = "claude-sonnet-4-5-20250929"

	// DefaultMaxTokens bounds the reply; a translation and a few
	// alternatives fit comfortably.
	DefaultMaxTokens = 256

	// replyStop ends generation once the JSON object closes.
	replyStop = "}"
)

// AnthropicConfig configures an AnthropicModel.
type AnthropicConfig struct {
	APIKey    string
	Model     string
	MaxTokens int

	// BaseURL overrides the API endpoint.
	BaseURL string

	// MaxRetries overrides the client's retry count when >= 0.
	MaxRetries *int
}

// AnthropicModel completes prompts with the Anthropic Messages API.
type AnthropicModel struct {
	client    anthropic.Client
	model     string
	maxTokens int64
}

// NewAnthropicModel creates an AnthropicModel.
func NewAnthropicModel(cfg AnthropicConfig) (*AnthropicModel, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrMissingAPIKey
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.MaxRetries != nil && *cfg.MaxRetries >= 0 {
		opts = append(opts, option.WithMaxRetries(*cfg.MaxRetries))
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	maxTokens := int64(DefaultMaxTokens)
	if cfg.MaxTokens > 0 {
		maxTokens = int64(cfg.MaxTokens)
	}

	return &AnthropicModel{
		client:    anthropic.NewClient(opts...),
		model:     model,
		maxTokens: maxTokens,
	}, nil
}

// AnthropicFactory returns a Factory building an AnthropicModel from cfg.
func AnthropicFactory(cfg AnthropicConfig) Factory {
	return func(context.Context) (Model, error) {
		return NewAnthropicModel(cfg)
	}
}

// Complete implements Model. Generation stops at the first closing brace,
// which is restored on the returned text.
func (m *AnthropicModel) Complete(ctx context.Context, prompt string) (string, error) {
	message, err := m.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:         anthropic.Model(m.model),
		MaxTokens:     m.maxTokens,
		StopSequences: []string{replyStop},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic messages: %w", err)
	}

	var b strings.Builder
	for _, block := range message.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	return closeObject(b.String()), nil
}

// closeObject appends a closing brace unless s already ends with one.
func closeObject(s string) string {
	if strings.HasSuffix(strings.TrimSpace(s), replyStop) {
		return s
	}
	return s + replyStop
}
