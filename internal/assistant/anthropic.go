package assistant

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const defaultModel = "claude-haiku-4-5-20251001"

const systemPrompt = "You suggest one short, concrete study task for a student's daily plan. " +
	"Answer with the task only, one line, no numbering, at most ten words."

// Config holds suggester configuration.
type Config struct {
	APIKey string
	Model  string
}

// ConfigFromEnv builds a Config from environment variables.
func ConfigFromEnv() Config {
	cfg := Config{Model: defaultModel}
	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.APIKey = k
	}
	if m := os.Getenv("STUDYPAL_ANTHROPIC_MODEL"); m != "" {
		cfg.Model = m
	}
	return cfg
}

// AnthropicSuggester asks an Anthropic model for a plan suggestion.
type AnthropicSuggester struct {
	client *anthropic.Client
	model  string
}

// NewAnthropicSuggester creates a suggester for the configured model.
func NewAnthropicSuggester(cfg Config) (*AnthropicSuggester, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("anthropic API key is required")
	}
	client := anthropic.NewClient(option.WithAPIKey(cfg.APIKey))
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	return &AnthropicSuggester{client: &client, model: model}, nil
}

func (a *AnthropicSuggester) Suggest(ctx context.Context, subjects []string, date time.Time) (string, error) {
	prompt := fmt.Sprintf("Date: %s.", date.Format("Monday, January 2"))
	if len(subjects) > 0 {
		prompt += " Subjects in progress: " + strings.Join(subjects, ", ") + "."
	}

	msg, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(a.model),
		MaxTokens: 64,
		System:    []anthropic.TextBlockParam{{Text: systemPrompt}},
		Messages: []anthropic.MessageParam{
			{
				Role: anthropic.MessageParamRoleUser,
				Content: []anthropic.ContentBlockParamUnion{
					anthropic.NewTextBlock(prompt),
				},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("suggest plan: %w", err)
	}

	for _, block := range msg.Content {
		if block.Type == "text" {
			text := strings.TrimSpace(block.Text)
			if text != "" {
				return text, nil
			}
		}
	}
	return "", errors.New("empty suggestion from model")
}

// NewFromEnv returns the Anthropic suggester when an API key is configured,
// else the canned fallback.
func NewFromEnv() Suggester {
	cfg := ConfigFromEnv()
	if cfg.APIKey == "" {
		return NewCannedSuggester(time.Now().UnixNano())
	}
	s, err := NewAnthropicSuggester(cfg)
	if err != nil {
		return NewCannedSuggester(time.Now().UnixNano())
	}
	return s
}
