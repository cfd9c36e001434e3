// Package llm generates trip narratives with the Anthropic Messages API.
package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/tripnarrator/internal/adapter/provider/breaker"
	"github.com/heartmarshall/tripnarrator/internal/domain"
)

// ServiceName labels errors, metrics and the breaker.
const ServiceName = "llm"

// Config holds client settings. An empty BaseURL uses the SDK default.
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	MaxTokens   int64
	Temperature float64
}

// Completion is the generated text and the model that produced it.
type Completion = domain.Completion

// Client calls the Messages API.
type Client struct {
	api         anthropic.Client
	model       string
	maxTokens   int64
	temperature float64
	cb          *breaker.Breaker[Completion]
	log         *slog.Logger
}

// New creates a Client. SDK retries are disabled: a failed call surfaces
// to the caller, which marks the run failed.
func New(cfg Config, cb *breaker.Breaker[Completion], logger *slog.Logger) *Client {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &Client{
		api:         anthropic.NewClient(opts...),
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		cb:          cb,
		log:         logger.With("adapter", "llm"),
	}
}

// Model returns the configured model name.
func (c *Client) Model() string { return c.model }

// Generate sends one system + user prompt pair.
// Errors are *domain.UpstreamServiceError.
func (c *Client) Generate(ctx context.Context, system, prompt string) (Completion, error) {
	return c.cb.Do(ctx, func(ctx context.Context) (Completion, error) {
		return c.generate(ctx, system, prompt)
	})
}

func (c *Client) generate(ctx context.Context, system, prompt string) (Completion, error) {
	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   c.maxTokens,
		Temperature: anthropic.Float(c.temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}

	msg, err := c.api.Messages.New(ctx, params)
	if err != nil {
		return Completion{}, fmt.Errorf("llm: messages.new: %w", err)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	text := strings.TrimSpace(b.String())
	if text == "" {
		return Completion{}, fmt.Errorf("llm: empty response (stop reason %q)", msg.StopReason)
	}

	c.log.DebugContext(ctx, "llm response",
		slog.String("model", string(msg.Model)),
		slog.Int64("input_tokens", msg.Usage.InputTokens),
		slog.Int64("output_tokens", msg.Usage.OutputTokens),
	)

	return Completion{Text: text, Model: string(msg.Model)}, nil
}
