package completion

import (
	"context"
	"errors"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

type AnthropicGateway struct {
	client *anthropic.Client
	model  string
}

func NewAnthropicGateway(apiKey, model, baseURL string) *AnthropicGateway {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		// fail fast, the caller has a fallback
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	client := anthropic.NewClient(opts...)
	return &AnthropicGateway{client: &client, model: model}
}

func (g *AnthropicGateway) Complete(ctx context.Context, req Request) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(g.model),
		MaxTokens: int64(req.MaxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.User)),
		},
		Temperature: anthropic.Float(req.Temperature),
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}

	msg, err := g.client.Messages.New(ctx, params)
	if err != nil {
		ue := &UpstreamError{Provider: "anthropic", Err: err}
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			ue.StatusCode = apiErr.StatusCode
		}
		return "", ue
	}
	for _, block := range msg.Content {
		if block.Type == "text" {
			return strings.TrimSpace(block.Text), nil
		}
	}
	return "", &UpstreamError{Provider: "anthropic", Err: errors.New("no text content in response")}
}

func (g *AnthropicGateway) Provider() string { return "anthropic" }

func (g *AnthropicGateway) ModelID() string { return g.model }
