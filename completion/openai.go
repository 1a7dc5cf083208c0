package completion

import (
	"context"
	"errors"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIGateway calls the OpenAI chat completions endpoint. BaseURL lets
// it target any OpenAI-compatible API.
type OpenAIGateway struct {
	api   *openai.Client
	model string
}

func NewOpenAIGateway(apiKey, model, baseURL string) *OpenAIGateway {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIGateway{api: openai.NewClientWithConfig(cfg), model: model}
}

func (g *OpenAIGateway) Complete(ctx context.Context, req Request) (string, error) {
	resp, err := g.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.System},
			{Role: openai.ChatMessageRoleUser, Content: req.User},
		},
		MaxTokens:   req.MaxTokens,
		Temperature: float32(req.Temperature),
	})
	if err != nil {
		return "", mapOpenAIError(err)
	}
	if len(resp.Choices) == 0 {
		return "", &UpstreamError{Provider: "openai", Err: errors.New("no choices in response")}
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (g *OpenAIGateway) Provider() string { return "openai" }

func (g *OpenAIGateway) ModelID() string { return g.model }

func mapOpenAIError(err error) error {
	ue := &UpstreamError{Provider: "openai", Err: err}
	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	switch {
	case errors.As(err, &apiErr):
		ue.StatusCode = apiErr.HTTPStatusCode
	case errors.As(err, &reqErr):
		ue.StatusCode = reqErr.HTTPStatusCode
	}
	return ue
}
