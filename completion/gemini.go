package completion

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

type GeminiGateway struct {
	client *genai.Client
	model  string
}

func NewGeminiGateway(ctx context.Context, apiKey, model, baseURL string) (*GeminiGateway, error) {
	cc := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiGateway{client: client, model: model}, nil
}

func (g *GeminiGateway) Complete(ctx context.Context, req Request) (string, error) {
	temp := float32(req.Temperature)
	cfg := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(req.MaxTokens),
		Temperature:     &temp,
	}
	if req.System != "" {
		cfg.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: req.System}}}
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(req.User), cfg)
	if err != nil {
		return "", mapGeminiError(err)
	}
	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", &UpstreamError{Provider: "gemini", Err: errors.New("empty response from model")}
	}
	return text, nil
}

func (g *GeminiGateway) Provider() string { return "gemini" }

func (g *GeminiGateway) ModelID() string { return g.model }

func mapGeminiError(err error) error {
	ue := &UpstreamError{Provider: "gemini", Err: err}
	var apiErr genai.APIError
	var apiErrPtr *genai.APIError
	switch {
	case errors.As(err, &apiErr):
		ue.StatusCode = apiErr.Code
	case errors.As(err, &apiErrPtr):
		ue.StatusCode = apiErrPtr.Code
	}
	return ue
}
