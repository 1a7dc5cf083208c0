package completion

import (
	"context"
	"errors"
	"fmt"

	"exam-coach-backend/config"
)

// New builds the Gateway selected by cfg.Provider.
//
// A missing credential is not an error: the gateway is still returned and
// every call fails upstream, which callers absorb through their fallback
// path. Only an unknown provider name is rejected.
func New(ctx context.Context, cfg config.Config) (Gateway, error) {
	sel := cfg.Selected()
	switch cfg.Provider {
	case "openai":
		return NewOpenAIGateway(sel.APIKey, sel.Model, sel.BaseURL), nil
	case "anthropic":
		return NewAnthropicGateway(sel.APIKey, sel.Model, sel.BaseURL), nil
	case "gemini":
		g, err := NewGeminiGateway(ctx, sel.APIKey, sel.Model, sel.BaseURL)
		if err != nil {
			return Unavailable("gemini", sel.Model, err), nil
		}
		return g, nil
	default:
		return nil, fmt.Errorf("unknown completion provider: %q", cfg.Provider)
	}
}

// Unavailable returns a Gateway whose every call fails with reason.
func Unavailable(provider, model string, reason error) Gateway {
	if reason == nil {
		reason = errors.New("provider not configured")
	}
	return &unavailableGateway{provider: provider, model: model, reason: reason}
}

type unavailableGateway struct {
	provider string
	model    string
	reason   error
}

func (g *unavailableGateway) Complete(context.Context, Request) (string, error) {
	return "", &UpstreamError{Provider: g.provider, Err: g.reason}
}

func (g *unavailableGateway) Provider() string { return g.provider }

func (g *unavailableGateway) ModelID() string { return g.model }
