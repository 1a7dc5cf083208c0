package completion

import (
	"context"
	"time"

	"exam-coach-backend/logger"
)

type loggingGateway struct {
	inner Gateway
	log   *logger.Logger
}

// WithLogging wraps a Gateway so every call is logged with its latency and outcome.
func WithLogging(g Gateway, log *logger.Logger) Gateway {
	return &loggingGateway{inner: g, log: log.With("provider", g.Provider(), "model", g.ModelID())}
}

func (l *loggingGateway) Complete(ctx context.Context, req Request) (string, error) {
	start := time.Now()
	text, err := l.inner.Complete(ctx, req)
	latency := time.Since(start).Milliseconds()
	if err != nil {
		l.log.Warn("completion failed",
			"latency_ms", latency,
			"temperature", req.Temperature,
			"error", err.Error(),
		)
		return "", err
	}
	l.log.Debug("completion ok",
		"latency_ms", latency,
		"temperature", req.Temperature,
		"response_len", len(text),
	)
	return text, nil
}

func (l *loggingGateway) Provider() string { return l.inner.Provider() }

func (l *loggingGateway) ModelID() string { return l.inner.ModelID() }
