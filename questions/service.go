package questions

import (
	"context"
	"errors"
	"time"

	"exam-coach-backend/completion"
	"exam-coach-backend/logger"
)

const (
	maxTokens              = 500
	generationTemperature  = 0.7
	explanationTemperature = 0.2
)

// Service turns client requests into completion calls and absorbs every
// generation-time failure into a degraded but successful answer.
type Service struct {
	gateway completion.Gateway
	bank    FallbackBank
	log     *logger.Logger
	timeout time.Duration
}

type Option func(*Service)

// WithTimeout bounds each completion call. Zero leaves the call unbounded.
func WithTimeout(d time.Duration) Option {
	return func(s *Service) { s.timeout = d }
}

// WithBank replaces the built-in seed bank.
func WithBank(b FallbackBank) Option {
	return func(s *Service) { s.bank = b }
}

func NewService(gateway completion.Gateway, log *logger.Logger, opts ...Option) *Service {
	if log == nil {
		log = logger.Nop()
	}
	s := &Service{gateway: gateway, bank: seedBank, log: log}
	for _, o := range opts {
		o(s)
	}
	return s
}

// GenerateQuestion asks the model for one question and falls back to the
// seed bank on upstream failure or unparseable output.
func (s *Service) GenerateQuestion(ctx context.Context, subject, topic, language string) Question {
	system, user := BuildGenerationPrompt(subject, topic, language)

	raw, err := s.complete(ctx, system, user, generationTemperature)
	if err == nil {
		q, perr := ExtractQuestion(raw)
		if perr == nil {
			return q
		}
		err = perr
	}
	s.log.Error("generate question failed, serving fallback",
		"subject", subject,
		"topic", topic,
		"kind", failureKind(err),
		"error", err.Error(),
	)
	return s.bank.FallbackFor(subject, topic)
}

// ExplainQuestion returns the model's hint or worked solution, or a fixed
// sentence when the model cannot be reached.
func (s *Service) ExplainQuestion(ctx context.Context, questionText, language string, hintOnly bool) string {
	system, user := BuildExplanationPrompt(questionText, language, hintOnly)

	text, err := s.complete(ctx, system, user, explanationTemperature)
	if err != nil {
		s.log.Error("explain question failed, serving fallback",
			"hint", hintOnly,
			"kind", failureKind(err),
			"error", err.Error(),
		)
		return FallbackExplanation(hintOnly)
	}
	return text
}

func (s *Service) complete(ctx context.Context, system, user string, temperature float64) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	return s.gateway.Complete(ctx, completion.Request{
		System:      system,
		User:        user,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
}

func failureKind(err error) string {
	var ue *completion.UpstreamError
	var me *MalformedOutputError
	switch {
	case errors.As(err, &ue):
		return "upstream"
	case errors.As(err, &me):
		return "malformed_output"
	default:
		return "unknown"
	}
}
