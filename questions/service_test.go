package questions

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"exam-coach-backend/completion"
	"exam-coach-backend/logger"
)

var errUpstream = &completion.UpstreamError{Provider: "stub", StatusCode: 401, Err: errors.New("invalid api key")}

func TestGenerateQuestion_ModelOutput(t *testing.T) {
	stub := &completion.StubGateway{
		Text: `Sure! {"text":"What is 3^2?","choices":["6","9","12","3"],"answer_index":1,"difficulty":"easy"}`,
	}
	svc := NewService(stub, nil)

	q := svc.GenerateQuestion(context.Background(), "math", "Powers", "English")
	assert.Equal(t, "What is 3^2?", q.Text)
	assert.Equal(t, 1, q.AnswerIndex)

	calls := stub.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, 500, calls[0].MaxTokens)
	assert.InDelta(t, 0.7, calls[0].Temperature, 1e-9)
	assert.Contains(t, calls[0].System, "exam question generator for math")
	assert.Contains(t, calls[0].User, "topic: Powers")
}

func TestGenerateQuestion_UpstreamFailureUsesSeed(t *testing.T) {
	svc := NewService(&completion.StubGateway{Err: errUpstream}, nil)

	q := svc.GenerateQuestion(context.Background(), "Physics", "Mechanics", "English")
	assert.Equal(t, 2, q.AnswerIndex) // "10 m/s"
	assert.Equal(t, DifficultyEasy, q.Difficulty)
}

func TestGenerateQuestion_MalformedOutputUsesSeed(t *testing.T) {
	svc := NewService(&completion.StubGateway{Text: "I cannot help"}, nil)

	q := svc.GenerateQuestion(context.Background(), "chemistry", "Stoichiometry", "English")
	assert.Equal(t, 1, q.AnswerIndex)
	assert.Equal(t, DifficultyEasy, q.Difficulty)
}

func TestGenerateQuestion_UnknownTopicPlaceholder(t *testing.T) {
	svc := NewService(&completion.StubGateway{Err: errUpstream}, nil)

	q := svc.GenerateQuestion(context.Background(), "art", "Baroque", "English")
	assert.Equal(t, []string{"N/A", "N/A", "N/A", "N/A"}, q.Choices)
	assert.Equal(t, 0, q.AnswerIndex)
}

func TestGenerateQuestion_CustomBank(t *testing.T) {
	bank := FallbackBank{"geo": {"Rivers": {{Text: "Longest?", Choices: []string{"Nile", "Amazon", "Po", "Rhine"}, Answer: "Nile"}}}}
	svc := NewService(&completion.StubGateway{Err: errUpstream}, nil, WithBank(bank))

	q := svc.GenerateQuestion(context.Background(), "GEO", "Rivers", "English")
	assert.Equal(t, "Longest?", q.Text)
	assert.Equal(t, 0, q.AnswerIndex)
}

func TestExplainQuestion(t *testing.T) {
	stub := &completion.StubGateway{Text: "1. Subtract 3.\n2. Divide by 2."}
	svc := NewService(stub, nil)

	got := svc.ExplainQuestion(context.Background(), "Solve 2x+3=11", "English", false)
	assert.Equal(t, "1. Subtract 3.\n2. Divide by 2.", got)

	calls := stub.Calls()
	require.Len(t, calls, 1)
	assert.InDelta(t, 0.2, calls[0].Temperature, 1e-9)
	assert.Equal(t, 500, calls[0].MaxTokens)
	assert.Contains(t, calls[0].System, "step-by-step solution")
}

func TestExplainQuestion_Fallbacks(t *testing.T) {
	svc := NewService(&completion.StubGateway{Err: errUpstream}, nil)

	assert.Equal(t, FallbackExplanation(true), svc.ExplainQuestion(context.Background(), "Q", "English", true))
	assert.Equal(t, FallbackExplanation(false), svc.ExplainQuestion(context.Background(), "Q", "English", false))
}

type blockingGateway struct{ completion.StubGateway }

func (b *blockingGateway) Complete(ctx context.Context, _ completion.Request) (string, error) {
	<-ctx.Done()
	return "", &completion.UpstreamError{Provider: "stub", Err: ctx.Err()}
}

func TestService_Timeout(t *testing.T) {
	svc := NewService(&blockingGateway{}, nil, WithTimeout(20*time.Millisecond))

	done := make(chan string, 1)
	go func() { done <- svc.ExplainQuestion(context.Background(), "Q", "English", true) }()

	select {
	case got := <-done:
		assert.Equal(t, FallbackExplanation(true), got)
	case <-time.After(2 * time.Second):
		t.Fatal("explain did not honor the upstream timeout")
	}
}

func TestFailureKind(t *testing.T) {
	assert.Equal(t, "upstream", failureKind(errUpstream))
	assert.Equal(t, "malformed_output", failureKind(&MalformedOutputError{Err: errors.New("x")}))
	assert.Equal(t, "unknown", failureKind(errors.New("x")))
}

func TestGenerateQuestion_FailureLoggedOnceWithKind(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	lg := &logger.Logger{SugaredLogger: zap.New(core).Sugar()}
	gw := completion.WithLogging(&completion.StubGateway{Err: errUpstream}, lg)
	svc := NewService(gw, lg)

	svc.GenerateQuestion(context.Background(), "math", "Algebra", "English")

	errs := logs.FilterLevelExact(zapcore.ErrorLevel).All()
	require.Len(t, errs, 1)
	assert.Equal(t, "generate question failed, serving fallback", errs[0].Message)
	assert.Equal(t, "upstream", errs[0].ContextMap()["kind"])
	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.WarnLevel).Len())
}
