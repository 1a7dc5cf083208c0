package completion

import (
	"context"
	"sync"
)

// StubGateway is a deterministic Gateway for tests. It answers every call
// with Text or Err and records the requests it received.
type StubGateway struct {
	Text string
	Err  error

	mu    sync.Mutex
	calls []Request
}

func (s *StubGateway) Complete(_ context.Context, req Request) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, req)
	if s.Err != nil {
		return "", s.Err
	}
	return s.Text, nil
}

func (s *StubGateway) Provider() string { return "stub" }

func (s *StubGateway) ModelID() string { return "stub" }

// Calls returns a copy of the received requests.
func (s *StubGateway) Calls() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.calls...)
}

// CallCount returns the number of Complete calls made.
func (s *StubGateway) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}
