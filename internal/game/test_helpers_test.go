package game

import (
	"fmt"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// eventRecorder collects published events for assertions
type eventRecorder struct {
	events []GameEvent
}

func (r *eventRecorder) OnEvent(event GameEvent) {
	r.events = append(r.events, event)
}

func (r *eventRecorder) types() []EventType {
	types := make([]EventType, len(r.events))
	for i, e := range r.events {
		types[i] = e.EventType()
	}
	return types
}

func (r *eventRecorder) reset() {
	r.events = nil
}

// newTestSession returns a session with a mock clock, sequential IDs and an
// attached recorder.
func newTestSession(t *testing.T, opts ...SessionOption) (*Session, *eventRecorder, *quartz.Mock) {
	t.Helper()

	clock := quartz.NewMock(t)
	next := 0
	base := []SessionOption{
		WithClock(clock),
		WithLogger(log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})),
		WithIDGenerator(func() string {
			next++
			return fmt.Sprintf("session-%d", next)
		}),
	}

	s := NewSession(append(base, opts...)...)
	rec := &eventRecorder{}
	s.EventBus().Subscribe(rec)
	return s, rec, clock
}

// playTo advances the session until it reaches round
func playTo(s *Session, round int) {
	for s.CurrentRound() < round && !s.IsGameOver() {
		s.AdvanceRound()
	}
}
