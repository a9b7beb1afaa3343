package session

import (
	"context"
	"log/slog"

	"github.com/abhisek/codequest/internal/challenge"
	"github.com/google/uuid"
)

// Session couples a State with the generator that feeds it.
type Session struct {
	ID    string
	State *State

	gen challenge.Generator
}

// New creates a session with a fresh ID and an idle state.
func New(gen challenge.Generator) *Session {
	return &Session{
		ID:    uuid.NewString(),
		State: NewState(),
		gen:   gen,
	}
}

// Generate runs the generator for topic. It does not touch State, so it is
// safe to call off the UI goroutine.
func (s *Session) Generate(ctx context.Context, topic challenge.Topic) (*challenge.Challenge, error) {
	return s.gen.Generate(ctx, topic)
}

// Start selects the initial topic and loads its first challenge.
func (s *Session) Start(ctx context.Context, topic challenge.Topic) error {
	return s.SelectTopic(ctx, topic)
}

// SelectTopic switches topic and loads a challenge synchronously. The
// returned error is the load error, also kept in State.LoadErr.
func (s *Session) SelectTopic(ctx context.Context, topic challenge.Topic) error {
	return s.load(ctx, s.State.SelectTopic(topic))
}

// Submit checks an answer by option text.
func (s *Session) Submit(choice string) (bool, error) {
	return s.State.Submit(choice)
}

// SubmitIndex checks an answer by its 0-based position in Choices.
func (s *Session) SubmitIndex(i int) (bool, error) {
	c := s.State.Challenge
	if c == nil || i < 0 || i >= len(c.Choices) {
		return false, ErrNoChallenge
	}
	return s.State.Submit(c.Choices[i])
}

// Advance moves past a solved challenge and loads the next one.
func (s *Session) Advance(ctx context.Context) error {
	token, err := s.State.Advance()
	if err != nil {
		return err
	}
	return s.load(ctx, token)
}

// Retry reloads after a failed generation.
func (s *Session) Retry(ctx context.Context) error {
	token, err := s.State.Retry()
	if err != nil {
		return err
	}
	return s.load(ctx, token)
}

func (s *Session) load(ctx context.Context, token uint64) error {
	c, err := s.gen.Generate(ctx, s.State.Topic)
	s.State.Apply(token, c, err)
	if err != nil {
		slog.Info("challenge load failed", "session", s.ID, "topic", s.State.Topic.String(), "error", err)
	}
	return s.State.LoadErr
}
