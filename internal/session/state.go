package session

import (
	"errors"

	"github.com/abhisek/codequest/internal/challenge"
)

// Feedback and notice strings shown to the player.
const (
	FeedbackCorrect   = "Correct! Press N for the next question."
	FeedbackIncorrect = "Incorrect! Try again."
	LoadFailedNotice  = "Failed to load a challenge. Please try again."
)

var (
	// ErrNotSolved is returned by Advance before the current challenge was
	// answered correctly.
	ErrNotSolved = errors.New("current challenge not solved yet")

	// ErrNotFailed is returned by Retry when the last load did not fail.
	ErrNotFailed = errors.New("no failed load to retry")

	// ErrNoChallenge is returned by Submit when no challenge is displayed.
	ErrNoChallenge = errors.New("no challenge to answer")
)

// Phase is the lifecycle stage of the quiz.
type Phase int

const (
	PhaseIdle       Phase = iota // No topic selected yet
	PhaseLoading                 // Waiting for a generated challenge
	PhaseAwaiting                // Challenge shown, no answer yet
	PhaseIncorrect               // Last submission was wrong
	PhaseCorrect                 // Solved; Next is available
	PhaseLoadFailed              // Generation failed; notice shown
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseAwaiting:
		return "awaiting"
	case PhaseIncorrect:
		return "incorrect"
	case PhaseCorrect:
		return "correct"
	case PhaseLoadFailed:
		return "load-failed"
	}
	return "unknown"
}

// State is the per-session quiz state. Transitions are pure; the caller
// performs generation and hands the result to Apply together with the
// token the transition returned.
type State struct {
	Topic         challenge.Topic
	Challenge     *challenge.Challenge // nil while loading or after a failed load
	Completed     int                  // challenges solved and advanced past
	Feedback      string
	AnswerCorrect bool
	Phase         Phase
	LoadErr       error

	token uint64
}

// NewState returns an idle state with no topic.
func NewState() *State {
	return &State{}
}

// Token identifies the load currently in flight.
func (s *State) Token() uint64 {
	return s.token
}

// ChallengeNumber is the 1-based number of the displayed challenge.
func (s *State) ChallengeNumber() int {
	return s.Completed + 1
}

// SelectTopic switches to topic and resets progress. Selecting the current
// topic again also resets and regenerates.
func (s *State) SelectTopic(topic challenge.Topic) uint64 {
	s.Topic = topic
	s.Completed = 0
	return s.startLoad()
}

// Submit checks choice against the displayed challenge. Once solved,
// further submissions change nothing and report true.
func (s *State) Submit(choice string) (bool, error) {
	switch s.Phase {
	case PhaseCorrect:
		return true, nil
	case PhaseAwaiting, PhaseIncorrect:
	default:
		return false, ErrNoChallenge
	}

	if s.Challenge.IsCorrect(choice) {
		s.Phase = PhaseCorrect
		s.Feedback = FeedbackCorrect
		s.AnswerCorrect = true
		return true, nil
	}

	s.Phase = PhaseIncorrect
	s.Feedback = FeedbackIncorrect
	return false, nil
}

// Advance counts the solved challenge and starts loading the next one.
func (s *State) Advance() (uint64, error) {
	if s.Phase != PhaseCorrect {
		return 0, ErrNotSolved
	}
	s.Completed++
	return s.startLoad(), nil
}

// Retry reloads after a failed generation without touching progress.
func (s *State) Retry() (uint64, error) {
	if s.Phase != PhaseLoadFailed {
		return 0, ErrNotFailed
	}
	return s.startLoad(), nil
}

// Apply stores a generation result. Results for a superseded load are
// dropped and Apply reports false.
func (s *State) Apply(token uint64, c *challenge.Challenge, err error) bool {
	if token != s.token || s.Phase != PhaseLoading {
		return false
	}

	if err == nil && c == nil {
		err = challenge.ErrNoChallenge
	}
	if err != nil {
		s.Phase = PhaseLoadFailed
		s.Challenge = nil
		s.LoadErr = err
		return true
	}

	s.Phase = PhaseAwaiting
	s.Challenge = c
	s.LoadErr = nil
	return true
}

// Stats returns the derived progress numbers.
func (s *State) Stats() Stats {
	return StatsFor(s.Completed)
}

func (s *State) startLoad() uint64 {
	s.token++
	s.Phase = PhaseLoading
	s.Challenge = nil
	s.Feedback = ""
	s.AnswerCorrect = false
	s.LoadErr = nil
	return s.token
}
