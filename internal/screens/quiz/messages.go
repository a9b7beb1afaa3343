package quiz

import "github.com/abhisek/codequest/internal/challenge"

// challengeLoadedMsg carries a generation result back to the UI goroutine.
// Token ties it to the load that requested it.
type challengeLoadedMsg struct {
	Token     uint64
	Challenge *challenge.Challenge
	Err       error
}
