package challenge

import "fmt"

// Validator checks a built challenge.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier, e.g. "structural".
	Name() string

	// Validate returns nil if the challenge passes.
	Validate(c *Challenge) *ValidationError
}

// ValidationError describes why a challenge failed validation.
type ValidationError struct {
	Validator string
	Message   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrNoChallenge }
