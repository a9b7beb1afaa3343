package challenge

import "strings"

// StructuralValidator checks the question is present, there are exactly
// four options, and the answer is one of them.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(c *Challenge) *ValidationError {
	if strings.TrimSpace(c.Question) == "" {
		return &ValidationError{Validator: v.Name(), Message: "question is empty"}
	}
	if len(c.Choices) != 4 {
		return &ValidationError{Validator: v.Name(), Message: "expected exactly 4 choices"}
	}
	for _, ch := range c.Choices {
		if ch == "" {
			return &ValidationError{Validator: v.Name(), Message: "choice is empty"}
		}
	}
	if c.AnswerIndex() < 0 {
		return &ValidationError{Validator: v.Name(), Message: "answer is not one of the choices"}
	}
	return nil
}

// DistinctChoicesValidator rejects duplicate options.
type DistinctChoicesValidator struct{}

func (v *DistinctChoicesValidator) Name() string { return "distinct-choices" }

func (v *DistinctChoicesValidator) Validate(c *Challenge) *ValidationError {
	seen := make(map[string]struct{}, len(c.Choices))
	for _, ch := range c.Choices {
		if _, dup := seen[ch]; dup {
			return &ValidationError{Validator: v.Name(), Message: "duplicate choice " + ch}
		}
		seen[ch] = struct{}{}
	}
	return nil
}
