package challenge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStructuralValidator(t *testing.T) {
	v := &StructuralValidator{}
	ok := func() *Challenge {
		return &Challenge{Question: "q", Choices: []string{"a", "b", "c", "d"}, Answer: "c"}
	}

	assert.Nil(t, v.Validate(ok()))

	c := ok()
	c.Question = "  "
	assert.NotNil(t, v.Validate(c))

	c = ok()
	c.Choices = c.Choices[:3]
	assert.NotNil(t, v.Validate(c))

	c = ok()
	c.Answer = "e"
	verr := v.Validate(c)
	if assert.NotNil(t, verr) {
		assert.Equal(t, "structural", verr.Validator)
		assert.ErrorIs(t, verr, ErrNoChallenge)
	}
}

func TestDistinctChoicesValidator(t *testing.T) {
	v := &DistinctChoicesValidator{}

	assert.Nil(t, v.Validate(&Challenge{Choices: []string{"a", "b", "c", "d"}}))
	assert.NotNil(t, v.Validate(&Challenge{Choices: []string{"a", "b", "a", "d"}}))
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("CODEQUEST_CHALLENGE_FORMAT", "json")
	t.Setenv("CODEQUEST_LLM_TIMEOUT", "15s")

	cfg, err := ConfigFromEnv()
	assert.NoError(t, err)
	assert.Equal(t, ModeJSON, cfg.Mode)
	assert.Equal(t, "15s", cfg.Timeout.String())
	assert.Len(t, cfg.Validators, 2)

	t.Setenv("CODEQUEST_CHALLENGE_FORMAT", "yaml")
	_, err = ConfigFromEnv()
	assert.Error(t, err)

	t.Setenv("CODEQUEST_CHALLENGE_FORMAT", "")
	t.Setenv("CODEQUEST_LLM_TIMEOUT", "soon")
	_, err = ConfigFromEnv()
	assert.Error(t, err)
}
