package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// schemaSet compiles each Schema once, keyed by name.
type schemaSet struct {
	mu       sync.Mutex
	compiled map[string]*jsonschema.Schema
}

var schemas = &schemaSet{compiled: make(map[string]*jsonschema.Schema)}

func (s *schemaSet) get(schema *Schema) (*jsonschema.Schema, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.compiled[schema.Name]; ok {
		return c, nil
	}

	raw, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema %q: %w", schema.Name, err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode schema %q: %w", schema.Name, err)
	}

	url := "schema://" + schema.Name + ".json"
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("add schema %q: %w", schema.Name, err)
	}
	c, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile schema %q: %w", schema.Name, err)
	}

	s.compiled[schema.Name] = c
	return c, nil
}

// validateResponse checks a structured reply against schema. A nil schema
// accepts anything. Failures are *ErrInvalidResponse.
func validateResponse(schema *Schema, content json.RawMessage) error {
	if schema == nil {
		return nil
	}

	invalid := func(err error) error {
		return &ErrInvalidResponse{Content: content, Err: err}
	}

	v, err := jsonschema.UnmarshalJSON(bytes.NewReader(content))
	if err != nil {
		return invalid(fmt.Errorf("invalid JSON: %w", err))
	}

	compiled, err := schemas.get(schema)
	if err != nil {
		return invalid(err)
	}
	if err := compiled.Validate(v); err != nil {
		return invalid(fmt.Errorf("schema %q: %w", schema.Name, err))
	}
	return nil
}
