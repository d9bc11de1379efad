package validation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	apperrors "github.com/TinyTaru/VintagestoryModmaker/internal/application/errors"
)

// DocumentValidator validates documents against the reflected schemas.
// Compiled schemas are cached; it is safe for concurrent use.
type DocumentValidator struct {
	mu       sync.Mutex
	compiled map[string]*jsonschema.Schema
}

// NewDocumentValidator creates a new document validator.
func NewDocumentValidator() *DocumentValidator {
	return &DocumentValidator{compiled: make(map[string]*jsonschema.Schema)}
}

// Validate checks data, a JSON document, against the schema for kind.
// Schema violations are returned as an *apperrors.ValidationError with one
// detail per failing location.
func (v *DocumentValidator) Validate(kind string, data []byte) error {
	schema, err := v.schema(kind)
	if err != nil {
		return err
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	var doc any
	if err := decoder.Decode(&doc); err != nil {
		return apperrors.NewValidationError(kind, fmt.Sprintf("invalid JSON: %v", err))
	}

	if err := schema.Validate(doc); err != nil {
		if validationErr, ok := err.(*jsonschema.ValidationError); ok {
			return apperrors.NewValidationError(kind, "document does not match schema", collectMessages(validationErr)...)
		}
		return fmt.Errorf("%s validation failed: %w", kind, err)
	}

	return nil
}

func (v *DocumentValidator) schema(kind string) (*jsonschema.Schema, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if s, ok := v.compiled[kind]; ok {
		return s, nil
	}

	schemaBytes, err := SchemaJSON(kind)
	if err != nil {
		return nil, err
	}

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	url := kind + ".schema.json"
	if err := compiler.AddResource(url, bytes.NewReader(schemaBytes)); err != nil {
		return nil, fmt.Errorf("failed to add %s schema: %w", kind, err)
	}

	s, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("failed to compile %s schema: %w", kind, err)
	}
	v.compiled[kind] = s
	return s, nil
}

// collectMessages flattens a validation error tree into "location: message" lines.
func collectMessages(err *jsonschema.ValidationError) []string {
	var messages []string

	var collect func(*jsonschema.ValidationError)
	collect = func(e *jsonschema.ValidationError) {
		if e.Message != "" && len(e.Causes) == 0 {
			location := e.InstanceLocation
			if location == "" {
				location = "(root)"
			}
			messages = append(messages, fmt.Sprintf("%s: %s", location, e.Message))
		}
		for _, cause := range e.Causes {
			collect(cause)
		}
	}
	collect(err)

	if len(messages) == 0 {
		messages = append(messages, err.Error())
	}
	return messages
}
