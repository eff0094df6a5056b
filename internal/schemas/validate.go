// Package schemas provides JSON Schema validation for incoming request bodies.
package schemas

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// requirementOverrideSchema constrains the screening request body: every field
// is optional, but present fields must carry the right shape. Malformed
// criteria are rejected here instead of silently scoring as zero.
const requirementOverrideSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"additionalProperties": false,
	"properties": {
		"qualification": {"type": "string"},
		"experience": {
			"type": "object",
			"additionalProperties": false,
			"properties": {
				"min": {"type": "integer", "minimum": 0},
				"max": {"type": "integer", "minimum": 0}
			}
		},
		"languages": {"type": "array", "items": {"type": "string"}},
		"technicalSkills": {"type": "array", "items": {"type": "string"}},
		"softSkills": {"type": "array", "items": {"type": "string"}},
		"gender": {"type": "string", "enum": ["", "All", "Male", "Female"]},
		"rejectedApplications": {
			"type": "array",
			"items": {"type": "string", "format": "uuid"}
		},
		"date": {
			"type": "object",
			"additionalProperties": false,
			"required": ["year", "month"],
			"properties": {
				"year": {"type": "integer", "minimum": 1900},
				"month": {"type": "integer", "minimum": 1, "maximum": 12}
			}
		}
	}
}`

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema: %s", e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ValidateRequirementOverride validates a screening request body against the
// requirement override schema.
func ValidateRequirementOverride(body []byte) error {
	return validateAgainst(requirementOverrideSchema, string(body))
}

// validateAgainst validates JSON content against schema content.
func validateAgainst(schemaContent, jsonContent string) error {
	schemaLoader := gojsonschema.NewStringLoader(schemaContent)
	documentLoader := gojsonschema.NewStringLoader(jsonContent)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
