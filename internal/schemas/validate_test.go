package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRequirementOverride_Valid(t *testing.T) {
	body := `{
		"qualification": "Bachelor",
		"experience": {"min": 2, "max": 5},
		"languages": ["english", "malay"],
		"technicalSkills": ["go"],
		"softSkills": [],
		"gender": "All",
		"rejectedApplications": ["7f9c24e5-2f8a-4c62-9f16-8d9a54f0c5a1"],
		"date": {"year": 2025, "month": 3}
	}`

	assert.NoError(t, ValidateRequirementOverride([]byte(body)))
}

func TestValidateRequirementOverride_EmptyObject(t *testing.T) {
	assert.NoError(t, ValidateRequirementOverride([]byte(`{}`)))
}

func TestValidateRequirementOverride_WrongTypes(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"experience as string", `{"experience": "lots"}`},
		{"negative min", `{"experience": {"min": -1}}`},
		{"languages as string", `{"languages": "english"}`},
		{"month out of range", `{"date": {"year": 2025, "month": 13}}`},
		{"date missing month", `{"date": {"year": 2025}}`},
		{"unknown gender", `{"gender": "Robot"}`},
		{"rejected ids not uuids", `{"rejectedApplications": [42]}`},
		{"unknown field", `{"salary": 90000}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequirementOverride([]byte(tt.body))
			require.Error(t, err)

			validationErr, ok := err.(*ValidationError)
			require.True(t, ok, "error should be ValidationError type, got %T", err)
			assert.Greater(t, len(validationErr.Errors), 0)
		})
	}
}

func TestValidateRequirementOverride_MalformedJSON(t *testing.T) {
	err := ValidateRequirementOverride([]byte(`{ not json }`))
	require.Error(t, err)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "experience.min", Message: "must be an integer"},
			{Field: "languages", Message: "must be an array"},
		},
	}

	errorMsg := err.Error()
	assert.Contains(t, errorMsg, "validation failed")
	assert.Contains(t, errorMsg, "experience.min")
	assert.Contains(t, errorMsg, "languages")
}
