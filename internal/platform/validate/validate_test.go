// Copyright (c) 2026 Galereya. All rights reserved.

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galereya/api/internal/platform/apperr"
	"github.com/galereya/api/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "name", "Живопись", false},
		{"empty_string", "name", "", true},
		{"whitespace_only", "name", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, apperr.CodeMissingField, ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_MaxLen counts Unicode characters, not bytes. A 50-character
Cyrillic name is 100 bytes but must still pass a MaxLen of 50.
*/
func TestValidator_MaxLen(t *testing.T) {
	cyrillic50 := ""
	for i := 0; i < 50; i++ {
		cyrillic50 += "ж"
	}

	v := &validate.Validator{}
	v.MaxLen("name", cyrillic50, 50)
	assert.False(t, v.HasErrors())

	v = &validate.Validator{}
	v.MaxLen("name", cyrillic50+"ж", 50)
	assert.True(t, v.HasErrors())
}

/*
TestValidator_MissingOnly verifies that a chain where only required fields
failed reports MISSING_REQUIRED_FIELD with one detail per absent field.
*/
func TestValidator_MissingOnly(t *testing.T) {
	v := &validate.Validator{}
	err := v.
		Required("title", "").
		Required("imageUrl", "").
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)

	assert.Equal(t, apperr.CodeMissingField, ae.Code)
	require.Len(t, ae.Details, 2)
	assert.Equal(t, "title", ae.Details[0].Field)
	assert.Equal(t, "imageUrl", ae.Details[1].Field)
}

/*
TestValidator_MixedFailures verifies that any non-required failure demotes
the report to a generic VALIDATION_ERROR carrying all details.
*/
func TestValidator_MixedFailures(t *testing.T) {
	v := &validate.Validator{}
	err := v.
		Required("imageUrl", "").
		MaxLen("title", "аб", 1).
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)

	assert.Equal(t, apperr.CodeValidation, ae.Code)
	assert.Len(t, ae.Details, 2)
}

/*
TestValidator_Chain tests the fluent API (chaining multiple rules).
*/
func TestValidator_Chain(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("name", "Графика").
		MaxLen("name", "Графика", 50).
		Range("year", 2020, 1900, 2100).
		Err()

	assert.NoError(t, err)
	assert.False(t, v.HasErrors())
}
