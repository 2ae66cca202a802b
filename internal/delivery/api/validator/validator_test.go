package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Message string `validate:"required"`
	Kind    string `validate:"omitempty,oneof=manual automatic"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	tests := []struct {
		name     string
		input    sample
		expected string
	}{
		{name: "valid", input: sample{Message: "hello", Kind: "manual"}},
		{name: "kind optional", input: sample{Message: "hello"}},
		{name: "missing message", input: sample{Kind: "manual"}, expected: "field 'Message' failed on the 'required' rule"},
		{name: "unknown kind", input: sample{Message: "hello", Kind: "urgent"}, expected: "field 'Kind' failed on the 'oneof' rule"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.input)
			if tt.expected == "" {
				assert.NoError(t, err)

				return
			}
			assert.EqualError(t, err, tt.expected)
		})
	}
}
