package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type petInput struct {
	Name     string  `json:"name" validate:"required"`
	Category string  `json:"category" validate:"required"`
	Email    string  `json:"email" validate:"omitempty,email"`
	Amount   float64 `json:"amount" validate:"gte=0"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name        string
		input       petInput
		expectErr   bool
		expectedMsg string
	}{
		{
			name:  "Valid input",
			input: petInput{Name: "Rex", Category: "dog"},
		},
		{
			name:        "Missing required field",
			input:       petInput{Name: "Rex"},
			expectErr:   true,
			expectedMsg: "Category is required",
		},
		{
			name:        "Several failures reported together",
			input:       petInput{Email: "not-an-email", Amount: -1},
			expectErr:   true,
			expectedMsg: "Name is required; Category is required; Email must be a valid email; Amount failed gte 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.input)
			if !tt.expectErr {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput))
			assert.Equal(t, tt.expectedMsg, Message(err))
		})
	}
}
