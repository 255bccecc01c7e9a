package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thedevhaider/dating-network/internal/models"
)

func TestValidateRegisterInput(t *testing.T) {
	tests := []struct {
		name    string
		req     models.RegisterRequest
		isValid bool
		errors  map[string]string
	}{
		{
			name:    "valid input",
			req:     models.RegisterRequest{Name: "Test User", Email: "test@example.com"},
			isValid: true,
			errors:  map[string]string{},
		},
		{
			name:    "everything missing",
			req:     models.RegisterRequest{},
			isValid: false,
			errors: map[string]string{
				"name":  "name is required",
				"email": "email is required",
			},
		},
		{
			name:    "name too short",
			req:     models.RegisterRequest{Name: "a", Email: "test@example.com"},
			isValid: false,
			errors:  map[string]string{"name": "name must be 2 to 30 Characters long"},
		},
		{
			name:    "name too long",
			req:     models.RegisterRequest{Name: strings.Repeat("a", 31), Email: "test@example.com"},
			isValid: false,
			errors:  map[string]string{"name": "name must be 2 to 30 Characters long"},
		},
		{
			name:    "invalid email",
			req:     models.RegisterRequest{Name: "Test User", Email: "not-an-email"},
			isValid: false,
			errors:  map[string]string{"email": "Incorrect Email"},
		},
		{
			// Both the length and required checks fire for an empty
			// name; the required message is written last and wins.
			name:    "empty name gets the required message",
			req:     models.RegisterRequest{Name: "", Email: "test@example.com"},
			isValid: false,
			errors:  map[string]string{"name": "name is required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateRegisterInput(tt.req)
			assert.Equal(t, tt.isValid, result.IsValid)
			assert.Equal(t, tt.errors, result.Errors)
		})
	}
}
