package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passport/internal/usecase"
)

func TestFields_RegistrationInput(t *testing.T) {
	cv := New()

	err := cv.Validate(&usecase.RegisterUserInput{
		Name:                 "Jo",
		Email:                "not-an-email",
		Password:             "secret123",
		PasswordConfirmation: "different",
	})
	require.Error(t, err)

	fields := Fields(err)
	assert.Equal(t, "Name must be at least 3 characters", fields["name"])
	assert.Equal(t, "Please inform a valid email address", fields["email"])
	assert.Equal(t, "PasswordConfirmation doesn't match Password", fields["passwordConfirmation"])
	assert.NotContains(t, fields, "password")
}

func TestFields_MissingEverything(t *testing.T) {
	cv := New()

	err := cv.Validate(&usecase.RegisterUserInput{})
	require.Error(t, err)

	fields := Fields(err)
	assert.Len(t, fields, 4)
	assert.Equal(t, "Name is required", fields["name"])
}

func TestFields_NonValidationError(t *testing.T) {
	fields := Fields(assert.AnError)
	assert.Equal(t, map[string]string{"_request": "Invalid request body"}, fields)
}

func TestValidate_ValidInput(t *testing.T) {
	cv := New()

	assert.NoError(t, cv.Validate(&usecase.RegisterUserInput{
		Name:                 "Ann",
		Email:                "ann@x.com",
		Password:             "secret123",
		PasswordConfirmation: "secret123",
	}))
	assert.NoError(t, cv.Validate(&usecase.LoginInput{
		Email:    "ann@x.com",
		Password: "secret123",
	}))
}
