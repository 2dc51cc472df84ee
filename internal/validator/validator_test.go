package validator

import (
	"testing"

	"awards_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_SignupRequest(t *testing.T) {
	v := New()

	err := v.Validate(&dto.SignupRequest{Email: "a@x.com", Password: "password1"})
	assert.NoError(t, err)

	err = v.Validate(&dto.SignupRequest{Email: "not-an-email", Password: "password1"})
	require.Error(t, err)
	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "Must be a valid email address", vErr.Errors["email"])

	err = v.Validate(&dto.SignupRequest{Email: "a@x.com"})
	require.Error(t, err)
	vErr, ok = err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "This field is required", vErr.Errors["password"])

	err = v.Validate(&dto.SignupRequest{Email: "a@x.com", Password: "short"})
	require.Error(t, err)
	vErr, ok = err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors["password"], "at least 6")
}

func TestValidate_ReviewRequest(t *testing.T) {
	v := New()

	err := v.Validate(&dto.ReviewRequest{CategorySlug: "department"})
	require.Error(t, err)
	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "This field is required", vErr.Errors["userId"])
	assert.Equal(t, "This field is required", vErr.Errors["action"])
}
