package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"issuetracker/internal/shared/errors"
)

type sampleRequest struct {
	Name    string `json:"name" validate:"required,max=5"`
	Email   string `json:"email" validate:"omitempty,email"`
	UserIDs []uint `json:"user_ids" validate:"min=1"`
}

func TestValidateStruct(t *testing.T) {
	err := ValidateStruct(sampleRequest{Name: "ok", UserIDs: []uint{1}})
	assert.NoError(t, err)

	err = ValidateStruct(sampleRequest{Name: "toolong", Email: "bad", UserIDs: nil})
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
	assert.Contains(t, appErr.Details, "name must be at most 5 characters long")
	assert.Contains(t, appErr.Details, "email must be a valid email address")
	assert.Contains(t, appErr.Details, "user_ids must contain at least 1 items")
}
