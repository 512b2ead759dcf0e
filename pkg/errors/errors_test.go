package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromErrorKeepsTypedErrors(t *testing.T) {
	wrapped := fmt.Errorf("load: %w", Clone(ErrNotFound, "leave request not found"))

	appErr := FromError(wrapped)
	assert.Equal(t, ErrNotFound.Code, appErr.Code)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
	assert.Equal(t, "leave request not found", appErr.Message)
}

func TestFromErrorWrapsUnknownErrors(t *testing.T) {
	cause := stdErrors.New("boom")

	appErr := FromError(cause)
	assert.Equal(t, ErrInternal.Code, appErr.Code)
	assert.ErrorIs(t, appErr, cause)
}

func TestCloneDoesNotMutateOriginal(t *testing.T) {
	clone := Clone(ErrInvalidTransition, "Rejected cannot become Reimbursed")

	assert.Equal(t, "status transition not allowed", ErrInvalidTransition.Message)
	assert.Equal(t, http.StatusConflict, clone.Status)
	assert.Nil(t, FromError(nil))
}
