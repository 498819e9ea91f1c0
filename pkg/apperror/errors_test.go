package apperror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewOperationError_HidesCause(t *testing.T) {
	cause := errors.New("disk quota exceeded")
	err := NewOperationError("save bill", cause)

	assert.Equal(t, "Failed to save bill", err.Error())
	assert.Equal(t, http.StatusInternalServerError, err.Code)
	assert.ErrorIs(t, err, cause)
}

func TestGetAppError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantMessage string
	}{
		{
			name:        "not found passes through",
			err:         NewNotFoundError("Bill"),
			wantCode:    http.StatusNotFound,
			wantMessage: "Bill not found",
		},
		{
			name:        "plain error becomes generic internal error",
			err:         errors.New("boom"),
			wantCode:    http.StatusInternalServerError,
			wantMessage: "Internal server error",
		},
		{
			name:        "storage error",
			err:         NewStorageError(errors.New("connection refused")),
			wantCode:    http.StatusServiceUnavailable,
			wantMessage: "Storage unavailable",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			appErr := GetAppError(testCase.err)
			assert.Equal(t, testCase.wantCode, appErr.Code)
			assert.Equal(t, testCase.wantMessage, appErr.Message)
		})
	}
}

func TestIsStorageError(t *testing.T) {
	assert.True(t, IsStorageError(NewStorageError(errors.New("x"))))
	assert.False(t, IsStorageError(NewBadRequestError("x")))
	assert.False(t, IsStorageError(errors.New("x")))
}
