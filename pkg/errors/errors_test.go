package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_ErrorIncludesCause(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := NewNetworkError("request to /tenders failed", cause)

	assert.Contains(t, err.Error(), "request to /tenders failed")
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, cause, stderrors.Unwrap(err))
}

func TestTypePredicates(t *testing.T) {
	assert.True(t, IsValidation(NewValidationError("bad input")))
	assert.True(t, IsNotFound(NewNotFoundError("reminder")))
	assert.True(t, IsNetwork(NewNetworkError("down", nil)))
	assert.True(t, IsExternal(NewExternalError("server said no", 500)))
	assert.True(t, IsMirror(NewMirrorError("save", stderrors.New("boom"))))
	assert.True(t, IsType(NewTimeoutError("GET /files"), ErrorTypeTimeout))

	assert.False(t, IsValidation(NewNotFoundError("x")))
	assert.False(t, IsNotFound(stderrors.New("plain")))
}

func TestGetAppError_UnwrapsThroughWrapping(t *testing.T) {
	inner := NewExternalError("detail from server", 422)
	wrapped := fmt.Errorf("loading tenders: %w", inner)

	got := GetAppError(wrapped)
	require.NotNil(t, got)
	assert.Equal(t, ErrorTypeExternal, got.Type)
	assert.Equal(t, 422, got.HTTPStatus)

	assert.Nil(t, GetAppError(stderrors.New("plain")))
}

func TestWrap(t *testing.T) {
	assert.NoError(t, Wrap(nil, "nothing"))

	inner := NewValidationError("email is invalid")
	wrapped := Wrap(inner, "failed to set reminder")

	require.Error(t, wrapped)
	assert.True(t, IsValidation(wrapped), "wrapping preserves the inner type")
	assert.Contains(t, wrapped.Error(), "failed to set reminder")
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "email is invalid", UserMessage(NewValidationError("email is invalid")))
	assert.Equal(t, "disk full", UserMessage(stderrors.New("disk full")))
	assert.Equal(t, "", UserMessage(nil))
}

func TestWithHTTPStatus(t *testing.T) {
	err := NewExternalError("oops", 500).WithHTTPStatus(503).WithCode("UPSTREAM_DOWN")
	assert.Equal(t, 503, err.HTTPStatus)
	assert.Equal(t, "UPSTREAM_DOWN", err.Code)
}
