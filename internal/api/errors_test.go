package api

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Message(t *testing.T) {
	assert.EqualError(t, &Error{Kind: KindServer, Status: 400, Message: "bad input"}, "bad input")
	assert.EqualError(t, &Error{Kind: KindServer, Status: 503}, "server error: status 503")
	assert.EqualError(t, &Error{Kind: KindNetwork, Err: errors.New("connection refused")}, "network error: connection refused")
	assert.EqualError(t, &Error{Kind: KindUnauthorized}, "unauthorized error")
}

func TestKindPredicates(t *testing.T) {
	wrapped := fmt.Errorf("fetching jobs: %w", &Error{Kind: KindUnauthorized, Status: 401})

	assert.True(t, IsUnauthorized(wrapped))
	assert.False(t, IsServer(wrapped))
	assert.False(t, IsNetwork(wrapped))
	assert.False(t, IsUnauthorized(errors.New("plain")))
}

func TestValidationError(t *testing.T) {
	cause := errors.New("Title is required")
	err := ValidationError(cause)

	assert.True(t, IsValidation(err))
	assert.EqualError(t, err, "Title is required")
	assert.ErrorIs(t, err, cause)
}
