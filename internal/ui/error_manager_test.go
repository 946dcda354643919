package ui

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorManager_ClearsMatchingGeneration(t *testing.T) {
	em := NewErrorManager(time.Millisecond)
	em.SetError(errors.New("disk full"))

	msg := em.ClearAfterDelay()()

	clear, ok := msg.(clearErrorMsg)
	require.True(t, ok)
	em.handleClear(clear)
	assert.False(t, em.HasError())
}

func TestErrorManager_StaleClearKeepsNewerError(t *testing.T) {
	em := NewErrorManager(time.Millisecond)
	em.SetError(errors.New("first"))
	stale := em.ClearAfterDelay()().(clearErrorMsg)

	em.SetError(errors.New("second"))
	em.handleClear(stale)

	require.True(t, em.HasError())
	assert.EqualError(t, em.GetError(), "second")
}
