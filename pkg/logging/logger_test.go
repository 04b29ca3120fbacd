package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerSharesSessionID(t *testing.T) {
	a, _ := NewLogger("dispatch")
	b, _ := NewLogger("assistant")

	require.NotNil(t, a)
	require.NotNil(t, b)
	assert.Equal(t, a.SessionID(), b.SessionID())
}

func TestLoggerWritesWithoutPanic(t *testing.T) {
	l, _ := NewLogger("test")
	require.NotNil(t, l)

	l.Debugf("debug %d", 1)
	l.Infof("info %s", "x")
	l.Warnf("warn")
	l.Errorf("error: %v", assert.AnError)

	assert.NoError(t, l.Close())
	assert.NoError(t, l.Close(), "close is idempotent")
}
