package clipboard

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stub(t *testing.T, sys, osc func(string) error) {
	t.Helper()
	prevSys, prevOSC := systemWrite, osc52Write
	systemWrite, osc52Write = sys, osc
	t.Cleanup(func() {
		systemWrite, osc52Write = prevSys, prevOSC
	})
}

func TestCopyPrefersSystemClipboard(t *testing.T) {
	var got string
	stub(t, func(s string) error { got = s; return nil }, func(string) error {
		t.Fatal("osc52 should not be used")
		return nil
	})

	method, err := Copy("echo hi")
	require.NoError(t, err)
	assert.Equal(t, MethodSystem, method)
	assert.Equal(t, "echo hi", got)
}

func TestCopyFallsBackToOSC52(t *testing.T) {
	var got string
	stub(t, func(string) error { return errors.New("exit status 1") }, func(s string) error { got = s; return nil })

	method, err := Copy("echo hi")
	require.NoError(t, err)
	assert.Equal(t, MethodOSC52, method)
	assert.Equal(t, "terminal", method.String())
	assert.Equal(t, "echo hi", got)
}

func TestCopyReportsBothFailures(t *testing.T) {
	stub(t, func(string) error { return errors.New("no xclip") }, func(string) error { return ErrOSC52Unavailable })

	err := WriteAll("x")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOSC52Unavailable)
}

func TestWriteSequencePlain(t *testing.T) {
	t.Setenv("TMUX", "")
	t.Setenv("TERM", "xterm-256color")

	var buf bytes.Buffer
	require.NoError(t, writeSequence(&buf, "hi"))
	// base64("hi") inside an OSC 52 sequence
	assert.Contains(t, buf.String(), "\x1b]52;c;aGk=")
}

func TestOSC52CanBeDisabled(t *testing.T) {
	t.Setenv("TERM", "xterm")
	t.Setenv("NBNAV_DISABLE_OSC52", "1")
	assert.False(t, osc52Enabled())

	t.Setenv("NBNAV_DISABLE_OSC52", "")
	assert.True(t, osc52Enabled())

	t.Setenv("TERM", "dumb")
	assert.False(t, osc52Enabled())
}
