//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestApplicationExit(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	err := tf.StartWithConfig()
	require.NoError(t, err, "Failed to start app")

	// Wait for TUI to initialize and render
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("nbnav"), "Should show nbnav title")
	require.True(t, tf.SeePlain("EDIT"), "Input cell should be focused on startup")

	// Set up exit monitoring before quitting
	done := make(chan error, 1)
	go func() {
		done <- tf.cmd.Wait()
	}()

	// Leave the editor, then quit from command mode
	require.NoError(t, tf.Escape())
	require.True(t, tf.SeePlain("COMMAND"), "Escape should leave edit mode")
	t.Logf("Sending 'q' to quit application...")
	tf.Quit()

	// Wait for graceful shutdown
	select {
	case exitErr := <-done:
		if exitErr == nil {
			t.Logf("Process exited cleanly with 'q' command")
		} else {
			t.Logf("Process exited with 'q' command (exit code: %v)", exitErr)
		}
		return
	case <-time.After(1500 * time.Millisecond):
		// If 'q' didn't work within 1.5 seconds, use Ctrl+C
		t.Logf("'q' didn't work within 1.5 seconds, using Ctrl+C")
		tf.SendCtrlC()
	}

	// Wait for Ctrl+C to work
	select {
	case exitErr := <-done:
		t.Logf("Process exited with Ctrl+C (exit code: %v)", exitErr)
	case <-time.After(750 * time.Millisecond):
		t.Error("Application did not exit within total timeout")
		tf.DumpTailOnFail(t, "exit-failure", 4096) // Debug output
		tf.SendCtrlC()                             // Force exit again
	}
}

func TestApplicationExitFromEditor(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	err := tf.StartWithConfig()
	require.NoError(t, err, "Failed to start app")

	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("EDIT"), "Input cell should be focused on startup")

	done := make(chan error, 1)
	go func() {
		done <- tf.cmd.Wait()
	}()

	// 'q' is text while editing, ctrl+c always quits
	tf.Type("q")
	tf.SendCtrlC()

	select {
	case <-done:
		t.Logf("Process exited after ctrl+c in edit mode")
	case <-time.After(2 * time.Second):
		t.Fatal("app did not exit after ctrl+c")
	}
}
