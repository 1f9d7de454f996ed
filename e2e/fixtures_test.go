//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CreateTestWorkspace creates a temporary directory for the app's config and log
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	workspace, err := os.MkdirTemp("", "nbnav_e2e_*")
	if err != nil {
		return "", fmt.Errorf("failed to create workspace: %w", err)
	}
	tf.workspace = workspace
	return workspace, nil
}

// WriteConfig writes a config file into the workspace. Extra lines are
// appended verbatim to the [ui] table.
func (tf *TUITestFramework) WriteConfig(uiLines ...string) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}
	var b strings.Builder
	b.WriteString("version = 1\n\n[ui]\n")
	b.WriteString("activation_delay_ms = 10\n")
	for _, line := range uiLines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n[kernel]\nshell = [\"sh\", \"-c\"]\ntimeout_seconds = 5\n")
	b.WriteString("\n[logging]\nlevel = \"debug\"\n")
	fmt.Fprintf(&b, "file = %q\n", filepath.Join(tf.workspace, "nbnav.log"))

	path := filepath.Join(tf.workspace, "config.toml")
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", fmt.Errorf("failed to write config: %w", err)
	}
	return path, nil
}

// StartWithConfig creates a workspace and config and launches the app on it
func (tf *TUITestFramework) StartWithConfig(uiLines ...string) error {
	if _, err := tf.CreateTestWorkspace(); err != nil {
		return err
	}
	path, err := tf.WriteConfig(uiLines...)
	if err != nil {
		return err
	}
	return tf.StartApp("--config", path)
}
