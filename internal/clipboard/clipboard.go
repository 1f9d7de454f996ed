// Package clipboard copies text to the system clipboard, falling back to an
// OSC52 escape sequence written to the controlling terminal.
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	sysclip "github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

// Method reports how text reached the clipboard
type Method uint8

const (
	MethodSystem Method = iota
	MethodOSC52
)

func (m Method) String() string {
	if m == MethodOSC52 {
		return "terminal"
	}
	return "system"
}

// ErrOSC52Unavailable is returned when the terminal cannot take OSC52
var ErrOSC52Unavailable = errors.New("OSC52 unavailable for this terminal")

var (
	systemWrite = sysclip.WriteAll
	osc52Write  = writeTTY
)

// Copy writes text to the clipboard
func Copy(text string) (Method, error) {
	sysErr := systemWrite(text)
	if sysErr == nil {
		return MethodSystem, nil
	}
	oscErr := osc52Write(text)
	if oscErr == nil {
		return MethodOSC52, nil
	}
	return MethodSystem, combineErrors(sysErr, oscErr)
}

// WriteAll is Copy without the method, for callers that only need the error
func WriteAll(text string) error {
	_, err := Copy(text)
	return err
}

func writeTTY(text string) error {
	if !osc52Enabled() {
		return ErrOSC52Unavailable
	}
	tty, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("open /dev/tty: %w", err)
	}
	defer tty.Close()
	return writeSequence(tty, text)
}

// writeSequence emits the OSC52 sequence wrapped for tmux or screen when needed
func writeSequence(w io.Writer, text string) error {
	termName := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	if os.Getenv("TMUX") != "" {
		// tmux setups differ on passthrough, so send both forms
		if _, err := osc52.New(text).WriteTo(w); err != nil {
			return err
		}
		_, err := osc52.New(text).Tmux().WriteTo(w)
		return err
	}
	if strings.HasPrefix(termName, "screen") {
		_, err := osc52.New(text).Screen().WriteTo(w)
		return err
	}
	_, err := osc52.New(text).WriteTo(w)
	return err
}

func osc52Enabled() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("NBNAV_DISABLE_OSC52"))) {
	case "1", "true", "yes", "on":
		return false
	}
	termName := strings.TrimSpace(os.Getenv("TERM"))
	return termName != "" && !strings.EqualFold(termName, "dumb")
}

func combineErrors(sysErr, oscErr error) error {
	if missingDisplay() {
		return fmt.Errorf("no GUI clipboard available; OSC52 fallback failed: %w", oscErr)
	}
	return fmt.Errorf("system clipboard failed: %v; OSC52 fallback failed: %w", sysErr, oscErr)
}

func missingDisplay() bool {
	return strings.TrimSpace(os.Getenv("DISPLAY")) == "" && strings.TrimSpace(os.Getenv("WAYLAND_DISPLAY")) == ""
}
