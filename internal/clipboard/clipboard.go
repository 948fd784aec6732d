// Package clipboard copies text to the system clipboard by shelling out to
// the platform utility, so the binary carries no cgo or display-server
// dependency.
package clipboard

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// ErrNoUtility is returned when no clipboard utility is installed.
type ErrNoUtility struct {
	OS string
}

func (e *ErrNoUtility) Error() string {
	switch e.OS {
	case "linux":
		return "no clipboard utility found; install xclip, xsel, or wl-clipboard"
	default:
		return fmt.Sprintf("clipboard not supported on %s", e.OS)
	}
}

// Copy writes text to the system clipboard.
func Copy(text string) error {
	switch runtime.GOOS {
	case "darwin":
		return pipe(text, "pbcopy")
	case "windows":
		return pipe(text, "cmd", "/c", "clip")
	case "linux":
		return copyLinux(text)
	default:
		return &ErrNoUtility{OS: runtime.GOOS}
	}
}

// copyLinux tries the common X11 utilities, then the Wayland one.
func copyLinux(text string) error {
	attempts := [][]string{
		{"xclip", "-selection", "clipboard"},
		{"xsel", "--clipboard", "--input"},
		{"wl-copy"},
	}

	tried := false
	var lastErr error
	for _, argv := range attempts {
		if _, err := exec.LookPath(argv[0]); err != nil {
			continue
		}
		tried = true
		if lastErr = pipe(text, argv[0], argv[1:]...); lastErr == nil {
			return nil
		}
	}

	if tried {
		return fmt.Errorf("clipboard utility failed: %w", lastErr)
	}
	return &ErrNoUtility{OS: "linux"}
}

func pipe(text, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}

// Available reports whether a clipboard utility is present on this system.
func Available() bool {
	switch runtime.GOOS {
	case "darwin":
		return lookPathOK("pbcopy")
	case "windows":
		return true
	case "linux":
		return lookPathOK("xclip") || lookPathOK("xsel") || lookPathOK("wl-copy")
	default:
		return false
	}
}

func lookPathOK(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
