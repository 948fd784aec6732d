package clipboard

import (
	"runtime"
	"testing"
)

func TestErrNoUtilityMessage(t *testing.T) {
	err := &ErrNoUtility{OS: "linux"}
	if err.Error() == "" {
		t.Error("error message should not be empty")
	}

	other := &ErrNoUtility{OS: "plan9"}
	if other.Error() == "" {
		t.Error("error message should not be empty for unsupported platforms")
	}
}

func TestAvailableDoesNotPanic(t *testing.T) {
	available := Available()

	// pbcopy ships with macOS; clip ships with Windows.
	switch runtime.GOOS {
	case "darwin", "windows":
		if !available {
			t.Errorf("clipboard should be available on %s", runtime.GOOS)
		}
	}
}
