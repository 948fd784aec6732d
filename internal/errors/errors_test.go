package errors

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"
)

func TestWrapPreservesCauseChain(t *testing.T) {
	cause := fs.ErrNotExist
	err := Wrap(cause, ErrCodeStorageFailure, "read failed")

	if !stderrors.Is(err, fs.ErrNotExist) {
		t.Error("wrapped error should match its cause with errors.Is")
	}
	if !strings.Contains(err.Error(), "read failed") {
		t.Errorf("message missing from Error(): %q", err.Error())
	}
}

func TestHasCode(t *testing.T) {
	err := NotFound("my-prompt")
	if !HasCode(err, ErrCodeNotFound) {
		t.Error("HasCode should match the error's own code")
	}
	if HasCode(err, ErrCodeNetwork) {
		t.Error("HasCode should not match a different code")
	}

	// Also through a fmt wrapper.
	wrapped := fmt.Errorf("context: %w", err)
	if !HasCode(wrapped, ErrCodeNotFound) {
		t.Error("HasCode should see through fmt.Errorf wrapping")
	}
}

func TestGetAppErrorConvertsForeignErrors(t *testing.T) {
	appErr := GetAppError(stderrors.New("plain"))
	if appErr.Code != ErrCodeStorageFailure {
		t.Errorf("foreign errors should default to STORAGE_FAILURE, got %s", appErr.Code)
	}
}

func TestCLIHandler(t *testing.T) {
	var buf bytes.Buffer
	handler := NewCLIHandler(&buf)

	if code := handler.Handle(nil); code != 0 {
		t.Errorf("nil error should exit 0, got %d", code)
	}

	err := NotFound("thing").WithSuggestion("did you mean \"things\"?")
	if code := handler.Handle(err); code != 1 {
		t.Errorf("error should exit 1, got %d", code)
	}
	out := buf.String()
	if !strings.Contains(out, "prompt not found: thing") {
		t.Errorf("output missing message: %q", out)
	}
	if !strings.Contains(out, "did you mean") {
		t.Errorf("output missing suggestion: %q", out)
	}
}
