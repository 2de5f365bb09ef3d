package common

import (
	"errors"
	"strings"
	"testing"
)

func TestWrapError(t *testing.T) {
	wrapped := WrapError(ErrConflict, "bring up wg0")

	if wrapped == nil {
		t.Fatal("WrapError should return non-nil error")
	}

	if !strings.Contains(wrapped.Error(), "bring up wg0") {
		t.Error("WrapError should include additional context")
	}

	if !strings.Contains(wrapped.Error(), ErrConflict.Error()) {
		t.Error("WrapError should include original error message")
	}

	if !errors.Is(wrapped, ErrConflict) {
		t.Error("errors.Is should match the wrapped sentinel")
	}

	if WrapError(nil, "context") != nil {
		t.Error("WrapError(nil) should return nil")
	}
}

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{
		ErrInvalidName,
		ErrScan,
		ErrConflict,
		ErrConfigMissing,
		ErrExec,
		ErrCommandFailed,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel %v should not match %v", a, b)
			}
		}
	}
}
