package unixmounts

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestLiveReadOnly(t *testing.T) {
	ro, err := LiveReadOnly(t.TempDir())
	if err != nil {
		t.Fatalf("LiveReadOnly: %v", err)
	}
	if ro {
		t.Fatal("fresh temp dir reports read-only")
	}
}

func TestLiveReadOnlyMissingPath(t *testing.T) {
	_, err := LiveReadOnly(filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Fatal("missing path did not error")
	}
	var e *Error
	if !errors.As(err, &e) || e.Op != "LiveReadOnly" {
		t.Fatalf("unexpected error shape: %v", err)
	}
}
