package glib

import "github.com/glibgo/glib-go/internal/ffi"

// Sentinels re-exported from the binding layer so callers can detect an
// unlinked native library without importing internal packages.
var (
	// ErrNotBuilt reports that the native GObject bindings were not linked
	// into the current binary.
	ErrNotBuilt = ffi.ErrNotBuilt

	// ErrCGONotEnabled signals that the binary was compiled without cgo.
	ErrCGONotEnabled = ffi.ErrCGONotEnabled
)
