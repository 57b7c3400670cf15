package glib

import "github.com/glibgo/glib-go/internal/ffi"

// Version is the wrapper version, populated at build time via ldflags. In
// development it defaults to v0.0.0-dev.
var Version = "v0.0.0-dev"

// WrapperVersion returns the version of these bindings.
func WrapperVersion() string { return Version }

// RuntimeVersion returns the version of the GLib library the binary is
// linked against, or "" when the native bindings are not built in.
func RuntimeVersion() string { return ffi.RuntimeVersion() }
