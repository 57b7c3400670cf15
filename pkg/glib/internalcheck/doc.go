// Package internalcheck holds repository policy tests.
//
// The checks here are not part of the public API; they load the module's own
// source and fail when a structural rule is broken, such as cgo leaking out
// of internal/ffi.
package internalcheck
