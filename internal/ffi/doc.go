// Package ffi contains all CGO bindings to the GObject type system.
//
// # Design Principles
//
//  1. Isolation: ALL CGO code lives in this package. No other package may
//     import "C". This keeps unsafe-memory interpretation at one boundary.
//
//  2. Minimal Surface: only the registrar calls the wrapper layer actually
//     needs are exposed (type lookup, interface registration, prerequisite
//     attachment, property installation, signal registration, interface peek).
//
//  3. Ownership: C strings are allocated and freed within each call. Raw
//     pointers into class or interface memory are returned to pkg/glib which
//     wraps them before they reach a consumer.
//
//  4. Callbacks: exactly one function crosses from C back into Go, the
//     interface-init trampoline. It resolves the registered init callback by
//     the interface's GType and never interprets the class memory itself.
//
// Builds without cgo (or on Windows) compile against the stub implementation,
// which reports ErrNotBuilt on any operation that would need the native
// library.
package ffi
