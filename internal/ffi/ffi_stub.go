//go:build !cgo || windows

package ffi

import "unsafe"

// Stub implementations for non-CGO builds or Windows. They let the package
// compile everywhere; registration attempts report ErrNotBuilt and queries
// return zero values.

func TypeFromName(string) uintptr { return 0 }

func TypeName(uintptr) string { return "" }

func TypeIsA(uintptr, uintptr) bool { return false }

func RegisterInterface(string, uintptr, func(unsafe.Pointer)) (uintptr, error) {
	return 0, ErrNotBuilt
}

func AddInterfacePrerequisite(uintptr, uintptr) {}

func InterfaceInstallProperty(unsafe.Pointer, PropertyInfo) error { return ErrNotBuilt }

func SignalNew(uintptr, SignalInfo) (uint, error) { return 0, ErrNotBuilt }

func TypeInterfacePeek(unsafe.Pointer, uintptr) unsafe.Pointer { return nil }

func InstanceType(unsafe.Pointer) uintptr { return 0 }

func RuntimeVersion() string { return "" }
