package glib

import (
	"sync"
	"unsafe"

	"github.com/glibgo/glib-go/internal/ffi"
)

// TypeRegistry is the seam between this layer and the foreign object system.
// It captures exactly the registrar calls the wrapper makes: type lookup,
// interface registration, prerequisite attachment, property installation,
// signal registration and interface peeking.
//
// The default registry is backed by the native GObject library through
// internal/ffi. Tests substitute the in-memory implementation from
// pkg/glib/mockreg via UseRegistry.
type TypeRegistry interface {
	// TypeFromName returns the Type registered under name, or TypeInvalid.
	TypeFromName(name string) Type

	// TypeName returns the name t was registered under, or "".
	TypeName(t Type) string

	// IsA reports whether t is a-kind-of is.
	IsA(t, is Type) bool

	// RegisterInterface registers a new interface-kind type. The registrar
	// invokes init exactly once, before the first implementor of the
	// interface is instantiated, with a borrowed pointer to the interface
	// struct it owns.
	RegisterInterface(name string, classSize uintptr, init func(iface unsafe.Pointer)) (Type, error)

	// AddPrerequisite requires every implementor of iface to satisfy prereq.
	// The registrar checks the constraint when an implementation is added,
	// not here.
	AddPrerequisite(iface, prereq Type)

	// InstallProperty installs spec on the interface struct at iface. Only
	// valid while the registrar is initializing that interface.
	InstallProperty(iface unsafe.Pointer, spec *ParamSpec) error

	// RegisterSignal registers spec against the type t.
	RegisterSignal(t Type, spec *Signal) error

	// InterfacePeek resolves obj's implementation of iface, or nil.
	InterfacePeek(obj *Object, iface Type) unsafe.Pointer

	// InstanceType returns the dynamic type of the instance at ptr, or
	// TypeInvalid when ptr does not point at a known instance.
	InstanceType(ptr unsafe.Pointer) Type
}

var (
	registryMu sync.RWMutex
	registry   TypeRegistry = nativeRegistry{}
)

// Registry returns the registry currently in use.
func Registry() TypeRegistry {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return registry
}

// UseRegistry swaps the process-wide registry and returns the previous one.
// Intended for tests; types registered with one registry are meaningless to
// another, so swapping after registrations have happened mixes identifier
// spaces. Production code always runs on the native registry.
func UseRegistry(r TypeRegistry) TypeRegistry {
	if r == nil {
		panic("glib: UseRegistry(nil)")
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	prev := registry
	registry = r
	return prev
}

// nativeRegistry adapts internal/ffi to the TypeRegistry interface. It is a
// stateless view of the process-global native registry.
type nativeRegistry struct{}

func (nativeRegistry) TypeFromName(name string) Type {
	return Type(ffi.TypeFromName(name))
}

func (nativeRegistry) TypeName(t Type) string {
	return ffi.TypeName(uintptr(t))
}

func (nativeRegistry) IsA(t, is Type) bool {
	return ffi.TypeIsA(uintptr(t), uintptr(is))
}

func (nativeRegistry) RegisterInterface(name string, classSize uintptr, init func(unsafe.Pointer)) (Type, error) {
	t, err := ffi.RegisterInterface(name, classSize, init)
	return Type(t), err
}

func (nativeRegistry) AddPrerequisite(iface, prereq Type) {
	ffi.AddInterfacePrerequisite(uintptr(iface), uintptr(prereq))
}

func (nativeRegistry) InstallProperty(iface unsafe.Pointer, spec *ParamSpec) error {
	return ffi.InterfaceInstallProperty(iface, spec.info)
}

func (nativeRegistry) RegisterSignal(t Type, spec *Signal) error {
	_, err := ffi.SignalNew(uintptr(t), spec.info())
	return err
}

func (nativeRegistry) InterfacePeek(obj *Object, iface Type) unsafe.Pointer {
	return ffi.TypeInterfacePeek(obj.UnsafePointer(), uintptr(iface))
}

func (nativeRegistry) InstanceType(ptr unsafe.Pointer) Type {
	return Type(ffi.InstanceType(ptr))
}
