package glib

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"unsafe"
)

// defaultClassSize is the size of a bare GTypeInterface header (two
// pointer-sized type fields). Interfaces that carry a vtable set
// InterfaceInfo.ClassSize to the size of their full struct.
const defaultClassSize = 2 * unsafe.Sizeof(uintptr(0))

// InterfaceInfo is the full description a defining party supplies for a new
// interface: a process-unique name, the prerequisite types, the properties
// and signals every implementor must carry, and two lifecycle hooks.
type InterfaceInfo struct {
	// Name is the type name to register. It must be unique in the whole
	// process; a collision is an unrecoverable programming error.
	Name string

	// Prerequisites lists types any implementor must already satisfy, either
	// by subclassing or by implementing them. The registrar enforces the
	// constraint when an implementation is added.
	Prerequisites Prerequisites

	// Properties are installed on the interface, in declaration order,
	// before InterfaceInit runs.
	Properties []*ParamSpec

	// Signals are registered against the interface type, in declaration
	// order, after properties and before InterfaceInit.
	Signals []*Signal

	// ClassSize overrides the size of the interface struct the runtime
	// allocates. Zero means a bare interface header.
	ClassSize uintptr

	// TypeInit runs once, right after the type identifier exists and before
	// Type returns it. It allows type-level customization ahead of first use.
	TypeInit func(*InitializingType)

	// InterfaceInit runs once per process, after properties and signals are
	// visible and before the first implementor is instantiated. Interfaces
	// use it to fill in default implementations on their struct.
	InterfaceInit func(*InterfaceRef)
}

// Interface is the process-wide registration record for one interface
// descriptor: the one-shot gate plus the cached type identifier. Create it
// once, typically as a package-level variable, and never copy it after first
// use. Records are never destroyed; registration is permanent.
type Interface struct {
	info InterfaceInfo
	once sync.Once
	typ  atomic.Uintptr
}

// NewInterface wraps info in a registration record. Registration itself is
// deferred to the first Type call.
func NewInterface(info InterfaceInfo) *Interface {
	if info.Name == "" {
		panic("glib: interface must have a name")
	}
	return &Interface{info: info}
}

// Name returns the declared type name.
func (i *Interface) Name() string { return i.info.Name }

// registerMu serializes the check-then-register window across all
// descriptors, so that two descriptors racing on the same name fail
// deterministically instead of both registering.
var registerMu sync.Mutex

// Type returns the type identifier for the interface, registering it with
// the foreign runtime on first call. Concurrent first callers block until the
// single registration completes and all observe the identical result.
//
// Type panics if the name is already taken or the runtime rejects the
// registration; both are programming errors with no rollback path.
func (i *Interface) Type() Type {
	i.once.Do(i.register)
	t := Type(i.typ.Load())
	if !t.IsValid() {
		panic(fmt.Sprintf("glib: interface %q has no valid registered type", i.info.Name))
	}
	return t
}

func (i *Interface) register() {
	t := i.registerType()

	// TypeInit runs outside registerMu so the hook may register further
	// types, including other interfaces.
	if i.info.TypeInit != nil {
		i.info.TypeInit(&InitializingType{typ: t})
	}

	logger().Debug(context.Background(), "registered interface",
		"name", i.info.Name,
		"type", uintptr(t),
		"prerequisites", len(i.info.Prerequisites))
}

func (i *Interface) registerType() Type {
	reg := Registry()

	registerMu.Lock()
	defer registerMu.Unlock()

	if existing := reg.TypeFromName(i.info.Name); existing.IsValid() {
		panic(fmt.Sprintf("glib: type name %q is already registered (type %#x)",
			i.info.Name, uintptr(existing)))
	}

	size := i.info.ClassSize
	if size < defaultClassSize {
		size = defaultClassSize
	}

	t, err := reg.RegisterInterface(i.info.Name, size, i.interfaceInit)
	if err != nil {
		panic(fmt.Sprintf("glib: registering interface %q: %v", i.info.Name, err))
	}
	i.typ.Store(uintptr(t))

	for _, prereq := range i.info.Prerequisites {
		reg.AddPrerequisite(t, prereq)
	}
	return t
}

// interfaceInit is the trampoline target the registrar invokes once per
// interface, before the first implementor is instantiated. Properties go in
// first, then signals, then the descriptor's own hook, so the hook can rely
// on both being visible.
func (i *Interface) interfaceInit(iface unsafe.Pointer) {
	reg := Registry()
	t := Type(i.typ.Load())

	for _, spec := range i.info.Properties {
		if err := reg.InstallProperty(iface, spec); err != nil {
			panic(fmt.Sprintf("glib: installing property %q on %q: %v",
				spec.Name(), i.info.Name, err))
		}
	}

	for _, sig := range i.info.Signals {
		if err := reg.RegisterSignal(t, sig); err != nil {
			panic(fmt.Sprintf("glib: registering signal %q on %q: %v",
				sig.Name(), i.info.Name, err))
		}
	}

	if i.info.InterfaceInit != nil {
		i.info.InterfaceInit(&InterfaceRef{ptr: iface, typ: t})
	}
}

// FromInstance returns a borrowed view of obj's implementation state for this
// interface. It panics when obj's dynamic type does not implement the
// interface: returning nothing instead would hand callers a path to invalid
// memory.
//
// The returned reference points into runtime-owned class data. It is valid no
// longer than obj and must never be turned into an owning value.
func (i *Interface) FromInstance(obj *Object) *InterfaceRef {
	if obj == nil {
		panic(fmt.Sprintf("glib: FromInstance(%q) on nil object", i.info.Name))
	}
	t := i.Type()
	if !obj.Type().IsA(t) {
		panic(fmt.Sprintf("glib: type %s does not implement %s", obj.Type(), t))
	}
	ptr := Registry().InterfacePeek(obj, t)
	if ptr == nil {
		panic(fmt.Sprintf("glib: interface peek for %s on %s returned nothing", t, obj.Type()))
	}
	return &InterfaceRef{ptr: ptr, typ: t, owner: obj}
}

// InitializingType is the handle TypeInit receives: the freshly created type,
// before anything has used it.
type InitializingType struct {
	typ Type
}

// Type returns the identifier being initialized.
func (t *InitializingType) Type() Type { return t.typ }

// InterfaceRef is a bounded-lifetime borrowed view into an interface struct
// owned by the foreign runtime. It is handed to InterfaceInit during setup
// and returned by FromInstance for live objects. The view is read-only from
// the wrapper's perspective; there is no ownership to transfer and no way to
// keep the memory alive past its owner.
type InterfaceRef struct {
	ptr   unsafe.Pointer
	typ   Type
	owner *Object
}

// Type returns the interface's type identifier.
func (r *InterfaceRef) Type() Type { return r.typ }

// UnsafePointer exposes the underlying interface struct for defining parties
// that fill in a vtable. The pointer is borrowed from the runtime and must
// not be retained or freed.
func (r *InterfaceRef) UnsafePointer() unsafe.Pointer { return r.ptr }
