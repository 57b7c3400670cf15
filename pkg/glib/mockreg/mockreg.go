package mockreg

import (
	"fmt"
	"sync"
	"testing"
	"unsafe"

	"github.com/creachadair/mds/mapset"

	"github.com/glibgo/glib-go/pkg/glib"
)

type typeKind int

const (
	kindObject typeKind = iota + 1
	kindInterface
)

// firstDynamicType leaves the fundamental identifier range untouched so mock
// identifiers never collide with glib.TypeNone and friends.
const firstDynamicType = 1 << 10

type typeRecord struct {
	name      string
	kind      typeKind
	parent    glib.Type
	classSize uintptr

	// Interface records only. inited marks the record as claimed for
	// initialization; initDone is closed once the init trampoline has
	// actually finished, so readers never observe a half-initialized state
	// block.
	init     func(unsafe.Pointer)
	inited   bool
	initDone chan struct{}
	state    []byte
	prereqs  mapset.Set[glib.Type]
	props    mapset.Set[string]
	signals  mapset.Set[string]

	// Object records only: interfaces implemented directly on this type.
	ifaces mapset.Set[glib.Type]
}

// Registry is an in-memory stand-in for the native GObject registrar. It
// implements glib.TypeRegistry plus enough of the surrounding object model
// (object types, implementations, instances) to exercise the registration
// layer without the native library.
//
// Like the real registry it only grows: registered types live until the
// Registry is garbage.
type Registry struct {
	mu        sync.Mutex
	nextType  glib.Type
	names     map[string]glib.Type
	types     map[glib.Type]*typeRecord
	instances map[unsafe.Pointer]*instance
	events    []string
}

type instance struct {
	mem []byte
	typ glib.Type
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		nextType:  firstDynamicType,
		names:     make(map[string]glib.Type),
		types:     make(map[glib.Type]*typeRecord),
		instances: make(map[unsafe.Pointer]*instance),
	}
}

// Install swaps the process-wide registry for r and restores the previous one
// when the test finishes.
func Install(t testing.TB) *Registry {
	t.Helper()
	r := New()
	prev := glib.UseRegistry(r)
	t.Cleanup(func() { glib.UseRegistry(prev) })
	return r
}

func (r *Registry) newTypeLocked(name string, kind typeKind) (*typeRecord, glib.Type) {
	t := r.nextType
	r.nextType += 4
	rec := &typeRecord{name: name, kind: kind}
	r.names[name] = t
	r.types[t] = rec
	return rec, t
}

// RecordEvent appends a marker to the event log. Interface-init hooks use it
// to let tests assert ordering against property and signal events.
func (r *Registry) RecordEvent(event string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

// Events returns a copy of the event log in append order.
func (r *Registry) Events() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	copy(out, r.events)
	return out
}

// TypeFromName implements glib.TypeRegistry.
func (r *Registry) TypeFromName(name string) glib.Type {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.names[name]
}

// TypeName implements glib.TypeRegistry.
func (r *Registry) TypeName(t glib.Type) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if rec, ok := r.types[t]; ok {
		return rec.name
	}
	return ""
}

// IsA implements glib.TypeRegistry.
func (r *Registry) IsA(t, is glib.Type) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.isALocked(t, is)
}

func (r *Registry) isALocked(t, is glib.Type) bool {
	if t == is {
		return true
	}
	for cur := t; cur != glib.TypeInvalid; {
		rec, ok := r.types[cur]
		if !ok {
			return false
		}
		if cur == is || rec.ifaces.Has(is) {
			return true
		}
		cur = rec.parent
	}
	return false
}

// RegisterInterface implements glib.TypeRegistry.
func (r *Registry) RegisterInterface(name string, classSize uintptr, init func(unsafe.Pointer)) (glib.Type, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.names[name]; ok {
		return glib.TypeInvalid, fmt.Errorf("mockreg: type %q already registered as %#x", name, uintptr(t))
	}
	rec, t := r.newTypeLocked(name, kindInterface)
	rec.classSize = classSize
	rec.init = init
	rec.prereqs = mapset.New[glib.Type]()
	rec.props = mapset.New[string]()
	rec.signals = mapset.New[string]()
	return t, nil
}

// AddPrerequisite implements glib.TypeRegistry. Prerequisites are stored as a
// set; repeated additions are harmless.
func (r *Registry) AddPrerequisite(iface, prereq glib.Type) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec := r.types[iface]
	if rec == nil || rec.kind != kindInterface {
		panic(fmt.Sprintf("mockreg: AddPrerequisite on non-interface type %#x", uintptr(iface)))
	}
	rec.prereqs.Add(prereq)
}

// Prerequisites returns the prerequisite set recorded for iface.
func (r *Registry) Prerequisites(iface glib.Type) []glib.Type {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec := r.types[iface]
	if rec == nil || rec.kind != kindInterface {
		return nil
	}
	out := make([]glib.Type, 0, len(rec.prereqs))
	for p := range rec.prereqs {
		out = append(out, p)
	}
	return out
}

func (r *Registry) stateOwnerLocked(ptr unsafe.Pointer) *typeRecord {
	for _, rec := range r.types {
		if rec.kind == kindInterface && rec.state != nil && unsafe.Pointer(&rec.state[0]) == ptr {
			return rec
		}
	}
	return nil
}

// InstallProperty implements glib.TypeRegistry. A property name collision on
// the same interface mimics the native critical: it panics.
func (r *Registry) InstallProperty(iface unsafe.Pointer, spec *glib.ParamSpec) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec := r.stateOwnerLocked(iface)
	if rec == nil {
		return fmt.Errorf("mockreg: InstallProperty outside interface initialization")
	}
	if rec.props.Has(spec.Name()) {
		panic(fmt.Sprintf("mockreg: property %q already installed on %q", spec.Name(), rec.name))
	}
	rec.props.Add(spec.Name())
	r.events = append(r.events, "install-property:"+spec.Name())
	return nil
}

// RegisterSignal implements glib.TypeRegistry. Duplicate signal names on the
// same type panic, mirroring g_signal_newv's critical.
func (r *Registry) RegisterSignal(t glib.Type, spec *glib.Signal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec := r.types[t]
	if rec == nil || rec.kind != kindInterface {
		return fmt.Errorf("mockreg: RegisterSignal on unknown type %#x", uintptr(t))
	}
	if rec.signals.Has(spec.Name()) {
		panic(fmt.Sprintf("mockreg: signal %q already registered on %q", spec.Name(), rec.name))
	}
	rec.signals.Add(spec.Name())
	r.events = append(r.events, "register-signal:"+spec.Name())
	return nil
}

// InterfacePeek implements glib.TypeRegistry. It resolves the interface's
// state block, which exists once the interface has been initialized.
func (r *Registry) InterfacePeek(obj *glib.Object, iface glib.Type) unsafe.Pointer {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec := r.types[iface]
	if rec == nil || rec.kind != kindInterface || !rec.inited {
		return nil
	}
	select {
	case <-rec.initDone:
	default:
		// Claimed but the trampoline has not finished yet.
		return nil
	}
	if !r.isALocked(obj.Type(), iface) {
		return nil
	}
	return unsafe.Pointer(&rec.state[0])
}

// InstanceType implements glib.TypeRegistry.
func (r *Registry) InstanceType(ptr unsafe.Pointer) glib.Type {
	r.mu.Lock()
	defer r.mu.Unlock()
	if inst, ok := r.instances[ptr]; ok {
		return inst.typ
	}
	return glib.TypeInvalid
}

// RegisterObjectType registers an object-kind type for tests. parent may be
// glib.TypeInvalid for a root type. Implementations of interfaces are added
// separately with AddImplementation.
func (r *Registry) RegisterObjectType(name string, parent glib.Type) glib.Type {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.names[name]; ok {
		panic(fmt.Sprintf("mockreg: type %q already registered", name))
	}
	if parent != glib.TypeInvalid {
		prec := r.types[parent]
		if prec == nil || prec.kind != kindObject {
			panic(fmt.Sprintf("mockreg: parent %#x of %q is not an object type", uintptr(parent), name))
		}
	}
	rec, t := r.newTypeLocked(name, kindObject)
	rec.parent = parent
	rec.ifaces = mapset.New[glib.Type]()
	return t
}

// AddImplementation declares that the object type obj implements iface. The
// prerequisite constraint is enforced here, at implementation-registration
// time, the way the native registrar does.
func (r *Registry) AddImplementation(obj, iface glib.Type) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	orec := r.types[obj]
	if orec == nil || orec.kind != kindObject {
		return fmt.Errorf("mockreg: %#x is not an object type", uintptr(obj))
	}
	irec := r.types[iface]
	if irec == nil || irec.kind != kindInterface {
		return fmt.Errorf("mockreg: %#x is not an interface type", uintptr(iface))
	}
	for prereq := range irec.prereqs {
		if !r.isALocked(obj, prereq) {
			pname := fmt.Sprintf("%#x", uintptr(prereq))
			if prec := r.types[prereq]; prec != nil {
				pname = prec.name
			}
			return fmt.Errorf("mockreg: %s cannot implement %s: prerequisite %s not satisfied",
				orec.name, irec.name, pname)
		}
	}
	orec.ifaces.Add(iface)
	return nil
}

// NewInstance creates an instance of the object type t and returns a borrowed
// handle to it. Interfaces implemented anywhere along t's ancestry are
// initialized first, each exactly once, matching the native guarantee that
// interface init runs before the first implementor instance exists.
func (r *Registry) NewInstance(t glib.Type) *glib.Object {
	r.mu.Lock()
	rec := r.types[t]
	if rec == nil || rec.kind != kindObject {
		r.mu.Unlock()
		panic(fmt.Sprintf("mockreg: NewInstance of non-object type %#x", uintptr(t)))
	}
	pending, waits := r.claimInitsLocked(t)
	r.mu.Unlock()

	// Trampolines re-enter the registry to install properties and signals,
	// so they run unlocked.
	for _, rec := range pending {
		if rec.init != nil {
			rec.init(unsafe.Pointer(&rec.state[0]))
		}
		close(rec.initDone)
	}

	// A concurrent NewInstance may have claimed one of our interfaces and
	// still be running its trampoline; no instance exists until every
	// interface along the ancestry is fully initialized.
	for _, done := range waits {
		<-done
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	mem := make([]byte, 16)
	ptr := unsafe.Pointer(&mem[0])
	r.instances[ptr] = &instance{mem: mem, typ: t}
	return glib.BorrowObject(ptr, t)
}

// claimInitsLocked marks every uninitialized interface along t's ancestry as
// claimed and returns those records, plus the done gates of all interfaces an
// instance of t must wait for.
func (r *Registry) claimInitsLocked(t glib.Type) (pending []*typeRecord, waits []chan struct{}) {
	for cur := t; cur != glib.TypeInvalid; {
		rec, ok := r.types[cur]
		if !ok {
			break
		}
		for iface := range rec.ifaces {
			irec := r.types[iface]
			if irec == nil {
				continue
			}
			if !irec.inited {
				size := irec.classSize
				if size == 0 {
					size = 16
				}
				irec.state = make([]byte, size)
				irec.inited = true
				irec.initDone = make(chan struct{})
				pending = append(pending, irec)
			}
			waits = append(waits, irec.initDone)
		}
		cur = rec.parent
	}
	return pending, waits
}
