//go:build cgo && !windows

package ffi

/*
#cgo pkg-config: gobject-2.0

#include <stdlib.h>
#include <glib-object.h>

extern void glibgoInterfaceInit(gpointer iface, gpointer data);

static GType glibgo_register_interface(const char *name, guint class_size) {
	return g_type_register_static_simple(G_TYPE_INTERFACE, name, class_size,
		(GClassInitFunc) glibgoInterfaceInit, 0, NULL, (GTypeFlags) 0);
}
*/
import "C"

import (
	"fmt"
	"sync"
	"unsafe"
)

// initFuncs maps a registered interface GType to the Go init callback that the
// trampoline dispatches to. Entries are never removed; type registrations are
// permanent for the process lifetime.
var initFuncs sync.Map // uintptr -> func(unsafe.Pointer)

//export glibgoInterfaceInit
func glibgoInterfaceInit(iface C.gpointer, data C.gpointer) {
	gt := uintptr((*C.GTypeInterface)(unsafe.Pointer(iface)).g_type)
	fn, ok := initFuncs.Load(gt)
	if !ok {
		// An interface type we did not register; nothing to initialize.
		return
	}
	fn.(func(unsafe.Pointer))(unsafe.Pointer(iface))
}

// TypeFromName returns the GType registered under name, or 0.
func TypeFromName(name string) uintptr {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	return uintptr(C.g_type_from_name(cname))
}

// TypeName returns the registered name for t, or "" for an unknown type.
func TypeName(t uintptr) string {
	cname := C.g_type_name(C.GType(t))
	if cname == nil {
		return ""
	}
	return C.GoString(cname)
}

// TypeIsA reports whether t is-a is, in the g_type_is_a sense.
func TypeIsA(t, is uintptr) bool {
	return C.g_type_is_a(C.GType(t), C.GType(is)) != 0
}

// RegisterInterface registers a new static interface type with the given
// class size and remembers init for the trampoline. The caller is responsible
// for name-uniqueness checking; a duplicate name makes GObject itself emit a
// critical and return 0.
func RegisterInterface(name string, classSize uintptr, init func(iface unsafe.Pointer)) (uintptr, error) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	t := uintptr(C.glibgo_register_interface(cname, C.guint(classSize)))
	if t == 0 {
		return 0, fmt.Errorf("g_type_register_static_simple failed for %q", name)
	}
	if init != nil {
		initFuncs.Store(t, init)
	}
	return t, nil
}

// AddInterfacePrerequisite attaches prereq as a prerequisite of iface.
func AddInterfacePrerequisite(iface, prereq uintptr) {
	C.g_type_interface_add_prerequisite(C.GType(iface), C.GType(prereq))
}

func paramFlags(p PropertyInfo) C.GParamFlags {
	var flags C.GParamFlags
	if p.Readable {
		flags |= C.G_PARAM_READABLE
	}
	if p.Writable {
		flags |= C.G_PARAM_WRITABLE
	}
	return flags
}

func newParamSpec(p PropertyInfo) (*C.GParamSpec, error) {
	cname := C.CString(p.Name)
	cnick := C.CString(p.Nick)
	cblurb := C.CString(p.Blurb)
	defer C.free(unsafe.Pointer(cname))
	defer C.free(unsafe.Pointer(cnick))
	defer C.free(unsafe.Pointer(cblurb))

	flags := paramFlags(p)
	switch p.Kind {
	case KindBool:
		def := C.gboolean(0)
		if p.DefaultBool {
			def = 1
		}
		return C.g_param_spec_boolean(cname, cnick, cblurb, def, flags), nil
	case KindInt:
		return C.g_param_spec_int(cname, cnick, cblurb,
			C.G_MININT, C.G_MAXINT, C.gint(p.DefaultInt), flags), nil
	case KindInt64:
		return C.g_param_spec_int64(cname, cnick, cblurb,
			C.G_MININT64, C.G_MAXINT64, C.gint64(p.DefaultInt), flags), nil
	case KindUint:
		return C.g_param_spec_uint(cname, cnick, cblurb,
			0, C.G_MAXUINT, C.guint(p.DefaultUint), flags), nil
	case KindUint64:
		return C.g_param_spec_uint64(cname, cnick, cblurb,
			0, C.G_MAXUINT64, C.guint64(p.DefaultUint), flags), nil
	case KindDouble:
		return C.g_param_spec_double(cname, cnick, cblurb,
			-C.G_MAXDOUBLE, C.G_MAXDOUBLE, C.gdouble(p.DefaultFloat), flags), nil
	case KindString:
		cdef := C.CString(p.DefaultString)
		defer C.free(unsafe.Pointer(cdef))
		return C.g_param_spec_string(cname, cnick, cblurb, cdef, flags), nil
	default:
		return nil, fmt.Errorf("unsupported property kind %v for %q", p.Kind, p.Name)
	}
}

// InterfaceInstallProperty builds a GParamSpec from p and installs it on the
// interface struct at iface. A malformed spec is reported by GObject's own
// critical handling, not translated here.
func InterfaceInstallProperty(iface unsafe.Pointer, p PropertyInfo) error {
	pspec, err := newParamSpec(p)
	if err != nil {
		return err
	}
	C.g_object_interface_install_property(C.gpointer(iface), pspec)
	return nil
}

// SignalNew registers a signal against the type t and returns its signal id.
func SignalNew(t uintptr, s SignalInfo) (uint, error) {
	cname := C.CString(s.Name)
	defer C.free(unsafe.Pointer(cname))

	var params *C.GType
	if n := len(s.ParamTypes); n > 0 {
		buf := C.malloc(C.size_t(n) * C.size_t(unsafe.Sizeof(C.GType(0))))
		if buf == nil {
			return 0, fmt.Errorf("allocating signal parameter array for %q", s.Name)
		}
		defer C.free(buf)
		slice := unsafe.Slice((*C.GType)(buf), n)
		for i, pt := range s.ParamTypes {
			slice[i] = C.GType(pt)
		}
		params = (*C.GType)(buf)
	}

	id := C.g_signal_newv(cname, C.GType(t), C.GSignalFlags(s.Flags),
		nil, nil, nil, nil,
		C.GType(s.ReturnType), C.guint(len(s.ParamTypes)), params)
	if id == 0 {
		return 0, fmt.Errorf("g_signal_newv failed for %q", s.Name)
	}
	return uint(id), nil
}

// TypeInterfacePeek resolves the interface struct of iface within the class
// of the instance at ptr. Returns nil when the instance's class does not
// implement iface.
func TypeInterfacePeek(ptr unsafe.Pointer, iface uintptr) unsafe.Pointer {
	if ptr == nil {
		return nil
	}
	klass := (*C.GTypeInstance)(ptr).g_class
	return unsafe.Pointer(C.g_type_interface_peek(C.gpointer(klass), C.GType(iface)))
}

// InstanceType returns the GType of the instance at ptr.
func InstanceType(ptr unsafe.Pointer) uintptr {
	if ptr == nil {
		return 0
	}
	klass := (*C.GTypeInstance)(ptr).g_class
	return uintptr((*C.GTypeClass)(unsafe.Pointer(klass)).g_type)
}

// RuntimeVersion reports the GLib version the binary is linked against.
func RuntimeVersion() string {
	return fmt.Sprintf("%d.%d.%d",
		uint(C.glib_major_version), uint(C.glib_minor_version), uint(C.glib_micro_version))
}
