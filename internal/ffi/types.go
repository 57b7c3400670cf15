package ffi

import "errors"

var (
	// ErrNotBuilt reports that the native GObject bindings were not linked
	// into the current binary.
	ErrNotBuilt = errors.New("glib-go/internal/ffi: native bindings not built")

	// ErrCGONotEnabled signals that the package was compiled without cgo and
	// therefore cannot talk to the native library.
	ErrCGONotEnabled = errors.New("glib-go/internal/ffi: cgo not enabled")
)

// ValueKind selects which g_param_spec_* constructor backs a property.
type ValueKind int

const (
	KindInvalid ValueKind = iota
	KindBool
	KindInt
	KindInt64
	KindUint
	KindUint64
	KindDouble
	KindString
)

func (k ValueKind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindInt64:
		return "int64"
	case KindUint:
		return "uint"
	case KindUint64:
		return "uint64"
	case KindDouble:
		return "double"
	case KindString:
		return "string"
	default:
		return "invalid"
	}
}

// PropertyInfo carries everything needed to build and install a GParamSpec.
// Exactly one Default* field is meaningful, selected by Kind.
type PropertyInfo struct {
	Name  string
	Nick  string
	Blurb string
	Kind  ValueKind

	DefaultBool   bool
	DefaultInt    int64
	DefaultUint   uint64
	DefaultFloat  float64
	DefaultString string

	Readable bool
	Writable bool
}

// Signal stage flags, numerically identical to GSignalFlags.
const (
	SignalRunFirst   = 1 << 0
	SignalRunLast    = 1 << 1
	SignalRunCleanup = 1 << 2
)

// SignalInfo describes a signal to register with g_signal_newv.
type SignalInfo struct {
	Name       string
	Flags      uint32
	ReturnType uintptr
	ParamTypes []uintptr
}
