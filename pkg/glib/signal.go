package glib

import "github.com/glibgo/glib-go/internal/ffi"

// SignalFlags selects the emission stage of a signal's default handler. The
// values match GSignalFlags.
type SignalFlags uint32

const (
	SignalRunFirst   SignalFlags = ffi.SignalRunFirst
	SignalRunLast    SignalFlags = ffi.SignalRunLast
	SignalRunCleanup SignalFlags = ffi.SignalRunCleanup
)

// Signal describes a signal to register against an interface type. NewSignal
// returns a run-last signal with no parameters and no return value; the With*
// methods refine it fluently:
//
//	glib.NewSignal("redraw").WithParams(glib.TypeInt, glib.TypeInt)
type Signal struct {
	name       string
	flags      SignalFlags
	returnType Type
	paramTypes []Type
}

// NewSignal declares a signal named name.
func NewSignal(name string) *Signal {
	return &Signal{name: name, flags: SignalRunLast, returnType: TypeNone}
}

// Name returns the signal name.
func (s *Signal) Name() string { return s.name }

// WithFlags replaces the emission stage flags.
func (s *Signal) WithFlags(flags SignalFlags) *Signal {
	s.flags = flags
	return s
}

// WithParams sets the parameter types handlers receive, in order.
func (s *Signal) WithParams(types ...Type) *Signal {
	s.paramTypes = types
	return s
}

// WithReturn sets the handler return type.
func (s *Signal) WithReturn(t Type) *Signal {
	s.returnType = t
	return s
}

func (s *Signal) info() ffi.SignalInfo {
	params := make([]uintptr, len(s.paramTypes))
	for i, t := range s.paramTypes {
		params[i] = uintptr(t)
	}
	return ffi.SignalInfo{
		Name:       s.name,
		Flags:      uint32(s.flags),
		ReturnType: uintptr(s.returnType),
		ParamTypes: params,
	}
}
