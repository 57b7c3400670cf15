package glib

import "github.com/glibgo/glib-go/internal/ffi"

// ParamFlags controls how a property may be accessed. The values match
// GParamFlags.
type ParamFlags uint32

const (
	ParamReadable  ParamFlags = 1 << 0
	ParamWritable  ParamFlags = 1 << 1
	ParamReadWrite            = ParamReadable | ParamWritable
)

// ParamSpec is an immutable property specification. Implementors of an
// interface that declares one must provide the property. Build them with the
// New*Param constructors, which mirror the g_param_spec_* family.
type ParamSpec struct {
	info ffi.PropertyInfo
}

// Name returns the property name.
func (p *ParamSpec) Name() string { return p.info.Name }

func baseInfo(name, nick, blurb string, kind ffi.ValueKind, flags ParamFlags) ffi.PropertyInfo {
	return ffi.PropertyInfo{
		Name:     name,
		Nick:     nick,
		Blurb:    blurb,
		Kind:     kind,
		Readable: flags&ParamReadable != 0,
		Writable: flags&ParamWritable != 0,
	}
}

// NewBoolParam declares a boolean property.
func NewBoolParam(name, nick, blurb string, def bool, flags ParamFlags) *ParamSpec {
	info := baseInfo(name, nick, blurb, ffi.KindBool, flags)
	info.DefaultBool = def
	return &ParamSpec{info: info}
}

// NewIntParam declares an int property spanning the native int range.
func NewIntParam(name, nick, blurb string, def int, flags ParamFlags) *ParamSpec {
	info := baseInfo(name, nick, blurb, ffi.KindInt, flags)
	info.DefaultInt = int64(def)
	return &ParamSpec{info: info}
}

// NewInt64Param declares a 64-bit signed integer property.
func NewInt64Param(name, nick, blurb string, def int64, flags ParamFlags) *ParamSpec {
	info := baseInfo(name, nick, blurb, ffi.KindInt64, flags)
	info.DefaultInt = def
	return &ParamSpec{info: info}
}

// NewUintParam declares an unsigned int property.
func NewUintParam(name, nick, blurb string, def uint, flags ParamFlags) *ParamSpec {
	info := baseInfo(name, nick, blurb, ffi.KindUint, flags)
	info.DefaultUint = uint64(def)
	return &ParamSpec{info: info}
}

// NewUint64Param declares a 64-bit unsigned integer property.
func NewUint64Param(name, nick, blurb string, def uint64, flags ParamFlags) *ParamSpec {
	info := baseInfo(name, nick, blurb, ffi.KindUint64, flags)
	info.DefaultUint = def
	return &ParamSpec{info: info}
}

// NewDoubleParam declares a double-precision float property.
func NewDoubleParam(name, nick, blurb string, def float64, flags ParamFlags) *ParamSpec {
	info := baseInfo(name, nick, blurb, ffi.KindDouble, flags)
	info.DefaultFloat = def
	return &ParamSpec{info: info}
}

// NewStringParam declares a string property.
func NewStringParam(name, nick, blurb, def string, flags ParamFlags) *ParamSpec {
	info := baseInfo(name, nick, blurb, ffi.KindString, flags)
	info.DefaultString = def
	return &ParamSpec{info: info}
}
