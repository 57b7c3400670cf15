package glib

import "unsafe"

// Object is a borrowed handle to an instance owned by the foreign runtime.
// The handle carries no ownership: it must not outlive whatever keeps the
// underlying instance alive.
type Object struct {
	ptr unsafe.Pointer
	typ Type
}

// BorrowObject wraps a foreign instance pointer without taking a reference.
// t is the instance's dynamic type.
func BorrowObject(ptr unsafe.Pointer, t Type) *Object {
	if ptr == nil {
		panic("glib: BorrowObject with nil instance")
	}
	if !t.IsValid() {
		panic("glib: BorrowObject with invalid type")
	}
	return &Object{ptr: ptr, typ: t}
}

// BorrowInstance wraps a foreign instance pointer, reading the dynamic type
// off the instance itself. Use BorrowObject when the type is already known.
func BorrowInstance(ptr unsafe.Pointer) *Object {
	if ptr == nil {
		panic("glib: BorrowInstance with nil instance")
	}
	t := Registry().InstanceType(ptr)
	if !t.IsValid() {
		panic("glib: BorrowInstance of unknown instance")
	}
	return &Object{ptr: ptr, typ: t}
}

// Type returns the dynamic type of the instance.
func (o *Object) Type() Type { return o.typ }

// ObjectType lets an Object act as a witness for its own type.
func (o *Object) ObjectType() Type { return o.typ }

// UnsafePointer exposes the raw instance pointer for registry
// implementations. The pointer is borrowed; callers must not free it or hold
// it beyond the life of o.
func (o *Object) UnsafePointer() unsafe.Pointer { return o.ptr }
