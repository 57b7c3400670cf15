package glib_test

import (
	"testing"
	"unsafe"

	"github.com/glibgo/glib-go/pkg/glib"
	"github.com/glibgo/glib-go/pkg/glib/mockreg"
)

func TestUseRegistryNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("UseRegistry(nil) did not panic")
		}
	}()
	glib.UseRegistry(nil)
}

func TestTypeQueries(t *testing.T) {
	reg := mockreg.Install(t)

	if glib.TypeInvalid.IsValid() {
		t.Fatal("TypeInvalid reports valid")
	}
	if got := glib.TypeInvalid.Name(); got != "<invalid>" {
		t.Fatalf("TypeInvalid.Name() = %q", got)
	}

	parent := reg.RegisterObjectType("QueryParent", glib.TypeInvalid)
	child := reg.RegisterObjectType("QueryChild", parent)

	if !child.IsA(parent) {
		t.Fatal("child is not a-kind-of parent")
	}
	if parent.IsA(child) {
		t.Fatal("parent claims to be a-kind-of child")
	}
	if !parent.IsA(parent) {
		t.Fatal("type is not a-kind-of itself")
	}
	if got := parent.String(); got != "QueryParent" {
		t.Fatalf("parent.String() = %q", got)
	}
}

func TestBorrowInstanceDerivesType(t *testing.T) {
	reg := mockreg.Install(t)

	widget := reg.RegisterObjectType("BorrowWidget", glib.TypeInvalid)
	inst := reg.NewInstance(widget)

	obj := glib.BorrowInstance(inst.UnsafePointer())
	if obj.Type() != widget {
		t.Fatalf("derived type %#x, want %#x", uintptr(obj.Type()), uintptr(widget))
	}
	if obj.UnsafePointer() != inst.UnsafePointer() {
		t.Fatal("borrowed handle does not wrap the original instance")
	}

	defer func() {
		if recover() == nil {
			t.Fatal("borrowing an unknown instance did not panic")
		}
	}()
	glib.BorrowInstance(unsafe.Pointer(new(byte)))
}
