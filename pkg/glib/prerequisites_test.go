package glib_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/glibgo/glib-go/pkg/glib"
	"github.com/glibgo/glib-go/pkg/glib/mockreg"
)

func TestPrerequisitesOfEmpty(t *testing.T) {
	got := glib.PrerequisitesOf()
	if len(got) != 0 {
		t.Fatalf("empty witness list produced %d prerequisites, want 0", len(got))
	}
}

func TestPrerequisitesOfOrder(t *testing.T) {
	reg := mockreg.Install(t)

	a := reg.RegisterObjectType("PrereqA", glib.TypeInvalid)
	b := reg.RegisterObjectType("PrereqB", glib.TypeInvalid)
	c := reg.RegisterObjectType("PrereqC", glib.TypeInvalid)

	got := glib.PrerequisitesOf(a, b, c)
	want := glib.Prerequisites{a, b, c}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("prerequisite order mismatch (-want +got):\n%s", diff)
	}
}

func TestObjectAsWitness(t *testing.T) {
	reg := mockreg.Install(t)

	widget := reg.RegisterObjectType("WitnessWidget", glib.TypeInvalid)
	obj := reg.NewInstance(widget)

	got := glib.PrerequisitesOf(obj)
	if len(got) != 1 || got[0] != widget {
		t.Fatalf("object witness produced %v, want [%#x]", got, uintptr(widget))
	}
}
