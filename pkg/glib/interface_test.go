package glib_test

import (
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/glibgo/glib-go/pkg/glib"
	"github.com/glibgo/glib-go/pkg/glib/mockreg"
)

func TestRegisterInterface(t *testing.T) {
	reg := mockreg.Install(t)

	var typeInits, ifaceInits atomic.Int32
	iface := glib.NewInterface(glib.InterfaceInfo{
		Name: "TestSerializable",
		TypeInit: func(it *glib.InitializingType) {
			typeInits.Add(1)
			if !it.Type().IsValid() {
				t.Error("TypeInit received an invalid type")
			}
		},
		InterfaceInit: func(ref *glib.InterfaceRef) {
			ifaceInits.Add(1)
		},
	})

	typ := iface.Type()
	if !typ.IsValid() {
		t.Fatal("registered interface has invalid type")
	}
	if got := typ.Name(); got != "TestSerializable" {
		t.Fatalf("type name = %q, want %q", got, "TestSerializable")
	}
	if got := reg.TypeFromName("TestSerializable"); got != typ {
		t.Fatalf("registry lookup = %#x, want %#x", uintptr(got), uintptr(typ))
	}

	// Repeat queries return the cached identifier without re-registering.
	for i := 0; i < 3; i++ {
		if again := iface.Type(); again != typ {
			t.Fatalf("call %d returned %#x, want %#x", i, uintptr(again), uintptr(typ))
		}
	}
	if n := typeInits.Load(); n != 1 {
		t.Fatalf("TypeInit ran %d times, want 1", n)
	}

	// InterfaceInit only fires once an implementor exists.
	if n := ifaceInits.Load(); n != 0 {
		t.Fatalf("InterfaceInit ran %d times before any implementor, want 0", n)
	}
	obj := reg.RegisterObjectType("TestObject", glib.TypeInvalid)
	require.NoError(t, reg.AddImplementation(obj, typ))
	reg.NewInstance(obj)
	reg.NewInstance(obj)
	if n := ifaceInits.Load(); n != 1 {
		t.Fatalf("InterfaceInit ran %d times, want 1", n)
	}
}

func TestRegisterInterfaceConcurrent(t *testing.T) {
	mockreg.Install(t)

	var typeInits atomic.Int32
	iface := glib.NewInterface(glib.InterfaceInfo{
		Name:     "TestConcurrent",
		TypeInit: func(*glib.InitializingType) { typeInits.Add(1) },
	})

	const workers = 16
	var wg sync.WaitGroup
	results := make([]glib.Type, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			results[n] = iface.Type()
		}(i)
	}
	wg.Wait()

	if n := typeInits.Load(); n != 1 {
		t.Fatalf("registration executed %d times, want 1", n)
	}
	for n, got := range results {
		if got != results[0] {
			t.Fatalf("worker %d observed %#x, others observed %#x", n, uintptr(got), uintptr(results[0]))
		}
	}
	if !results[0].IsValid() {
		t.Fatal("concurrent registration produced invalid type")
	}
}

func TestDuplicateNamePanics(t *testing.T) {
	mockreg.Install(t)

	first := glib.NewInterface(glib.InterfaceInfo{Name: "TestClash"})
	first.Type()

	second := glib.NewInterface(glib.InterfaceInfo{Name: "TestClash"})
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("second registration of the same name did not panic")
		}
		if msg, ok := r.(string); !ok || !strings.Contains(msg, "already registered") {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()
	second.Type()
}

func TestEmptyNamePanics(t *testing.T) {
	require.Panics(t, func() {
		glib.NewInterface(glib.InterfaceInfo{})
	})
}

func TestFromInstance(t *testing.T) {
	reg := mockreg.Install(t)

	widget := reg.RegisterObjectType("TestWidget", glib.TypeInvalid)
	iface := glib.NewInterface(glib.InterfaceInfo{
		Name:          "TestDrawable",
		Prerequisites: glib.PrerequisitesOf(widget),
	})

	button := reg.RegisterObjectType("TestButton", widget)
	require.NoError(t, reg.AddImplementation(button, iface.Type()))
	label := reg.RegisterObjectType("TestLabel", widget)

	obj := reg.NewInstance(button)
	ref := iface.FromInstance(obj)
	require.NotNil(t, ref)
	require.Equal(t, iface.Type(), ref.Type())
	require.NotNil(t, ref.UnsafePointer())

	// The view is stable: peeking again resolves the same state.
	again := iface.FromInstance(obj)
	require.Equal(t, ref.UnsafePointer(), again.UnsafePointer())

	// An object whose type does not implement the interface must abort, not
	// hand back a dangling view.
	outsider := reg.NewInstance(label)
	require.Panics(t, func() { iface.FromInstance(outsider) })
	require.Panics(t, func() { iface.FromInstance(nil) })
}

func TestInterfaceInitOrdering(t *testing.T) {
	reg := mockreg.Install(t)

	widget := reg.RegisterObjectType("Widget", glib.TypeInvalid)

	var sawAtInit []string
	drawable := glib.NewInterface(glib.InterfaceInfo{
		Name:          "Drawable",
		Prerequisites: glib.PrerequisitesOf(widget),
		Properties: []*glib.ParamSpec{
			glib.NewStringParam("color", "Color", "Draw color", "", glib.ParamReadWrite),
		},
		Signals: []*glib.Signal{glib.NewSignal("redraw")},
		InterfaceInit: func(ref *glib.InterfaceRef) {
			sawAtInit = reg.Events()
			reg.RecordEvent("interface-init")
		},
	})

	button := reg.RegisterObjectType("Button", widget)
	require.NoError(t, reg.AddImplementation(button, drawable.Type()))
	reg.NewInstance(button)

	// Property then signal, both already done when InterfaceInit ran.
	require.Equal(t, []string{"install-property:color", "register-signal:redraw"}, sawAtInit)
	require.Equal(t,
		[]string{"install-property:color", "register-signal:redraw", "interface-init"},
		reg.Events())

	// A second implementor does not re-run interface setup.
	checkbox := reg.RegisterObjectType("Checkbox", widget)
	require.NoError(t, reg.AddImplementation(checkbox, drawable.Type()))
	reg.NewInstance(checkbox)
	require.Len(t, reg.Events(), 3)
}

func TestPrerequisiteEnforcement(t *testing.T) {
	reg := mockreg.Install(t)

	widget := reg.RegisterObjectType("Widget", glib.TypeInvalid)
	iface := glib.NewInterface(glib.InterfaceInfo{
		Name:          "Scrollable",
		Prerequisites: glib.PrerequisitesOf(widget),
	})

	require.ElementsMatch(t, []glib.Type{widget}, reg.Prerequisites(iface.Type()))

	orphan := reg.RegisterObjectType("Orphan", glib.TypeInvalid)
	err := reg.AddImplementation(orphan, iface.Type())
	require.Error(t, err)
	require.Contains(t, err.Error(), "prerequisite")

	child := reg.RegisterObjectType("Child", widget)
	require.NoError(t, reg.AddImplementation(child, iface.Type()))
}

func TestTypeInitRegistersAnotherInterface(t *testing.T) {
	mockreg.Install(t)

	inner := glib.NewInterface(glib.InterfaceInfo{Name: "TestInner"})
	var innerType glib.Type
	outer := glib.NewInterface(glib.InterfaceInfo{
		Name: "TestOuter",
		TypeInit: func(*glib.InitializingType) {
			innerType = inner.Type()
		},
	})

	// One-time customization may register further types; the nested
	// registration must complete, not block on the outer one.
	outerType := outer.Type()
	require.True(t, outerType.IsValid())
	require.True(t, innerType.IsValid())
	require.Equal(t, inner.Type(), innerType)
	require.NotEqual(t, outerType, innerType)
}

func TestTypeInitCanSeeType(t *testing.T) {
	reg := mockreg.Install(t)

	var inside glib.Type
	iface := glib.NewInterface(glib.InterfaceInfo{
		Name: "TestHooked",
		TypeInit: func(it *glib.InitializingType) {
			inside = it.Type()
		},
	})
	require.Equal(t, iface.Type(), inside)
	require.Equal(t, "TestHooked", reg.TypeName(inside))
}
