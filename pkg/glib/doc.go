// Package glib provides Go bindings for the GObject type system, focused on
// defining new object-system interfaces from Go.
//
// # Architecture
//
// The type system itself lives in the native GObject library; this package
// only marshals descriptions across the boundary and manages ownership. All
// cgo lives in internal/ffi. The calls this layer makes on the native
// registrar are captured by the TypeRegistry interface, so tests can run
// against the in-memory registry in pkg/glib/mockreg instead of the native
// library.
//
// # Defining an interface
//
// A defining party builds an InterfaceInfo and wraps it in an Interface,
// usually as a package-level variable:
//
//	var drawable = glib.NewInterface(glib.InterfaceInfo{
//	    Name:          "Drawable",
//	    Prerequisites: glib.PrerequisitesOf(widgetType),
//	    Properties: []*glib.ParamSpec{
//	        glib.NewStringParam("color", "Color", "Draw color", "", glib.ParamReadWrite),
//	    },
//	    Signals: []*glib.Signal{glib.NewSignal("redraw")},
//	    InterfaceInit: func(ref *glib.InterfaceRef) {
//	        // properties and signals are already visible here
//	    },
//	})
//
// The first call to drawable.Type() registers the type with the registrar;
// later calls return the cached identifier. Registration is permanent: the
// process-wide registry has no teardown path, and this layer never removes
// entries.
//
// # Error model
//
// Contract violations (duplicate type names, FromInstance on an object that
// does not implement the interface, an invalid registration result) are
// programming errors and panic. Errors the native runtime reports itself
// (for example a malformed property) surface through its own critical
// handling and are not translated here. Recoverable errors only occur in
// packages that do real I/O, such as pkg/gio/unixmounts.
//
// # Threading
//
// Registration is safe under concurrent first-time calls from multiple
// goroutines or native threads: exactly one registration executes and every
// caller observes the same Type.
package glib
