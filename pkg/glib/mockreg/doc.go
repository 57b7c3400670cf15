// Package mockreg provides an in-memory type registry for testing and
// examples.
//
// It implements glib.TypeRegistry without the native library, plus a small
// object model around it: test object types (RegisterObjectType), interface
// implementations with prerequisite enforcement (AddImplementation), and
// instances (NewInstance). Interface initialization fires lazily before the
// first implementor instance is created, matching the native registrar's
// ordering guarantee.
//
// An event log records property installations and signal registrations so
// tests can assert ordering and exactly-once behavior:
//
//	reg := mockreg.Install(t) // swapped back automatically via t.Cleanup
//	widget := reg.RegisterObjectType("Widget", glib.TypeInvalid)
//	...
//	got := reg.Events() // e.g. ["install-property:color", "register-signal:redraw"]
package mockreg
