package glib

// ObjectTyper is the compile-time witness that a value can name an
// object-capable type. Type itself satisfies it, as do generated wrapper
// types that expose their registered identifier.
type ObjectTyper interface {
	ObjectType() Type
}

// Prerequisites is an ordered list of type identifiers that every implementor
// of an interface must already satisfy. It is a plain value, computed fresh
// from the witnesses; the registration layer never stores it. Order is kept
// for readable diagnostics, but the registrar treats the list as a set.
type Prerequisites []Type

// PrerequisitesOf collects the identifiers of the given witnesses in
// declaration order. Calling it with no arguments yields an empty list: an
// interface anything may implement.
func PrerequisitesOf(types ...ObjectTyper) Prerequisites {
	out := make(Prerequisites, 0, len(types))
	for _, t := range types {
		out = append(out, t.ObjectType())
	}
	return out
}
