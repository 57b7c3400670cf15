package glib

// Type is the opaque, process-wide identifier of a type registered with the
// GObject type system. Once a Type is valid it never changes meaning for the
// lifetime of the process.
type Type uintptr

// TypeInvalid is the distinguished sentinel for "no type".
const TypeInvalid Type = 0

// Fundamental type identifiers. These values are fixed by the GObject ABI
// (fundamental id shifted by G_TYPE_FUNDAMENTAL_SHIFT) and are identical in
// every process, so they are usable before any registration happens.
const (
	TypeNone      Type = 1 << 2
	TypeInterface Type = 2 << 2
	TypeChar      Type = 3 << 2
	TypeUchar     Type = 4 << 2
	TypeBool      Type = 5 << 2
	TypeInt       Type = 6 << 2
	TypeUint      Type = 7 << 2
	TypeLong      Type = 8 << 2
	TypeUlong     Type = 9 << 2
	TypeInt64     Type = 10 << 2
	TypeUint64    Type = 11 << 2
	TypeFloat     Type = 14 << 2
	TypeDouble    Type = 15 << 2
	TypeString    Type = 16 << 2
	TypePointer   Type = 17 << 2
	TypeBoxed     Type = 18 << 2
	TypeParam     Type = 19 << 2
	TypeObject    Type = 20 << 2
)

// IsValid reports whether t names a type at all.
func (t Type) IsValid() bool { return t != TypeInvalid }

// Name returns the name t was registered under.
func (t Type) Name() string {
	if !t.IsValid() {
		return "<invalid>"
	}
	if n := Registry().TypeName(t); n != "" {
		return n
	}
	return "<unknown>"
}

func (t Type) String() string { return t.Name() }

// IsA reports whether t is a-kind-of is: the same type, a subtype, or an
// implementor when is names an interface.
func (t Type) IsA(is Type) bool { return Registry().IsA(t, is) }

// ObjectType makes Type its own witness, so already-registered identifiers
// can appear directly in PrerequisitesOf.
func (t Type) ObjectType() Type { return t }
