// Package types implements the XPP type system: a small tagged-variant
// tree together with the two equivalence relations ("strict" and "soft")
// the verifier uses for assignment, operator and cast checking.
//
// Ported from original_source/src/type.hpp; the Go encoding uses an
// interface plus one concrete struct per variant rather than a C++ class
// hierarchy, following the teacher's general approach to tagged data
// (internal/ast.Node does the same for AST nodes).
package types

import "fmt"

// Kind tags which variant of Type a value holds.
type Kind int

const (
	KindPrimitive Kind = iota
	KindPointer
	KindArray
	KindEnum
	KindClass
	KindMurky
	KindImport
)

// Type is the tagged variant every XPP type value satisfies. Equality is
// deliberately not a method on the interface: Equals and EqualsSoft below
// need to compare two arbitrary variants against each other (e.g. Array
// against Pointer), which reads more naturally as free functions than as
// double-dispatch methods.
type Type interface {
	Kind() Kind
	String() string
}

// PrimitiveSpec enumerates the closed set of non-composite types.
type PrimitiveSpec int

const (
	Void PrimitiveSpec = iota
	Bool
	I8
	I32
	I64
	U8
	U32
	U64
	F32
	F64
	Unknown
	Error
	Variadic
)

var primitiveNames = map[PrimitiveSpec]string{
	Void: "void", Bool: "bool", I8: "i8", I32: "i32", I64: "i64",
	U8: "u8", U32: "u32", U64: "u64", F32: "f32", F64: "f64",
	Unknown: "<unknown>", Error: "<error>", Variadic: "...",
}

func (s PrimitiveSpec) String() string { return primitiveNames[s] }

// Primitive is a non-composite type.
type Primitive struct{ Spec PrimitiveSpec }

func (p *Primitive) Kind() Kind      { return KindPrimitive }
func (p *Primitive) String() string  { return p.Spec.String() }
func (p *Primitive) IsSignedInt() bool {
	switch p.Spec {
	case I8, I32, I64:
		return true
	default:
		return false
	}
}
func (p *Primitive) IsUnsignedInt() bool {
	switch p.Spec {
	case U8, U32, U64:
		return true
	default:
		return false
	}
}
func (p *Primitive) IsFloat() bool { return p.Spec == F32 || p.Spec == F64 }
func (p *Primitive) IsNumeric() bool {
	return p.IsSignedInt() || p.IsUnsignedInt() || p.IsFloat()
}

// Pointer is a pointer-to-inner type. Pointer(Void) is the universal
// pointer: it strict-equals every other Pointer regardless of element
// type, matching a C-style `void*`.
type Pointer struct{ Inner Type }

func (p *Pointer) Kind() Kind     { return KindPointer }
func (p *Pointer) String() string { return p.Inner.String() + "*" }

// Array is a fixed-or-unsized-length array of Inner. A nil Length means
// the length was not specified at this reference (e.g. in a parameter
// type); two Array types with differing Length are still strict-equal if
// either side leaves Length unspecified.
type Array struct {
	Inner  Type
	Length *int
}

func (a *Array) Kind() Kind { return KindArray }
func (a *Array) String() string {
	if a.Length != nil {
		return fmt.Sprintf("%s[%d]", a.Inner.String(), *a.Length)
	}
	return a.Inner.String() + "[]"
}

// EnumRef is the narrow view of an ast.EnumDecl that the types package
// needs; ast.EnumDecl satisfies it without types importing ast, avoiding
// an import cycle between the two packages.
type EnumRef interface {
	EnumName() string
}

// Enum wraps a weak back-reference to the declaration that introduced it.
type Enum struct{ Ref EnumRef }

func (e *Enum) Kind() Kind     { return KindEnum }
func (e *Enum) String() string { return e.Ref.EnumName() }

// ClassRef is the narrow view of an ast.ClassDecl the types package needs.
type ClassRef interface {
	ClassName() string
}

// Class wraps a weak back-reference to the declaration that introduced it.
type Class struct{ Ref ClassRef }

func (c *Class) Kind() Kind     { return KindClass }
func (c *Class) String() string { return c.Ref.ClassName() }

// Murky is a named type reference seen before its declaration has been
// resolved; the verifier "unmurks" it once the referent is found.
type Murky struct{ Name string }

func (m *Murky) Kind() Kind     { return KindMurky }
func (m *Murky) String() string { return m.Name }

// Import wraps a type imported under a module path; equality delegates
// entirely to Inner on both sides.
type Import struct {
	Path  string
	Inner Type
}

func (i *Import) Kind() Kind     { return KindImport }
func (i *Import) String() string { return i.Path + "." + i.Inner.String() }

func unwrapImport(t Type) Type {
	for {
		imp, ok := t.(*Import)
		if !ok {
			return t
		}
		t = imp.Inner
	}
}

// Canonical singletons, mirroring Handler::VOID_TYPE et al. from the
// original implementation (materialized here as package-level values
// rather than Handler-owned globals, per the Design Notes on global
// state).
var (
	VoidType     Type = &Primitive{Spec: Void}
	BoolType     Type = &Primitive{Spec: Bool}
	I64Type      Type = &Primitive{Spec: I64}
	UnknownType  Type = &Primitive{Spec: Unknown}
	ErrorType    Type = &Primitive{Spec: Error}
	VariadicType Type = &Primitive{Spec: Variadic}
)

func isVoidPointer(t Type) bool {
	p, ok := t.(*Pointer)
	if !ok {
		return false
	}
	prim, ok := unwrapImport(p.Inner).(*Primitive)
	return ok && prim.Spec == Void
}

// Equals implements strict equivalence (spec.md §3 "Strict (equals)").
func Equals(a, b Type) bool {
	a, b = unwrapImport(a), unwrapImport(b)

	switch av := a.(type) {
	case *Primitive:
		bv, ok := b.(*Primitive)
		return ok && av.Spec == bv.Spec
	case *Pointer:
		bv, ok := b.(*Pointer)
		if !ok {
			return false
		}
		if isVoidPointer(a) || isVoidPointer(b) {
			return true
		}
		return Equals(av.Inner, bv.Inner)
	case *Array:
		bv, ok := b.(*Array)
		if !ok {
			return false
		}
		if !Equals(av.Inner, bv.Inner) {
			return false
		}
		if av.Length != nil && bv.Length != nil {
			return *av.Length == *bv.Length
		}
		return true
	case *Enum:
		bv, ok := b.(*Enum)
		return ok && av.Ref.EnumName() == bv.Ref.EnumName()
	case *Class:
		bv, ok := b.(*Class)
		return ok && av.Ref.ClassName() == bv.Ref.ClassName()
	case *Murky:
		bv, ok := b.(*Murky)
		return ok && av.Name == bv.Name
	default:
		return false
	}
}

// EqualsSoft implements soft equivalence (spec.md §3 "Soft
// (equals_soft)"): all signed-integer widths are mutually equivalent,
// likewise unsigned-integer and float widths, and Array softly equals
// Pointer when their element types are strictly equal.
func EqualsSoft(a, b Type) bool {
	a, b = unwrapImport(a), unwrapImport(b)

	if ap, ok := a.(*Primitive); ok {
		if bp, ok := b.(*Primitive); ok {
			if ap.Spec == bp.Spec {
				return true
			}
			if ap.IsSignedInt() && bp.IsSignedInt() {
				return true
			}
			if ap.IsUnsignedInt() && bp.IsUnsignedInt() {
				return true
			}
			if ap.IsFloat() && bp.IsFloat() {
				return true
			}
			return false
		}
	}

	if arr, ok := a.(*Array); ok {
		if ptr, ok := b.(*Pointer); ok {
			return Equals(arr.Inner, ptr.Inner)
		}
	}
	if ptr, ok := a.(*Pointer); ok {
		if arr, ok := b.(*Array); ok {
			return Equals(ptr.Inner, arr.Inner)
		}
	}

	return Equals(a, b)
}

// IsNumeric reports whether t is a signed, unsigned, or float primitive.
func IsNumeric(t Type) bool {
	p, ok := unwrapImport(t).(*Primitive)
	return ok && p.IsNumeric()
}

// IsSignedInt reports whether t is a signed integer primitive.
func IsSignedInt(t Type) bool {
	p, ok := unwrapImport(t).(*Primitive)
	return ok && p.IsSignedInt()
}

// IsBool reports whether t is the Bool primitive.
func IsBool(t Type) bool {
	p, ok := unwrapImport(t).(*Primitive)
	return ok && p.Spec == Bool
}

// IsUnknown reports whether t is the Unknown placeholder.
func IsUnknown(t Type) bool {
	p, ok := unwrapImport(t).(*Primitive)
	return ok && p.Spec == Unknown
}

// IsError reports whether t is the Error placeholder.
func IsError(t Type) bool {
	p, ok := unwrapImport(t).(*Primitive)
	return ok && p.Spec == Error
}
