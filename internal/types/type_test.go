package types

import "testing"

func i(n int) *int { return &n }

func TestEqualsPrimitive(t *testing.T) {
	if !Equals(I64Type, &Primitive{Spec: I64}) {
		t.Error("I64 should equal I64")
	}
	if Equals(I64Type, &Primitive{Spec: I32}) {
		t.Error("I64 should not strict-equal I32")
	}
}

func TestEqualsVoidPointerUniversal(t *testing.T) {
	voidPtr := &Pointer{Inner: VoidType}
	i64Ptr := &Pointer{Inner: I64Type}
	boolPtr := &Pointer{Inner: BoolType}

	if !Equals(voidPtr, i64Ptr) {
		t.Error("Pointer(Void) should strict-equal Pointer(I64)")
	}
	if !Equals(i64Ptr, voidPtr) {
		t.Error("Pointer(Void) universality should be symmetric")
	}
	if !Equals(voidPtr, boolPtr) {
		t.Error("Pointer(Void) should strict-equal Pointer(Bool)")
	}
	if Equals(i64Ptr, boolPtr) {
		t.Error("Pointer(I64) should not strict-equal Pointer(Bool)")
	}
}

func TestEqualsArrayLength(t *testing.T) {
	a3 := &Array{Inner: I64Type, Length: i(3)}
	b3 := &Array{Inner: I64Type, Length: i(3)}
	c5 := &Array{Inner: I64Type, Length: i(5)}
	unsized := &Array{Inner: I64Type}

	if !Equals(a3, b3) {
		t.Error("arrays with equal length should strict-equal")
	}
	if Equals(a3, c5) {
		t.Error("arrays with differing length should not strict-equal")
	}
	if !Equals(a3, unsized) {
		t.Error("array strict-equals an unsized array of the same element type")
	}
}

func TestEqualsSoftIntegerWidths(t *testing.T) {
	i8 := &Primitive{Spec: I8}
	i32 := &Primitive{Spec: I32}
	i64 := &Primitive{Spec: I64}
	u8 := &Primitive{Spec: U8}

	if !EqualsSoft(i8, i32) || !EqualsSoft(i32, i64) {
		t.Error("signed integer widths should soft-equal each other")
	}
	if EqualsSoft(i8, u8) {
		t.Error("signed and unsigned should not soft-equal")
	}
}

func TestEqualsSoftFloatWidths(t *testing.T) {
	f32 := &Primitive{Spec: F32}
	f64 := &Primitive{Spec: F64}
	if !EqualsSoft(f32, f64) {
		t.Error("float widths should soft-equal each other")
	}
}

func TestEqualsSoftArrayPointer(t *testing.T) {
	arr := &Array{Inner: I64Type, Length: i(4)}
	ptr := &Pointer{Inner: I64Type}
	if !EqualsSoft(arr, ptr) {
		t.Error("Array should soft-equal Pointer with strictly-equal element type")
	}
	if !EqualsSoft(ptr, arr) {
		t.Error("Pointer-vs-Array soft equality should be symmetric")
	}

	mismatched := &Pointer{Inner: BoolType}
	if EqualsSoft(arr, mismatched) {
		t.Error("Array should not soft-equal Pointer with a different element type")
	}
}

func TestEqualsReflexiveSymmetricTransitive(t *testing.T) {
	types := []Type{I64Type, BoolType, &Pointer{Inner: I64Type}, &Array{Inner: BoolType, Length: i(2)}}
	for _, ty := range types {
		if !Equals(ty, ty) {
			t.Errorf("%s should strict-equal itself", ty)
		}
	}
	for _, a := range types {
		for _, b := range types {
			if Equals(a, b) != Equals(b, a) {
				t.Errorf("Equals(%s, %s) and Equals(%s, %s) disagree", a, b, b, a)
			}
			for _, c := range types {
				if Equals(a, b) && Equals(b, c) && !Equals(a, c) {
					t.Errorf("%s equals %s and %s equals %s, but %s does not equal %s", a, b, b, c, a, c)
				}
			}
		}
	}
}

type fakeEnum struct{ name string }

func (f fakeEnum) EnumName() string { return f.name }

func TestEqualsEnum(t *testing.T) {
	a := &Enum{Ref: fakeEnum{"Color"}}
	b := &Enum{Ref: fakeEnum{"Color"}}
	c := &Enum{Ref: fakeEnum{"Other"}}
	if !Equals(a, b) {
		t.Error("enums with the same name should strict-equal")
	}
	if Equals(a, c) {
		t.Error("enums with different names should not strict-equal")
	}
}

func TestImportDelegates(t *testing.T) {
	imported := &Import{Path: "m", Inner: I64Type}
	if !Equals(imported, I64Type) {
		t.Error("Import should delegate strict equality to its Inner type")
	}
	if !EqualsSoft(imported, &Primitive{Spec: I32}) {
		t.Error("Import should delegate soft equality to its Inner type")
	}
}
