package geom

import (
	"errors"
	"math"
	"testing"
)

const eps = 0.000001

func near(a, b Vector3) bool {
	return a.Sub(b).Len() <= eps
}

func TestVector3(t *testing.T) {
	zero := Vector3{}
	if zero.Len() != 0 || zero.LenSqr() != 0 || zero.Dot(zero) != 0 {
		t.Error("len != 0")
	}
	if zero != Zero() || zero != NewVector3(0, 0, 0) {
		t.Error("zero vector", zero)
	}

	v := NewVector3(1, 2, 3)
	if v.X() != 1 || v.Y() != 2 || v.Z() != 3 {
		t.Error("x, y, z", v)
	}

	if NewVector3(1, 0, 0).Add(NewVector3(0, 1, 0)) != NewVector3(1, 1, 0) {
		t.Error("Vector.Add()")
	}
	if v.Sub(NewVector3(3, 2, 1)) != NewVector3(-2, 0, 2) {
		t.Error("Vector.Sub()")
	}
	if v.Mul(NewVector3(2, 3, 4)) != NewVector3(2, 6, 12) {
		t.Error("Vector.Mul()")
	}
	if v.Add(v.Neg()) != zero {
		t.Error("v + (-v) != 0", v.Add(v.Neg()))
	}

	nan := NewVector3(math.NaN(), math.Inf(1), math.Inf(-1))
	if !math.IsNaN(nan.X()) || !math.IsInf(nan.Y(), 1) || !math.IsInf(nan.Z(), -1) {
		t.Error("non-finite components must be kept", nan)
	}
}

func TestVector3Index(t *testing.T) {
	v := NewVector3(1, 2, 3)
	for i, want := range []Element{v.X(), v.Y(), v.Z()} {
		got, err := v.At(i)
		if err != nil || got != want {
			t.Errorf("At(%d) = %v, %v", i, got, err)
		}
	}

	for _, i := range []int{-1, 3, 100} {
		if _, err := v.At(i); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("At(%d) should fail: %v", i, err)
		}
		if err := v.Set(i, 0); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Set(%d) should fail: %v", i, err)
		}
	}

	p, err := v.Ref(1)
	if err != nil {
		t.Fatal(err)
	}
	*p = 5
	if v.Y() != 5 {
		t.Error("Ref() should point into the vector", v)
	}
	if err := v.Set(2, 7); err != nil || v.Z() != 7 {
		t.Error("Set()", v, err)
	}
}

func TestVector3Scale(t *testing.T) {
	v := NewVector3(1, 2, 3)
	if ScalarMul(2.0, v) != MulScalar(v, 2.0) || MulScalar(v, 2.0) != NewVector3(2, 4, 6) {
		t.Error("scalar multiplication should be commutative", ScalarMul(2.0, v))
	}
	if MulScalar(v, 2) != NewVector3(2, 4, 6) || MulScalar(v, uint8(2)) != NewVector3(2, 4, 6) ||
		MulScalar(v, float32(2)) != NewVector3(2, 4, 6) || ScalarMul(uint32(2), v) != NewVector3(2, 4, 6) {
		t.Error("scalar kinds should behave the same")
	}

	for _, s := range []Element{3, -7, 0.1, 1e-10, 12345.678} {
		if got := v.Scale(s).Div(s); !near(got, v) {
			t.Errorf("(v * %v) / %v = %v", s, s, got)
		}
	}

	if DivScalar(v, 4) != v.Scale(1.0/4) {
		t.Error("Div should multiply by the reciprocal")
	}

	inf := v.Div(0)
	if !math.IsInf(inf.X(), 1) || !math.IsInf(inf.Z(), 1) {
		t.Error("Div(0) should produce Inf", inf)
	}
}

func TestVector3Assign(t *testing.T) {
	v := NewVector3(1, 2, 3)
	v.AddAssign(NewVector3(1, 1, 1))
	if v != NewVector3(2, 3, 4) {
		t.Error("AddAssign()", v)
	}
	MulAssignScalar(&v, 2)
	if v != NewVector3(4, 6, 8) {
		t.Error("MulAssign()", v)
	}
	if err := DivAssignScalar(&v, 2); err != nil || v != NewVector3(2, 3, 4) {
		t.Error("DivAssign()", v, err)
	}

	if err := v.DivAssign(0); !errors.Is(err, ErrDivideByZero) {
		t.Error("DivAssign(0) should fail", err)
	}
	if v != NewVector3(2, 3, 4) {
		t.Error("failed DivAssign must not modify v", v)
	}
	if err := DivAssignScalar(&v, 0); !errors.Is(err, ErrDivideByZero) {
		t.Error("DivAssignScalar(int 0) should fail", err)
	}
	if err := DivAssignScalar(&v, uint8(0)); !errors.Is(err, ErrDivideByZero) {
		t.Error("DivAssignScalar(uint8 0) should fail", err)
	}
	if err := v.DivAssign(math.Copysign(0, -1)); !errors.Is(err, ErrDivideByZero) {
		t.Error("DivAssign(-0) should fail", err)
	}
	if v != NewVector3(2, 3, 4) {
		t.Error("failed DivAssign must not modify v", v)
	}

	if err := v.DivAssign(1e-300); err != nil {
		t.Error("DivAssign(1e-300)", err)
	}
	if v.X() < 1e300 {
		t.Error("DivAssign(1e-300) should produce a large value", v)
	}
}

func TestVector3Products(t *testing.T) {
	a, b := NewVector3(1, 2, 3), NewVector3(-4, 0.5, 2)

	if a.Dot(b) != 1*-4+2*0.5+3*2 {
		t.Error("Dot()", a.Dot(b))
	}
	if a.LenSqr() != a.Dot(a) {
		t.Error("LenSqr() != Dot(self)", a.LenSqr(), a.Dot(a))
	}
	if a.Len() != math.Sqrt(14) {
		t.Error("Len()", a.Len())
	}

	if NewVector3(1, 0, 0).Cross(NewVector3(0, 1, 0)) != NewVector3(0, 0, 1) {
		t.Error("x cross y should be z")
	}
	c := a.Cross(b)
	if c != b.Cross(a).Neg() {
		t.Error("cross product should be anti-commutative", c, b.Cross(a))
	}
	if math.Abs(a.Dot(c)) > eps || math.Abs(b.Dot(c)) > eps {
		t.Error("cross product should be orthogonal", a.Dot(c), b.Dot(c))
	}
}

func TestVector3Unit(t *testing.T) {
	for _, v := range []Vector3{NewVector3(1, 2, 3), NewVector3(0, 0, -5), NewVector3(1e-5, 3e4, 7)} {
		if l := v.Unit().Len(); math.Abs(l-1) > eps {
			t.Error("Unit().Len() != 1", v, l)
		}
	}
	u := Vector3{}.Unit()
	if !math.IsNaN(u.X()) || !math.IsNaN(u.Y()) || !math.IsNaN(u.Z()) {
		t.Error("unit of the zero vector should be NaN", u)
	}
}

func TestVector3String(t *testing.T) {
	if s := NewVector3(1.0, 2.0, 3.0).String(); s != "1 2 3" {
		t.Error("String()", s)
	}
	if s := NewVector3(0.5, -2, 1e21).String(); s != "0.5 -2 1e+21" {
		t.Error("String()", s)
	}
}
