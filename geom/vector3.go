package geom

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

type Element = float64

var (
	ErrDivideByZero    = errors.New("geom: divide by zero")
	ErrIndexOutOfRange = errors.New("geom: index out of range")
)

// Vector3 is a point or direction in 3D space. Components are stored in
// x, y, z order and are never validated, so NaN and Inf propagate.
type Vector3 struct {
	e [3]Element
}

type Point3 = Vector3

func NewVector3(x, y, z Element) Vector3 {
	return Vector3{e: [3]Element{x, y, z}}
}

func NewVector3FromArray(arr [3]Element) Vector3 {
	return Vector3{e: arr}
}

func NewVector3FromFloat32(arr [3]float32) Vector3 {
	return NewVector3(Element(arr[0]), Element(arr[1]), Element(arr[2]))
}

func Zero() Vector3 {
	return Vector3{}
}

func (v Vector3) X() Element { return v.e[0] }
func (v Vector3) Y() Element { return v.e[1] }
func (v Vector3) Z() Element { return v.e[2] }

func (v Vector3) Array() [3]Element {
	return v.e
}

func (v Vector3) At(i int) (Element, error) {
	p, err := v.Ref(i)
	if err != nil {
		return 0, err
	}
	return *p, nil
}

// Ref returns a pointer to the i-th component. It is only valid while v is.
func (v *Vector3) Ref(i int) (*Element, error) {
	if i < 0 || i >= len(v.e) {
		return nil, fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	return &v.e[i], nil
}

func (v *Vector3) Set(i int, value Element) error {
	p, err := v.Ref(i)
	if err != nil {
		return err
	}
	*p = value
	return nil
}

func (v Vector3) Neg() Vector3 {
	return NewVector3(-v.e[0], -v.e[1], -v.e[2])
}

func (v Vector3) Add(v2 Vector3) Vector3 {
	return NewVector3(v.e[0]+v2.e[0], v.e[1]+v2.e[1], v.e[2]+v2.e[2])
}

func (v Vector3) Sub(v2 Vector3) Vector3 {
	return NewVector3(v.e[0]-v2.e[0], v.e[1]-v2.e[1], v.e[2]-v2.e[2])
}

// Mul returns the componentwise product.
func (v Vector3) Mul(v2 Vector3) Vector3 {
	return NewVector3(v.e[0]*v2.e[0], v.e[1]*v2.e[1], v.e[2]*v2.e[2])
}

func (v Vector3) Scale(s Element) Vector3 {
	return NewVector3(v.e[0]*s, v.e[1]*s, v.e[2]*s)
}

// Div multiplies by the reciprocal of s. A zero s is not rejected and
// yields Inf or NaN components; use DivAssign for a checked division.
func (v Vector3) Div(s Element) Vector3 {
	return v.Scale(1 / s)
}

func (v *Vector3) AddAssign(v2 Vector3) {
	v.e[0] += v2.e[0]
	v.e[1] += v2.e[1]
	v.e[2] += v2.e[2]
}

func (v *Vector3) MulAssign(s Element) {
	v.e[0] *= s
	v.e[1] *= s
	v.e[2] *= s
}

// DivAssign divides v in place. s must not be exactly zero; v is left
// untouched when it is.
func (v *Vector3) DivAssign(s Element) error {
	if s == 0 {
		return ErrDivideByZero
	}
	v.e[0] /= s
	v.e[1] /= s
	v.e[2] /= s
	return nil
}

func (v Vector3) Dot(v2 Vector3) Element {
	return v.e[0]*v2.e[0] + v.e[1]*v2.e[1] + v.e[2]*v2.e[2]
}

func (v Vector3) Cross(v2 Vector3) Vector3 {
	return NewVector3(
		v.e[1]*v2.e[2]-v.e[2]*v2.e[1],
		v.e[2]*v2.e[0]-v.e[0]*v2.e[2],
		v.e[0]*v2.e[1]-v.e[1]*v2.e[0],
	)
}

func (v Vector3) LenSqr() Element {
	return v.e[0]*v.e[0] + v.e[1]*v.e[1] + v.e[2]*v.e[2]
}

func (v Vector3) Len() Element {
	return math.Sqrt(v.LenSqr())
}

// Unit returns v scaled to length 1. v must have a non-zero length,
// the zero vector yields NaN components.
func (v Vector3) Unit() Vector3 {
	return v.Div(v.Len())
}

func (v Vector3) String() string {
	s := make([]string, len(v.e))
	for i, c := range v.e {
		s[i] = strconv.FormatFloat(c, 'g', -1, 64)
	}
	return strings.Join(s, " ")
}
