package geom

// Scalar is any numeric kind accepted as a vector multiplier or divisor.
// Values are converted to Element before use.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

func MulScalar[T Scalar](v Vector3, s T) Vector3 {
	return v.Scale(Element(s))
}

func ScalarMul[T Scalar](s T, v Vector3) Vector3 {
	return MulScalar(v, s)
}

func DivScalar[T Scalar](v Vector3, s T) Vector3 {
	return v.Div(Element(s))
}

func MulAssignScalar[T Scalar](v *Vector3, s T) {
	v.MulAssign(Element(s))
}

func DivAssignScalar[T Scalar](v *Vector3, s T) error {
	return v.DivAssign(Element(s))
}
