package geom

import "math"

type Ray struct {
	Orig Point3
	Dir  Vector3
}

func NewRay(orig Point3, dir Vector3) Ray {
	return Ray{Orig: orig, Dir: dir}
}

func (r Ray) At(t Element) Point3 {
	return r.Orig.Add(r.Dir.Scale(t))
}

const triangleEpsilon = 1e-9

// IntersectTriangle returns the ray parameter of the hit with triangle abc.
// Both faces are hit.
func (r Ray) IntersectTriangle(a, b, c Point3) (Element, bool) {
	e1, e2 := b.Sub(a), c.Sub(a)
	p := r.Dir.Cross(e2)
	det := e1.Dot(p)
	if det > -triangleEpsilon && det < triangleEpsilon {
		return 0, false
	}
	inv := 1 / det
	s := r.Orig.Sub(a)
	u := s.Dot(p) * inv
	if u < 0 || u > 1 {
		return 0, false
	}
	q := s.Cross(e1)
	v := r.Dir.Dot(q) * inv
	if v < 0 || u+v > 1 {
		return 0, false
	}
	return e2.Dot(q) * inv, true
}

// IntersectSphere returns the nearest ray parameter in (tMin, tMax).
func (r Ray) IntersectSphere(center Point3, radius Element, tMin, tMax Element) (Element, bool) {
	oc := r.Orig.Sub(center)
	a := r.Dir.LenSqr()
	halfB := oc.Dot(r.Dir)
	c := oc.LenSqr() - radius*radius
	d := halfB*halfB - a*c
	if d < 0 {
		return 0, false
	}
	sqrtd := math.Sqrt(d)
	t := (-halfB - sqrtd) / a
	if t <= tMin || t >= tMax {
		t = (-halfB + sqrtd) / a
		if t <= tMin || t >= tMax {
			return 0, false
		}
	}
	return t, true
}
