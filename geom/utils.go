package geom

func IsInTriangle(p, a, b, c Vector3) bool {
	ab, bc, ca := b.Sub(a), c.Sub(b), a.Sub(c)
	c1, c2, c3 := ab.Cross(p.Sub(a)), bc.Cross(p.Sub(b)), ca.Cross(p.Sub(c))
	return c1.Dot(c2) > 0 && c2.Dot(c3) > 0 && c3.Dot(c1) > 0
}

// PolygonNormal returns the area weighted normal of a closed polygon.
// Its length is twice the polygon area, zero for collinear input.
func PolygonNormal(poly []Vector3) Vector3 {
	var n Vector3
	for i, v := range poly {
		n.AddAssign(v.Cross(poly[(i+1)%len(poly)]))
	}
	return n
}

// Triangulate splits a planar polygon into triangles by ear clipping and
// returns vertex indices wound like the polygon. A polygon without area
// yields nil. If no ear is left (self-intersecting input) the remaining
// vertices are emitted as a fan.
func Triangulate(poly []Vector3) [][3]int {
	if len(poly) < 3 {
		return nil
	}
	n := PolygonNormal(poly)
	if n.LenSqr() == 0 {
		return nil
	}

	remain := make([]int, len(poly))
	for i := range remain {
		remain[i] = i
	}
	dst := make([][3]int, 0, len(poly)-2)
	for len(remain) > 3 {
		ear := findEar(poly, remain, n)
		if ear < 0 {
			break
		}
		k := len(remain)
		dst = append(dst, [3]int{remain[(ear+k-1)%k], remain[ear], remain[(ear+1)%k]})
		remain = append(remain[:ear], remain[ear+1:]...)
	}
	for i := 1; i+1 < len(remain); i++ {
		dst = append(dst, [3]int{remain[0], remain[i], remain[i+1]})
	}
	return dst
}

// findEar returns the position in remain of a convex corner whose triangle
// holds no other remaining vertex, or -1.
func findEar(poly []Vector3, remain []int, n Vector3) int {
	k := len(remain)
	for i := range remain {
		prev, next := (i+k-1)%k, (i+1)%k
		a, b, c := poly[remain[prev]], poly[remain[i]], poly[remain[next]]
		if b.Sub(a).Cross(c.Sub(b)).Dot(n) <= 0 {
			continue
		}
		empty := true
		for j := 0; j < k && empty; j++ {
			if j != prev && j != i && j != next {
				empty = !IsInTriangle(poly[remain[j]], a, b, c)
			}
		}
		if empty {
			return i
		}
	}
	return -1
}
