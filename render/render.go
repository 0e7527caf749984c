package render

import (
	"image"
	"image/color"
	"math"

	"github.com/binzume/raygeom/geom"
	"github.com/binzume/raygeom/scene"
	"golang.org/x/image/draw"
)

const tMin = 0.001

var (
	white   = geom.NewVector3(1, 1, 1)
	skyBlue = geom.NewVector3(0.5, 0.7, 1.0)
)

// Render casts one ray per pixel at Samples times the scene resolution and
// downscales the result.
func Render(sc *scene.Scene) *image.RGBA {
	w, h := sc.Width*sc.Samples, sc.Height*sc.Samples
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			u := (float64(x) + 0.5) / float64(w)
			v := 1 - (float64(y)+0.5)/float64(h)
			img.SetRGBA(x, y, toRGBA(RayColor(sc, sc.Camera.Ray(u, v))))
		}
	}
	if sc.Samples == 1 {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, sc.Width, sc.Height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// RayColor shades the nearest hit by its normal, or the background.
func RayColor(sc *scene.Scene, r geom.Ray) geom.Vector3 {
	n, ok := hit(sc, r)
	if ok {
		return geom.ScalarMul(0.5, n.Add(white))
	}
	d := r.Dir.Unit()
	if sc.Environment != nil {
		return environment(sc.Environment, d)
	}
	t := 0.5 * (d.Y() + 1)
	return geom.ScalarMul(1-t, white).Add(geom.ScalarMul(t, skyBlue))
}

func hit(sc *scene.Scene, r geom.Ray) (geom.Vector3, bool) {
	nearest := math.Inf(1)
	var normal geom.Vector3
	for _, s := range sc.Spheres {
		if t, ok := r.IntersectSphere(s.Center, s.Radius, tMin, nearest); ok {
			nearest = t
			normal = r.At(t).Sub(s.Center).Div(s.Radius)
		}
	}
	for _, tri := range sc.Triangles {
		t, ok := r.IntersectTriangle(tri[0], tri[1], tri[2])
		if !ok || t <= tMin || t >= nearest {
			continue
		}
		nearest = t
		normal = tri[1].Sub(tri[0]).Cross(tri[2].Sub(tri[0])).Unit()
		if normal.Dot(r.Dir) > 0 {
			normal = normal.Neg()
		}
	}
	return normal, !math.IsInf(nearest, 1)
}

// environment samples an equirectangular image in direction d.
func environment(img image.Image, d geom.Vector3) geom.Vector3 {
	b := img.Bounds()
	u := 0.5 + math.Atan2(d.X(), -d.Z())/(2*math.Pi)
	v := math.Acos(math.Max(-1, math.Min(1, d.Y()))) / math.Pi
	x := b.Min.X + int(math.Min(u*float64(b.Dx()), float64(b.Dx()-1)))
	y := b.Min.Y + int(math.Min(v*float64(b.Dy()), float64(b.Dy()-1)))
	r, g, bl, _ := img.At(x, y).RGBA()
	return geom.DivScalar(geom.NewVector3(float64(r), float64(g), float64(bl)), 0xffff)
}

func toRGBA(c geom.Vector3) color.RGBA {
	ch := func(f float64) uint8 {
		return uint8(256 * math.Max(0, math.Min(0.999, f)))
	}
	return color.RGBA{ch(c.X()), ch(c.Y()), ch(c.Z()), 255}
}
