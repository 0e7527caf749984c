package gltfutil

import (
	"fmt"
	"log"
	"math"

	"github.com/binzume/raygeom/geom"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

type Triangle = [3]geom.Point3

func Load(path string) (*gltf.Document, error) {
	return gltf.Open(path)
}

// Triangles collects the triangles of every indexed primitive in doc.
// Strips and fans are expanded; point and line primitives are skipped.
// Node transforms are not applied.
func Triangles(doc *gltf.Document) ([]Triangle, error) {
	var dst []Triangle
	for _, m := range doc.Meshes {
		for _, p := range m.Primitives {
			if p.Indices == nil {
				log.Printf("skip non-indexed primitive in mesh %q", m.Name)
				continue
			}
			if !isTriangleMode(p.Mode) {
				log.Printf("skip primitive with mode %v in mesh %q", p.Mode, m.Name)
				continue
			}
			a, ok := p.Attributes["POSITION"]
			if !ok {
				continue
			}
			posAcr, err := accessor(doc, m.Name, a)
			if err != nil {
				return nil, err
			}
			indicesAcr, err := accessor(doc, m.Name, *p.Indices)
			if err != nil {
				return nil, err
			}
			pos, err := modeler.ReadPosition(doc, posAcr, [][3]float32{})
			if err != nil {
				return nil, fmt.Errorf("mesh %q: %w", m.Name, err)
			}
			indices, err := modeler.ReadIndices(doc, indicesAcr, []uint32{})
			if err != nil {
				return nil, fmt.Errorf("mesh %q: %w", m.Name, err)
			}
			for _, face := range triangleIndices(p.Mode, indices) {
				var tri Triangle
				for j, idx := range face {
					if int(idx) >= len(pos) {
						return nil, fmt.Errorf("mesh %q: index %d out of range", m.Name, idx)
					}
					tri[j] = geom.NewVector3FromFloat32(pos[idx])
				}
				dst = append(dst, tri)
			}
		}
	}
	return dst, nil
}

func accessor(doc *gltf.Document, mesh string, i uint32) (*gltf.Accessor, error) {
	if int(i) >= len(doc.Accessors) {
		return nil, fmt.Errorf("mesh %q: accessor %d out of range", mesh, i)
	}
	return doc.Accessors[i], nil
}

func isTriangleMode(mode gltf.PrimitiveMode) bool {
	return mode == gltf.PrimitiveTriangles || mode == gltf.PrimitiveTriangleStrip || mode == gltf.PrimitiveTriangleFan
}

// triangleIndices converts an index list of a triangle mode into faces.
// Odd strip faces are flipped to keep the winding.
func triangleIndices(mode gltf.PrimitiveMode, indices []uint32) [][3]uint32 {
	var faces [][3]uint32
	switch mode {
	case gltf.PrimitiveTriangles:
		for i := 0; i+2 < len(indices); i += 3 {
			faces = append(faces, [3]uint32{indices[i], indices[i+1], indices[i+2]})
		}
	case gltf.PrimitiveTriangleStrip:
		for i := 0; i+2 < len(indices); i++ {
			if i%2 == 0 {
				faces = append(faces, [3]uint32{indices[i], indices[i+1], indices[i+2]})
			} else {
				faces = append(faces, [3]uint32{indices[i], indices[i+2], indices[i+1]})
			}
		}
	case gltf.PrimitiveTriangleFan:
		for i := 1; i+1 < len(indices); i++ {
			faces = append(faces, [3]uint32{indices[i], indices[i+1], indices[0]})
		}
	}
	return faces
}

// Transform scales every vertex componentwise and then translates it.
func Transform(tris []Triangle, scale, offset geom.Vector3) {
	for i := range tris {
		for j := range tris[i] {
			tris[i][j] = tris[i][j].Mul(scale).Add(offset)
		}
	}
}

func Bounds(tris []Triangle) (min, max geom.Vector3) {
	if len(tris) == 0 {
		return
	}
	inf := math.Inf(1)
	min = geom.NewVector3(inf, inf, inf)
	max = min.Neg()
	for _, tri := range tris {
		for _, v := range tri {
			min = geom.NewVector3(math.Min(min.X(), v.X()), math.Min(min.Y(), v.Y()), math.Min(min.Z(), v.Z()))
			max = geom.NewVector3(math.Max(max.X(), v.X()), math.Max(max.Y(), v.Y()), math.Max(max.Z(), v.Z()))
		}
	}
	return
}
