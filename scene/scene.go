package scene

import (
	"errors"
	"fmt"
	"image"
	"io/ioutil"
	"log"
	"path/filepath"

	"github.com/binzume/raygeom/geom"
	"github.com/binzume/raygeom/gltfutil"
	yaml "gopkg.in/yaml.v2"
)

// Vec is a geom.Vector3 written as a 3 element YAML sequence.
type Vec struct {
	geom.Vector3
}

func (v *Vec) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var e []float64
	if err := unmarshal(&e); err != nil {
		return err
	}
	if len(e) != 3 {
		return fmt.Errorf("vector needs 3 elements, got %d", len(e))
	}
	v.Vector3 = geom.NewVector3(e[0], e[1], e[2])
	return nil
}

type ImageConfig struct {
	Width   int     `yaml:"width"`
	Aspect  float64 `yaml:"aspect"`
	Samples int     `yaml:"samples"`
}

type CameraConfig struct {
	Origin         Vec     `yaml:"origin"`
	ViewportHeight float64 `yaml:"viewport_height"`
	FocalLength    float64 `yaml:"focal_length"`
}

type SphereConfig struct {
	Center Vec     `yaml:"center"`
	Radius float64 `yaml:"radius"`
}

type MeshConfig struct {
	Path   string `yaml:"path"`
	Scale  *Vec   `yaml:"scale"`
	Offset Vec    `yaml:"offset"`
}

type Config struct {
	Image      ImageConfig  `yaml:"image"`
	Camera     CameraConfig `yaml:"camera"`
	Background struct {
		Image string `yaml:"image"`
	} `yaml:"background"`
	Spheres  []SphereConfig `yaml:"spheres"`
	Polygons [][]Vec        `yaml:"polygons"`
	Meshes   []MeshConfig   `yaml:"meshes"`
}

type Sphere struct {
	Center geom.Point3
	Radius float64
}

type Camera struct {
	Origin     geom.Point3
	LowerLeft  geom.Point3
	Horizontal geom.Vector3
	Vertical   geom.Vector3
}

// Ray returns the ray through the viewport point (u, v), both in [0, 1].
func (c *Camera) Ray(u, v float64) geom.Ray {
	dir := c.LowerLeft.Add(c.Horizontal.Scale(u)).Add(c.Vertical.Scale(v)).Sub(c.Origin)
	return geom.NewRay(c.Origin, dir)
}

type Scene struct {
	Width     int
	Height    int
	Samples   int
	Camera    Camera
	Spheres   []Sphere
	Triangles []gltfutil.Triangle
	// Environment is an equirectangular image, nil for the sky gradient.
	Environment image.Image
}

var ErrInvalidScene = errors.New("invalid scene")

func Load(path string) (*Scene, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data, filepath.Dir(path))
}

// Parse builds a scene from YAML. Relative paths are resolved against baseDir.
func Parse(data []byte, baseDir string) (*Scene, error) {
	conf := Config{
		Image:  ImageConfig{Aspect: 16.0 / 9.0, Samples: 1},
		Camera: CameraConfig{ViewportHeight: 2, FocalLength: 1},
	}
	if err := yaml.Unmarshal(data, &conf); err != nil {
		return nil, err
	}
	return conf.Build(baseDir)
}

func (conf *Config) Build(baseDir string) (*Scene, error) {
	if conf.Image.Width <= 0 || conf.Image.Aspect <= 0 {
		return nil, fmt.Errorf("%w: image size %dx%v", ErrInvalidScene, conf.Image.Width, conf.Image.Aspect)
	}
	if conf.Image.Samples < 1 {
		return nil, fmt.Errorf("%w: samples %d", ErrInvalidScene, conf.Image.Samples)
	}
	if conf.Camera.ViewportHeight <= 0 || conf.Camera.FocalLength <= 0 {
		return nil, fmt.Errorf("%w: camera viewport", ErrInvalidScene)
	}

	sc := &Scene{
		Width:   conf.Image.Width,
		Height:  int(float64(conf.Image.Width) / conf.Image.Aspect),
		Samples: conf.Image.Samples,
	}
	if sc.Height < 1 {
		sc.Height = 1
	}

	vh := conf.Camera.ViewportHeight
	vw := conf.Image.Aspect * vh
	origin := conf.Camera.Origin.Vector3
	sc.Camera = Camera{
		Origin:     origin,
		Horizontal: geom.NewVector3(vw, 0, 0),
		Vertical:   geom.NewVector3(0, vh, 0),
	}
	sc.Camera.LowerLeft = origin.
		Sub(geom.DivScalar(sc.Camera.Horizontal, 2)).
		Sub(geom.DivScalar(sc.Camera.Vertical, 2)).
		Sub(geom.NewVector3(0, 0, conf.Camera.FocalLength))

	for i, s := range conf.Spheres {
		if s.Radius <= 0 {
			return nil, fmt.Errorf("%w: sphere %d radius %v", ErrInvalidScene, i, s.Radius)
		}
		sc.Spheres = append(sc.Spheres, Sphere{Center: s.Center.Vector3, Radius: s.Radius})
	}

	for _, poly := range conf.Polygons {
		verts := make([]geom.Vector3, len(poly))
		for i, v := range poly {
			verts[i] = v.Vector3
		}
		for _, t := range geom.Triangulate(verts) {
			sc.Triangles = append(sc.Triangles, gltfutil.Triangle{verts[t[0]], verts[t[1]], verts[t[2]]})
		}
	}

	for _, m := range conf.Meshes {
		tris, err := loadMesh(resolve(baseDir, m.Path), m)
		if err != nil {
			return nil, err
		}
		sc.Triangles = append(sc.Triangles, tris...)
	}

	if conf.Background.Image != "" {
		img, err := LoadImage(resolve(baseDir, conf.Background.Image))
		if err != nil {
			return nil, err
		}
		sc.Environment = img
	}
	return sc, nil
}

func loadMesh(path string, m MeshConfig) ([]gltfutil.Triangle, error) {
	doc, err := gltfutil.Load(path)
	if err != nil {
		return nil, err
	}
	tris, err := gltfutil.Triangles(doc)
	if err != nil {
		return nil, err
	}
	scale := geom.NewVector3(1, 1, 1)
	if m.Scale != nil {
		scale = m.Scale.Vector3
	}
	gltfutil.Transform(tris, scale, m.Offset.Vector3)
	min, max := gltfutil.Bounds(tris)
	log.Printf("mesh %s: %d triangles, bounds (%v) - (%v)", m.Path, len(tris), min, max)
	return tris, nil
}

func resolve(baseDir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}
