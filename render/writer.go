package render

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/binzume/raygeom/geom"
	"golang.org/x/image/bmp"
)

func Write(w io.Writer, img image.Image, format string) error {
	switch strings.ToLower(format) {
	case "png":
		return png.Encode(w, img)
	case "bmp":
		return bmp.Encode(w, img)
	case "ppm":
		return writePPM(w, img)
	}
	return fmt.Errorf("unsupported output format: %v", format)
}

func Save(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = Write(f, img, strings.TrimPrefix(filepath.Ext(path), "."))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// writePPM writes plain text P3 with one "r g b" line per pixel.
func writePPM(w io.Writer, img image.Image) error {
	b := img.Bounds()
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", b.Dx(), b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			c := geom.NewVector3(float64(r>>8), float64(g>>8), float64(bl>>8))
			fmt.Fprintln(bw, c)
		}
	}
	return bw.Flush()
}
