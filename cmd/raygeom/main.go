package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/binzume/raygeom/render"
	"github.com/binzume/raygeom/scene"
)

func defaultOutputFile(input string) string {
	ext := filepath.Ext(input)
	return input[0:len(input)-len(ext)] + ".png"
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s scene.yaml [output.png|output.bmp|output.ppm]\n", os.Args[0])
		flag.PrintDefaults()
	}
	width := flag.Int("width", 0, "image width (0: scene)")
	samples := flag.Int("samples", 0, "supersampling factor (0: scene)")
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		return
	}
	input := flag.Arg(0)
	output := defaultOutputFile(input)
	if flag.NArg() > 1 {
		output = flag.Arg(1)
	}

	sc, err := scene.Load(input)
	if err != nil {
		log.Fatal(err)
	}
	if *width > 0 {
		sc.Height = sc.Height * *width / sc.Width
		if sc.Height < 1 {
			sc.Height = 1
		}
		sc.Width = *width
	}
	if *samples > 0 {
		sc.Samples = *samples
	}

	log.Printf("render %dx%d (x%d), %d spheres, %d triangles", sc.Width, sc.Height, sc.Samples, len(sc.Spheres), len(sc.Triangles))
	img := render.Render(sc)

	log.Print("out: ", output)
	if err := render.Save(img, output); err != nil {
		log.Fatal(err)
	}
}
