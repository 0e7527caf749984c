package scene

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/blezek/tga"
	_ "github.com/oov/psd"
	_ "golang.org/x/image/bmp"
)

// LoadImage decodes png, jpeg, bmp, psd and tga images.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil && strings.ToLower(filepath.Ext(path)) == ".tga" {
		// retry
		if _, err = f.Seek(0, io.SeekStart); err != nil {
			return nil, err
		}
		img, err = tga.Decode(f)
	}
	return img, err
}
