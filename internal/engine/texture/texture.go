// Package texture decodes face images and prepares them for GPU upload.
//
// Every texture is normalized to a square RGBA image so the cube faces can
// sample them with the same UV layout. Files that fail to load are replaced
// by a 1x1 placeholder so the scene keeps a full texture set.
package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // JPEG decoder registration
	_ "image/png"  // PNG decoder registration
	"os"

	"go.uber.org/zap"
	_ "golang.org/x/image/bmp" // BMP decoder registration
	"golang.org/x/image/draw"
)

// Image is a decoded texture ready for upload.
type Image struct {
	Name        string
	RGBA        *image.RGBA
	Placeholder bool
}

// Width returns the pixel width.
func (i *Image) Width() int { return i.RGBA.Bounds().Dx() }

// Height returns the pixel height.
func (i *Image) Height() int { return i.RGBA.Bounds().Dy() }

// placeholders are distinct so a missing file is visible on screen.
var placeholders = []color.RGBA{
	{R: 220, G: 60, B: 60, A: 255},
	{R: 60, G: 200, B: 80, A: 255},
	{R: 70, G: 110, B: 230, A: 255},
	{R: 230, G: 200, B: 60, A: 255},
	{R: 200, G: 80, B: 210, A: 255},
	{R: 60, G: 200, B: 210, A: 255},
}

// Decode decodes JPEG, PNG or BMP data.
func Decode(data []byte) (image.Image, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	if b := img.Bounds(); b.Empty() {
		return nil, fmt.Errorf("decode %s: empty image", format)
	}
	return img, nil
}

// Normalize scales img into a size x size RGBA image.
// A non-positive size keeps the source dimensions.
func Normalize(img image.Image, size int) *image.RGBA {
	src := img.Bounds()
	dst := image.Rect(0, 0, src.Dx(), src.Dy())
	if size > 0 {
		dst = image.Rect(0, 0, size, size)
	}
	out := image.NewRGBA(dst)
	if dst.Dx() == src.Dx() && dst.Dy() == src.Dy() {
		draw.Draw(out, dst, img, src.Min, draw.Src)
		return out
	}
	draw.CatmullRom.Scale(out, dst, img, src, draw.Src, nil)
	return out
}

// Solid returns a 1x1 placeholder whose color depends on index.
func Solid(index int) *image.RGBA {
	if index < 0 {
		index = -index
	}
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.SetRGBA(0, 0, placeholders[index%len(placeholders)])
	return img
}

// Load reads and normalizes a single texture file.
func Load(path string, size int) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read texture: %w", err)
	}
	img, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &Image{Name: path, RGBA: Normalize(img, size)}, nil
}

// LoadSet loads every path in order. A file that cannot be loaded is
// replaced by a placeholder and reported as a warning; the result always
// has len(paths) entries.
func LoadSet(paths []string, size int, log *zap.Logger) []*Image {
	if log == nil {
		log = zap.NewNop()
	}
	set := make([]*Image, len(paths))
	for i, path := range paths {
		img, err := Load(path, size)
		if err != nil {
			log.Warn("texture unavailable, using placeholder",
				zap.Int("index", i),
				zap.String("path", path),
				zap.Error(err),
			)
			set[i] = &Image{Name: path, RGBA: Solid(i), Placeholder: true}
			continue
		}
		log.Debug("texture loaded",
			zap.Int("index", i),
			zap.String("path", path),
			zap.Int("size", img.Width()),
		)
		set[i] = img
	}
	return set
}
