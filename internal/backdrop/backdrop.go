// Package backdrop validates background image choices and derives the tint
// the scrollback is drawn with.
package backdrop

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// AllowedTypes are the image extensions offered by the picker.
var AllowedTypes = []string{".jpg", ".jpeg", ".png"}

// ErrNotFound reports a background path that does not exist.
var ErrNotFound = errors.New("background not found")

const (
	// overlay is the share of the image color showing through the base color.
	overlay     = 0.15
	sampleGrid  = 32
	defaultBase = "#1e1e1e"
)

// Check reports whether path names an existing file.
func Check(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrNotFound, path)
	}
	return nil
}

// Warning returns the message shown when path cannot be used.
func Warning(path string) string {
	return fmt.Sprintf("The background '%s' was not found.", path)
}

// IsImage reports whether path has one of the allowed extensions.
func IsImage(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, allowed := range AllowedTypes {
		if ext == allowed {
			return true
		}
	}
	return false
}

// Tint decodes the image at path and returns the base color blended with the
// image's average color, as a #rrggbb string.
func Tint(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return defaultBase, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return defaultBase, fmt.Errorf("decode %s: %w", path, err)
	}
	avg, ok := average(img)
	if !ok {
		return defaultBase, fmt.Errorf("decode %s: empty image", path)
	}
	base, _ := colorful.Hex(defaultBase)
	return base.BlendRgb(avg, overlay).Clamped().Hex(), nil
}

// average samples img on a grid and averages in linear RGB.
func average(img image.Image) (colorful.Color, bool) {
	bounds := img.Bounds()
	if bounds.Empty() {
		return colorful.Color{}, false
	}
	stepX := max(bounds.Dx()/sampleGrid, 1)
	stepY := max(bounds.Dy()/sampleGrid, 1)
	var r, g, b float64
	n := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y += stepY {
		for x := bounds.Min.X; x < bounds.Max.X; x += stepX {
			c, ok := colorful.MakeColor(img.At(x, y))
			if !ok {
				continue
			}
			lr, lg, lb := c.LinearRgb()
			r += lr
			g += lg
			b += lb
			n++
		}
	}
	if n == 0 {
		return colorful.Color{}, false
	}
	return colorful.LinearRgb(r/float64(n), g/float64(n), b/float64(n)), true
}
