// Package render exports attribute grids as PNG previews. It consumes
// finished attribute buffers only; the generation core never depends on
// it.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/disintegration/gift"
	xdraw "golang.org/x/image/draw"

	"github.com/MeKo-Tech/terragen/internal/grid"
	"github.com/MeKo-Tech/terragen/internal/interpolate"
	"github.com/MeKo-Tech/terragen/internal/selector"
)

// Color is an RGB color that supports linear interpolation, usable as a
// selector output.
type Color struct {
	R, G, B uint8
}

// Lerp implements interpolate.Value.
func (c Color) Lerp(other Color, factor float64) Color {
	return Color{
		R: interpolate.Lerp(c.R, other.R, factor),
		G: interpolate.Lerp(c.G, other.G, factor),
		B: interpolate.Lerp(c.B, other.B, factor),
	}
}

// Palette maps attribute values to colors.
type Palette = selector.Selector[Color]

// Levels remaps attribute values before the palette is applied.
type Levels = selector.Selector[selector.Byte]

// InvertLevels maps 0 to 255 and 255 to 0, so high values render dark.
func InvertLevels() Levels {
	return selector.InterpolatePair[selector.Byte]{First: 255, Second: 0}
}

// Grayscale maps 0 to black and 255 to white.
func Grayscale() Palette {
	return selector.InterpolatePair[Color]{
		First:  Color{R: 0, G: 0, B: 0},
		Second: Color{R: 255, G: 255, B: 255},
	}
}

// Options controls preview export.
type Options struct {
	// Scale enlarges the image by an integer factor (nearest neighbor),
	// so single cells stay visible on large screens. Values below 2
	// leave the image at cell resolution.
	Scale int

	// BlurSigma softens the preview with a gaussian blur when positive.
	BlurSigma float32

	// Levels remaps cell values before the palette lookup when set.
	Levels Levels
}

// Attribute converts an attribute grid to an image using the palette.
func Attribute(a *grid.Attribute, palette Palette) *image.RGBA {
	size := a.Size()
	img := image.NewRGBA(image.Rect(0, 0, int(size.Width), int(size.Height)))

	for y := uint32(0); y < size.Height; y++ {
		for x := uint32(0); x < size.Width; x++ {
			c := palette.Get(a.Get(size.ToIndexRisky(x, y)))
			img.SetRGBA(int(x), int(y), color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
		}
	}

	return img
}

// AttributeLevels converts an attribute to an image, remapping each cell
// value through the levels selector before the palette lookup.
func AttributeLevels(a *grid.Attribute, levels Levels, palette Palette) *image.RGBA {
	size := a.Size()
	img := image.NewRGBA(image.Rect(0, 0, int(size.Width), int(size.Height)))

	for y := uint32(0); y < size.Height; y++ {
		for x := uint32(0); x < size.Width; x++ {
			value := uint8(levels.Get(a.Get(size.ToIndexRisky(x, y))))
			c := palette.Get(value)
			img.SetRGBA(int(x), int(y), color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
		}
	}

	return img
}

// Preview converts an attribute to an image and applies the options.
func Preview(a *grid.Attribute, palette Palette, opts Options) image.Image {
	var img image.Image
	if opts.Levels != nil {
		img = AttributeLevels(a, opts.Levels, palette)
	} else {
		img = Attribute(a, palette)
	}

	if opts.Scale > 1 {
		bounds := img.Bounds()
		scaled := image.NewRGBA(image.Rect(0, 0, bounds.Dx()*opts.Scale, bounds.Dy()*opts.Scale))
		xdraw.NearestNeighbor.Scale(scaled, scaled.Bounds(), img, bounds, xdraw.Src, nil)
		img = scaled
	}

	if opts.BlurSigma > 0 {
		g := gift.New(gift.GaussianBlur(opts.BlurSigma))
		blurred := image.NewRGBA(g.Bounds(img.Bounds()))
		g.Draw(blurred, img)
		img = blurred
	}

	return img
}

// WritePNG writes an image to a PNG file.
func WritePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create preview %s: %w", path, err)
	}

	if err := png.Encode(file, img); err != nil {
		file.Close() // nolint:errcheck
		return fmt.Errorf("failed to encode preview %s: %w", path, err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to write preview %s: %w", path, err)
	}
	return nil
}
