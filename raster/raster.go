// Package raster reads label grids from images produced by an external
// segmentation step and writes them back for inspection.
//
// Supported inputs are PNG, GIF and JPEG from the standard decoders and TIFF
// through golang.org/x/image/tiff. A paletted image maps each pixel's palette
// index straight to a terrain class; any other image is converted to 8-bit
// gray and the gray level is used as the class id. Which ids are valid is
// decided later by the cost table, not here.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder

	_ "golang.org/x/image/tiff" // register TIFF decoder

	"github.com/katalvlaran/terrapath/terrain"
)

// ErrEmptyImage indicates an image with zero width or height.
var ErrEmptyImage = errors.New("raster: image has no pixels")

// DecodeLabels decodes an image from r into a LabelGrid.
// It also returns the detected format name ("png", "tiff", ...).
func DecodeLabels(r io.Reader) (terrain.LabelGrid, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return terrain.LabelGrid{}, "", fmt.Errorf("raster: decode: %w", err)
	}
	lg, err := FromImage(img)
	if err != nil {
		return terrain.LabelGrid{}, format, err
	}

	return lg, format, nil
}

// LoadLabels opens path and decodes it with DecodeLabels.
func LoadLabels(path string) (terrain.LabelGrid, error) {
	f, err := os.Open(path)
	if err != nil {
		return terrain.LabelGrid{}, fmt.Errorf("raster: %w", err)
	}
	defer f.Close()

	lg, _, err := DecodeLabels(f)

	return lg, err
}

// FromImage converts an already decoded image into a LabelGrid.
func FromImage(img image.Image) (terrain.LabelGrid, error) {
	b := img.Bounds()
	if b.Empty() {
		return terrain.LabelGrid{}, ErrEmptyImage
	}
	lg, err := terrain.NewLabelGrid(b.Dy(), b.Dx())
	if err != nil {
		return terrain.LabelGrid{}, err
	}

	switch src := img.(type) {
	case *image.Paletted:
		for y := 0; y < b.Dy(); y++ {
			for x := 0; x < b.Dx(); x++ {
				lg.Set(y, x, terrain.Class(src.ColorIndexAt(b.Min.X+x, b.Min.Y+y)))
			}
		}
	case *image.Gray:
		for y := 0; y < b.Dy(); y++ {
			for x := 0; x < b.Dx(); x++ {
				lg.Set(y, x, terrain.Class(src.GrayAt(b.Min.X+x, b.Min.Y+y).Y))
			}
		}
	default:
		for y := 0; y < b.Dy(); y++ {
			for x := 0; x < b.Dx(); x++ {
				g := color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
				lg.Set(y, x, terrain.Class(g.Y))
			}
		}
	}

	return lg, nil
}

// Palette is the default colouring used by EncodeLabels, indexed by class id.
var Palette = color.Palette{
	terrain.Water:  color.RGBA{R: 0x1f, G: 0x5f, B: 0xbf, A: 0xff},
	terrain.Forest: color.RGBA{R: 0x1f, G: 0x7f, B: 0x2f, A: 0xff},
	terrain.Urban:  color.RGBA{R: 0x8f, G: 0x8f, B: 0x8f, A: 0xff},
	terrain.Barren: color.RGBA{R: 0xcf, G: 0xaf, B: 0x7f, A: 0xff},
	terrain.Road:   color.RGBA{R: 0x2f, G: 0x2f, B: 0x2f, A: 0xff},
}

// ToImage renders lg as a paletted image whose indices are the class ids.
// Classes beyond the palette are drawn black.
func ToImage(lg terrain.LabelGrid) *image.Paletted {
	pal := make(color.Palette, 256)
	for i := range pal {
		pal[i] = color.Black
	}
	copy(pal, Palette)

	img := image.NewPaletted(image.Rect(0, 0, lg.Cols, lg.Rows), pal)
	for r := 0; r < lg.Rows; r++ {
		for c := 0; c < lg.Cols; c++ {
			img.SetColorIndex(c, r, uint8(lg.At(r, c)))
		}
	}

	return img
}

// EncodeLabels writes lg to w as a paletted PNG that DecodeLabels reads back losslessly.
func EncodeLabels(w io.Writer, lg terrain.LabelGrid) error {
	if err := lg.Validate(); err != nil {
		return err
	}

	return png.Encode(w, ToImage(lg))
}
