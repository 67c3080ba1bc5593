package valentine

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
)

// Colors used for the rendered image: a red heart on a white background.
var (
	FillColor = color.NRGBA{R: 0xd9, G: 0x1e, B: 0x36, A: 0xff}
	BackColor = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Image renders the bitmap as an image with cell x cell pixels per grid
// cell. The grid is drawn at full resolution first and blown up with a
// nearest-neighbor resize, keeping the blocky cell look.
func (b *Bitmap) Image(cell int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if b.At(x, y) {
				img.SetNRGBA(x, y, FillColor)
			} else {
				img.SetNRGBA(x, y, BackColor)
			}
		}
	}
	if cell <= 1 {
		return img
	}
	return imaging.Resize(img, b.Width*cell, b.Height*cell, imaging.NearestNeighbor)
}

// Encode encodes the rendered image to w in the format named by the file
// extension, one of ".png", ".jpg", ".jpeg" or ".bmp".
func (b *Bitmap) Encode(w io.Writer, ext string, cell int) error {
	img := b.Image(cell)

	switch ext {
	case ".jpg", ".jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 100})
	case ".png":
		return png.Encode(w, img)
	case ".bmp":
		return bmp.Encode(w, img)
	default:
		return errors.Errorf("unsupported image format %q", ext)
	}
}
