/*
Package valentine generates the coarse heart bitmap embedded in the
tvalentine terminal animation. The heart is built from two ellipse lobes and
a pointy bottom described by half-plane constraints, rasterized onto a 48x24
character cell grid. The primary output is the C array-literal form of the
grid, meant to be pasted into the animation's source; the grid can also be
rendered as an image for a quick visual check.
*/
package valentine

import (
	"fmt"
	"io"
	"strings"
)

// Stock grid dimensions, in character cells.
const (
	Width  = 48
	Height = 24
)

// Ellipse is one lobe of the heart, in a coordinate system where the center
// of the upper left cell is (0, 0). The radii come in pairs because
// character cells are not usually square.
type Ellipse struct {
	CX, CY float64
	RX, RY float64
}

// Contains reports whether the point lies on or inside the ellipse.
func (e Ellipse) Contains(x, y float64) bool {
	xr := (x - e.CX) / e.RX
	yr := (y - e.CY) / e.RY
	return xr*xr+yr*yr <= 1
}

// HalfPlane is one edge of a convex region: a point is on the inner side
// when its dot product with the direction vector is at most Limit.
type HalfPlane struct {
	VX, VY float64
	Limit  float64
}

// Admits reports whether the point lies on the inner side of the edge.
func (h HalfPlane) Admits(x, y float64) bool {
	return h.VX*x+h.VY*y <= h.Limit
}

// Bitmap describes one rasterization: the grid size, the ellipse lobes, the
// half-plane edges of the pointy bit below them, and the two cell symbols.
type Bitmap struct {
	Width, Height int
	Lobes         []Ellipse
	Point         []HalfPlane
	Empty, Filled byte
}

// Heart returns the stock tvalentine configuration.
func Heart() *Bitmap {
	return &Bitmap{
		Width:  Width,
		Height: Height,
		Lobes: []Ellipse{
			{CX: 11.5, CY: 7.5, RX: 12, RY: 6},
			{CX: 35.5, CY: 7.5, RX: 12, RY: 6},
		},
		// Not quite right, maybe make a diamond shape?
		// For now the gap gets filled in by hand in the animation source.
		Point: []HalfPlane{
			{VX: 0, VY: -1, Limit: -11.75},
			{VX: 1, VY: 2, Limit: 50.5 + 0.707107*24},
			{VX: -1, VY: 2, Limit: 3.5 + 0.707107*24},
		},
		Empty:  ' ',
		Filled: '!',
	}
}

// At reports whether the cell at the integer grid coordinate is filled:
// inside at least one lobe, or inside every half-plane of the pointy bit.
// The two tests are independent of each other.
func (b *Bitmap) At(x, y int) bool {
	fx, fy := float64(x), float64(y)
	for _, lobe := range b.Lobes {
		if lobe.Contains(fx, fy) {
			return true
		}
	}
	if len(b.Point) == 0 {
		return false
	}
	for _, edge := range b.Point {
		if !edge.Admits(fx, fy) {
			return false
		}
	}
	return true
}

// Rows rasterizes the grid into one symbol string per row.
func (b *Bitmap) Rows() []string {
	rows := make([]string, 0, b.Height)
	var sb strings.Builder
	for y := 0; y < b.Height; y++ {
		sb.Reset()
		for x := 0; x < b.Width; x++ {
			if b.At(x, y) {
				sb.WriteByte(b.Filled)
			} else {
				sb.WriteByte(b.Empty)
			}
		}
		rows = append(rows, sb.String())
	}
	return rows
}

// WriteTable writes the grid as C array-literal rows, one line per row,
// ready for pasting into the animation's constant data.
func (b *Bitmap) WriteTable(w io.Writer) error {
	for _, row := range b.Rows() {
		if _, err := fmt.Fprintf(w, "    { %q },\n", row); err != nil {
			return err
		}
	}
	return nil
}
