package valentine

import (
	"bytes"
	"strings"
	"testing"
)

func TestHeart_Dimensions(t *testing.T) {
	rows := Heart().Rows()

	if len(rows) != Height {
		t.Fatalf("Row count expected to be %v. Got %v", Height, len(rows))
	}
	for y, row := range rows {
		if len(row) != Width {
			t.Errorf("Row %d length expected to be %v. Got %v", y, Width, len(row))
		}
	}
}

func TestHeart_Cells(t *testing.T) {
	heart := Heart()

	// near the center of the first lobe
	if !heart.At(11, 7) {
		t.Errorf("Cell (11,7) expected to be filled")
	}
	// near the center of the second lobe
	if !heart.At(35, 7) {
		t.Errorf("Cell (35,7) expected to be filled")
	}
	// inside the pointy bit, outside both lobes
	if !heart.At(23, 20) {
		t.Errorf("Cell (23,20) expected to be filled")
	}
	if heart.At(0, 0) {
		t.Errorf("Cell (0,0) expected to be empty")
	}
	if heart.At(Width-1, Height-1) {
		t.Errorf("Cell (%d,%d) expected to be empty", Width-1, Height-1)
	}
}

func TestHeart_SymbolAlphabet(t *testing.T) {
	heart := Heart()
	for y, row := range heart.Rows() {
		if i := strings.IndexFunc(row, func(r rune) bool {
			return byte(r) != heart.Empty && byte(r) != heart.Filled
		}); i >= 0 {
			t.Errorf("Row %d holds a foreign symbol at column %d: %q", y, i, row[i])
		}
	}
}

func TestWriteTable_RowFormat(t *testing.T) {
	var out bytes.Buffer
	if err := Heart().WriteTable(&out); err != nil {
		t.Fatalf("WriteTable returned an error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != Height {
		t.Fatalf("Line count expected to be %v. Got %v", Height, len(lines))
	}
	for y, line := range lines {
		if !strings.HasPrefix(line, `    { "`) || !strings.HasSuffix(line, `" },`) {
			t.Errorf("Line %d not in array-literal form: %q", y, line)
		}
		if len(line) != Width+11 {
			t.Errorf("Line %d length expected to be %v. Got %v", y, Width+11, len(line))
		}
	}
}

func TestBitmap_LobesAlone(t *testing.T) {
	heart := Heart()
	lobes := &Bitmap{
		Width:  heart.Width,
		Height: heart.Height,
		Lobes:  heart.Lobes,
		Empty:  heart.Empty,
		Filled: heart.Filled,
	}

	if !lobes.At(11, 7) {
		t.Errorf("Cell (11,7) expected to stay filled without the point region")
	}
	if lobes.At(23, 20) {
		t.Errorf("Cell (23,20) expected to be empty without the point region")
	}

	// Dropping the point region must not disturb the lobe footprint.
	for y := 0; y < heart.Height; y++ {
		for x := 0; x < heart.Width; x++ {
			inLobe := heart.Lobes[0].Contains(float64(x), float64(y)) ||
				heart.Lobes[1].Contains(float64(x), float64(y))
			if lobes.At(x, y) != inLobe {
				t.Fatalf("Cell (%d,%d) lobe fill expected to be %v. Got %v", x, y, inLobe, lobes.At(x, y))
			}
		}
	}
}

func TestBitmap_PointAlone(t *testing.T) {
	heart := Heart()
	point := &Bitmap{
		Width:  heart.Width,
		Height: heart.Height,
		Point:  heart.Point,
		Empty:  heart.Empty,
		Filled: heart.Filled,
	}

	if point.At(11, 7) {
		t.Errorf("Cell (11,7) expected to be empty without the lobes")
	}
	if !point.At(23, 20) {
		t.Errorf("Cell (23,20) expected to stay filled without the lobes")
	}

	// The full heart must fill every cell the point region fills on its own.
	for y := 0; y < heart.Height; y++ {
		for x := 0; x < heart.Width; x++ {
			if point.At(x, y) && !heart.At(x, y) {
				t.Fatalf("Cell (%d,%d) filled by the point region but not by the heart", x, y)
			}
		}
	}
}
