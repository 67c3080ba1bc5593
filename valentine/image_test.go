package valentine

import (
	"bytes"
	"image/png"
	"testing"
)

func TestImage_Dimensions(t *testing.T) {
	heart := Heart()

	img := heart.Image(1)
	if img.Bounds().Dx() != Width || img.Bounds().Dy() != Height {
		t.Errorf("Image size expected to be %vx%v. Got %vx%v",
			Width, Height, img.Bounds().Dx(), img.Bounds().Dy())
	}

	img = heart.Image(4)
	if img.Bounds().Dx() != Width*4 || img.Bounds().Dy() != Height*4 {
		t.Errorf("Scaled image size expected to be %vx%v. Got %vx%v",
			Width*4, Height*4, img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestImage_CellColors(t *testing.T) {
	img := Heart().Image(1)

	if got := img.NRGBAAt(11, 7); got != FillColor {
		t.Errorf("Pixel (11,7) expected to be %v. Got %v", FillColor, got)
	}
	if got := img.NRGBAAt(0, 0); got != BackColor {
		t.Errorf("Pixel (0,0) expected to be %v. Got %v", BackColor, got)
	}
}

func TestEncode_PNG(t *testing.T) {
	var buf bytes.Buffer
	if err := Heart().Encode(&buf, ".png", 2); err != nil {
		t.Fatalf("Encode returned an error: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("could not decode the generated image: %v", err)
	}
	if img.Bounds().Dx() != Width*2 || img.Bounds().Dy() != Height*2 {
		t.Errorf("Decoded image size expected to be %vx%v. Got %vx%v",
			Width*2, Height*2, img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestEncode_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Heart().Encode(&buf, ".gif", 1); err == nil {
		t.Errorf("Encode expected to fail on an unsupported format")
	}
}
