package pixelcodec

import (
	"bytes"
	"testing"
)

func TestEncodeDecodeRoundTripGray(t *testing.T) {
	img := NewImage(4, 3, 1)
	for i := range img.Pix {
		img.Pix[i] = uint8(i * 7)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}

	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Width != img.Width || got.Height != img.Height || got.Channels != 1 {
		t.Fatalf("shape mismatch: got %dx%dx%d", got.Width, got.Height, got.Channels)
	}
	if !bytes.Equal(got.Pix, img.Pix) {
		t.Fatalf("lossless round trip failed: got %v want %v", got.Pix, img.Pix)
	}
}

func TestEncodeDecodeRoundTripColor(t *testing.T) {
	img := NewImage(3, 2, 3)
	for i := range img.Pix {
		img.Pix[i] = uint8(i * 13)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !bytes.Equal(got.Pix, img.Pix) {
		t.Fatalf("lossless round trip failed: got %v want %v", got.Pix, img.Pix)
	}
}

func TestToGrayBT601Identity(t *testing.T) {
	img := NewImage(2, 2, 1)
	img.Pix = []uint8{10, 20, 30, 40}
	gp := ToGrayBT601(img)
	for i, v := range gp.Pix {
		if v != img.Pix[i] {
			t.Fatalf("gray identity mismatch at %d: got %d want %d", i, v, img.Pix[i])
		}
	}
}

func TestToGrayBT601White(t *testing.T) {
	img := NewImage(1, 1, 3)
	img.Set(0, 0, 0, 255)
	img.Set(0, 0, 1, 255)
	img.Set(0, 0, 2, 255)
	gp := ToGrayBT601(img)
	if gp.At(0, 0) != 255 {
		t.Fatalf("white conversion: got %d want 255", gp.At(0, 0))
	}
}

func TestToGrayBT601Coefficients(t *testing.T) {
	img := NewImage(1, 1, 3)
	img.Set(0, 0, 0, 100)
	img.Set(0, 0, 1, 0)
	img.Set(0, 0, 2, 0)
	gp := ToGrayBT601(img)
	want := uint8(30) // 100*0.299 = 29.9, rounded to nearest
	if gp.At(0, 0) != want {
		t.Fatalf("red-only conversion: got %d want %d", gp.At(0, 0), want)
	}
}

func TestDecodeInvalidImage(t *testing.T) {
	if _, err := Decode(bytes.NewReader([]byte("not an image"))); err != ErrInvalidImage {
		t.Fatalf("expected ErrInvalidImage, got %v", err)
	}
}

func TestGrayPlaneMinMax(t *testing.T) {
	g := NewGrayPlane(2, 2)
	g.Pix = []uint8{5, 250, 0, 100}
	if g.Max() != 250 {
		t.Fatalf("max: got %d want 250", g.Max())
	}
	if g.Min() != 0 {
		t.Fatalf("min: got %d want 0", g.Min())
	}
}
