package simplelsb

import (
	"bytes"
	"testing"

	"github.com/kestrelvane/adaptive-image-stego/internal/pixelcodec"
)

func whiteImage(w, h int) *pixelcodec.Image {
	img := pixelcodec.NewImage(w, h, 3)
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	return img
}

func TestRoundTripHelloS4(t *testing.T) {
	img := whiteImage(32, 32)
	payload := []byte("HELLO")

	stego, err := Encode(img, payload)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	got, err := Decode(stego)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("round trip mismatch: got %q want %q", got, payload)
	}
}

func TestCapacityExceeded(t *testing.T) {
	img := whiteImage(2, 2)
	_, err := Encode(img, []byte("too long for four pixels"))
	if err != ErrCapacityExceeded {
		t.Fatalf("expected ErrCapacityExceeded, got %v", err)
	}
}

func TestContinuationFlagStopsAtLastByte(t *testing.T) {
	img := whiteImage(16, 16)
	payload := []byte{0x41, 0x42, 0x43}
	stego, err := Encode(img, payload)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	// Corrupt the flag after the 2nd byte's pixel triple to force an
	// early stop: flag lives at vals[8] of the 2nd triple, the B channel
	// of its third pixel (pixel index 5).
	stego.Set(5%stego.Width, 5/stego.Width, 2, stego.At(5%stego.Width, 5/stego.Width, 2)&^1)
	got, err := Decode(stego)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !bytes.Equal(got, payload[:2]) {
		t.Fatalf("expected early stop at 2 bytes, got %q", got)
	}
}

func TestAdaptiveRoundTrip(t *testing.T) {
	img := pixelcodec.NewImage(64, 64, 3)
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			v := uint8(128)
			if x > 48 {
				v = 10
			}
			img.Set(x, y, 0, v)
			img.Set(x, y, 1, v)
			img.Set(x, y, 2, v)
		}
	}
	payload := []byte("hi")
	stego, err := EncodeAdaptive(img, payload)
	if err != nil {
		t.Fatalf("encode adaptive: %v", err)
	}
	got, err := DecodeAdaptive(stego)
	if err != nil {
		t.Fatalf("decode adaptive: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("adaptive round trip mismatch: got %q want %q", got, payload)
	}
}

func TestCapacity(t *testing.T) {
	img := whiteImage(9, 1)
	if got := Capacity(img); got != 3 {
		t.Fatalf("capacity: got %d want 3", got)
	}
}
