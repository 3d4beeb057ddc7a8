package adaptive

import (
	"bytes"
	"testing"

	"github.com/kestrelvane/adaptive-image-stego/internal/pixelcodec"
)

func rampCover(w, h int) *pixelcodec.Image {
	img := pixelcodec.NewImage(w, h, 1)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, 0, uint8((x*4)%256))
		}
	}
	return img
}

func naturalCover(w, h int) *pixelcodec.Image {
	img := pixelcodec.NewImage(w, h, 1)
	seed := uint32(12345)
	for i := range img.Pix {
		seed = seed*1664525 + 1013904223
		img.Pix[i] = uint8(seed >> 24)
	}
	return img
}

func TestRoundTripRampS1(t *testing.T) {
	cover := rampCover(64, 64)
	if cover.At(0, 0, 0) != 0 {
		t.Fatalf("ramp setup")
	}
	gray := pixelcodec.ToGrayBT601(cover)
	if gray.Max() != 252 || gray.Min() != 0 {
		t.Fatalf("expected UB=252 LB=0, got UB=%d LB=%d", gray.Max(), gray.Min())
	}

	payload := bytes.Repeat([]byte{0x5A}, 16)
	params := Params{BlockSize: 8, EdgeThreshold: 0}

	stego, meta, err := Encode(cover, payload, params)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if meta.PayloadBits != 128 {
		t.Fatalf("expected PayloadBits=128, got %d", meta.PayloadBits)
	}
	if meta.UB != 252 || meta.LB != 0 {
		t.Fatalf("expected UB=252 LB=0 in metadata, got UB=%d LB=%d", meta.UB, meta.LB)
	}

	got, _, err := Decode(stego, params)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("round trip mismatch: got %x want %x", got, payload)
	}
}

func TestRoundTripNaturalImage(t *testing.T) {
	cover := naturalCover(256, 256)
	payload := make([]byte, 200)
	seed := uint32(999)
	for i := range payload {
		seed = seed*1664525 + 1013904223
		payload[i] = uint8(seed >> 16)
	}
	params := Params{BlockSize: 8, EdgeThreshold: 30}

	stego, meta, err := Encode(cover, payload, params)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if meta.EmbeddedBits < meta.PayloadBits {
		t.Skip("cover did not have enough eligible capacity for this payload size")
	}

	got, _, err := Decode(stego, params)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("round trip mismatch on natural image")
	}
}

func TestZeroEligibleBlocksAtMaxThreshold(t *testing.T) {
	cover := naturalCover(256, 256)
	payload := make([]byte, 200)
	params := Params{BlockSize: 8, EdgeThreshold: 255}

	_, meta, err := Encode(cover, payload, params)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if meta.EmbeddedBits != 0 {
		t.Fatalf("expected 0 embedded bits at T=255, got %d", meta.EmbeddedBits)
	}
}

func TestHeaderRoundTripSurvivesLaterBitFlips(t *testing.T) {
	cover := rampCover(64, 64)
	payload := bytes.Repeat([]byte{0xFF}, 16)
	params := Params{BlockSize: 8, EdgeThreshold: 0}

	stego, meta, err := Encode(cover, payload, params)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	_, decMeta, err := Decode(stego, params)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decMeta.UB != meta.UB || decMeta.LB != meta.LB {
		t.Fatalf("header fields did not survive: got UB=%d LB=%d want UB=%d LB=%d",
			decMeta.UB, decMeta.LB, meta.UB, meta.LB)
	}
}

func TestNoMSBMutation(t *testing.T) {
	cover := naturalCover(64, 64)
	payload := bytes.Repeat([]byte{0xAA}, 20)
	params := Params{BlockSize: 8, EdgeThreshold: 0}

	stego, _, err := Encode(cover, payload, params)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	coverGray := pixelcodec.ToGrayBT601(cover)
	stegoGray := pixelcodec.ToGrayBT601(stego)
	for i := range coverGray.Pix {
		if (coverGray.Pix[i]^stegoGray.Pix[i])&0x80 != 0 {
			t.Fatalf("MSB mutated at sample %d: cover=%08b stego=%08b", i, coverGray.Pix[i], stegoGray.Pix[i])
		}
	}
}

func TestCapacityMonotonicityInThreshold(t *testing.T) {
	cover := naturalCover(128, 128)
	payload := bytes.Repeat([]byte{0x33}, 500)

	_, lowT, err := Encode(cover, payload, Params{BlockSize: 8, EdgeThreshold: 5})
	if err != nil {
		t.Fatalf("encode low T: %v", err)
	}
	_, highT, err := Encode(cover, payload, Params{BlockSize: 8, EdgeThreshold: 60})
	if err != nil {
		t.Fatalf("encode high T: %v", err)
	}
	if lowT.EmbeddedBits < highT.EmbeddedBits {
		t.Fatalf("lowering threshold decreased embedded bits: low=%d high=%d", lowT.EmbeddedBits, highT.EmbeddedBits)
	}
}

func TestDeterminism(t *testing.T) {
	cover := naturalCover(64, 64)
	payload := bytes.Repeat([]byte{0x11}, 10)
	params := Params{BlockSize: 8, EdgeThreshold: 10}

	stego1, meta1, _ := Encode(cover, payload, params)
	stego2, meta2, _ := Encode(cover, payload, params)
	if !bytes.Equal(stego1.Pix, stego2.Pix) {
		t.Fatalf("two encodes of identical inputs produced different stego bytes")
	}
	if meta1 != meta2 {
		t.Fatalf("two encodes of identical inputs produced different metadata")
	}
}

func TestParamsValidate(t *testing.T) {
	cases := []Params{
		{BlockSize: 1, EdgeThreshold: 0},
		{BlockSize: 7, EdgeThreshold: 0},
		{BlockSize: 8, EdgeThreshold: -1},
	}
	for _, p := range cases {
		if err := p.Validate(); err != ErrInvalidParams {
			t.Fatalf("params %+v: expected ErrInvalidParams, got %v", p, err)
		}
	}
}

func TestEncodeRejectsNarrowImage(t *testing.T) {
	cover := pixelcodec.NewImage(10, 10, 1)
	_, _, err := Encode(cover, []byte{0x01}, DefaultParams())
	if err != ErrInvalidImage {
		t.Fatalf("expected ErrInvalidImage for narrow cover, got %v", err)
	}
}
