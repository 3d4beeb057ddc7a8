package bitpacker

import (
	"reflect"
	"testing"
)

func TestBytesToBitsOrder(t *testing.T) {
	got := BytesToBits([]byte{0b10110000})
	want := []int{1, 0, 1, 1, 0, 0, 0, 0}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestBitsRoundTrip(t *testing.T) {
	data := []byte{0x5A, 0x01, 0xFF, 0x00}
	bits := BytesToBits(data)
	back := BitsToBytes(bits)
	if !reflect.DeepEqual(back, data) {
		t.Fatalf("round trip mismatch: got %v want %v", back, data)
	}
}

func TestHeaderRoundTrip(t *testing.T) {
	h := Header{UB: 252, LB: 0, PayloadLength: 128}
	bits := EncodeHeader(h)
	if len(bits) != HeaderBits {
		t.Fatalf("expected %d header bits, got %d", HeaderBits, len(bits))
	}
	got := DecodeHeader(bits)
	if got != h {
		t.Fatalf("header round trip mismatch: got %+v want %+v", got, h)
	}
}

func TestUint32BitsRoundTrip(t *testing.T) {
	for _, v := range []uint32{0, 1, 255, 1 << 31, 0xFFFFFFFF, 123456789} {
		if got := BitsToUint32(Uint32ToBits(v)); got != v {
			t.Fatalf("uint32 round trip: got %d want %d", got, v)
		}
	}
}
