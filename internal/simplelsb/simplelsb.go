// Package simplelsb implements the baseline "3 pixels per character" LSB
// layout used for comparison against the adaptive engine, plus an
// edge-adaptive variant that restricts embedding to smooth regions.
package simplelsb

import (
	"errors"

	"github.com/kestrelvane/adaptive-image-stego/internal/gradient"
	"github.com/kestrelvane/adaptive-image-stego/internal/pixelcodec"
)

// PixelsPerByte is the number of pixels (9 channel values) consumed per
// payload byte: 8 data bits plus one continuation flag.
const PixelsPerByte = 3

// ErrCapacityExceeded is returned when the payload needs more pixel
// triples than the image has.
var ErrCapacityExceeded = errors.New("simplelsb: capacity exceeded")

// ErrInvalidImage is returned for images the baseline cannot operate on.
var ErrInvalidImage = errors.New("simplelsb: invalid image")

func toRGB(img *pixelcodec.Image) *pixelcodec.Image {
	if img.Channels == 3 {
		return img.Clone()
	}
	out := pixelcodec.NewImage(img.Width, img.Height, 3)
	for i, v := range img.Pix {
		out.Pix[i*3+0] = v
		out.Pix[i*3+1] = v
		out.Pix[i*3+2] = v
	}
	return out
}

// Capacity returns the maximum number of payload bytes that fit in img.
func Capacity(img *pixelcodec.Image) int {
	return (img.Width * img.Height) / PixelsPerByte
}

// nineValues returns the 9 channel samples (3 pixels x RGB) starting at
// flattened pixel index idx, in row-major order.
func nineValues(work *pixelcodec.Image, idx int) [9]uint8 {
	var vals [9]uint8
	for p := 0; p < 3; p++ {
		x := (idx + p) % work.Width
		y := (idx + p) / work.Width
		vals[p*3+0] = work.At(x, y, 0)
		vals[p*3+1] = work.At(x, y, 1)
		vals[p*3+2] = work.At(x, y, 2)
	}
	return vals
}

func setNineValues(work *pixelcodec.Image, idx int, vals [9]uint8) {
	for p := 0; p < 3; p++ {
		x := (idx + p) % work.Width
		y := (idx + p) / work.Width
		work.Set(x, y, 0, vals[p*3+0])
		work.Set(x, y, 1, vals[p*3+1])
		work.Set(x, y, 2, vals[p*3+2])
	}
}

// Encode embeds payload into a fresh RGB copy of img using the baseline
// layout: 8 data bits into the LSBs of the first 8 channel values of 3
// consecutive pixels, and a continuation flag in the 9th.
func Encode(img *pixelcodec.Image, payload []byte) (*pixelcodec.Image, error) {
	if len(payload) == 0 {
		return nil, ErrInvalidImage
	}
	if len(payload)*PixelsPerByte > img.Width*img.Height {
		return nil, ErrCapacityExceeded
	}

	work := toRGB(img)
	idx := 0
	for i, b := range payload {
		vals := nineValues(work, idx)
		for bit := 0; bit < 8; bit++ {
			v := (b >> uint(7-bit)) & 1
			vals[bit] = (vals[bit] &^ 1) | v
		}
		hasMore := uint8(0)
		if i < len(payload)-1 {
			hasMore = 1
		}
		vals[8] = (vals[8] &^ 1) | hasMore
		setNineValues(work, idx, vals)
		idx += PixelsPerByte
	}
	return work, nil
}

// Decode reads payload bytes starting at pixel 0 until a continuation
// flag of 0 is observed.
func Decode(img *pixelcodec.Image) ([]byte, error) {
	work := toRGB(img)
	totalPixels := work.Width * work.Height

	var out []byte
	idx := 0
	for idx+PixelsPerByte <= totalPixels {
		vals := nineValues(work, idx)
		var b byte
		for bit := 0; bit < 8; bit++ {
			b = b<<1 | (vals[bit] & 1)
		}
		out = append(out, b)
		idx += PixelsPerByte
		if vals[8]&1 == 0 {
			break
		}
	}
	return out, nil
}

// smoothCoordinates returns the row-major list of pixel coordinates
// (as flattened indices) where the gradient magnitude is at or below the
// mean of the whole map, the inverse of the adaptive codec's
// embed-in-edges policy.
func smoothCoordinates(img *pixelcodec.Image) []int {
	grad := gradient.Compute(img)
	mean := gradient.Mean(grad)
	coords := make([]int, 0, len(grad.Values))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			if grad.At(x, y) <= mean {
				coords = append(coords, y*img.Width+x)
			}
		}
	}
	return coords
}

// CapacityAdaptive returns the maximum number of payload bytes the
// edge-adaptive smooth-region variant can hold in img.
func CapacityAdaptive(img *pixelcodec.Image) int {
	return len(smoothCoordinates(img)) / PixelsPerByte
}

// EncodeAdaptive is the edge-adaptive variant of Encode: it restricts
// the pixel-triple enumeration to the smooth-region coordinate set.
func EncodeAdaptive(img *pixelcodec.Image, payload []byte) (*pixelcodec.Image, error) {
	if len(payload) == 0 {
		return nil, ErrInvalidImage
	}
	coords := smoothCoordinates(img)
	if len(payload)*PixelsPerByte > len(coords) {
		return nil, ErrCapacityExceeded
	}

	work := toRGB(img)
	cIdx := 0
	for i, b := range payload {
		var vals [9]uint8
		pix := [3]struct{ x, y int }{}
		for p := 0; p < 3; p++ {
			flat := coords[cIdx]
			pix[p].x, pix[p].y = flat%work.Width, flat/work.Width
			vals[p*3+0] = work.At(pix[p].x, pix[p].y, 0)
			vals[p*3+1] = work.At(pix[p].x, pix[p].y, 1)
			vals[p*3+2] = work.At(pix[p].x, pix[p].y, 2)
			cIdx++
		}
		for bit := 0; bit < 8; bit++ {
			v := (b >> uint(7-bit)) & 1
			vals[bit] = (vals[bit] &^ 1) | v
		}
		hasMore := uint8(0)
		if i < len(payload)-1 {
			hasMore = 1
		}
		vals[8] = (vals[8] &^ 1) | hasMore
		for p := 0; p < 3; p++ {
			work.Set(pix[p].x, pix[p].y, 0, vals[p*3+0])
			work.Set(pix[p].x, pix[p].y, 1, vals[p*3+1])
			work.Set(pix[p].x, pix[p].y, 2, vals[p*3+2])
		}
	}
	return work, nil
}

// DecodeAdaptive reverses EncodeAdaptive, walking the same smooth-region
// coordinate set.
func DecodeAdaptive(img *pixelcodec.Image) ([]byte, error) {
	coords := smoothCoordinates(img)
	work := toRGB(img)

	var out []byte
	cIdx := 0
	for cIdx+PixelsPerByte <= len(coords) {
		var vals [9]uint8
		for p := 0; p < 3; p++ {
			flat := coords[cIdx+p]
			x, y := flat%work.Width, flat/work.Width
			vals[p*3+0] = work.At(x, y, 0)
			vals[p*3+1] = work.At(x, y, 1)
			vals[p*3+2] = work.At(x, y, 2)
		}
		var b byte
		for bit := 0; bit < 8; bit++ {
			b = b<<1 | (vals[bit] & 1)
		}
		out = append(out, b)
		cIdx += PixelsPerByte
		if vals[8]&1 == 0 {
			break
		}
	}
	return out, nil
}
