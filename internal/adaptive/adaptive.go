// Package adaptive implements the edge-adaptive embedder/extractor: the
// four-case MSB rule, the Me/Di difference gate, and the deterministic
// block-and-pair walk that the encoder and decoder must reproduce
// identically.
package adaptive

import (
	"math"

	"github.com/kestrelvane/adaptive-image-stego/internal/bitpacker"
	"github.com/kestrelvane/adaptive-image-stego/internal/gradient"
	"github.com/kestrelvane/adaptive-image-stego/internal/pixelcodec"
	"github.com/kestrelvane/adaptive-image-stego/internal/selector"
)

// minHeaderWidth is the smallest image width that can hold the 48-bit
// row-0 header, one bit per pixel.
const minHeaderWidth = bitpacker.HeaderBits

// Encode embeds payload into a clone of cover's grayscale plane and
// returns the resulting stego image together with Metadata describing
// the outcome. Encode never mutates cover.
func Encode(cover *pixelcodec.Image, payload []byte, params Params) (*pixelcodec.Image, Metadata, error) {
	if err := params.Validate(); err != nil {
		return nil, Metadata{}, err
	}
	if cover.Width < minHeaderWidth || cover.Height < params.BlockSize {
		return nil, Metadata{}, ErrInvalidImage
	}
	if uint64(len(payload))*8 > math.MaxUint32 {
		return nil, Metadata{}, ErrCapacityExceeded
	}

	gray := pixelcodec.ToGrayBT601(cover)
	work := gray.Clone()

	ub := work.Max()
	lb := work.Min()
	payloadBits := bitpacker.BytesToBits(payload)

	header := bitpacker.EncodeHeader(bitpacker.Header{
		UB:            ub,
		LB:            lb,
		PayloadLength: uint32(len(payloadBits)),
	})
	writeHeaderRow(work, header)

	grad := gradient.ComputeFromGray(work)
	blocks := selector.Order(grad, work.Width, work.Height, params.BlockSize)

	embedded := 0
	blocksUsed := 0
	for _, b := range blocks {
		if embedded >= len(payloadBits) {
			break
		}
		if !selector.Eligible(b, params.EdgeThreshold) {
			continue
		}
		me := meanOfMedians(work, b.Row, b.Col, params.BlockSize)
		for i := 0; i+1 < params.BlockSize; i += 2 {
			for j := 0; j < params.BlockSize; j++ {
				if embedded >= len(payloadBits) {
					break
				}
				x, y1, y2 := b.Col+j, b.Row+i, b.Row+i+1
				p1, p2 := work.At(x, y1), work.At(x, y2)
				di := math.Abs(float64(p1) - float64(p2))
				if di > me {
					continue
				}
				c := classifyCase(p1, p2)
				budget := caseBits(c)
				n := budget
				if remaining := len(payloadBits) - embedded; remaining < n {
					n = remaining
				}
				bits := payloadBits[embedded : embedded+n]
				np1, np2 := embedCase(c, p1, p2, bits)
				work.Set(x, y1, np1)
				work.Set(x, y2, np2)
				embedded += n
			}
		}
		blocksUsed++
	}

	meta := Metadata{
		UB:                   ub,
		LB:                   lb,
		PayloadBits:          len(payloadBits),
		EmbeddedBits:         embedded,
		BlocksUsed:           blocksUsed,
		CapacityBitsPerPixel: float64(embedded) / float64(work.Width*work.Height),
		Height:               work.Height,
		Width:                work.Width,
	}
	return work.ToImage(), meta, nil
}

// Decode extracts the payload from a stego image produced by Encode with
// matching Params. The header's PayloadLength bounds how many bits are
// read; if more bits are claimed than the eligible blocks can supply,
// Decode returns whatever it extracted along with ErrHeaderCorrupt.
func Decode(stego *pixelcodec.Image, params Params) ([]byte, Metadata, error) {
	if err := params.Validate(); err != nil {
		return nil, Metadata{}, err
	}
	if stego.Width < minHeaderWidth || stego.Height < params.BlockSize {
		return nil, Metadata{}, ErrInvalidImage
	}

	work := pixelcodec.ToGrayBT601(stego)

	header := bitpacker.DecodeHeader(readHeaderRow(work))
	target := int(header.PayloadLength)

	grad := gradient.ComputeFromGray(work)
	blocks := selector.Order(grad, work.Width, work.Height, params.BlockSize)

	bits := make([]int, 0, target)
	blocksUsed := 0
	for _, b := range blocks {
		if len(bits) >= target {
			break
		}
		if !selector.Eligible(b, params.EdgeThreshold) {
			continue
		}
		me := meanOfMedians(work, b.Row, b.Col, params.BlockSize)
		for i := 0; i+1 < params.BlockSize; i += 2 {
			for j := 0; j < params.BlockSize; j++ {
				if len(bits) >= target {
					break
				}
				x, y1, y2 := b.Col+j, b.Row+i, b.Row+i+1
				p1, p2 := work.At(x, y1), work.At(x, y2)
				di := math.Abs(float64(p1) - float64(p2))
				if di > me {
					continue
				}
				c := classifyCase(p1, p2)
				budget := caseBits(c)
				n := budget
				if remaining := target - len(bits); remaining < n {
					n = remaining
				}
				bits = append(bits, extractCase(c, p1, p2, n)...)
			}
		}
		blocksUsed++
	}

	meta := Metadata{
		UB:                   header.UB,
		LB:                   header.LB,
		PayloadBits:          target,
		EmbeddedBits:         len(bits),
		BlocksUsed:           blocksUsed,
		CapacityBitsPerPixel: float64(len(bits)) / float64(work.Width*work.Height),
		Height:               work.Height,
		Width:                work.Width,
	}

	payload := bitpacker.BitsToBytes(bits)
	if len(bits) < target {
		return payload, meta, ErrHeaderCorrupt
	}
	return payload, meta, nil
}

func writeHeaderRow(work *pixelcodec.GrayPlane, bits []int) {
	for col, bit := range bits {
		v := work.At(col, 0)
		v = (v &^ 1) | uint8(bit)
		work.Set(col, 0, v)
	}
}

func readHeaderRow(work *pixelcodec.GrayPlane) []int {
	bits := make([]int, bitpacker.HeaderBits)
	for col := range bits {
		bits[col] = int(work.At(col, 0) & 1)
	}
	return bits
}
