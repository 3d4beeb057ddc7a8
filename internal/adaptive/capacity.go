package adaptive

import (
	"math"

	"github.com/kestrelvane/adaptive-image-stego/internal/gradient"
	"github.com/kestrelvane/adaptive-image-stego/internal/pixelcodec"
	"github.com/kestrelvane/adaptive-image-stego/internal/selector"
)

// Capacity reports the total number of bits the adaptive path could
// embed into cover under params, without writing anything. It walks the
// exact same block/pair order, gate, and case classification as Encode,
// assuming an unbounded payload.
func Capacity(cover *pixelcodec.Image, params Params) (int, error) {
	if err := params.Validate(); err != nil {
		return 0, err
	}
	if cover.Width < minHeaderWidth || cover.Height < params.BlockSize {
		return 0, ErrInvalidImage
	}

	work := pixelcodec.ToGrayBT601(cover)
	grad := gradient.ComputeFromGray(work)
	blocks := selector.Order(grad, work.Width, work.Height, params.BlockSize)

	total := 0
	for _, b := range blocks {
		if !selector.Eligible(b, params.EdgeThreshold) {
			continue
		}
		me := meanOfMedians(work, b.Row, b.Col, params.BlockSize)
		for i := 0; i+1 < params.BlockSize; i += 2 {
			for j := 0; j < params.BlockSize; j++ {
				x, y1, y2 := b.Col+j, b.Row+i, b.Row+i+1
				p1, p2 := work.At(x, y1), work.At(x, y2)
				di := math.Abs(float64(p1) - float64(p2))
				if di > me {
					continue
				}
				c := classifyCase(p1, p2)
				total += caseBits(c)
			}
		}
	}
	return total, nil
}
