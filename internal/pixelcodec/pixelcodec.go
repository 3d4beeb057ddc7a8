// Package pixelcodec reads and writes 8-bit raster images and converts
// between color and grayscale planes using BT.601 coefficients.
package pixelcodec

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	_ "image/jpeg"
)

// ErrInvalidImage is returned when an image cannot be loaded, is not
// 8-bit-per-channel, or is too small for the caller's requirements.
var ErrInvalidImage = errors.New("pixelcodec: invalid image")

// Image is an 8-bit-per-channel raster, row-major, channel-interleaved.
// Channels is 1 (gray) or 3 (RGB, alpha is dropped on load and fixed to
// opaque on save).
type Image struct {
	Width, Height int
	Channels      int
	Pix           []uint8
}

// NewImage allocates a zeroed Image of the given dimensions.
func NewImage(width, height, channels int) *Image {
	return &Image{
		Width:    width,
		Height:   height,
		Channels: channels,
		Pix:      make([]uint8, width*height*channels),
	}
}

// At returns the sample at (x, y, channel).
func (img *Image) At(x, y, c int) uint8 {
	return img.Pix[(y*img.Width+x)*img.Channels+c]
}

// Set writes the sample at (x, y, channel).
func (img *Image) Set(x, y, c int, v uint8) {
	img.Pix[(y*img.Width+x)*img.Channels+c] = v
}

// Clone returns an independent deep copy.
func (img *Image) Clone() *Image {
	out := &Image{Width: img.Width, Height: img.Height, Channels: img.Channels}
	out.Pix = make([]uint8, len(img.Pix))
	copy(out.Pix, img.Pix)
	return out
}

// Load decodes a raster image from path. Only 8-bit-per-channel source
// images are accepted; 16-bit models are rejected as InvalidImage.
func Load(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ErrInvalidImage
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads an image from r the same way Load does, without touching
// the filesystem.
func Decode(r io.Reader) (*Image, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, ErrInvalidImage
	}
	return fromStdImage(src)
}

func fromStdImage(src image.Image) (*Image, error) {
	switch src.(type) {
	case *image.Gray16, *image.RGBA64, *image.NRGBA64:
		return nil, ErrInvalidImage
	}

	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil, ErrInvalidImage
	}

	if gray, ok := src.(*image.Gray); ok {
		out := NewImage(w, h, 1)
		for y := 0; y < h; y++ {
			row := gray.Pix[(y)*gray.Stride : y*gray.Stride+w]
			copy(out.Pix[y*w:(y+1)*w], row)
		}
		return out, nil
	}

	out := NewImage(w, h, 3)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bl, _ := src.At(b.Min.X+x, b.Min.Y+y).RGBA()
			i := (y*w + x) * 3
			out.Pix[i+0] = uint8(r >> 8)
			out.Pix[i+1] = uint8(g >> 8)
			out.Pix[i+2] = uint8(bl >> 8)
		}
	}
	return out, nil
}

// Save writes img to path as a lossless PNG container.
func Save(path string, img *Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Encode(f, img)
}

// Encode writes img to w as a lossless PNG container.
func Encode(w io.Writer, img *Image) error {
	return png.Encode(w, toStdImage(img))
}

func toStdImage(img *Image) image.Image {
	if img.Channels == 1 {
		dst := image.NewGray(image.Rect(0, 0, img.Width, img.Height))
		for y := 0; y < img.Height; y++ {
			copy(dst.Pix[y*dst.Stride:y*dst.Stride+img.Width], img.Pix[y*img.Width:(y+1)*img.Width])
		}
		return dst
	}

	dst := image.NewNRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			i := (y*img.Width + x) * img.Channels
			dst.SetNRGBA(x, y, color.NRGBA{R: img.Pix[i], G: img.Pix[i+1], B: img.Pix[i+2], A: 255})
		}
	}
	return dst
}

// GrayPlane is an H*W single-channel uint8 plane derived from an Image.
type GrayPlane struct {
	Width, Height int
	Pix           []uint8
}

// NewGrayPlane allocates a zeroed plane.
func NewGrayPlane(width, height int) *GrayPlane {
	return &GrayPlane{Width: width, Height: height, Pix: make([]uint8, width*height)}
}

// At returns the sample at (x, y).
func (g *GrayPlane) At(x, y int) uint8 {
	return g.Pix[y*g.Width+x]
}

// Set writes the sample at (x, y).
func (g *GrayPlane) Set(x, y int, v uint8) {
	g.Pix[y*g.Width+x] = v
}

// Clone returns an independent deep copy.
func (g *GrayPlane) Clone() *GrayPlane {
	out := &GrayPlane{Width: g.Width, Height: g.Height, Pix: make([]uint8, len(g.Pix))}
	copy(out.Pix, g.Pix)
	return out
}

// Max returns the largest sample value.
func (g *GrayPlane) Max() uint8 {
	m := g.Pix[0]
	for _, v := range g.Pix[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// Min returns the smallest sample value.
func (g *GrayPlane) Min() uint8 {
	m := g.Pix[0]
	for _, v := range g.Pix[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// ToImage wraps the plane as a single-channel Image.
func (g *GrayPlane) ToImage() *Image {
	out := &Image{Width: g.Width, Height: g.Height, Channels: 1, Pix: make([]uint8, len(g.Pix))}
	copy(out.Pix, g.Pix)
	return out
}

// ToGrayBT601 converts img to a GrayPlane using BT.601 luma coefficients,
// rounded to the nearest integer. A single-channel Image is copied as-is.
func ToGrayBT601(img *Image) *GrayPlane {
	out := NewGrayPlane(img.Width, img.Height)
	if img.Channels == 1 {
		copy(out.Pix, img.Pix)
		return out
	}
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			r := float64(img.At(x, y, 0))
			gc := float64(img.At(x, y, 1))
			b := float64(img.At(x, y, 2))
			v := r*0.299 + gc*0.587 + b*0.114
			out.Set(x, y, clamp8(v+0.5))
		}
	}
	return out
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
