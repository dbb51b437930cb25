package terrain

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"os"

	// Heightmap formats. PNG is what the sample assets use.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// HeightField is an immutable grid of height samples, row-major with
// sample (x, z) at index z*width+x.
type HeightField struct {
	width   int
	height  int
	samples []float32
}

// NewHeightField wraps samples in a HeightField. The slice is copied.
func NewHeightField(width, height int, samples []float32) (*HeightField, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrEmptyField, width, height)
	}
	if len(samples) != width*height {
		return nil, fmt.Errorf("%w: %d samples for %dx%d grid", ErrEmptyField, len(samples), width, height)
	}

	s := make([]float32, len(samples))
	copy(s, samples)
	return &HeightField{width: width, height: height, samples: s}, nil
}

// LoadHeightField reads and decodes a heightmap image file.
func LoadHeightField(path string, opts DecodeOptions) (*HeightField, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	f, err := DecodeHeightField(data, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// DecodeHeightField decodes an image and maps each pixel's gray level
// linearly from [0,255] to [0,opts.Scale]. Colour images are reduced to
// luminance first.
func DecodeHeightField(data []byte, opts DecodeOptions) (*HeightField, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %s image has size %dx%d", ErrDecode, format, width, height)
	}

	samples := make([]float32, width*height)
	for row := 0; row < height; row++ {
		z := row
		if opts.FlipVertical {
			z = height - 1 - row
		}
		for x := 0; x < width; x++ {
			gray := grayAt(img, b.Min.X+x, b.Min.Y+row)
			samples[z*width+x] = float32(gray) / 255 * opts.Scale
		}
	}

	return &HeightField{width: width, height: height, samples: samples}, nil
}

func grayAt(img image.Image, x, y int) uint8 {
	if g, ok := img.(*image.Gray); ok {
		return g.GrayAt(x, y).Y
	}
	return color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y
}

// Width returns the number of columns.
func (f *HeightField) Width() int { return f.width }

// Height returns the number of rows.
func (f *HeightField) Height() int { return f.height }

// HeightAt returns the sample at grid cell (x, z), or 0 outside the grid.
// Out-of-range cells read as "no terrain" rather than the nearest edge.
func (f *HeightField) HeightAt(x, z int) float32 {
	if x < 0 || x >= f.width || z < 0 || z >= f.height {
		return 0
	}
	return f.samples[z*f.width+x]
}

// MinMax returns the lowest and highest sample.
func (f *HeightField) MinMax() (lo, hi float32) {
	lo, hi = f.samples[0], f.samples[0]
	for _, s := range f.samples[1:] {
		if s < lo {
			lo = s
		}
		if s > hi {
			hi = s
		}
	}
	return lo, hi
}
