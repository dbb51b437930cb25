package texture

import (
	"fmt"
	"image"
	"image/color"
)

// TGA image types.
const (
	TGATypeUncompressed = 2  // Uncompressed true-color
	TGATypeRLE          = 10 // RLE compressed true-color
)

// DecodeTGA decodes a true-color TGA image, either uncompressed (type 2)
// or RLE compressed (type 10), at 24 or 32 bits per pixel.
func DecodeTGA(data []byte) (*image.RGBA, error) {
	if len(data) < 18 {
		return nil, fmt.Errorf("%w: TGA header too short", ErrDecode)
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := data[2]
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	descriptor := data[17]

	if colorMapType != 0 {
		return nil, fmt.Errorf("%w: color-mapped TGA", ErrUnsupported)
	}
	if imageType != TGATypeUncompressed && imageType != TGATypeRLE {
		return nil, fmt.Errorf("%w: TGA type %d", ErrUnsupported, imageType)
	}
	if bpp != 24 && bpp != 32 {
		return nil, fmt.Errorf("%w: TGA bit depth %d", ErrUnsupported, bpp)
	}
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("%w: TGA size %dx%d", ErrDecode, width, height)
	}

	offset := 18 + idLength
	if offset > len(data) {
		return nil, fmt.Errorf("%w: TGA data truncated", ErrDecode)
	}

	d := tgaDecoder{
		img:         image.NewRGBA(image.Rect(0, 0, width, height)),
		src:         data[offset:],
		width:       width,
		height:      height,
		bpp:         bpp / 8,
		topToBottom: descriptor&0x20 != 0,
	}

	if imageType == TGATypeUncompressed {
		if len(d.src) < width*height*d.bpp {
			return nil, fmt.Errorf("%w: TGA pixel data truncated", ErrDecode)
		}
		for i := 0; i < width*height; i++ {
			d.put(i, d.pixel(i*d.bpp))
		}
		return d.img, nil
	}

	if err := d.decodeRLE(); err != nil {
		return nil, err
	}
	return d.img, nil
}

type tgaDecoder struct {
	img         *image.RGBA
	src         []byte
	width       int
	height      int
	bpp         int
	topToBottom bool
}

// pixel reads one BGR(A) pixel at byte offset i.
func (d *tgaDecoder) pixel(i int) color.RGBA {
	c := color.RGBA{R: d.src[i+2], G: d.src[i+1], B: d.src[i], A: 255}
	if d.bpp == 4 {
		c.A = d.src[i+3]
	}
	return c
}

// put stores the n-th pixel in file order. Bottom-up files are flipped so
// the result is always top-down.
func (d *tgaDecoder) put(n int, c color.RGBA) {
	x, y := n%d.width, n/d.width
	if !d.topToBottom {
		y = d.height - 1 - y
	}
	d.img.SetRGBA(x, y, c)
}

func (d *tgaDecoder) decodeRLE() error {
	total := d.width * d.height
	n, i := 0, 0

	for n < total {
		if i >= len(d.src) {
			return fmt.Errorf("%w: TGA RLE data truncated at pixel %d", ErrDecode, n)
		}
		packet := d.src[i]
		i++
		count := int(packet&0x7F) + 1

		if packet&0x80 != 0 {
			if i+d.bpp > len(d.src) {
				return fmt.Errorf("%w: TGA RLE data truncated at pixel %d", ErrDecode, n)
			}
			c := d.pixel(i)
			i += d.bpp
			for ; count > 0 && n < total; count-- {
				d.put(n, c)
				n++
			}
			continue
		}

		for ; count > 0 && n < total; count-- {
			if i+d.bpp > len(d.src) {
				return fmt.Errorf("%w: TGA RLE data truncated at pixel %d", ErrDecode, n)
			}
			d.put(n, d.pixel(i))
			i += d.bpp
			n++
		}
	}
	return nil
}
