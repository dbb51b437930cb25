package texture

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// tgaHeader builds an 18-byte TGA header.
func tgaHeader(imageType byte, width, height int, bpp byte, topToBottom bool) []byte {
	h := make([]byte, 18)
	h[2] = imageType
	h[12], h[13] = byte(width), byte(width>>8)
	h[14], h[15] = byte(height), byte(height>>8)
	h[16] = bpp
	if topToBottom {
		h[17] = 0x20
	}
	return h
}

func TestDecodeTGAUncompressed(t *testing.T) {
	// 2x2, 24 bpp, bottom-up: first row in the file is the bottom row.
	data := tgaHeader(TGATypeUncompressed, 2, 2, 24, false)
	data = append(data,
		0, 0, 255, 0, 255, 0, // bottom: red, green
		255, 0, 0, 255, 255, 255, // top: blue, white
	)

	img, err := DecodeTGA(data)
	if err != nil {
		t.Fatalf("DecodeTGA failed: %v", err)
	}

	tests := []struct {
		x, y int
		want color.RGBA
	}{
		{0, 1, color.RGBA{255, 0, 0, 255}},
		{1, 1, color.RGBA{0, 255, 0, 255}},
		{0, 0, color.RGBA{0, 0, 255, 255}},
		{1, 0, color.RGBA{255, 255, 255, 255}},
	}
	for _, tt := range tests {
		if got := img.RGBAAt(tt.x, tt.y); got != tt.want {
			t.Errorf("pixel (%d,%d): expected %v, got %v", tt.x, tt.y, tt.want, got)
		}
	}
}

func TestDecodeTGARLE(t *testing.T) {
	// 3x1, 32 bpp, top-down: run of two red, then one raw half-transparent blue.
	data := tgaHeader(TGATypeRLE, 3, 1, 32, true)
	data = append(data,
		0x81, 0, 0, 255, 255,
		0x00, 255, 0, 0, 128,
	)

	img, err := DecodeTGA(data)
	if err != nil {
		t.Fatalf("DecodeTGA failed: %v", err)
	}
	want := []color.RGBA{{255, 0, 0, 255}, {255, 0, 0, 255}, {0, 0, 255, 128}}
	for x, w := range want {
		if got := img.RGBAAt(x, 0); got != w {
			t.Errorf("pixel %d: expected %v, got %v", x, w, got)
		}
	}
}

func TestDecodeTGAErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"short header", []byte{1, 2, 3}, ErrDecode},
		{"color mapped", func() []byte {
			h := tgaHeader(1, 1, 1, 24, false)
			h[1] = 1
			return h
		}(), ErrUnsupported},
		{"grayscale type", tgaHeader(3, 1, 1, 24, false), ErrUnsupported},
		{"16 bpp", tgaHeader(TGATypeUncompressed, 1, 1, 16, false), ErrUnsupported},
		{"truncated pixels", tgaHeader(TGATypeUncompressed, 4, 4, 24, false), ErrDecode},
		{"truncated rle", append(tgaHeader(TGATypeRLE, 4, 1, 24, false), 0x83), ErrDecode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeTGA(tt.data)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadPNGFlip(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 1, 3))
	src.Set(0, 0, color.NRGBA{255, 0, 0, 255})
	src.Set(0, 1, color.NRGBA{0, 255, 0, 255})
	src.Set(0, 2, color.NRGBA{0, 0, 255, 255})

	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("failed to encode: %v", err)
	}
	path := filepath.Join(t.TempDir(), "tex.png")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("failed to write: %v", err)
	}

	img, err := Load(path, false)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("unflipped top: expected red, got %v", got)
	}

	img, err = Load(path, true)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("flipped top: expected blue, got %v", got)
	}
	if got := img.RGBAAt(0, 1); got != (color.RGBA{0, 255, 0, 255}) {
		t.Errorf("flipped middle: expected green, got %v", got)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.png"), true); !errors.Is(err, ErrDecode) {
		t.Errorf("expected ErrDecode for missing file, got %v", err)
	}

	bad := filepath.Join(dir, "bad.jpg")
	if err := os.WriteFile(bad, []byte("nope"), 0644); err != nil {
		t.Fatalf("failed to write: %v", err)
	}
	if _, err := Load(bad, true); !errors.Is(err, ErrDecode) {
		t.Errorf("expected ErrDecode for garbage, got %v", err)
	}
}

func TestToRGBAOffsetBounds(t *testing.T) {
	src := image.NewGray(image.Rect(5, 5, 7, 6))
	src.Set(6, 5, color.Gray{Y: 200})

	rgba := ToRGBA(src)
	if rgba.Rect != image.Rect(0, 0, 2, 1) {
		t.Fatalf("expected bounds at origin, got %v", rgba.Rect)
	}
	if got := rgba.RGBAAt(1, 0); got != (color.RGBA{200, 200, 200, 255}) {
		t.Errorf("expected gray 200, got %v", got)
	}
}
