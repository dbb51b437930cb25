package scene

import (
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// uploadTexture creates a mipmapped 2D texture from img.
func uploadTexture(img *image.RGBA, wrapS, wrapT int32) uint32 {
	var texID uint32
	gl.GenTextures(1, &texID)
	gl.BindTexture(gl.TEXTURE_2D, texID)

	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(img.Bounds().Dx()), int32(img.Bounds().Dy()),
		0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))

	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrapS)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrapT)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return texID
}

// textureOrWhite uploads img, or a 1x1 white texture when img is nil so
// shaders still sample something sensible.
func textureOrWhite(img *image.RGBA, wrapS, wrapT int32) uint32 {
	if img == nil || len(img.Pix) == 0 {
		img = image.NewRGBA(image.Rect(0, 0, 1, 1))
		copy(img.Pix, []byte{255, 255, 255, 255})
	}
	return uploadTexture(img, wrapS, wrapT)
}

func deleteTexture(id *uint32) {
	if *id != 0 {
		gl.DeleteTextures(1, id)
		*id = 0
	}
}
