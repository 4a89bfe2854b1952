package main

import (
	"image"

	"golang.org/x/image/draw"
)

// normalizeMode rewrites decoded images into a pixel format the WebP encoder
// handles without surprises. Palette images are expanded to NRGBA so palette
// transparency survives the encode; images that already carry an alpha
// channel, and plain RGB from JPEG, pass through untouched. Everything else
// (grayscale, CMYK, ...) is flattened onto an opaque RGB canvas.
func normalizeMode(img image.Image) image.Image {
	switch img.(type) {
	case *image.Paletted:
		return toNRGBA(img)
	case *image.NRGBA, *image.RGBA, *image.NRGBA64, *image.RGBA64:
		return img
	case *image.YCbCr:
		return img
	default:
		return toNRGBA(img)
	}
}

func toNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
