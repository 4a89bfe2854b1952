package main

import (
	"image"
	"image/color"
	"testing"
)

func TestNormalizeModePaletted(t *testing.T) {
	pal := color.Palette{
		color.NRGBA{},
		color.NRGBA{R: 9, G: 8, B: 7, A: 255},
	}
	src := image.NewPaletted(image.Rect(0, 0, 4, 4), pal)
	src.SetColorIndex(0, 0, 0)
	src.SetColorIndex(1, 0, 1)

	got, ok := normalizeMode(src).(*image.NRGBA)
	if !ok {
		t.Fatalf("paletted input should become *image.NRGBA, got %T", normalizeMode(src))
	}
	if a := got.NRGBAAt(0, 0).A; a != 0 {
		t.Fatalf("transparent palette entry lost, alpha = %d", a)
	}
	if px := got.NRGBAAt(1, 0); px != (color.NRGBA{R: 9, G: 8, B: 7, A: 255}) {
		t.Fatalf("opaque palette entry mangled: %+v", px)
	}
}

func TestNormalizeModeAlphaPassthrough(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	if got := normalizeMode(src); got != image.Image(src) {
		t.Fatal("NRGBA input must pass through unchanged")
	}

	rgba := image.NewRGBA(image.Rect(0, 0, 2, 2))
	if got := normalizeMode(rgba); got != image.Image(rgba) {
		t.Fatal("RGBA input must pass through unchanged")
	}
}

func TestNormalizeModeYCbCrPassthrough(t *testing.T) {
	src := image.NewYCbCr(image.Rect(0, 0, 8, 8), image.YCbCrSubsampleRatio420)
	if got := normalizeMode(src); got != image.Image(src) {
		t.Fatal("YCbCr input must pass through unchanged")
	}
}

func TestNormalizeModeGrayBecomesOpaqueRGB(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 2, 2))
	src.SetGray(0, 0, color.Gray{Y: 100})

	got, ok := normalizeMode(src).(*image.NRGBA)
	if !ok {
		t.Fatalf("gray input should be flattened to *image.NRGBA, got %T", normalizeMode(src))
	}
	px := got.NRGBAAt(0, 0)
	if px.R != 100 || px.G != 100 || px.B != 100 || px.A != 255 {
		t.Fatalf("gray pixel converted to %+v, want opaque 100/100/100", px)
	}
}

func TestNormalizeModeZeroesOrigin(t *testing.T) {
	src := image.NewGray(image.Rect(3, 3, 7, 9))
	got := normalizeMode(src)
	want := image.Rect(0, 0, 4, 6)
	if got.Bounds() != want {
		t.Fatalf("bounds = %v, want %v", got.Bounds(), want)
	}
}
