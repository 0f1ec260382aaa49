package imaging

import (
	"image"
	"image/color"
	"testing"
)

func TestTrimTransparent(t *testing.T) {
	// 8x6 fully transparent canvas with an opaque 3x2 block at (2,1).
	img := image.NewNRGBA(image.Rect(0, 0, 8, 6))
	for y := 1; y <= 2; y++ {
		for x := 2; x <= 4; x++ {
			img.SetNRGBA(x, y, color.NRGBA{200, 10, 10, 255})
		}
	}

	result, err := TrimTransparent(encodeTestPNG(t, img))
	if err != nil {
		t.Fatalf("TrimTransparent failed: %v", err)
	}
	if result.Width != 3 || result.Height != 2 {
		t.Errorf("dimensions: got %dx%d, want 3x2", result.Width, result.Height)
	}
	if result.OffsetX != 2 || result.OffsetY != 1 {
		t.Errorf("offset: got (%d,%d), want (2,1)", result.OffsetX, result.OffsetY)
	}

	out, err := DecodePayload(result.ImageDataURL)
	if err != nil {
		t.Fatalf("failed to decode result: %v", err)
	}
	if got := out.NRGBAAt(0, 0); got != (color.NRGBA{200, 10, 10, 255}) {
		t.Errorf("pixel (0,0): got %v, want {200 10 10 255}", got)
	}
}

func TestTrimTransparent_KeepsPartialAlpha(t *testing.T) {
	// Feathered pixels (alpha between 0 and 255) count as content.
	img := image.NewNRGBA(image.Rect(0, 0, 5, 5))
	img.SetNRGBA(1, 1, color.NRGBA{255, 255, 255, 1})
	img.SetNRGBA(3, 3, color.NRGBA{255, 255, 255, 255})

	result, err := TrimTransparent(encodeTestPNG(t, img))
	if err != nil {
		t.Fatalf("TrimTransparent failed: %v", err)
	}
	if result.Width != 3 || result.Height != 3 {
		t.Errorf("dimensions: got %dx%d, want 3x3", result.Width, result.Height)
	}
	if result.OffsetX != 1 || result.OffsetY != 1 {
		t.Errorf("offset: got (%d,%d), want (1,1)", result.OffsetX, result.OffsetY)
	}
}

func TestTrimTransparent_NothingOpaque(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	if _, err := TrimTransparent(encodeTestPNG(t, img)); err == nil {
		t.Fatal("expected error for fully transparent image")
	}
}

func TestTrimTransparent_NoTransparentBorder(t *testing.T) {
	img := createSolidImage(4, 3, color.NRGBA{5, 5, 5, 255})

	result, err := TrimTransparent(encodeTestPNG(t, img))
	if err != nil {
		t.Fatalf("TrimTransparent failed: %v", err)
	}
	if result.Width != 4 || result.Height != 3 || result.OffsetX != 0 || result.OffsetY != 0 {
		t.Errorf("expected identity trim, got %dx%d at (%d,%d)",
			result.Width, result.Height, result.OffsetX, result.OffsetY)
	}
}
