package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// TrimResult contains an image with its fully transparent borders removed.
type TrimResult struct {
	// Width of the trimmed image in pixels.
	Width int `json:"width"`

	// Height of the trimmed image in pixels.
	Height int `json:"height"`

	// OffsetX is the left edge of the retained region in the input image.
	OffsetX int `json:"offset_x"`

	// OffsetY is the top edge of the retained region in the input image.
	OffsetY int `json:"offset_y"`

	// ImageDataURL is the trimmed image encoded as a base64 PNG data URL.
	ImageDataURL string `json:"image_data_url"`

	// MimeType is always "image/png".
	MimeType string `json:"mime_type"`
}

// TrimTransparent crops away every fully transparent row and column along
// the borders of a text-encoded image, keeping the tight bounding box of
// pixels with non-zero alpha.
//
// This is the natural follow-up to RemoveBackground: once the background
// has been cut to transparency, trimming yields just the retained subject.
//
// Returns an error if the payload cannot be decoded, if the image contains
// no pixel with non-zero alpha, or if re-encoding fails.
func TrimTransparent(payload string) (*TrimResult, error) {
	img, err := DecodePayload(payload)
	if err != nil {
		return nil, err
	}

	w := img.Rect.Dx()
	h := img.Rect.Dy()

	minX, minY := w, h
	maxX, maxY := -1, -1
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if img.Pix[img.PixOffset(img.Rect.Min.X+x, img.Rect.Min.Y+y)+3] == 0 {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}

	if maxX < 0 {
		return nil, fmt.Errorf("image is fully transparent, nothing to trim")
	}

	trimmed := imaging.Crop(img, image.Rect(minX, minY, maxX+1, maxY+1))

	dataURL, err := EncodePNGPayload(trimmed)
	if err != nil {
		return nil, err
	}

	return &TrimResult{
		Width:        trimmed.Bounds().Dx(),
		Height:       trimmed.Bounds().Dy(),
		OffsetX:      minX,
		OffsetY:      minY,
		ImageDataURL: dataURL,
		MimeType:     "image/png",
	}, nil
}
