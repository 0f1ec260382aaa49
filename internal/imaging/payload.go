package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"strings"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"

	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// PNGDataURLPrefix is the transfer-encoding prefix attached to every image
// payload this package produces.
const PNGDataURLPrefix = "data:image/png;base64,"

// DecodePayload converts a text-encoded image payload into an exclusively
// owned NRGBA pixel buffer.
//
// The payload is either bare base64 or a data URL of the form
// "<metadata>,<base64>". If a comma is present, only the text after the
// first comma is decoded; the metadata prefix is discarded without
// inspection, so any MIME declaration the caller supplies is ignored in
// favor of codec sniffing.
//
// Supported codecs are PNG, JPEG, GIF, WebP, BMP, and TIFF. The decoded
// image is cloned into a fresh *image.NRGBA with bounds anchored at (0,0),
// so callers may mutate the returned buffer freely.
//
// # Errors
//
//   - Returns an error if the payload is not valid base64
//   - Returns an error if the decoded bytes are not a recognized image
//   - Returns an error if either dimension of the decoded image is zero
func DecodePayload(payload string) (*image.NRGBA, error) {
	if idx := strings.Index(payload, ","); idx >= 0 {
		payload = payload[idx+1:]
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64: %w", err)
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() < 1 || bounds.Dy() < 1 {
		return nil, fmt.Errorf("image has degenerate dimensions %dx%d", bounds.Dx(), bounds.Dy())
	}

	return imaging.Clone(img), nil
}

// EncodePNGPayload serializes an image as PNG and wraps it in a data URL
// with the PNGDataURLPrefix scheme prefix.
//
// Encoding failure indicates an internal invariant violation (the pixel
// buffer came from a successful decode) and is surfaced verbatim.
func EncodePNGPayload(img image.Image) (string, error) {
	var buf bytes.Buffer
	encode := imgio.PNGEncoder()
	if err := encode(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode result: %w", err)
	}
	return PNGDataURLPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
