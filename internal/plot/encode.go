package plot

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
)

// EncodePNG writes img as a PNG. An opaque image is written as 8-bit RGB
// without an alpha channel.
func EncodePNG(w io.Writer, img *image.RGBA) error {
	if img == nil {
		return ErrEmptyInput
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// EncodePNGBytes encodes img into memory
func EncodePNGBytes(img *image.RGBA) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
