// Package imaging wraps the image codecs used for clipboard transfer.
// Clipboard image payloads travel as PNG bytes; files put onto the
// clipboard may be PNG, JPEG or GIF.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"os"
)

// ClampQuality converts a 0..1 compression factor to the 0..100 JPEG
// quality scale, saturating at the bounds.
func ClampQuality(compression float64) int {
	q := int(compression * 100)
	if q < 0 {
		q = 0
	}
	if q > 100 {
		q = 100
	}
	return q
}

// Decode decodes an in-memory image payload.
func Decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// DecodeFile decodes an image file from disk.
func DecodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// EncodePNG returns the PNG encoding of img.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// SaveJPEG writes img to target as JPEG. The compression factor is
// clamped to the valid quality range before encoding.
func SaveJPEG(target string, img image.Image, compression float64) error {
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: ClampQuality(compression)}); err != nil {
		f.Close()
		return fmt.Errorf("encode jpeg: %w", err)
	}
	return f.Close()
}

// SavePNG writes img to target as PNG.
func SavePNG(target string, img image.Image) error {
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	return f.Close()
}
