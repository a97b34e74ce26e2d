package storage

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	xdraw "golang.org/x/image/draw"
)

// Signatures larger than this are downscaled before encoding.
const maxSignatureWidth = 800

// NormalizeSignature decodes an uploaded signature image (PNG or JPEG),
// downscales it when oversized and re-encodes it as lossless webp. The result
// is what gets embedded into the signed document.
func NormalizeSignature(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := src.Bounds()
	if bounds.Dx() > maxSignatureWidth {
		scale := float64(maxSignatureWidth) / float64(bounds.Dx())
		h := int(float64(bounds.Dy()) * scale)

		dst := image.NewRGBA(image.Rect(0, 0, maxSignatureWidth, h))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, xdraw.Over, nil)
		src = dst
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Lossless: true}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
