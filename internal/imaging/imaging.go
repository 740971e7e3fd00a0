// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package imaging generates gallery thumbnails from uploaded images. The
// resize path is pure Go (x/image) so the binary needs no native
// dependencies. Output is always JPEG.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	// ThumbWidth is the target width for gallery thumbnails.
	ThumbWidth = 400

	// jpegQuality balances size against visible artifacts at thumb scale.
	jpegQuality = 80

	// maxPixels rejects decompression bombs before full decode.
	maxPixels = 50_000_000
)

// Thumbnail scales the source image down to ThumbWidth, preserving aspect
// ratio, and returns JPEG bytes. Images at or below ThumbWidth are
// re-encoded without upscaling.
func Thumbnail(source []byte) ([]byte, error) {
	// Probe dimensions before decoding the full image.
	cfg, _, err := image.DecodeConfig(bytes.NewReader(source))
	if err != nil {
		return nil, fmt.Errorf("imaging: probe: %w", err)
	}
	if cfg.Width*cfg.Height > maxPixels {
		return nil, fmt.Errorf("imaging: image too large: %dx%d", cfg.Width, cfg.Height)
	}

	src, _, err := image.Decode(bytes.NewReader(source))
	if err != nil {
		return nil, fmt.Errorf("imaging: decode: %w", err)
	}

	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	targetWidth := ThumbWidth
	if width <= targetWidth {
		targetWidth = width
	}
	targetHeight := height * targetWidth / width
	if targetHeight < 1 {
		targetHeight = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, targetWidth, targetHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("imaging: encode: %w", err)
	}
	return buf.Bytes(), nil
}
