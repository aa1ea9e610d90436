// encode.go
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"strings"
)

const jpegQuality = 90

// Encode serializes a rendered surface to the requested raster format.
// An empty format means PNG. Anything else is a request-level error; no
// partial bytes are written in that case.
func Encode(w io.Writer, img image.Image, format string) error {
	switch strings.ToLower(format) {
	case "", "png":
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("failed to encode PNG: %w", err)
		}
	case "jpg", "jpeg":
		if err := jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
			return fmt.Errorf("failed to encode JPEG: %w", err)
		}
	default:
		return fmt.Errorf("unsupported export format %q (supported: png, jpg/jpeg)", format)
	}
	return nil
}
