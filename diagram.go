// diagram.go
package main

import (
	"bytes"
	"image"
)

// Render assembles the full three-stream flow diagram for the given field
// mapping and style key. It is a pure function of its inputs: no I/O, no
// shared state beyond the read-only style registry, and identical inputs
// yield identical pixels.
func Render(f Fields, styleKey string) (image.Image, error) {
	if styleKey == "" {
		styleKey = f.text("style")
	}
	st := ResolveStyle(styleKey)

	plan := planLayout(st, buildContent(f, st))

	s, err := newSurface(st)
	if err != nil {
		return nil, err
	}

	// Fixed z-order: banners, boxes, connectors, bands, title.
	for _, b := range plan.Banners {
		s.drawBanner(b)
	}
	for _, b := range plan.Boxes {
		s.drawContainer(b)
	}
	for _, c := range plan.Connectors {
		s.drawConnector(c)
	}
	for _, b := range plan.Bands {
		s.drawPhaseBand(b)
	}
	s.drawTitle(plan.Title)

	return s.dc.Image(), nil
}

// Generate renders the diagram and encodes it in one step. This is the
// contract external callers (request handlers, the gallery driver) depend on.
func Generate(f Fields, styleKey, format string) ([]byte, error) {
	img, err := Render(f, styleKey)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := Encode(&buf, img, format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
