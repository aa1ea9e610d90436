// render.go
package main

import (
	"fmt"
	"math"
	"strconv"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Output resolution: the 22-unit canvas at 100 px/unit. Fixed regardless of
// input; only the encoder ever sees pixels.
const (
	unitScale = 100.0
	imageSize = 2200

	// 1pt at the canvas DPI. Style line widths are in points, matching the
	// catalog values.
	pointScale = unitScale / 72.0
	fontDPI    = 100.0

	arrowHeadSize  = 17.0 * pointScale
	arrowHeadAngle = 0.5 // radians
)

// surface is one render call's drawing target: a gg context plus the two
// typefaces every text line is drawn with. Never shared between calls.
type surface struct {
	dc      *gg.Context
	regular *truetype.Font
	bold    *truetype.Font
	st      StyleProfile
}

// newSurface allocates the canvas and parses the embedded typefaces. A
// parse failure is an environment fault, not an input error.
func newSurface(st StyleProfile) (*surface, error) {
	reg, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("rendering backend unavailable: %w", err)
	}
	bld, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("rendering backend unavailable: %w", err)
	}

	s := &surface{dc: gg.NewContext(imageSize, imageSize), regular: reg, bold: bld, st: st}
	s.setColor(st.Background)
	s.dc.Clear()
	return s, nil
}

// px / py map diagram units to pixels; the unit space has y pointing up.
func (s *surface) px(x float64) float64 { return x * unitScale }
func (s *surface) py(y float64) float64 { return imageSize - y*unitScale }

func (s *surface) face(size float64, bold bool) font.Face {
	f := s.regular
	if bold {
		f = s.bold
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     fontDPI,
		Hinting: font.HintingFull,
	})
}

func (s *surface) setColor(hex string) {
	s.dc.SetHexColor(hex)
}

func (s *surface) setColorAlpha(hex string, alpha float64) {
	r, g, b := hexRGB(hex)
	s.dc.SetRGBA(r, g, b, alpha)
}

// hexRGB parses "#rrggbb" into 0..1 channels. Catalog colors are always
// 6-digit hex; anything else falls back to black.
func hexRGB(hex string) (r, g, b float64) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return float64(v>>16&0xff) / 255, float64(v>>8&0xff) / 255, float64(v&0xff) / 255
}

// boxPath traces a container outline, rounded or square per the profile.
func (s *surface) boxPath(cx, cy, w, h float64) {
	x := s.px(cx - w/2)
	y := s.py(cy + h/2) // top edge in pixel space
	pw := w * unitScale
	ph := h * unitScale
	if s.st.Rounded {
		s.dc.DrawRoundedRectangle(x, y, pw, ph, cornerRadius*unitScale)
	} else {
		s.dc.DrawRectangle(x, y, pw, ph)
	}
}

// drawContainer draws one box in fixed z-order: shadow, body, accent bar,
// then its text lines vertically centred and evenly spaced.
func (s *surface) drawContainer(b Box) {
	// Drop shadow: stronger when the style requests it, always subtle.
	if s.st.Shadow {
		s.setColorAlpha("#7a8fa8", 0.40)
	} else {
		s.setColorAlpha("#b0c0cc", 0.18)
	}
	s.boxPath(b.X+0.10, b.Y-0.12, b.W, b.H)
	s.dc.Fill()

	s.setColor(b.Fill)
	s.boxPath(b.X, b.Y, b.W, b.H)
	s.dc.FillPreserve()
	s.setColor(b.Edge)
	s.dc.SetLineWidth(b.LineWidth * pointScale)
	s.dc.Stroke()

	// Colored left accent bar, inset slightly to avoid corner artifacts.
	if b.Accent != "" {
		barW := math.Min(accentBarMax, b.W*accentBarFactor)
		s.setColor(b.Accent)
		s.dc.DrawRectangle(
			s.px(b.X-b.W/2+0.006),
			s.py(b.Y+b.H/2-0.012),
			barW*unitScale,
			(b.H-0.024)*unitScale,
		)
		s.dc.Fill()
	}

	n := len(b.Lines)
	step := b.H / float64(n+1)
	for i, ln := range b.Lines {
		ty := b.Y + b.H/2 - step*float64(i+1)
		s.dc.SetFontFace(s.face(ln.Size, ln.Bold))
		s.setColor(s.st.TextColor)
		s.dc.DrawStringAnchored(ln.Text, s.px(b.X), s.py(ty), 0.5, 0.5)
	}
}

// drawConnector strokes the optional horizontal elbow segment, the directed
// segment, and a filled arrowhead at the target edge.
func (s *surface) drawConnector(c Connector) {
	s.setColor(s.st.ArrowColor)
	lw := s.st.arrowWidth() * pointScale
	s.dc.SetLineWidth(lw)

	if c.Elbow {
		s.dc.DrawLine(s.px(c.ElbowX1), s.py(c.ElbowY), s.px(c.ElbowX2), s.py(c.ElbowY))
		s.dc.Stroke()
	}

	fx, fy := s.px(c.FromX), s.py(c.FromY)
	tx, ty := s.px(c.ToX), s.py(c.ToY)
	s.dc.DrawLine(fx, fy, tx, ty)
	s.dc.Stroke()

	// Arrowhead: a filled triangle aligned with the segment direction.
	dx, dy := tx-fx, ty-fy
	length := math.Hypot(dx, dy)
	if length < 0.1 {
		return
	}
	dx /= length
	dy /= length
	s.dc.MoveTo(tx, ty)
	s.dc.LineTo(tx-arrowHeadSize*dx+arrowHeadSize*dy*arrowHeadAngle,
		ty-arrowHeadSize*dy-arrowHeadSize*dx*arrowHeadAngle)
	s.dc.LineTo(tx-arrowHeadSize*dx-arrowHeadSize*dy*arrowHeadAngle,
		ty-arrowHeadSize*dy+arrowHeadSize*dx*arrowHeadAngle)
	s.dc.ClosePath()
	s.dc.Fill()
}

// drawBanner draws one stream header pill above the identification row.
func (s *surface) drawBanner(b Banner) {
	ufs := uniformFontSize * s.st.fontScale()
	s.setColorAlpha(b.Color, 0.92)
	s.dc.DrawRoundedRectangle(
		s.px(b.X-b.W/2), s.py(bannerY+bannerH/2),
		b.W*unitScale, bannerH*unitScale, cornerRadius*unitScale)
	s.dc.Fill()

	s.dc.SetFontFace(s.face(ufs*0.58, true))
	s.setColor("#ffffff")
	s.dc.DrawStringAnchored(b.Label, s.px(b.X), s.py(bannerY), 0.5, 0.5)
}

// drawPhaseBand draws one rotated phase label pill along the left margin,
// bracketing the row it annotates.
func (s *surface) drawPhaseBand(b PhaseBand) {
	ufs := uniformFontSize * s.st.fontScale()

	// Soft glow behind the pill.
	s.setColorAlpha("#000000", 0.12)
	s.dc.DrawRoundedRectangle(
		s.px(0.09), s.py(b.Y+b.H/2+0.06),
		0.70*unitScale, (b.H+0.12)*unitScale, cornerRadius*unitScale)
	s.dc.Fill()

	s.setColorAlpha(b.Color, 0.94)
	s.dc.DrawRoundedRectangle(
		s.px(0.08), s.py(b.Y+b.H/2+0.05),
		0.68*unitScale, (b.H+0.10)*unitScale, cornerRadius*unitScale)
	s.dc.Fill()

	cx, cy := s.px(0.42), s.py(b.Y)
	s.dc.Push()
	s.dc.RotateAbout(-math.Pi/2, cx, cy)
	s.dc.SetFontFace(s.face(ufs*0.37, true))
	s.setColor("#ffffff")
	s.dc.DrawStringAnchored(b.Label, cx, cy, 0.5, 0.5)
	s.dc.Pop()
}

// drawTitle draws the diagram title with its flanking accent lines.
func (s *surface) drawTitle(title string) {
	s.dc.SetLineWidth(2.0 * pointScale)
	s.setColorAlpha(s.st.TitleColor, 0.50)
	for _, span := range [][2]float64{{0.8, 7.0}, {15.0, 21.2}} {
		s.dc.DrawLine(s.px(span[0]), s.py(titleY), s.px(span[1]), s.py(titleY))
		s.dc.Stroke()
	}

	s.dc.SetFontFace(s.face(16.0*s.st.fontScale(), true))
	s.setColor(s.st.TitleColor)
	s.dc.DrawStringAnchored(title, s.px(totalX), s.py(titleY), 0.5, 0.5)
}
