// models.go
package main

import "strings"

// --- Input Model ---

// Fields is the sole external input contract: a flat form-field mapping.
// Every value is optional; missing or blank values mean "zero" for counts
// and "omit" for named slots. Nothing here is ever a hard error.
type Fields map[string]string

// count returns the first non-blank value among the given keys (later keys
// are legacy aliases), falling back to "0" so that numeric lines always
// read as a complete sentence.
func (f Fields) count(keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(f[k]); v != "" {
			return v
		}
	}
	return "0"
}

// text returns the first non-blank trimmed value among the given keys,
// or "" when none is set.
func (f Fields) text(keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(f[k]); v != "" {
			return v
		}
	}
	return ""
}

// --- Style Model ---

// BoxColors is one fill/edge pair for per-phase box coloring.
type BoxColors struct {
	Fill string
	Edge string
}

// StyleProfile is the complete, immutable parameter set for one visual
// theme. Profiles live only in the fixed registry in styles.go; a render
// call never mutates one.
type StyleProfile struct {
	Key  string
	Name string

	Background string
	Rounded    bool // rounded vs. square container corners

	BoxLineWidth   float64
	ArrowLineWidth float64

	BoxFill string
	BoxEdge string

	IncludedFill      string
	IncludedEdge      string
	IncludedLineWidth float64

	SideFill string
	SideEdge string

	TextColor  string
	TitleColor string
	ArrowColor string

	Shadow     bool
	PhaseBands bool

	// PhaseColors holds exactly five band colors (one per pipeline phase)
	// when PhaseBands is set.
	PhaseColors []string

	// PhaseBoxColors optionally recolors main-flow boxes per phase index.
	PhaseBoxColors []BoxColors

	// FontScale multiplies the uniform font size. Zero means 1.0.
	FontScale float64
}

func (s StyleProfile) fontScale() float64 {
	if s.FontScale == 0 {
		return 1.0
	}
	return s.FontScale
}

// phaseFill returns the main-box fill for phase index i.
func (s StyleProfile) phaseFill(i int) string {
	if i >= 0 && i < len(s.PhaseBoxColors) {
		return s.PhaseBoxColors[i].Fill
	}
	return s.BoxFill
}

// phaseEdge returns the main-box edge color for phase index i.
func (s StyleProfile) phaseEdge(i int) string {
	if i >= 0 && i < len(s.PhaseBoxColors) {
		return s.PhaseBoxColors[i].Edge
	}
	return s.BoxEdge
}

// arrowWidth is the effective connector line width in points. Arrows are
// drawn bolder than box edges and never thinner than 2pt.
func (s StyleProfile) arrowWidth() float64 {
	w := s.ArrowLineWidth * 1.30
	if w < 2.0 {
		w = 2.0
	}
	return w
}

// --- Diagram Model ---

// Stream is one of the three parallel study-discovery pathways.
type Stream int

const (
	StreamPrevious Stream = iota // Previous Studies (left)
	StreamDatabase               // Databases / Registers (centre)
	StreamOther                  // Other Methods (right)
)

// Phase is a named pipeline stage. Every phase has one canonical y-level
// shared by all streams that implement it (see geometry.go), so rows always
// align across streams.
type Phase int

const (
	PhaseIdentification Phase = iota
	PhasePreScreeningRemoval
	PhaseScreened
	PhaseScreenedExclusion
	PhaseSought
	PhaseNotRetrieved
	PhaseAssessed
	PhaseEligibilityExclusion
	PhaseIncluded
	PhaseTotalIncluded
	PhaseAnalysis
)

// Line is one formatted display line within a box.
type Line struct {
	Text string
	Bold bool
	Size float64 // point size, already font-scaled
}

// Box is one drawn container. Coordinates are diagram units with a
// center-based origin; X/W are fixed per column while H adapts to Lines.
type Box struct {
	Stream Stream
	Phase  Phase
	Side   bool // drawn in a side-exclusion column

	X, Y float64
	W, H float64

	Lines []Line

	Fill      string
	Edge      string
	LineWidth float64
	Accent    string // left accent-bar color, "" for none
}

// Connector is a directed segment ending in an arrowhead at (ToX, ToY).
// An elbowed connector is preceded by one undirected horizontal segment.
type Connector struct {
	FromX, FromY float64
	ToX, ToY     float64

	Elbow            bool
	ElbowX1, ElbowX2 float64
	ElbowY           float64
}

// Banner is one stream header drawn above the identification row.
type Banner struct {
	X, W  float64
	Label string
	Color string
}

// PhaseBand is one rotated side label marking a pipeline phase row.
type PhaseBand struct {
	Label string
	Y, H  float64 // row center and box height the band brackets
	Color string
}

// Plan is the fully positioned diagram: everything the shape renderer
// needs, and nothing it has to recompute. Built fresh per render call.
type Plan struct {
	Style      StyleProfile
	Boxes      []Box
	Connectors []Connector
	Banners    []Banner
	Bands      []PhaseBand
	Title      string
}
