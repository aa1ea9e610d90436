// geometry.go
package main

// The layout lives in a 22×22 unit space with the y axis pointing up
// (row levels read top→bottom as decreasing y). The renderer maps units to
// pixels; nothing here depends on the output resolution.
const (
	canvasUnits = 22.0

	// Column geometry: center-x and width per column. Horizontal layout is
	// input-independent; only box heights adapt.
	prevX, prevW           = 2.0, 3.2
	dbX, dbW               = 8.5, 4.8
	otherX, otherW         = 16.8, 3.5
	dbSideX, dbSideW       = 13.0, 3.5
	otherSideX, otherSideW = 20.7, 2.5
	totalX, totalW         = 11.0, 6.5

	analysis1X = 5.5
	analysis2X = 16.5
	analysisW  = 5.5

	// Adaptive box sizing.
	stdHeight       = 0.75
	lineDensity     = 0.28
	linePad         = 0.30
	identLinePad    = 0.40
	preRemovalMinH  = 0.90
	cornerRadius    = 0.12
	accentBarMax    = 0.22
	accentBarFactor = 0.068

	// Header banners and title.
	bannerY = 21.15
	bannerH = 0.44
	titleY  = 21.68
)

// phaseLevels holds the canonical y-level of each Phase, in Phase order,
// monotonically decreasing from identification down to the analysis row.
var phaseLevels = [...]float64{
	PhaseIdentification:       20.0,
	PhasePreScreeningRemoval:  18.0,
	PhaseScreened:             15.8,
	PhaseScreenedExclusion:    14.0,
	PhaseSought:               12.0,
	PhaseNotRetrieved:         10.6,
	PhaseAssessed:             9.0,
	PhaseEligibilityExclusion: 7.3,
	PhaseIncluded:             5.5,
	PhaseTotalIncluded:        3.5,
	PhaseAnalysis:             1.3,
}

// Y returns the phase's canonical row level, shared by every stream that
// implements the phase.
func (p Phase) Y() float64 {
	return phaseLevels[p]
}

// adaptiveHeight grows a box to fit its line count, never below the
// standard single-line height.
func adaptiveHeight(lines int) float64 {
	h := lineDensity*float64(lines) + linePad
	if h < stdHeight {
		h = stdHeight
	}
	return h
}

// identHeight sizes the database-identification box. Its source bullet
// list sits under a long header, so it gets a slightly larger pad than
// the other adaptive boxes.
func identHeight(lines int) float64 {
	h := lineDensity*float64(lines) + identLinePad
	if h < stdHeight {
		h = stdHeight
	}
	return h
}

// planLayout positions every box and routes every connector for one
// render. Given identical content and style the plan is bit-for-bit
// identical: all coordinates derive from the fixed constants above.
func planLayout(st StyleProfile, c diagramContent) Plan {
	p := Plan{Style: st, Title: "PRISMA 2020 Flow Diagram"}

	p.Banners = []Banner{
		{X: prevX, W: prevW, Label: "PREVIOUS STUDIES", Color: accentPrevious},
		{X: dbX, W: dbW, Label: "DATABASES / REGISTERS", Color: st.BoxEdge},
		{X: otherX, W: otherW, Label: "OTHER METHODS", Color: accentOther},
	}

	// Adaptive heights feed both box placement and connector endpoints.
	hDBIdent := identHeight(len(c.dbIdent))
	hScreened := adaptiveHeight(len(c.screened))
	hPreRemoval := adaptiveHeight(len(c.preRemoval))
	if hPreRemoval < preRemovalMinH {
		hPreRemoval = preRemovalMinH
	}
	hScreenedExc := adaptiveHeight(len(c.screenedExc))
	hDBEligExc := adaptiveHeight(len(c.dbEligExc))
	hOtherEligExc := adaptiveHeight(len(c.otherEligExc))

	mainBox := func(s Stream, ph Phase, phaseIdx int, x, w, h float64, lines []Line, accent string) {
		p.Boxes = append(p.Boxes, Box{
			Stream: s, Phase: ph, X: x, Y: ph.Y(), W: w, H: h, Lines: lines,
			Fill: st.phaseFill(phaseIdx), Edge: st.phaseEdge(phaseIdx),
			LineWidth: st.BoxLineWidth, Accent: accent,
		})
	}
	sideBox := func(s Stream, ph Phase, x, w, h float64, lines []Line) {
		p.Boxes = append(p.Boxes, Box{
			Stream: s, Phase: ph, Side: true, X: x, Y: ph.Y(), W: w, H: h, Lines: lines,
			Fill: st.SideFill, Edge: st.SideEdge,
			LineWidth: st.BoxLineWidth, Accent: accentSide,
		})
	}
	includedBox := func(s Stream, ph Phase, x, w, lw float64, lines []Line) {
		p.Boxes = append(p.Boxes, Box{
			Stream: s, Phase: ph, X: x, Y: ph.Y(), W: w, H: stdHeight, Lines: lines,
			Fill: st.IncludedFill, Edge: st.IncludedEdge,
			LineWidth: lw, Accent: accentIncluded,
		})
	}

	// Identification row.
	if c.prevPresent {
		mainBox(StreamPrevious, PhaseIdentification, 0, prevX, prevW, stdHeight, c.prevIdent, accentPrevious)
	}
	mainBox(StreamDatabase, PhaseIdentification, 0, dbX, dbW, hDBIdent, c.dbIdent, st.BoxEdge)
	mainBox(StreamOther, PhaseIdentification, 0, otherX, otherW, stdHeight, c.otherIdent, accentOther)
	if c.preRemovalPresent {
		sideBox(StreamDatabase, PhasePreScreeningRemoval, dbSideX, dbSideW, hPreRemoval, c.preRemoval)
	}

	// Screening (Database stream only).
	mainBox(StreamDatabase, PhaseScreened, 1, dbX, dbW, hScreened, c.screened, st.BoxEdge)
	if c.screenedExcPresent {
		sideBox(StreamDatabase, PhaseScreenedExclusion, dbSideX, dbSideW, hScreenedExc, c.screenedExc)
	}

	// Retrieval.
	mainBox(StreamDatabase, PhaseSought, 2, dbX, dbW, stdHeight, c.sought, st.BoxEdge)
	mainBox(StreamOther, PhaseSought, 2, otherX, otherW, stdHeight, c.otherSought, accentOther)
	if c.dbNotRetrievedPresent {
		sideBox(StreamDatabase, PhaseNotRetrieved, dbSideX, dbSideW, stdHeight, c.dbNotRetrieved)
	}
	if c.otherNotRetrievedPresent {
		sideBox(StreamOther, PhaseNotRetrieved, otherSideX, otherSideW, stdHeight, c.otherNotRetrieved)
	}

	// Eligibility.
	mainBox(StreamDatabase, PhaseAssessed, 3, dbX, dbW, stdHeight, c.assessed, st.BoxEdge)
	mainBox(StreamOther, PhaseAssessed, 3, otherX, otherW, stdHeight, c.otherAssessed, accentOther)
	if c.dbEligExcPresent {
		sideBox(StreamDatabase, PhaseEligibilityExclusion, dbSideX, dbSideW, hDBEligExc, c.dbEligExc)
	}
	if c.otherEligExcPresent {
		sideBox(StreamOther, PhaseEligibilityExclusion, otherSideX, otherSideW, hOtherEligExc, c.otherEligExc)
	}

	// Inclusion row and merge column.
	if c.prevPresent {
		includedBox(StreamPrevious, PhaseIncluded, prevX, prevW, st.IncludedLineWidth, c.prevIncluded)
	}
	includedBox(StreamDatabase, PhaseIncluded, dbX, dbW, st.IncludedLineWidth, c.dbIncluded)
	includedBox(StreamOther, PhaseIncluded, otherX, otherW, st.IncludedLineWidth, c.otherIncluded)
	includedBox(StreamDatabase, PhaseTotalIncluded, totalX, totalW, st.IncludedLineWidth+0.5, c.total)

	mainBox(StreamDatabase, PhaseAnalysis, 3, analysis1X, analysisW, stdHeight, c.analysis1, accentIncluded)
	mainBox(StreamOther, PhaseAnalysis, 3, analysis2X, analysisW, stdHeight, c.analysis2, accentIncluded)

	p.Connectors = routeConnectors(c, hDBIdent, hScreened)

	if st.PhaseBands {
		cols := st.bandColors()
		p.Bands = []PhaseBand{
			{Label: "IDENTIFICATION", Y: PhaseIdentification.Y(), H: hDBIdent, Color: cols[0]},
			{Label: "SCREENING", Y: PhaseScreened.Y(), H: hScreened, Color: cols[1]},
			{Label: "RETRIEVAL", Y: PhaseSought.Y(), H: stdHeight, Color: cols[2]},
			{Label: "ELIGIBILITY", Y: PhaseAssessed.Y(), H: stdHeight, Color: cols[3]},
			{Label: "INCLUDED", Y: PhaseTotalIncluded.Y(), H: stdHeight, Color: cols[4]},
		}
	}

	return p
}

// straight returns a vertical directed connector between two facing box
// edges in the same column.
func straight(x, fromY, toY float64) Connector {
	return Connector{FromX: x, FromY: fromY, ToX: x, ToY: toY}
}

// sideElbow routes a main-flow box to its side-exclusion box: a horizontal
// segment from the main box's right edge out to the midpoint of the gap,
// then a directed diagonal into the side box's left edge.
func sideElbow(mainRight, sideLeft, mainY, sideY float64) Connector {
	midX := (mainRight + sideLeft) / 2
	return Connector{
		Elbow:   true,
		ElbowX1: mainRight, ElbowX2: midX, ElbowY: mainY,
		FromX: midX, FromY: mainY, ToX: sideLeft, ToY: sideY,
	}
}

// mergeElbow routes a stream's included box into the Total box: a
// horizontal run from the stream's column out to the Total box edge, then a
// diagonal into the top center. The Total box is the single source of truth
// for the merge column's x.
func mergeElbow(streamX, totalEdgeX float64) Connector {
	y := PhaseIncluded.Y() - stdHeight/2
	return Connector{
		Elbow:   true,
		ElbowX1: streamX, ElbowX2: totalEdgeX, ElbowY: y,
		FromX: totalEdgeX, FromY: y,
		ToX: totalX, ToY: PhaseTotalIncluded.Y() + stdHeight/2,
	}
}

func routeConnectors(c diagramContent, hDBIdent, hScreened float64) []Connector {
	var conns []Connector

	yID := PhaseIdentification.Y()
	ySC := PhaseScreened.Y()
	ySOU := PhaseSought.Y()
	yASS := PhaseAssessed.Y()
	yINC := PhaseIncluded.Y()
	yTOT := PhaseTotalIncluded.Y()
	yAN := PhaseAnalysis.Y()

	// Previous Studies: identification straight down to its included box.
	if c.prevPresent {
		conns = append(conns, straight(prevX, yID-stdHeight/2, yINC+stdHeight/2))
	}

	// Database pipeline.
	conns = append(conns,
		straight(dbX, yID-hDBIdent/2, ySC+hScreened/2),
		straight(dbX, ySC-hScreened/2, ySOU+stdHeight/2),
		straight(dbX, ySOU-stdHeight/2, yASS+stdHeight/2),
		straight(dbX, yASS-stdHeight/2, yINC+stdHeight/2),
	)

	// Other Methods skips screening entirely.
	conns = append(conns,
		straight(otherX, yID-stdHeight/2, ySOU+stdHeight/2),
		straight(otherX, ySOU-stdHeight/2, yASS+stdHeight/2),
		straight(otherX, yASS-stdHeight/2, yINC+stdHeight/2),
	)

	// Convergence into the Total box: elbows from the outer streams, a
	// straight drop from the center stream.
	if c.prevPresent {
		conns = append(conns, mergeElbow(prevX, totalX-totalW/2))
	}
	conns = append(conns,
		straight(dbX, yINC-stdHeight/2, yTOT+stdHeight/2),
		mergeElbow(otherX, totalX+totalW/2),
	)

	// Fan out to the analysis branches.
	conns = append(conns,
		Connector{FromX: totalX, FromY: yTOT - stdHeight/2, ToX: analysis1X, ToY: yAN + stdHeight/2},
		Connector{FromX: totalX, FromY: yTOT - stdHeight/2, ToX: analysis2X, ToY: yAN + stdHeight/2},
	)

	// Side-exclusion branches, each leaving the main flow at the midpoint
	// between the two phases it separates.
	dbRight := dbX + dbW/2
	dbSideLeft := dbSideX - dbSideW/2
	otherRight := otherX + otherW/2
	otherSideLeft := otherSideX - otherSideW/2

	if c.preRemovalPresent {
		conns = append(conns, sideElbow(dbRight, dbSideLeft, (yID+ySC)/2, PhasePreScreeningRemoval.Y()))
	}
	if c.screenedExcPresent {
		conns = append(conns, sideElbow(dbRight, dbSideLeft, (ySC+ySOU)/2, PhaseScreenedExclusion.Y()))
	}
	if c.dbNotRetrievedPresent {
		conns = append(conns, sideElbow(dbRight, dbSideLeft, (ySOU+yASS)/2, PhaseNotRetrieved.Y()))
	}
	if c.dbEligExcPresent {
		conns = append(conns, sideElbow(dbRight, dbSideLeft, (yASS+yINC)/2, PhaseEligibilityExclusion.Y()))
	}
	if c.otherNotRetrievedPresent {
		conns = append(conns, sideElbow(otherRight, otherSideLeft, (ySOU+yASS)/2, PhaseNotRetrieved.Y()))
	}
	if c.otherEligExcPresent {
		conns = append(conns, sideElbow(otherRight, otherSideLeft, (yASS+yINC)/2, PhaseEligibilityExclusion.Y()))
	}

	return conns
}
