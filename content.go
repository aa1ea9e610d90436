// content.go
package main

import "fmt"

// uniformFontSize is the single point size shared by every text line in a
// diagram (multiplied by the profile's font scale). One size for everything
// keeps any box from visually dominating another.
const uniformFontSize = 14.0

// Slot caps for indexed name/count field pairs.
const (
	maxSourceSlots       = 6 // db1..db6 per-database counts
	maxPrimaryExcSlots   = 6 // db_exc_reason1..6 and sc_exc_code1..6
	maxSecondaryExcSlots = 4 // other_exc_reason1..4
)

// diagramContent holds the formatted line set for every box the diagram
// may draw, plus presence flags for the boxes that only appear when their
// triggering field is set. Built fresh per render call.
type diagramContent struct {
	// Previous Studies stream (present only when prev_included is set).
	prevPresent  bool
	prevIdent    []Line
	prevIncluded []Line

	// Databases / Registers stream (always present).
	dbIdent    []Line
	screened   []Line
	sought     []Line
	assessed   []Line
	dbIncluded []Line

	// Other Methods stream (always present; skips the screening phase).
	otherIdent    []Line
	otherSought   []Line
	otherAssessed []Line
	otherIncluded []Line

	// Merge column.
	total     []Line
	analysis1 []Line
	analysis2 []Line

	// Side-exclusion boxes, each with its trigger flag.
	preRemoval               []Line
	preRemovalPresent        bool
	screenedExc              []Line
	screenedExcPresent       bool
	dbNotRetrieved           []Line
	dbNotRetrievedPresent    bool
	dbEligExc                []Line
	dbEligExcPresent         bool
	otherNotRetrieved        []Line
	otherNotRetrievedPresent bool
	otherEligExc             []Line
	otherEligExcPresent      bool
}

func plain(size float64, format string, args ...interface{}) Line {
	return Line{Text: fmt.Sprintf(format, args...), Size: size}
}

func bold(size float64, format string, args ...interface{}) Line {
	return Line{Text: fmt.Sprintf(format, args...), Bold: true, Size: size}
}

// slotLines expands indexed name/count field pairs into bulleted lines.
// A slot contributes a line only when both its name and its count survive
// trimming; partial slots are skipped without disturbing slot order.
func slotLines(f Fields, size float64, max int, format string, nameKeys, countKeys func(i int) []string) []Line {
	var lines []Line
	for i := 1; i <= max; i++ {
		name := f.text(nameKeys(i)...)
		count := f.text(countKeys(i)...)
		if name != "" && count != "" {
			lines = append(lines, plain(size, format, name, count))
		}
	}
	return lines
}

func keys(ks ...string) func(i int) []string {
	return func(i int) []string {
		out := make([]string, len(ks))
		for j, k := range ks {
			out[j] = fmt.Sprintf(k, i)
		}
		return out
	}
}

// buildContent turns the raw field mapping into the per-box line sets for
// one diagram, applying the formatting rules uniformly: headers bold,
// details plain, missing counts rendered as 0, blank slots skipped, and
// optional sub-boxes omitted entirely rather than left as bare headers.
func buildContent(f Fields, st StyleProfile) diagramContent {
	ufs := uniformFontSize * st.fontScale()
	var c diagramContent

	// Previous Studies.
	prevN := f.text("prev_included")
	c.prevPresent = prevN != ""
	if !c.prevPresent {
		prevN = "0"
	}
	c.prevIdent = []Line{
		plain(ufs, "Studies from previous version"),
		plain(ufs, "of review (n = %s)", prevN),
	}
	c.prevIncluded = []Line{
		plain(ufs, "Previous studies included"),
		plain(ufs, "(n = %s)", prevN),
	}

	// Identification row.
	c.dbIdent = append(
		[]Line{bold(ufs, "Records identified from databases (n = %s):", f.count("db_identified", "total_identified"))},
		slotLines(f, ufs, maxSourceSlots, "  • %s: %s",
			keys("db%d_name"), keys("db%d_count"))...)
	c.otherIdent = []Line{
		plain(ufs, "Records from other methods"),
		plain(ufs, "(n = %s)", f.count("other_identified", "other_id_total")),
	}

	// Pre-screening removal (DB side).
	dbAuto := f.text("db_automation_exc", "auto_excluded")
	dbOther := f.text("db_other_exc", "other_removed")
	c.preRemovalPresent = f.text("db_duplicates", "duplicates") != "" || dbAuto != "" || dbOther != ""
	c.preRemoval = []Line{
		bold(ufs, "Records removed before screening:"),
		plain(ufs, "  • Duplicates (n = %s)", f.count("db_duplicates", "duplicates")),
	}
	if dbAuto != "" {
		c.preRemoval = append(c.preRemoval, plain(ufs, "  • Automation tools (n = %s)", dbAuto))
	}
	if dbOther != "" {
		c.preRemoval = append(c.preRemoval, plain(ufs, "  • Other reasons (n = %s)", dbOther))
	}

	// Screened (DB only), with the optional agreement/conflict breakdown.
	c.screened = []Line{bold(ufs, "Records screened (n = %s)", f.count("db_screened", "screened"))}
	if v := f.text("sc_included"); v != "" {
		c.screened = append(c.screened, plain(ufs, "  • Agreed — Included: %s", v))
	}
	if v := f.text("sc_excluded"); v != "" {
		c.screened = append(c.screened, plain(ufs, "  • Agreed — Excluded: %s", v))
	}
	if conflicts := f.text("conflict_total"); conflicts != "" && conflicts != "0" {
		c.screened = append(c.screened,
			plain(ufs, "  • Conflicts (n = %s):", conflicts),
			plain(ufs, "       ◦ Included after discussion: %s", f.count("conflict_inc")),
			plain(ufs, "       ◦ Excluded after discussion: %s", f.count("conflict_exc")),
		)
	}

	// Screening exclusions (DB side), coded EX1..EX6. The code number is
	// the slot index, so skipped slots keep later codes stable.
	var scExcCodes []Line
	for i := 1; i <= maxPrimaryExcSlots; i++ {
		reason := f.text(fmt.Sprintf("sc_exc_code%d", i))
		n := f.text(fmt.Sprintf("sc_exc_code%d_n", i))
		if reason != "" && n != "" {
			scExcCodes = append(scExcCodes, plain(ufs, "  EX%d: %s (n = %s)", i, reason, n))
		}
	}
	c.screenedExcPresent = f.text("db_exc_screened", "exc_screened") != "" || len(scExcCodes) > 0
	c.screenedExc = append(
		[]Line{bold(ufs, "Records excluded at screening (n = %s)", f.count("db_exc_screened", "exc_screened"))},
		scExcCodes...)

	// Sought for retrieval (DB + Other) and the not-retrieved side boxes.
	c.sought = []Line{bold(ufs, "Reports sought for retrieval (n = %s)", f.count("db_sought", "retrieval"))}
	c.otherSought = []Line{bold(ufs, "Reports sought (n = %s)", f.count("other_sought"))}

	c.dbNotRetrievedPresent = f.text("db_not_retrieved", "not_retrieved") != ""
	c.dbNotRetrieved = []Line{plain(ufs, "Reports not retrieved (n = %s)", f.count("db_not_retrieved", "not_retrieved"))}
	otherNR := f.text("other_not_retrieved")
	c.otherNotRetrievedPresent = otherNR != ""
	c.otherNotRetrieved = []Line{plain(ufs, "Not retrieved (n = %s)", otherNR)}

	// Assessed for eligibility (DB + Other) and the exclusion side boxes.
	c.assessed = []Line{bold(ufs, "Reports assessed for eligibility (n = %s)", f.count("db_assessed", "eligibility"))}
	c.otherAssessed = []Line{bold(ufs, "Assessed (n = %s)", f.count("other_assessed"))}

	dbReasons := slotLines(f, ufs, maxPrimaryExcSlots, "  • %s: %s",
		keys("db_exc_reason%d", "exc_reason%d"), keys("db_exc_reason%d_n", "exc_reason%d_n"))
	c.dbEligExcPresent = f.text("db_exc_reasons_total", "exc_fulltext") != "" || len(dbReasons) > 0
	c.dbEligExc = append(
		[]Line{bold(ufs, "Reports excluded (n = %s)", f.count("db_exc_reasons_total", "exc_fulltext"))},
		dbReasons...)

	otherExcTotal := f.text("other_exc_reasons_total")
	otherReasons := slotLines(f, ufs, maxSecondaryExcSlots, "  • %s: %s",
		keys("other_exc_reason%d"), keys("other_exc_reason%d_n"))
	c.otherEligExcPresent = otherExcTotal != "" || f.text("other_exc_reason1") != ""
	if otherExcTotal == "" {
		otherExcTotal = "?"
	}
	c.otherEligExc = append(
		[]Line{bold(ufs, "Reports excluded (n = %s)", otherExcTotal)},
		otherReasons...)

	// Included per stream, convergence, analysis branches.
	c.dbIncluded = []Line{bold(ufs, "Studies included from databases (n = %s)", f.count("db_included", "included"))}
	c.otherIncluded = []Line{bold(ufs, "Studies from other methods (n = %s)", f.count("other_included"))}
	c.total = []Line{bold(ufs, "Total studies included in review (n = %s)", f.count("total_included"))}

	c.analysis1 = analysisLines(f, ufs, 1)
	c.analysis2 = analysisLines(f, ufs, 2)

	return c
}

// analysisLines formats one analysis-branch box: free label text (or a
// generic placeholder) with the count on its own line only when given.
func analysisLines(f Fields, size float64, branch int) []Line {
	label := f.text(fmt.Sprintf("analysis_%d_text", branch))
	if label == "" {
		label = fmt.Sprintf("Analysis Branch %d", branch)
	}
	lines := []Line{plain(size, "%s", label)}
	if n := f.text(fmt.Sprintf("analysis_%d_n", branch)); n != "" {
		lines = append(lines, plain(size, "(n = %s)", n))
	}
	return lines
}
