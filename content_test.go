// content_test.go
package main

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classicContent(f Fields) diagramContent {
	return buildContent(f, ResolveStyle(DefaultStyleKey))
}

func lineTexts(lines []Line) []string {
	out := make([]string, len(lines))
	for i, ln := range lines {
		out[i] = ln.Text
	}
	return out
}

func TestMissingCountsRenderAsZero(t *testing.T) {
	c := classicContent(Fields{})

	assert.Equal(t, "Records identified from databases (n = 0):", c.dbIdent[0].Text)
	assert.Equal(t, "Records screened (n = 0)", c.screened[0].Text)
	assert.Equal(t, "Reports sought for retrieval (n = 0)", c.sought[0].Text)
	assert.Equal(t, "Reports assessed for eligibility (n = 0)", c.assessed[0].Text)
	assert.Equal(t, "Studies included from databases (n = 0)", c.dbIncluded[0].Text)
	assert.Equal(t, "Total studies included in review (n = 0)", c.total[0].Text)
}

func TestHeaderLinesAreBoldDetailsPlain(t *testing.T) {
	c := classicContent(Fields{"db1_name": "PubMed", "db1_count": "520"})

	require.Len(t, c.dbIdent, 2)
	assert.True(t, c.dbIdent[0].Bold)
	assert.False(t, c.dbIdent[1].Bold)
	// Uniform font size: one size across header and detail.
	assert.Equal(t, c.dbIdent[0].Size, c.dbIdent[1].Size)
	assert.Equal(t, uniformFontSize, c.dbIdent[0].Size)
}

func TestSourceSlotSkipping(t *testing.T) {
	c := classicContent(Fields{
		"db1_name": "PubMed", "db1_count": "520",
		"db2_name": "Scopus", "db2_count": "   ", // blank count: skipped
		"db3_name": "  ", "db3_count": "99", // blank name: skipped
		"db5_name": "arXiv", "db5_count": "7", // later slot still honored
	})

	assert.Equal(t, []string{
		"Records identified from databases (n = 0):",
		"  • PubMed: 520",
		"  • arXiv: 7",
	}, lineTexts(c.dbIdent))
}

func TestSourceSlotCap(t *testing.T) {
	f := Fields{}
	for i := 1; i <= 9; i++ {
		f[keyf("db%d_name", i)] = keyf("Source %d", i)
		f[keyf("db%d_count", i)] = "10"
	}
	c := classicContent(f)
	// Header plus at most six source slots.
	assert.Len(t, c.dbIdent, 1+maxSourceSlots)
}

func TestExclusionReasonSlotsAndLegacyAliases(t *testing.T) {
	c := classicContent(Fields{
		"exc_fulltext": "280",
		"exc_reason1":  "Wrong population", "exc_reason1_n": "95",
		"db_exc_reason2": "Wrong outcome", "db_exc_reason2_n": "75",
	})

	require.True(t, c.dbEligExcPresent)
	assert.Equal(t, []string{
		"Reports excluded (n = 280)",
		"  • Wrong population: 95",
		"  • Wrong outcome: 75",
	}, lineTexts(c.dbEligExc))
}

func TestScreeningExclusionCodesKeepSlotNumbers(t *testing.T) {
	c := classicContent(Fields{
		"db_exc_screened": "330",
		"sc_exc_code1":    "Off topic", "sc_exc_code1_n": "200",
		"sc_exc_code3": "No full text", "sc_exc_code3_n": "130",
	})

	assert.Equal(t, []string{
		"Records excluded at screening (n = 330)",
		"  EX1: Off topic (n = 200)",
		"  EX3: No full text (n = 130)",
	}, lineTexts(c.screenedExc))
}

func TestSecondaryExclusionSlotCap(t *testing.T) {
	f := Fields{"other_exc_reasons_total": "50"}
	for i := 1; i <= 6; i++ {
		f[keyf("other_exc_reason%d", i)] = "Reason"
		f[keyf("other_exc_reason%d_n", i)] = "5"
	}
	c := classicContent(f)
	assert.Len(t, c.otherEligExc, 1+maxSecondaryExcSlots)
}

func TestConflictBreakdownRequiresNonZeroTotal(t *testing.T) {
	for _, total := range []string{"", "0"} {
		c := classicContent(Fields{"screened": "980", "conflict_total": total})
		assert.Equal(t, []string{"Records screened (n = 980)"}, lineTexts(c.screened),
			"conflict_total=%q must not add breakdown lines", total)
	}

	c := classicContent(Fields{
		"screened":       "980",
		"sc_included":    "620",
		"conflict_total": "50",
		"conflict_inc":   "30",
	})
	assert.Equal(t, []string{
		"Records screened (n = 980)",
		"  • Agreed — Included: 620",
		"  • Conflicts (n = 50):",
		"       ◦ Included after discussion: 30",
		"       ◦ Excluded after discussion: 0",
	}, lineTexts(c.screened))
}

func TestSideBoxTriggers(t *testing.T) {
	empty := classicContent(Fields{})
	assert.False(t, empty.preRemovalPresent)
	assert.False(t, empty.screenedExcPresent)
	assert.False(t, empty.dbNotRetrievedPresent)
	assert.False(t, empty.dbEligExcPresent)
	assert.False(t, empty.otherNotRetrievedPresent)
	assert.False(t, empty.otherEligExcPresent)

	c := classicContent(Fields{"duplicates": "270"})
	assert.True(t, c.preRemovalPresent)
	assert.Equal(t, "  • Duplicates (n = 270)", c.preRemoval[1].Text)

	// A reason slot alone also triggers its box; the unknown total shows
	// as a question mark rather than a fabricated zero.
	c = classicContent(Fields{"other_exc_reason1": "Wrong setting", "other_exc_reason1_n": "5"})
	require.True(t, c.otherEligExcPresent)
	assert.Equal(t, "Reports excluded (n = ?)", c.otherEligExc[0].Text)
}

func TestPreviousStreamPresence(t *testing.T) {
	assert.False(t, classicContent(Fields{}).prevPresent)

	c := classicContent(Fields{"prev_included": "12"})
	require.True(t, c.prevPresent)
	assert.Equal(t, "of review (n = 12)", c.prevIdent[1].Text)
	assert.Equal(t, "(n = 12)", c.prevIncluded[1].Text)
}

func TestAnalysisBranchPlaceholders(t *testing.T) {
	c := classicContent(Fields{})
	assert.Equal(t, []string{"Analysis Branch 1"}, lineTexts(c.analysis1))
	assert.Equal(t, []string{"Analysis Branch 2"}, lineTexts(c.analysis2))

	c = classicContent(Fields{"analysis_1_text": "Meta-analysis", "analysis_1_n": "212"})
	assert.Equal(t, []string{"Meta-analysis", "(n = 212)"}, lineTexts(c.analysis1))
}

func TestFontScaleAppliesToEveryLine(t *testing.T) {
	c := buildContent(sampleFields, StyleProfile{FontScale: 1.5})
	for _, lines := range [][]Line{c.dbIdent, c.screened, c.total, c.analysis1} {
		for _, ln := range lines {
			assert.Equal(t, uniformFontSize*1.5, ln.Size)
		}
	}
}

func keyf(format string, i int) string {
	return fmt.Sprintf(format, i)
}
