// styles_test.go
package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveStyleFallback(t *testing.T) {
	def := ResolveStyle(DefaultStyleKey)

	assert.Equal(t, def, ResolveStyle("no-such-style"))
	assert.Equal(t, def, ResolveStyle(""))
	assert.Equal(t, "classic", def.Key)
}

func TestStyleKeysOrderIsStable(t *testing.T) {
	keys := StyleKeys()
	require.Equal(t, keys, StyleKeys())
	require.Len(t, keys, len(styleCatalog))

	seen := map[string]bool{}
	for _, k := range keys {
		require.False(t, seen[k], "duplicate style key %q", k)
		seen[k] = true
	}
	assert.Equal(t, "classic", keys[0])
}

func TestStyleCatalogProfilesComplete(t *testing.T) {
	for _, st := range styleCatalog {
		t.Run(st.Key, func(t *testing.T) {
			assert.NotEmpty(t, st.Name)
			assert.NotEmpty(t, st.Background)
			assert.NotEmpty(t, st.BoxFill)
			assert.NotEmpty(t, st.BoxEdge)
			assert.NotEmpty(t, st.SideFill)
			assert.NotEmpty(t, st.SideEdge)
			assert.NotEmpty(t, st.TextColor)
			assert.Greater(t, st.BoxLineWidth, 0.0)
			assert.Greater(t, st.ArrowLineWidth, 0.0)
			assert.GreaterOrEqual(t, st.arrowWidth(), 2.0)

			if st.PhaseBands {
				assert.Len(t, st.PhaseColors, 5, "phase bands need one color per pipeline phase")
			}
			assert.Len(t, st.bandColors(), 5)
		})
	}
}

func TestPhaseBoxColorIndexing(t *testing.T) {
	st := ResolveStyle("colorful")
	require.Len(t, st.PhaseBoxColors, 4)

	assert.Equal(t, "#fff9c4", st.phaseFill(1))
	assert.Equal(t, "#f57f17", st.phaseEdge(1))
	// Out-of-range indexes fall back to the base box colors.
	assert.Equal(t, st.BoxFill, st.phaseFill(7))
	assert.Equal(t, st.BoxEdge, st.phaseEdge(-1))
}

func TestFontScaleDefaultsToOne(t *testing.T) {
	assert.Equal(t, 1.0, StyleProfile{}.fontScale())
	assert.Equal(t, 1.0, ResolveStyle("classic").fontScale())
}
