// styles.go
package main

// Stream identity accents, shared by every profile.
const (
	accentPrevious = "#6c5ce7" // violet, Previous Studies
	accentOther    = "#e07b54" // burnt orange, Other Methods
	accentIncluded = "#00a878" // teal green, Included and Total boxes
	accentSide     = "#d63031" // red, exclusion side boxes
)

// DefaultStyleKey is used whenever a caller omits the style or asks for an
// unknown key.
const DefaultStyleKey = "classic"

// defaultBandColor fills in for profiles that request phase bands without
// naming colors.
const defaultBandColor = "#1a3a5c"

// styleCatalog is the fixed, insertion-ordered theme registry. It is
// package-level read-only state: initialized here once and safe for
// concurrent reads from parallel render calls.
var styleCatalog = []StyleProfile{
	{
		Key: "classic", Name: "Classic Blue",
		Background: "#ffffff", Rounded: true,
		BoxLineWidth: 1.3, ArrowLineWidth: 1.3,
		BoxFill: "#f0f7ff", BoxEdge: "#2c3e50",
		IncludedFill: "#d0eaff", IncludedEdge: "#1a6fa0", IncludedLineWidth: 2.0,
		SideFill: "#ffffff", SideEdge: "#2c3e50",
		TextColor: "#222222", TitleColor: "#1a3a5c", ArrowColor: "#2c3e50",
	},
	{
		Key: "academic", Name: "Academic Square",
		Background: "#ffffff", Rounded: false,
		BoxLineWidth: 2.0, ArrowLineWidth: 1.6,
		BoxFill: "#ffffff", BoxEdge: "#111111",
		IncludedFill: "#f5f5ff", IncludedEdge: "#111111", IncludedLineWidth: 2.5,
		SideFill: "#fffde7", SideEdge: "#888800",
		TextColor: "#111111", TitleColor: "#111111", ArrowColor: "#111111",
		PhaseBands:  true,
		PhaseColors: []string{"#1565c0", "#2e7d32", "#e65100", "#6a1b9a", "#00695c"},
	},
	{
		Key: "colorful", Name: "Colorful Phases",
		Background: "#f8faff", Rounded: true,
		BoxLineWidth: 1.8, ArrowLineWidth: 1.5,
		BoxFill: "#e3f2fd", BoxEdge: "#1565c0",
		IncludedFill: "#e8f5e9", IncludedEdge: "#2e7d32", IncludedLineWidth: 2.5,
		SideFill: "#fff3e0", SideEdge: "#e65100",
		TextColor: "#1a1a2e", TitleColor: "#1a237e", ArrowColor: "#455a64",
		PhaseBoxColors: []BoxColors{
			{Fill: "#e3f2fd", Edge: "#1565c0"},
			{Fill: "#fff9c4", Edge: "#f57f17"},
			{Fill: "#ffe0b2", Edge: "#e65100"},
			{Fill: "#f3e5f5", Edge: "#7b1fa2"},
		},
	},
	{
		Key: "minimal", Name: "Minimal Outline",
		Background: "#ffffff", Rounded: false,
		BoxLineWidth: 0.75, ArrowLineWidth: 0.9,
		BoxFill: "#ffffff", BoxEdge: "#888888",
		IncludedFill: "#f5f5f5", IncludedEdge: "#333333", IncludedLineWidth: 1.3,
		SideFill: "#ffffff", SideEdge: "#bbbbbb",
		TextColor: "#333333", TitleColor: "#333333", ArrowColor: "#666666",
	},
	{
		Key: "bold_navy", Name: "Bold Navy",
		Background: "#e8eeff", Rounded: true,
		BoxLineWidth: 0.5, ArrowLineWidth: 1.8,
		BoxFill: "#1a3a6a", BoxEdge: "#0a2040",
		IncludedFill: "#0a5f8a", IncludedEdge: "#04315a", IncludedLineWidth: 2.0,
		SideFill: "#2e4a80", SideEdge: "#0a2040",
		TextColor: "#ffffff", TitleColor: "#0a2040", ArrowColor: "#1a3a6a",
	},
	{
		Key: "shadowed", Name: "Shadowed Cards",
		Background: "#eef0f4", Rounded: true,
		BoxLineWidth: 1.0, ArrowLineWidth: 1.3,
		BoxFill: "#ffffff", BoxEdge: "#b0bcd0",
		IncludedFill: "#e8f4fd", IncludedEdge: "#1a6fa0", IncludedLineWidth: 2.0,
		SideFill: "#ffffff", SideEdge: "#c0c8d4",
		TextColor: "#1a2a40", TitleColor: "#1a2a40", ArrowColor: "#4a5a70",
		Shadow: true,
	},
	{
		Key: "green", Name: "Forest Green",
		Background: "#f0fff5", Rounded: true,
		BoxLineWidth: 1.5, ArrowLineWidth: 1.3,
		BoxFill: "#e8f8ee", BoxEdge: "#1a6a38",
		IncludedFill: "#c3f0d0", IncludedEdge: "#0d5228", IncludedLineWidth: 2.0,
		SideFill: "#f0ffe8", SideEdge: "#3a8a50",
		TextColor: "#0a2010", TitleColor: "#1a4a28", ArrowColor: "#1a6a38",
	},
	{
		Key: "warm", Name: "Warm Amber",
		Background: "#fffef0", Rounded: true,
		BoxLineWidth: 1.5, ArrowLineWidth: 1.3,
		BoxFill: "#fff8e8", BoxEdge: "#c05800",
		IncludedFill: "#ffe5b8", IncludedEdge: "#a84000", IncludedLineWidth: 2.0,
		SideFill: "#fff3d8", SideEdge: "#d07000",
		TextColor: "#3a1800", TitleColor: "#6a2800", ArrowColor: "#c05800",
	},
	{
		Key: "corporate", Name: "Corporate",
		Background: "#f7f8fb", Rounded: false,
		BoxLineWidth: 1.5, ArrowLineWidth: 1.5,
		BoxFill: "#eef0f8", BoxEdge: "#2a3460",
		IncludedFill: "#dce4f5", IncludedEdge: "#1a2450", IncludedLineWidth: 2.5,
		SideFill: "#e8eafa", SideEdge: "#505a80",
		TextColor: "#1a2040", TitleColor: "#1a2040", ArrowColor: "#2a3460",
		Shadow: true, PhaseBands: true,
		PhaseColors: []string{"#2a3460", "#1a5a8a", "#1a6a50", "#5a2a7a", "#1a6a38"},
	},
	{
		Key: "purple", Name: "Royal Purple",
		Background: "#faf0ff", Rounded: true,
		BoxLineWidth: 1.5, ArrowLineWidth: 1.3,
		BoxFill: "#f5e8ff", BoxEdge: "#6a1a9a",
		IncludedFill: "#e0c8ff", IncludedEdge: "#4a0a7a", IncludedLineWidth: 2.0,
		SideFill: "#f8f0ff", SideEdge: "#8a3ac0",
		TextColor: "#2a0a40", TitleColor: "#3a0a60", ArrowColor: "#6a1a9a",
	},
	{
		Key: "teal", Name: "Ocean Teal",
		Background: "#f0fbfb", Rounded: true,
		BoxLineWidth: 1.5, ArrowLineWidth: 1.3,
		BoxFill: "#e0f5f5", BoxEdge: "#1a7a7a",
		IncludedFill: "#c0eeee", IncludedEdge: "#0a6060", IncludedLineWidth: 2.0,
		SideFill: "#eaf8f8", SideEdge: "#2a9090",
		TextColor: "#0a2828", TitleColor: "#0a4848", ArrowColor: "#1a7a7a",
	},
	{
		Key: "orange_flow", Name: "Orange Flow",
		Background: "#ffffff", Rounded: false,
		BoxLineWidth: 1.2, ArrowLineWidth: 1.0,
		BoxFill: "#ffffff", BoxEdge: "#333333",
		IncludedFill: "#fff8f0", IncludedEdge: "#e8960c", IncludedLineWidth: 2.0,
		SideFill: "#ffffff", SideEdge: "#333333",
		TextColor: "#111111", TitleColor: "#e8960c", ArrowColor: "#333333",
		PhaseBands:  true,
		PhaseColors: []string{"#2196f3", "#2196f3", "#2196f3", "#2196f3", "#e8960c"},
		FontScale:   1.0,
	},
}

// ResolveStyle maps a style key to its profile, falling back to the default
// profile for unknown or empty keys.
func ResolveStyle(key string) StyleProfile {
	for _, st := range styleCatalog {
		if st.Key == key {
			return st
		}
	}
	return mustStyle(DefaultStyleKey)
}

func mustStyle(key string) StyleProfile {
	for _, st := range styleCatalog {
		if st.Key == key {
			return st
		}
	}
	panic("style registry: missing builtin profile " + key)
}

// StyleKeys returns every registered key in catalog order, for
// deterministic iteration (sample generation, previews).
func StyleKeys() []string {
	keys := make([]string, len(styleCatalog))
	for i, st := range styleCatalog {
		keys[i] = st.Key
	}
	return keys
}

// bandColors returns the five phase-band colors for a profile, padding with
// the default band color when the profile names none.
func (s StyleProfile) bandColors() []string {
	cols := make([]string, 5)
	for i := range cols {
		if i < len(s.PhaseColors) {
			cols[i] = s.PhaseColors[i]
		} else {
			cols[i] = defaultBandColor
		}
	}
	return cols
}
