// gallery.go
package main

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
)

// sampleFields fills every field of the sample diagram rendered once per
// style. It exercises the multi-line identification and exclusion boxes so
// previews show the adaptive sizing.
var sampleFields = Fields{
	"total_identified": "1250",
	"db1_name":         "PubMed", "db1_count": "520",
	"db2_name": "Scopus", "db2_count": "380",
	"db3_name": "Web of Science", "db3_count": "250",
	"db4_name": "IEEE Xplore", "db4_count": "100",
	"screened":       "980",
	"sc_included":    "620",
	"sc_excluded":    "310",
	"conflict_total": "50",
	"conflict_inc":   "30",
	"conflict_exc":   "20",
	"duplicates":     "270",
	"exc_screened":   "330",
	"retrieval":      "650",
	"not_retrieved":  "45",
	"eligibility":    "605",
	"exc_fulltext":   "280",
	"exc_reason1":    "Wrong population", "exc_reason1_n": "95",
	"exc_reason2": "Wrong outcome", "exc_reason2_n": "75",
	"exc_reason3": "No full text", "exc_reason3_n": "60",
	"exc_reason4": "Duplicate data", "exc_reason4_n": "30",
	"exc_reason5": "Wrong study design", "exc_reason5_n": "20",
	"included":                "325",
	"prev_included":           "12",
	"other_identified":        "85",
	"other_sought":            "70",
	"other_not_retrieved":     "8",
	"other_assessed":          "62",
	"other_exc_reasons_total": "14",
	"other_exc_reason1":       "Not peer reviewed", "other_exc_reason1_n": "9",
	"other_exc_reason2": "Wrong setting", "other_exc_reason2_n": "5",
	"other_included":  "48",
	"total_included":  "385",
	"analysis_1_text": "Qualitative synthesis", "analysis_1_n": "385",
	"analysis_2_text": "Meta-analysis", "analysis_2_n": "212",
}

const overviewName = "ALL_STYLES_OVERVIEW.png"

var fileSafeName = strings.NewReplacer(" ", "_", "&", "and")

// GenerateGallery renders the sample mapping once per registered style into
// numbered per-style folders under dir, then composes all previews onto one
// overview sheet. Returns the paths of the per-style images, in style
// order.
func GenerateGallery(dir string) ([]string, error) {
	var paths []string
	var thumbsSrc []image.Image

	for idx, key := range StyleKeys() {
		st := ResolveStyle(key)

		folder := filepath.Join(dir, fmt.Sprintf("%02d_%s", idx+1, key))
		if err := os.MkdirAll(folder, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create style folder: %w", err)
		}

		img, err := Render(sampleFields, key)
		if err != nil {
			return nil, fmt.Errorf("failed to render style %q: %w", key, err)
		}

		path := filepath.Join(folder, fmt.Sprintf("PRISMA_%s.png", fileSafeName.Replace(st.Name)))
		out, err := os.Create(path)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", path, err)
		}
		if err := Encode(out, img, "png"); err != nil {
			out.Close()
			os.Remove(path)
			return nil, err
		}
		if err := out.Close(); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", path, err)
		}

		paths = append(paths, path)
		thumbsSrc = append(thumbsSrc, img)
	}

	if err := writeOverview(filepath.Join(dir, overviewName), thumbsSrc); err != nil {
		return nil, err
	}
	return paths, nil
}

// Overview sheet geometry.
const (
	overviewCols  = 4
	overviewThumb = 640
	overviewPad   = 40
	overviewLabel = 50
	overviewTitle = 90
)

// writeOverview downsamples every style preview onto one contact sheet.
func writeOverview(path string, previews []image.Image) error {
	rows := (len(previews) + overviewCols - 1) / overviewCols
	width := overviewPad + overviewCols*(overviewThumb+overviewPad)
	height := overviewTitle + overviewPad + rows*(overviewThumb+overviewLabel+overviewPad)

	dc := gg.NewContext(width, height)
	dc.SetHexColor("#ffffff")
	dc.Clear()

	fnt, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return fmt.Errorf("rendering backend unavailable: %w", err)
	}
	titleFace := truetype.NewFace(fnt, &truetype.Options{Size: 30, DPI: fontDPI, Hinting: font.HintingFull})
	labelFace := truetype.NewFace(fnt, &truetype.Options{Size: 13, DPI: fontDPI, Hinting: font.HintingFull})

	dc.SetFontFace(titleFace)
	dc.SetHexColor("#1a3a5c")
	dc.DrawStringAnchored("PRISMA 2020 — All Diagram Styles", float64(width)/2, overviewTitle/2, 0.5, 0.5)

	keys := StyleKeys()
	for i, src := range previews {
		col := i % overviewCols
		row := i / overviewCols
		x := overviewPad + col*(overviewThumb+overviewPad)
		y := overviewTitle + overviewPad + row*(overviewThumb+overviewLabel+overviewPad)

		thumb := image.NewRGBA(image.Rect(0, 0, overviewThumb, overviewThumb))
		draw.CatmullRom.Scale(thumb, thumb.Bounds(), src, src.Bounds(), draw.Over, nil)
		dc.DrawImage(thumb, x, y)

		st := ResolveStyle(keys[i])
		dc.SetFontFace(labelFace)
		dc.SetHexColor("#1a3a5c")
		dc.DrawStringAnchored(
			fmt.Sprintf("%d. %s", i+1, st.Name),
			float64(x)+overviewThumb/2, float64(y+overviewThumb)+overviewLabel/2, 0.5, 0.5)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create overview: %w", err)
	}
	if err := Encode(out, dc.Image(), "png"); err != nil {
		out.Close()
		os.Remove(path)
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to write overview: %w", err)
	}
	return nil
}
