// main_test.go
package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFields(t *testing.T) {
	t.Run("empty path yields empty mapping", func(t *testing.T) {
		f, err := loadFields("")
		require.NoError(t, err)
		assert.Empty(t, f)
	})

	t.Run("sample file", func(t *testing.T) {
		f, err := loadFields(filepath.Join("testdata", "sample_fields.json"))
		require.NoError(t, err)
		assert.Equal(t, "classic", f["style"])
		assert.Equal(t, "640", f["db1_count"])
		assert.Equal(t, "94", f.count("total_included"))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loadFields(filepath.Join("testdata", "no_such_file.json"))
		assert.Error(t, err)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
		_, err := loadFields(path)
		assert.Error(t, err)
	})
}

func TestRenderCommandWritesImageFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "diagram.png")

	rootCmd.SetArgs([]string{
		"render", filepath.Join("testdata", "sample_fields.json"),
		"-o", out, "-f", "png",
	})
	require.NoError(t, rootCmd.Execute())

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, imageSize, img.Bounds().Dx())
}

func TestRenderCommandRejectsUnknownFormat(t *testing.T) {
	out := filepath.Join(t.TempDir(), "diagram.bmp")

	rootCmd.SetArgs([]string{
		"render", filepath.Join("testdata", "sample_fields.json"),
		"-o", out, "-f", "bmp",
	})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bmp")

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "no output file should be written on a format error")
}
