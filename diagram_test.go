// diagram_test.go
package main

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateIsByteStable(t *testing.T) {
	first, err := Generate(sampleFields, "classic", "png")
	require.NoError(t, err)
	second, err := Generate(sampleFields, "classic", "png")
	require.NoError(t, err)
	assert.True(t, bytes.Equal(first, second), "identical input must produce identical bytes")
}

func TestGenerateUnknownStyleFallsBackToDefault(t *testing.T) {
	fallback, err := Generate(sampleFields, "no-such-style", "png")
	require.NoError(t, err)
	def, err := Generate(sampleFields, DefaultStyleKey, "png")
	require.NoError(t, err)
	assert.True(t, bytes.Equal(fallback, def))
}

func TestStyleKeyFieldUsedWhenArgumentEmpty(t *testing.T) {
	f := Fields{"db_identified": "100", "style": "green"}

	viaField, err := Generate(f, "", "png")
	require.NoError(t, err)
	viaArg, err := Generate(f, "green", "png")
	require.NoError(t, err)
	assert.True(t, bytes.Equal(viaField, viaArg))

	// An explicit argument wins over the mapping's style field.
	viaOverride, err := Generate(f, "teal", "png")
	require.NoError(t, err)
	assert.False(t, bytes.Equal(viaOverride, viaField))
}

func TestEveryStyleRendersFullFrame(t *testing.T) {
	for _, key := range StyleKeys() {
		key := key
		t.Run(key, func(t *testing.T) {
			data, err := Generate(sampleFields, key, "png")
			require.NoError(t, err)

			img, err := png.Decode(bytes.NewReader(data))
			require.NoError(t, err)
			b := img.Bounds()
			assert.Equal(t, imageSize, b.Dx())
			assert.Equal(t, imageSize, b.Dy())
		})
	}
}

func TestRenderHandlesEmptyMapping(t *testing.T) {
	img, err := Render(Fields{}, "")
	require.NoError(t, err)
	assert.Equal(t, imageSize, img.Bounds().Dx())
}

func TestGenerateJPEGFormat(t *testing.T) {
	data, err := Generate(sampleFields, "classic", "jpeg")
	require.NoError(t, err)
	// JPEG streams open with the SOI marker.
	require.GreaterOrEqual(t, len(data), 2)
	assert.Equal(t, []byte{0xff, 0xd8}, data[:2])
}

func TestGenerateRejectsUnknownFormat(t *testing.T) {
	data, err := Generate(sampleFields, "classic", "webp")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "webp")
	assert.Nil(t, data)
}
