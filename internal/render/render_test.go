package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/f3rmion/abc/internal/abc"
	"github.com/f3rmion/abc/internal/assets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCanvas(t *testing.T) *Canvas {
	t.Helper()
	face, err := LoadFace("", GlyphSize)
	require.NoError(t, err)
	return NewCanvas(face)
}

func litPixels(img *image.Gray) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.GrayAt(x, y).Y > Threshold {
				n++
			}
		}
	}
	return n
}

func TestLoadFace_MissingFont(t *testing.T) {
	_, err := LoadFace(filepath.Join(t.TempDir(), "knewave.ttf"), GlyphSize)
	require.ErrorIs(t, err, assets.ErrMissingAsset)
}

func TestLoadFace_CorruptFont(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.ttf")
	require.NoError(t, os.WriteFile(path, []byte("not a font"), 0644))
	_, err := LoadFace(path, GlyphSize)
	require.Error(t, err)
}

func TestBoxRect(t *testing.T) {
	c := newCanvas(t)
	assert.Equal(t, image.Rect(270, 190, 370, 290), c.BoxRect())
}

func TestBox(t *testing.T) {
	c := newCanvas(t)

	empty := c.Box(abc.NoLetter)
	assert.Equal(t, image.Rect(0, 0, 100, 100), empty.Bounds())
	assert.Zero(t, litPixels(empty))

	a := c.Box('A')
	assert.Equal(t, image.Rect(0, 0, 100, 100), a.Bounds())
	assert.Greater(t, litPixels(a), 1000, "glyph should fill a good part of the box")
	assert.Same(t, a, c.Box('A'), "boxes are cached")
}

func TestFrame(t *testing.T) {
	c := newCanvas(t)
	frame := c.Frame('W')

	assert.Equal(t, image.Rect(0, 0, 640, 480), frame.Bounds())
	assert.Equal(t, litPixels(c.Box('W')), litPixels(frame), "ink only inside the box")
	assert.Equal(t, color.Gray{Y: 0}, frame.GrayAt(0, 0))
}

func TestHalfBlocks(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 4))
	// Top half of the left column lit, full right column lit.
	for y := 0; y < 4; y++ {
		img.SetGray(3, y, color.Gray{Y: 255})
		img.SetGray(2, y, color.Gray{Y: 255})
	}
	img.SetGray(0, 0, color.Gray{Y: 255})
	img.SetGray(1, 0, color.Gray{Y: 255})

	lines := HalfBlocks(img, 2, 1)
	require.Len(t, lines, 1)
	assert.Equal(t, "▀█", lines[0])

	assert.Nil(t, HalfBlocks(img, 0, 3))
}

func TestHalfBlocks_Letter(t *testing.T) {
	c := newCanvas(t)
	lines := HalfBlocks(c.Box('I'), 20, 10)
	require.Len(t, lines, 10)
	joined := strings.Join(lines, "\n")
	assert.Contains(t, joined, "█")

	blank := HalfBlocks(c.Box(abc.NoLetter), 20, 10)
	assert.Equal(t, strings.Repeat(" ", 20), blank[0])
}

func TestWritePNG(t *testing.T) {
	c := newCanvas(t)
	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, c.Frame('B')))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 640, 480), img.Bounds())
}
