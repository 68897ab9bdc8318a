// Package render rasterises letters into the centred letter box and the
// full display canvas.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/f3rmion/abc/internal/abc"
	"github.com/f3rmion/abc/internal/assets"
)

// GlyphSize is the point size letters are drawn at before scaling into the box.
const GlyphSize = 128

// LoadFace loads the font at path. An empty path selects the embedded Go Bold
// font. A configured font that is missing or unparsable is an error.
func LoadFace(path string, size float64) (font.Face, error) {
	data := gobold.TTF
	if path != "" {
		if err := assets.CheckFile(path); err != nil {
			return nil, err
		}
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading font: %w", err)
		}
		data = b
	}
	return ParseFace(data, size)
}

// ParseFace parses TrueType data, falling back to OpenType and font collections.
func ParseFace(data []byte, size float64) (font.Face, error) {
	if f, err := truetype.Parse(data); err == nil {
		return truetype.NewFace(f, &truetype.Options{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		}), nil
	}

	opts := &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull}

	if coll, err := opentype.ParseCollection(data); err == nil && coll.NumFonts() > 0 {
		if fnt, err := coll.Font(0); err == nil {
			return opentype.NewFace(fnt, opts)
		}
	}

	fnt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}
	return opentype.NewFace(fnt, opts)
}

// Canvas draws letters white on black.
type Canvas struct {
	face   font.Face
	width  int
	height int
	box    int
	cache  map[abc.Letter]*image.Gray
}

// NewCanvas creates a canvas of the standard display size.
func NewCanvas(face font.Face) *Canvas {
	return &Canvas{
		face:   face,
		width:  abc.CanvasWidth,
		height: abc.CanvasHeight,
		box:    abc.BoxSize,
		cache:  make(map[abc.Letter]*image.Gray),
	}
}

// BoxRect returns the letter box centred on the canvas.
func (c *Canvas) BoxRect() image.Rectangle {
	x := c.width/2 - c.box/2
	y := c.height/2 - c.box/2
	return image.Rect(x, y, x+c.box, y+c.box)
}

// Box returns the letter stretched to fill the box. NoLetter yields a black box.
// Results are cached per letter and must not be modified.
func (c *Canvas) Box(l abc.Letter) *image.Gray {
	if img, ok := c.cache[l]; ok {
		return img
	}

	dst := image.NewGray(image.Rect(0, 0, c.box, c.box))
	draw.Draw(dst, dst.Bounds(), image.Black, image.Point{}, draw.Src)

	if l.Valid() {
		glyph := c.glyph(l)
		draw.CatmullRom.Scale(dst, dst.Bounds(), glyph, glyph.Bounds(), draw.Src, nil)
	}

	c.cache[l] = dst
	return dst
}

// Frame returns the full canvas: black, with the letter box in the centre.
func (c *Canvas) Frame(l abc.Letter) *image.Gray {
	frame := image.NewGray(image.Rect(0, 0, c.width, c.height))
	draw.Draw(frame, frame.Bounds(), image.Black, image.Point{}, draw.Src)
	draw.Draw(frame, c.BoxRect(), c.Box(l), image.Point{}, draw.Src)
	return frame
}

// glyph draws the letter tightly cropped to its ink bounds.
func (c *Canvas) glyph(l abc.Letter) *image.Gray {
	bounds, _, ok := c.face.GlyphBounds(rune(l))
	if !ok {
		return image.NewGray(image.Rect(0, 0, 1, 1))
	}

	w := (bounds.Max.X - bounds.Min.X).Ceil()
	h := (bounds.Max.Y - bounds.Min.Y).Ceil()
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	img := image.NewGray(image.Rect(0, 0, w, h))
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: c.face,
		Dot:  fixed.Point26_6{X: -bounds.Min.X, Y: -bounds.Min.Y},
	}
	d.DrawString(l.String())
	return img
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}
