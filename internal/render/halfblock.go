package render

import (
	"image"
	"image/color"
	"strings"
)

// Threshold is the brightness above which a pixel counts as lit.
const Threshold uint8 = 64

// HalfBlocks converts img into cols x rows terminal cells using the upper
// and lower half-block characters, two pixels per cell.
func HalfBlocks(img *image.Gray, cols, rows int) []string {
	if cols <= 0 || rows <= 0 {
		return nil
	}
	small := scaleDown(img, cols, rows*2)

	lines := make([]string, rows)
	var b strings.Builder
	for row := 0; row < rows; row++ {
		b.Reset()
		for col := 0; col < cols; col++ {
			top := lit(small, col, row*2)
			bottom := lit(small, col, row*2+1)

			switch {
			case top && bottom:
				b.WriteRune('█')
			case top:
				b.WriteRune('▀')
			case bottom:
				b.WriteRune('▄')
			default:
				b.WriteRune(' ')
			}
		}
		lines[row] = b.String()
	}
	return lines
}

// scaleDown resizes src by averaging the source area behind each pixel.
func scaleDown(src *image.Gray, w, h int) *image.Gray {
	sb := src.Bounds()
	sw, sh := sb.Dx(), sb.Dy()
	dst := image.NewGray(image.Rect(0, 0, w, h))
	if sw == 0 || sh == 0 {
		return dst
	}

	xRatio := float64(sw) / float64(w)
	yRatio := float64(sh) / float64(h)

	for dy := 0; dy < h; dy++ {
		sy1 := int(float64(dy) * yRatio)
		sy2 := max(int(float64(dy+1)*yRatio), sy1+1)
		sy2 = min(sy2, sh)
		for dx := 0; dx < w; dx++ {
			sx1 := int(float64(dx) * xRatio)
			sx2 := max(int(float64(dx+1)*xRatio), sx1+1)
			sx2 = min(sx2, sw)

			var sum, count int
			for sy := sy1; sy < sy2; sy++ {
				for sx := sx1; sx < sx2; sx++ {
					sum += int(src.GrayAt(sb.Min.X+sx, sb.Min.Y+sy).Y)
					count++
				}
			}
			if count > 0 {
				dst.SetGray(dx, dy, color.Gray{Y: uint8(sum / count)})
			}
		}
	}
	return dst
}

func lit(img *image.Gray, x, y int) bool {
	if !(image.Point{X: x, Y: y}).In(img.Bounds()) {
		return false
	}
	return img.GrayAt(x, y).Y > Threshold
}
