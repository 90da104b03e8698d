package export

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"strings"
)

// ImageToSVG converts a cell-grid image to SVG, one rect per run of equal
// cells along a row. cell is the pixel size of one grid cell in img; scale
// is the size of one cell in the SVG.
func ImageToSVG(img *image.RGBA, cell int, scale float64) string {
	if img == nil || cell < 1 {
		return ""
	}
	b := img.Bounds()
	cols, rows := b.Dx()/cell, b.Dy()/cell
	width, height := float64(cols)*scale, float64(rows)*scale

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f" shape-rendering="crispEdges">
`, width, height, width, height))

	at := func(row, col int) color.RGBA {
		return img.RGBAAt(b.Min.X+col*cell, b.Min.Y+row*cell)
	}

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; {
			c := at(row, col)
			run := 1
			for col+run < cols && at(row, col+run) == c {
				run++
			}
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="#%02x%02x%02x"/>
`, float64(col)*scale, float64(row)*scale, float64(run)*scale, scale, c.R, c.G, c.B))
			col += run
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// SaveSVG writes the SVG of img to path.
func SaveSVG(path string, img *image.RGBA, cell int, scale float64) error {
	svg := ImageToSVG(img, cell, scale)
	if svg == "" {
		return ErrEmptyImage
	}
	return os.WriteFile(path, []byte(svg), 0644)
}
