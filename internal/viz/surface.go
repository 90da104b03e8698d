package viz

import (
	"image"
	"image/draw"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/sortviz/internal/capture"
)

// Surface is a grid of width×height cells, each drawn as a zoom×zoom pixel
// block. It implements session.Renderer.
type Surface struct {
	width, height, zoom int
	keys                []float64
	img                 *image.RGBA
}

func NewSurface(width, height, zoom int) *Surface {
	s := &Surface{}
	s.Resize(width, height, zoom)
	return s
}

// Resize discards the surface and starts a blank one of the new shape and
// cell size. Zoom below 1 is treated as 1.
func (s *Surface) Resize(width, height, zoom int) {
	s.width, s.height, s.zoom = max(width, 0), max(height, 0), max(zoom, 1)
	s.keys = make([]float64, s.width*s.height)
	s.img = image.NewRGBA(image.Rect(0, 0, s.width*s.zoom, s.height*s.zoom))
	draw.Draw(s.img, s.img.Bounds(), &image.Uniform{C: capture.Background}, image.Point{}, draw.Src)
}

func (s *Surface) Width() int  { return s.width }
func (s *Surface) Height() int { return s.height }
func (s *Surface) Zoom() int   { return s.zoom }

// Paint colours the cell at (row, col) with viridis(value/rowWidth).
// Cells outside the grid are ignored.
func (s *Surface) Paint(row, col int, value float64, rowWidth int) {
	if row < 0 || col < 0 || row >= s.height || col >= s.width || rowWidth <= 0 {
		return
	}
	t := value / float64(rowWidth)
	s.keys[row*s.width+col] = t

	block := image.Rect(col*s.zoom, row*s.zoom, (col+1)*s.zoom, (row+1)*s.zoom)
	draw.Draw(s.img, block, &image.Uniform{C: RGBA(Viridis(t))}, image.Point{}, draw.Src)
}

// Key returns the colour key last painted at (row, col).
func (s *Surface) Key(row, col int) float64 {
	return s.keys[row*s.width+col]
}

// Image is the live pixel buffer. Callers must not keep it across paints;
// use Snapshot for a stable copy.
func (s *Surface) Image() *image.RGBA { return s.img }

func (s *Surface) Snapshot(tick int) capture.Capture {
	img := image.NewRGBA(s.img.Bounds())
	copy(img.Pix, s.img.Pix)
	return capture.Capture{Tick: tick, Image: img}
}

// Render draws the surface with upper half blocks, two rows per line. When
// maxCols is positive and smaller than the width, columns are sampled.
func (s *Surface) Render(maxCols int) string {
	cols := s.width
	if maxCols > 0 && maxCols < cols {
		cols = maxCols
	}
	if cols == 0 {
		return ""
	}

	var b strings.Builder
	for y := 0; y < s.height; y += 2 {
		for i := 0; i < cols; i++ {
			x := i * s.width / cols
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(Viridis(s.Key(y, x)).Hex()))
			if y+1 < s.height {
				style = style.Background(lipgloss.Color(Viridis(s.Key(y+1, x)).Hex()))
			}
			b.WriteString(style.Render("▀"))
		}
		b.WriteString("\n")
	}
	return b.String()
}
