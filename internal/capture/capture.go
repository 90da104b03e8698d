// Package capture decides which replay ticks are snapshotted and assembles
// the snapshots into a filmstrip.
package capture

import (
	"image"
	"image/color"
	"image/draw"
	"math"
)

// Capture is a snapshot of the render surface taken at a replay tick.
type Capture struct {
	Tick  int
	Image *image.RGBA
}

// Targets maps [0, desired-1] linearly onto [0, total] and returns the
// rounded images of 1..desired-1. Tick 0 is left out since the caller
// snapshots it before replay. Repeated ticks, which only occur when
// total < desired-1, are dropped so the result is strictly increasing.
func Targets(desired, total int) []int {
	if desired < 2 {
		return nil
	}
	scale := float64(total) / float64(desired-1)
	targets := make([]int, 0, desired-1)
	for i := 1; i < desired; i++ {
		t := int(math.Round(float64(i) * scale))
		if t <= 0 {
			continue
		}
		if n := len(targets); n > 0 && targets[n-1] >= t {
			continue
		}
		targets = append(targets, t)
	}
	return targets
}

// Sampler walks the target ticks in order.
type Sampler struct {
	targets []int
}

func NewSampler(desired, total int) *Sampler {
	return &Sampler{targets: Targets(desired, total)}
}

// Due reports whether tick is the next target and, if so, consumes it.
func (s *Sampler) Due(tick int) bool {
	if len(s.targets) == 0 || s.targets[0] != tick {
		return false
	}
	s.targets = s.targets[1:]
	return true
}

func (s *Sampler) Remaining() int { return len(s.targets) }

// Background fills the filmstrip rows that have no capture.
var Background = color.RGBA{0xcc, 0xcc, 0xcc, 0xff}

// Filmstrip stacks the top band of every capture, band i at y = i*band.
// The strip is desired*band pixels tall and as wide as the widest capture.
func Filmstrip(captures []Capture, desired, band int) *image.RGBA {
	width := 0
	for _, c := range captures {
		width = max(width, c.Image.Bounds().Dx())
	}
	strip := image.NewRGBA(image.Rect(0, 0, width, desired*band))
	draw.Draw(strip, strip.Bounds(), &image.Uniform{C: Background}, image.Point{}, draw.Src)

	for i, c := range captures {
		if i >= desired {
			break
		}
		src := c.Image.Bounds()
		dst := image.Rect(0, i*band, src.Dx(), i*band+min(band, src.Dy()))
		draw.Draw(strip, dst, c.Image, src.Min, draw.Src)
	}
	return strip
}
