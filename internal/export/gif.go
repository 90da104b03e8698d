package export

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"os"

	"github.com/san-kum/sortviz/internal/capture"
)

// DefaultDelay is the per-frame delay in hundredths of a second.
const DefaultDelay = 4

// WriteGIF encodes the captures as a looping animation. The last frame is
// held ten times longer so the sorted state stays visible.
func WriteGIF(w io.Writer, captures []capture.Capture, delay int) error {
	if len(captures) == 0 {
		return ErrNoFrames
	}
	if delay < 1 {
		delay = DefaultDelay
	}

	anim := gif.GIF{LoopCount: 0}
	for i, c := range captures {
		if c.Image == nil {
			return fmt.Errorf("frame %d: %w", i, ErrEmptyImage)
		}
		b := c.Image.Bounds()
		frame := image.NewPaletted(b, palette.Plan9)
		draw.Draw(frame, b, c.Image, b.Min, draw.Src)

		d := delay
		if i == len(captures)-1 {
			d *= 10
		}
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, d)
	}
	return gif.EncodeAll(w, &anim)
}

func SaveGIF(path string, captures []capture.Capture, delay int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteGIF(f, captures, delay); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
