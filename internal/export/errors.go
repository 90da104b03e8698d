package export

import "errors"

var (
	ErrEmptyImage = errors.New("export: empty image")
	ErrNoFrames   = errors.New("export: no frames")
)
