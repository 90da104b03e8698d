package trace

import "errors"

// ErrReplayFinished indicates Step was called after the replay reported done.
var ErrReplayFinished = errors.New("trace: replay already finished")
