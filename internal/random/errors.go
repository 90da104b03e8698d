package random

import "errors"

// ErrInvalidShape indicates a non-positive Gamma or Beta shape parameter.
// Such parameters make the rejection loops in Gamma spin forever.
var ErrInvalidShape = errors.New("random: shape parameters must be positive")
