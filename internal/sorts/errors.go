package sorts

import "errors"

var (
	// ErrUnknownAlgorithm indicates a name not present in the registry.
	ErrUnknownAlgorithm = errors.New("sorts: unknown algorithm")

	// ErrUnknownPivot indicates a pivot policy outside Start, Middle, End, Random.
	ErrUnknownPivot = errors.New("sorts: unknown pivot policy")

	// ErrShrinkFactor indicates a comb sort shrink factor not greater than 1.
	ErrShrinkFactor = errors.New("sorts: comb shrink factor must be greater than 1")

	// ErrRadixBase indicates a radix base below 2.
	ErrRadixBase = errors.New("sorts: radix base must be at least 2")

	// ErrRadixValue indicates a negative or non-integer value fed to radix sort.
	ErrRadixValue = errors.New("sorts: radix sort requires non-negative integer values")

	// ErrNoRandom indicates a random pivot policy without a random source.
	ErrNoRandom = errors.New("sorts: random pivot requires a random source")
)
