// Package sorts implements the sorting algorithms whose mutations are
// recorded and animated.
//
// Every algorithm is a [Strategy]. Swap strategies (bubble, insertion,
// selection, stooge, cocktail, odd-even, shell, comb, quick, heap) record
// trace.Swap ops; write strategies (merge, radix) record trace.Write ops.
// Strategies are created by name through [New] and share a strict
// less-than comparator supplied by the recorder.
//
// # Recursion
//
// Quick, merge and stooge sort recurse. Depth is O(log n) on average for
// quick and merge, O(n) for quick sort on sorted input with a Start or End
// pivot, and O(log n) with base 3/2 for stooge sort.
package sorts
