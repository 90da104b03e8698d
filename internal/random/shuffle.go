package random

// Shuffle permutes data[start:end] in place with Fisher–Yates, drawing
// each index from src. A biased src yields a biased permutation.
func Shuffle[T any](src Source, data []T, start, end int) {
	m := end - start
	for m > 0 {
		i := int(src.Float64() * float64(m))
		m--
		data[start+m], data[start+i] = data[start+i], data[start+m]
	}
}
