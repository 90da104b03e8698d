package sorts

import (
	"errors"
	"math/rand/v2"
	"slices"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortviz/internal/random"
	"github.com/san-kum/sortviz/internal/trace"
)

func permutation(rng *rand.Rand, n int) []float64 {
	row := make([]float64, n)
	for i, v := range rng.Perm(n) {
		row[i] = float64(v)
	}
	return row
}

func withDuplicates(rng *rand.Rand, n int) []float64 {
	row := make([]float64, n)
	for i := range row {
		row[i] = float64(rng.IntN(n/3 + 1))
	}
	return row
}

func sortRow(s Strategy, row []float64) *trace.Recorder {
	rec := trace.NewRecorder([][]float64{row})
	Expect(s.Sort(rec, 0, 0, len(row)-1)).To(Succeed())
	return rec
}

func strategy(name string) Strategy {
	p := DefaultParams()
	p.Random = random.NewSource(99)
	s, err := New(name, p)
	Expect(err).NotTo(HaveOccurred())
	return s
}

var _ = Describe("Strategies", func() {
	var rng *rand.Rand

	BeforeEach(func() {
		rng = rand.New(rand.NewPCG(1, 2))
	})

	for _, name := range List() {
		Context(name, func() {
			It("sorts permutations of every small size", func() {
				s := strategy(name)
				for n := 0; n <= 12; n++ {
					row := permutation(rng, n)
					rec := sortRow(s, row)
					Expect(slices.IsSorted(rec.Row(0))).To(BeTrue(), "n=%d row=%v", n, rec.Row(0))
				}
			})

			It("sorts larger rows with duplicates", func() {
				s := strategy(name)
				for _, n := range []int{50, 97, 200} {
					rec := sortRow(s, withDuplicates(rng, n))
					Expect(slices.IsSorted(rec.Row(0))).To(BeTrue())
				}
			})

			It("reconstructs the sorted row when its trace is replayed", func() {
				s := strategy(name)
				rec := sortRow(s, permutation(rng, 64))

				replayed := slices.Clone(rec.Pristine(0))
				rec.Trace(0).Replay(replayed)
				Expect(replayed).To(Equal(rec.Row(0)))
			})

			It("ends the tick replay on the sorted row", func() {
				s := strategy(name)
				rec := trace.NewRecorder([][]float64{permutation(rng, 40), permutation(rng, 40)})
				for y := 0; y < rec.Rows(); y++ {
					Expect(s.Sort(rec, y, 0, 39)).To(Succeed())
				}

				eng := rec.Finish()
				ticks := 0
				for {
					done, err := eng.Step(nil)
					Expect(err).NotTo(HaveOccurred())
					ticks++
					if done {
						break
					}
				}
				Expect(ticks).To(Equal(eng.TotalFrames() + 1))
				Expect(eng.Rows()[0]).To(Equal(rec.Row(0)))
				Expect(eng.Rows()[1]).To(Equal(rec.Row(1)))
			})

			It("records only its declared op kind", func() {
				s := strategy(name)
				rec := sortRow(s, permutation(rng, 30))
				for _, op := range rec.Trace(0) {
					Expect(op.Kind).To(Equal(s.Kind()))
				}
			})

			It("treats an inverted range as a no-op", func() {
				s := strategy(name)
				rec := trace.NewRecorder([][]float64{{3, 2, 1}})
				Expect(s.Sort(rec, 0, 2, 1)).To(Succeed())
				Expect(rec.Trace(0)).To(BeEmpty())
			})

			It("leaves cells outside the range untouched", func() {
				s := strategy(name)
				row := []float64{9, 8, 5, 4, 3, 2, 1, 0}
				rec := trace.NewRecorder([][]float64{row})
				Expect(s.Sort(rec, 0, 2, 5)).To(Succeed())
				Expect(rec.Row(0)).To(Equal([]float64{9, 8, 2, 3, 4, 5, 1, 0}))
			})
		})
	}

	Describe("Insertion", func() {
		It("records the expected swaps for [3,1,2]", func() {
			rec := sortRow(Insertion{}, []float64{3, 1, 2})
			Expect(rec.Trace(0)).To(Equal(trace.Trace{trace.Swap(1, 0), trace.Swap(2, 1)}))
			Expect(rec.Row(0)).To(Equal([]float64{1, 2, 3}))
		})
	})

	Describe("Quick", func() {
		It("partitions around the start pivot", func() {
			q, err := NewQuick(PivotStart, nil)
			Expect(err).NotTo(HaveOccurred())

			rec := trace.NewRecorder([][]float64{{5, 3, 4, 1, 2}})
			p := q.partition(rec, 0, 0, 0, 4)
			Expect(p).To(Equal(4))
			for _, v := range rec.Row(0)[:p] {
				Expect(v).To(BeNumerically("<", 5))
			}

			rec = sortRow(q, []float64{5, 3, 4, 1, 2})
			Expect(rec.Row(0)).To(Equal([]float64{1, 2, 3, 4, 5}))
		})

		It("partitions a Middle policy exactly like End", func() {
			middle, err := NewQuick(PivotMiddle, nil)
			Expect(err).NotTo(HaveOccurred())
			end, err := NewQuick(PivotEnd, nil)
			Expect(err).NotTo(HaveOccurred())

			row := permutation(rng, 33)
			a := sortRow(middle, slices.Clone(row))
			b := sortRow(end, slices.Clone(row))
			Expect(a.Trace(0)).To(Equal(b.Trace(0)))
		})

		It("draws random pivots below the right bound", func() {
			q, err := NewQuick(PivotRandom, random.NewSequence(0.999999))
			Expect(err).NotTo(HaveOccurred())
			Expect(q.pivotIndex(3, 10)).To(Equal(9))
			Expect(q.pivotIndex(4, 4)).To(Equal(4))
		})

		It("rejects a random policy without a source", func() {
			_, err := NewQuick(PivotRandom, nil)
			Expect(errors.Is(err, ErrNoRandom)).To(BeTrue())
		})

		It("rejects unknown policies", func() {
			_, err := NewQuick("Median", nil)
			Expect(errors.Is(err, ErrUnknownPivot)).To(BeTrue())
		})
	})

	Describe("Heap", func() {
		It("sorts the three element case", func() {
			rec := sortRow(Heap{}, []float64{1, 2, 3})
			Expect(rec.Row(0)).To(Equal([]float64{1, 2, 3}))
		})
	})

	Describe("Merge", func() {
		It("writes one cell per op", func() {
			rec := sortRow(Merge{}, []float64{4, 3, 2, 1})
			for _, op := range rec.Trace(0) {
				Expect(op.Values).To(HaveLen(1))
			}
			// Three merges of sizes 2, 2 and 4.
			Expect(rec.Trace(0)).To(HaveLen(8))
		})
	})

	Describe("Comb", func() {
		It("rejects shrink factors not above one", func() {
			for _, f := range []float64{1, 0.5, 0, -2} {
				_, err := NewComb(f)
				Expect(errors.Is(err, ErrShrinkFactor)).To(BeTrue())
			}
		})
	})

	Describe("Radix", func() {
		It("rejects bases below two", func() {
			for _, b := range []int{1, 0, -10} {
				_, err := NewRadix(b)
				Expect(errors.Is(err, ErrRadixBase)).To(BeTrue())
			}
		})

		DescribeTable("rejects values it cannot bucket",
			func(bad float64) {
				r, _ := NewRadix(10)
				rec := trace.NewRecorder([][]float64{{1, bad, 2}})
				err := r.Sort(rec, 0, 0, 2)
				Expect(errors.Is(err, ErrRadixValue)).To(BeTrue())
				Expect(rec.Trace(0)).To(BeEmpty())
			},
			Entry("negative", -1.0),
			Entry("fractional", 2.5),
		)

		It("runs one pass per digit of the maximum", func() {
			r, _ := NewRadix(2)
			rec := sortRow(r, []float64{5, 0, 7, 2})
			// 7 = 0b111 takes three passes of four writes.
			Expect(rec.Trace(0)).To(HaveLen(12))
			Expect(rec.Row(0)).To(Equal([]float64{0, 2, 5, 7}))
		})

		It("keeps equal keys in arrival order on every pass", func() {
			keys := []uint64{21, 3, 21, 11, 3, 5, 11, 21, 0, 3}
			for _, base := range []uint64{2, 3, 10} {
				passes := lsdPasses(keys, base)
				Expect(passes).NotTo(BeEmpty())
				for _, order := range passes {
					last := map[uint64]int{}
					for _, idx := range order {
						if prev, ok := last[keys[idx]]; ok {
							Expect(idx).To(BeNumerically(">", prev))
						}
						last[keys[idx]] = idx
					}
				}
				final := passes[len(passes)-1]
				sorted := make([]uint64, len(final))
				for i, idx := range final {
					sorted[i] = keys[idx]
				}
				Expect(slices.IsSorted(sorted)).To(BeTrue())
			}
		})

		It("records nothing for an all-zero row", func() {
			r, _ := NewRadix(10)
			rec := sortRow(r, []float64{0, 0, 0})
			Expect(rec.Trace(0)).To(BeEmpty())
		})
	})

	Describe("Registry", func() {
		It("accepts display titles and slugs", func() {
			for _, name := range []string{"Quick sort", "quick", "Odd-even sort", " MERGE "} {
				Expect(Has(name)).To(BeTrue(), name)
			}
			Expect(Title("oddeven")).To(Equal("Odd-even sort"))
		})

		It("rejects unknown names", func() {
			_, err := New("bogo", DefaultParams())
			Expect(errors.Is(err, ErrUnknownAlgorithm)).To(BeTrue())
		})

		It("names the parameter each algorithm reads", func() {
			Expect(Uses("Quick sort")).To(Equal("pivot"))
			Expect(Uses("comb")).To(Equal("shrink_factor"))
			Expect(Uses("radix")).To(Equal("base"))
			Expect(Uses("heap")).To(BeEmpty())
		})
	})
})
