package trace

import "fmt"

// Kind tells which mutation an Op carries.
type Kind int

const (
	KindSwap Kind = iota
	KindWrite
)

func (k Kind) String() string {
	switch k {
	case KindSwap:
		return "swap"
	case KindWrite:
		return "write"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Op is one recorded mutation. Ops are values and are never modified after
// being recorded.
type Op struct {
	Kind   Kind
	A, B   int
	Pos    int
	Values []float64
}

// Swap exchanges cells a and b.
func Swap(a, b int) Op {
	return Op{Kind: KindSwap, A: a, B: b}
}

// Write overwrites len(values) cells starting at pos. The values are copied.
func Write(pos int, values ...float64) Op {
	v := make([]float64, len(values))
	copy(v, values)
	return Op{Kind: KindWrite, Pos: pos, Values: v}
}

// Apply performs the mutation on row and returns the changed cell indices.
func (o Op) Apply(row []float64) []int {
	switch o.Kind {
	case KindSwap:
		row[o.A], row[o.B] = row[o.B], row[o.A]
		if o.A == o.B {
			return []int{o.A}
		}
		return []int{o.A, o.B}
	case KindWrite:
		cells := make([]int, len(o.Values))
		for i, v := range o.Values {
			row[o.Pos+i] = v
			cells[i] = o.Pos + i
		}
		return cells
	}
	return nil
}

func (o Op) String() string {
	if o.Kind == KindWrite {
		return fmt.Sprintf("Write(%d, %v)", o.Pos, o.Values)
	}
	return fmt.Sprintf("Swap(%d, %d)", o.A, o.B)
}
