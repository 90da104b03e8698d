package sorts

import (
	"fmt"
	"strings"
)

type entry struct {
	slug, title string
	build       func(Params) (Strategy, error)
}

// registry is kept in menu order.
var registry = []entry{
	{"bubble", "Bubble sort", func(Params) (Strategy, error) { return Bubble{}, nil }},
	{"insertion", "Insertion sort", func(Params) (Strategy, error) { return Insertion{}, nil }},
	{"stooge", "Stooge sort", func(Params) (Strategy, error) { return Stooge{}, nil }},
	{"selection", "Selection sort", func(Params) (Strategy, error) { return Selection{}, nil }},
	{"cocktail", "Cocktail sort", func(Params) (Strategy, error) { return Cocktail{}, nil }},
	{"oddeven", "Odd-even sort", func(Params) (Strategy, error) { return OddEven{}, nil }},
	{"shell", "Shell sort", func(Params) (Strategy, error) { return Shell{}, nil }},
	{"comb", "Comb sort", func(p Params) (Strategy, error) { return NewComb(p.ShrinkFactor) }},
	{"quick", "Quick sort", func(p Params) (Strategy, error) { return NewQuick(p.Pivot, p.Random) }},
	{"heap", "Heap sort", func(Params) (Strategy, error) { return Heap{}, nil }},
	{"merge", "Merge sort", func(Params) (Strategy, error) { return Merge{}, nil }},
	{"radix", "Radix sort", func(p Params) (Strategy, error) { return NewRadix(p.Base) }},
}

func lookup(name string) (entry, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, e := range registry {
		if key == e.slug || key == strings.ToLower(e.title) {
			return e, true
		}
	}
	return entry{}, false
}

// New builds the strategy registered under name, which may be a slug
// ("quick") or a display title ("Quick sort").
func New(name string, p Params) (Strategy, error) {
	e, ok := lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, name)
	}
	return e.build(p)
}

func Has(name string) bool {
	_, ok := lookup(name)
	return ok
}

// List returns the registered slugs in menu order.
func List() []string {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.slug
	}
	return names
}

// Title returns the display name for a slug or title, or name itself if unknown.
func Title(name string) string {
	if e, ok := lookup(name); ok {
		return e.title
	}
	return name
}

// Uses reports which Params fields the algorithm reads: "pivot", "shrink_factor" or "base".
func Uses(name string) string {
	e, _ := lookup(name)
	switch e.slug {
	case "quick":
		return "pivot"
	case "comb":
		return "shrink_factor"
	case "radix":
		return "base"
	}
	return ""
}
