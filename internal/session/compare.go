package session

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/random"
)

// Compare runs one headless session per algorithm, all over the same
// starting permutation. Each session gets its own source seeded from seed,
// so the shuffles agree and the trace lengths are comparable. Results are
// returned in the order of algorithms.
func Compare(ctx context.Context, cfg config.Config, seed uint64, algorithms []string, logger *log.Logger) ([]Stats, error) {
	if seed == 0 {
		seed = 1
	}
	if logger == nil {
		logger = log.Default()
	}

	results := make([]Stats, len(algorithms))
	errs := make([]error, len(algorithms))

	var wg sync.WaitGroup
	for i, alg := range algorithms {
		wg.Add(1)
		go func(idx int, alg string) {
			defer wg.Done()

			c := cfg
			c.Algorithm = alg
			s, err := New(c,
				WithSource(random.NewSource(seed)),
				WithLogger(logger.With("algorithm", alg)))
			if err != nil {
				errs[idx] = err
				return
			}
			if err := s.Run(ctx); err != nil {
				errs[idx] = err
				return
			}
			results[idx] = s.Stats()
		}(i, alg)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
