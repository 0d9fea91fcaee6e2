package simulator

import (
	"runtime"
	"sync"

	"github.com/qugrad-ml/qugrad/internal/circuit"
)

// BatchConfig controls parallel batch execution.
type BatchConfig struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinBatchSize int  // Minimum circuits per goroutine to avoid overhead.
}

// DefaultBatchConfig returns sensible defaults based on CPU count.
func DefaultBatchConfig() BatchConfig {
	n := runtime.NumCPU()
	return BatchConfig{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinBatchSize: 4,
	}
}

// RunAll executes every circuit and returns their results in input order,
// the ordering gradient post-processing depends on. Execution may run on
// several workers; result slots are fixed up front so concurrency never
// reorders them.
func (s *Simulator) RunAll(circuits []*circuit.Circuit) ([]circuit.Result, error) {
	return s.RunAllWith(circuits, DefaultBatchConfig())
}

// RunAllWith is RunAll with explicit batch configuration.
func (s *Simulator) RunAllWith(circuits []*circuit.Circuit, cfg BatchConfig) ([]circuit.Result, error) {
	results := make([]circuit.Result, len(circuits))
	errs := make([]error, len(circuits))

	run := func(i int) {
		results[i], errs[i] = s.Run(circuits[i])
	}

	if !cfg.Enabled || len(circuits) < cfg.MinBatchSize || cfg.NumWorkers < 2 {
		for i := range circuits {
			run(i)
		}
	} else {
		var wg sync.WaitGroup
		chunk := (len(circuits) + cfg.NumWorkers - 1) / cfg.NumWorkers
		for start := 0; start < len(circuits); start += chunk {
			end := min(start+chunk, len(circuits))
			wg.Add(1)
			go func(s0, e0 int) {
				defer wg.Done()
				for i := s0; i < e0; i++ {
					run(i)
				}
			}(start, end)
		}
		wg.Wait()
	}

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
