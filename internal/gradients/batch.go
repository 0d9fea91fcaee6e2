package gradients

import "github.com/qugrad-ml/qugrad/internal/circuit"

// Batch is the explicit contract between the circuit transform and result
// aggregation: the emitted auxiliary circuits in execution order, the
// coefficient of each, how many circuits each trainable parameter emitted,
// and the original circuit's measurement structure. A Batch is immutable
// after the transform returns and may be post-processed from any
// goroutine.
type Batch struct {
	// Circuits are the auxiliary measurement circuits, in emission order.
	// The executor must return results in this exact order.
	Circuits []*circuit.Circuit

	coeffs          []float64
	counts          []int
	numMeasurements int
	probIndices     []int
	probWires       []int
}

// Coefficients returns a copy of the per-circuit generator coefficients,
// in emission order.
func (b *Batch) Coefficients() []float64 {
	out := make([]float64, len(b.coeffs))
	copy(out, b.coeffs)
	return out
}

// Counts returns a copy of the per-parameter emission counts: 0 for a
// parameter that was skipped, 1 for a single-term generator, more for
// multi-term generators.
func (b *Batch) Counts() []int {
	out := make([]int, len(b.counts))
	copy(out, b.counts)
	return out
}

// NumParameters returns the original circuit's trainable-parameter count.
func (b *Batch) NumParameters() int { return len(b.counts) }

// NumMeasurements returns the original circuit's measurement count.
func (b *Batch) NumMeasurements() int { return b.numMeasurements }
