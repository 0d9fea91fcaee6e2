package gradients

import (
	"fmt"

	"github.com/qugrad-ml/qugrad/internal/circuit"
)

// PostProcess maps the raw results of the batch's circuits, in emission
// order, onto the gradient of the original circuit. Each result carries
// one value per measurement with the original measurement's width: a
// scalar per expectation, a flat outcome vector per probability
// distribution (auxiliary-qubit outcome last).
func (b *Batch) PostProcess(results []circuit.Result) (*Gradient, error) {
	if len(results) != len(b.Circuits) {
		return nil, fmt.Errorf("gradients: got %d results for %d circuits", len(results), len(b.Circuits))
	}

	scaled := make([]circuit.Result, len(results))
	for ci, res := range results {
		if len(res) != b.numMeasurements {
			return nil, fmt.Errorf("gradients: result %d has %d values, want %d", ci, len(res), b.numMeasurements)
		}
		// 2·coeff implements the -2·Im[...] identity.
		scaled[ci] = scaleResult(res, 2*b.coeffs[ci])
	}

	for ci := range scaled {
		if err := b.projectProbs(scaled[ci], ci); err != nil {
			return nil, err
		}
	}

	// Per-parameter aggregation over generator terms.
	grads := make([][]circuit.Value, len(b.counts))
	idx := 0
	for pi, count := range b.counts {
		switch count {
		case 0:
			// Structurally zero gradient: one scalar zero per measurement.
			entry := make([]circuit.Value, b.numMeasurements)
			for mi := range entry {
				entry[mi] = circuit.Value{0}
			}
			grads[pi] = entry
		case 1:
			grads[pi] = scaled[idx]
			idx++
		default:
			grads[pi] = sumResults(scaled[idx : idx+count])
			idx += count
		}
	}

	// Reorder parameter-major aggregation into the measurement-major
	// convention of the original circuit's outputs.
	matrix := make([][]circuit.Value, b.numMeasurements)
	for mi := range matrix {
		row := make([]circuit.Value, len(grads))
		for pi := range grads {
			row[pi] = grads[pi][mi]
		}
		matrix[mi] = row
	}
	return &Gradient{values: matrix}, nil
}

// projectProbs contracts the trailing auxiliary-outcome axis of every
// probability value against the fixed [1, -1] projector, recovering the
// Y-weighted combination over the original outcomes.
func (b *Batch) projectProbs(res circuit.Result, ci int) error {
	for k, mi := range b.probIndices {
		v := res[mi]
		rows := 1 << b.probWires[k]
		if len(v) != 2*rows {
			return fmt.Errorf("gradients: circuit %d measurement %d has %d outcomes, want %d", ci, mi, len(v), 2*rows)
		}
		projected := make(circuit.Value, rows)
		for o := 0; o < rows; o++ {
			projected[o] = v[2*o] - v[2*o+1]
		}
		res[mi] = projected
	}
	return nil
}

func scaleResult(res circuit.Result, factor float64) circuit.Result {
	out := make(circuit.Result, len(res))
	for i, v := range res {
		sv := make(circuit.Value, len(v))
		for j, x := range v {
			sv[j] = factor * x
		}
		out[i] = sv
	}
	return out
}

// sumResults adds results elementwise across generator terms.
func sumResults(results []circuit.Result) []circuit.Value {
	out := make([]circuit.Value, len(results[0]))
	for mi := range out {
		acc := results[0][mi].Clone()
		for _, res := range results[1:] {
			for j, x := range res[mi] {
				acc[j] += x
			}
		}
		out[mi] = acc
	}
	return out
}

// Gradient is the post-processed jacobian, stored measurement-major: one
// row per measurement, one entry per trainable parameter. The accessors
// cover the four shape cases of the output convention.
type Gradient struct {
	values [][]circuit.Value
}

// NumMeasurements returns the measurement count.
func (g *Gradient) NumMeasurements() int { return len(g.values) }

// NumParameters returns the trainable-parameter count.
func (g *Gradient) NumParameters() int {
	if len(g.values) == 0 {
		return 0
	}
	return len(g.values[0])
}

// Scalar returns the gradient of a single-measurement, single-parameter
// circuit: the first entry of the matrix.
func (g *Gradient) Scalar() circuit.Value {
	return g.values[0][0]
}

// ByParameter returns the single-measurement gradient as a sequence over
// parameters.
func (g *Gradient) ByParameter() []circuit.Value {
	out := make([]circuit.Value, g.NumParameters())
	for pi := range out {
		out[pi] = g.values[0][pi]
	}
	return out
}

// ByMeasurement returns the single-parameter gradient as a sequence over
// measurements.
func (g *Gradient) ByMeasurement() []circuit.Value {
	out := make([]circuit.Value, len(g.values))
	for mi, row := range g.values {
		out[mi] = row[0]
	}
	return out
}

// Matrix returns the full measurement-major jacobian: one row per
// measurement, each a sequence over parameters.
func (g *Gradient) Matrix() [][]circuit.Value {
	out := make([][]circuit.Value, len(g.values))
	for mi, row := range g.values {
		r := make([]circuit.Value, len(row))
		copy(r, row)
		out[mi] = r
	}
	return out
}
