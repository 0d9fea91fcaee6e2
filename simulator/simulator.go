// Copyright 2026 QuGrad Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package simulator provides a dense statevector execution target for
// QuGrad circuits.
//
// Example:
//
//	dev, _ := simulator.New(2)
//	result, err := dev.Run(c)
//
// Gradient batches run in emission order:
//
//	batch, _ := gradients.Hadamard(c, gradients.WithDeviceWires(dev.Wires()...))
//	results, _ := dev.RunAll(batch.Circuits)
//	grad, _ := batch.PostProcess(results)
package simulator

import (
	"github.com/qugrad-ml/qugrad/internal/circuit"
	"github.com/qugrad-ml/qugrad/internal/simulator"
)

// Simulator is a dense statevector execution target.
type Simulator = simulator.Simulator

// BatchConfig controls parallel batch execution.
type BatchConfig = simulator.BatchConfig

// New creates a simulator with the given number of wires, labelled 0..n-1.
func New(numWires int) (*Simulator, error) {
	return simulator.New(numWires)
}

// DefaultBatchConfig returns sensible defaults based on CPU count.
func DefaultBatchConfig() BatchConfig {
	return simulator.DefaultBatchConfig()
}

// Result re-exports the per-circuit result type for convenience.
type Result = circuit.Result
