// Copyright 2026 QuGrad Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package gradients computes analytic gradients of parameterized quantum
// circuits with the hadamard-test method.
//
// Instead of shifting parameters, the transform builds auxiliary circuits
// that measure each derivative directly through an extra qubit and a
// controlled generator operation:
//
//	c := circuit.New(ops, measurements)
//	batch, err := gradients.Hadamard(c)
//	// execute batch.Circuits in order on any device ...
//	grad, err := batch.PostProcess(results)
//
// The executor must return one result per emitted circuit, in the exact
// emission order; any reordering silently corrupts the gradient.
package gradients

import (
	"github.com/qugrad-ml/qugrad/internal/circuit"
	"github.com/qugrad-ml/qugrad/internal/gradients"
)

// Failure conditions of the transform.
var (
	ErrUnsupportedMeasurement = gradients.ErrUnsupportedMeasurement
	ErrUnsupportedOperation   = gradients.ErrUnsupportedOperation
	ErrAuxWireInUse           = gradients.ErrAuxWireInUse
	ErrAuxWireNotOnDevice     = gradients.ErrAuxWireNotOnDevice
	ErrNoSpareWire            = gradients.ErrNoSpareWire
)

// Option configures the hadamard-test transform.
type Option = gradients.Option

// WithArgnum restricts differentiation to the given trainable-parameter
// indices.
func WithArgnum(indices ...int) Option { return gradients.WithArgnum(indices...) }

// WithAuxWire fixes the auxiliary wire used for the hadamard tests.
func WithAuxWire(wire int) Option { return gradients.WithAuxWire(wire) }

// WithDeviceWires declares the execution target's wires.
func WithDeviceWires(wires ...int) Option { return gradients.WithDeviceWires(wires...) }

// Batch bundles the emitted auxiliary circuits with the bookkeeping needed
// to post-process their results.
type Batch = gradients.Batch

// Gradient is the post-processed jacobian.
type Gradient = gradients.Gradient

// Hadamard transforms a circuit into hadamard-test auxiliary circuits and
// the paired post-processing bookkeeping.
func Hadamard(c *circuit.Circuit, opts ...Option) (*Batch, error) {
	return gradients.Hadamard(c, opts...)
}
