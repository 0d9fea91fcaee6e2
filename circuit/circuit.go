// Copyright 2026 QuGrad Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package circuit provides the quantum circuit data model for the QuGrad
// framework: gates, Pauli observables, measurement specifications and the
// immutable circuit value with its trainable-parameter bookkeeping.
//
// Example:
//
//	ops := []circuit.Gate{
//	    circuit.RX(0.1, 0),
//	    circuit.CNOT(0, 1),
//	}
//	c := circuit.New(ops, []circuit.Measurement{
//	    circuit.Expval(circuit.PauliZ(1)),
//	})
package circuit

import (
	"github.com/qugrad-ml/qugrad/internal/circuit"
)

// Pauli identifies a single-wire Pauli observable.
type Pauli = circuit.Pauli

// Pauli operators.
const (
	PX Pauli = circuit.PX
	PY Pauli = circuit.PY
	PZ Pauli = circuit.PZ
)

// Term is a single Pauli operator acting on one wire.
type Term = circuit.Term

// Observable is an ordered tensor product of single-wire Pauli terms.
type Observable = circuit.Observable

// NewObservable creates an observable from the given terms, in order.
func NewObservable(terms ...Term) Observable { return circuit.NewObservable(terms...) }

// PauliX returns the X observable on the given wire.
func PauliX(wire int) Observable { return circuit.PauliX(wire) }

// PauliY returns the Y observable on the given wire.
func PauliY(wire int) Observable { return circuit.PauliY(wire) }

// PauliZ returns the Z observable on the given wire.
func PauliZ(wire int) Observable { return circuit.PauliZ(wire) }

// Prod returns the tensor product of the given observables.
func Prod(obs ...Observable) Observable { return circuit.Prod(obs...) }

// Kind identifies a gate type.
type Kind = circuit.Kind

// Gate kinds.
const (
	KindH          Kind = circuit.KindH
	KindX          Kind = circuit.KindX
	KindY          Kind = circuit.KindY
	KindZ          Kind = circuit.KindZ
	KindS          Kind = circuit.KindS
	KindSDag       Kind = circuit.KindSDag
	KindCNOT       Kind = circuit.KindCNOT
	KindCY         Kind = circuit.KindCY
	KindCZ         Kind = circuit.KindCZ
	KindRX         Kind = circuit.KindRX
	KindRY         Kind = circuit.KindRY
	KindRZ         Kind = circuit.KindRZ
	KindRot        Kind = circuit.KindRot
	KindPhaseShift Kind = circuit.KindPhaseShift
	KindU1         Kind = circuit.KindU1
	KindCRX        Kind = circuit.KindCRX
	KindCRY        Kind = circuit.KindCRY
	KindCRZ        Kind = circuit.KindCRZ
	KindIsingXX    Kind = circuit.KindIsingXX
	KindIsingYY    Kind = circuit.KindIsingYY
	KindIsingZZ    Kind = circuit.KindIsingZZ
	KindU2         Kind = circuit.KindU2
	KindU3         Kind = circuit.KindU3
)

// Gate is a single operation placed on the circuit.
type Gate = circuit.Gate

// Gate constructors.

// H returns a Hadamard gate.
func H(wire int) Gate { return circuit.H(wire) }

// X returns a Pauli-X gate.
func X(wire int) Gate { return circuit.X(wire) }

// Y returns a Pauli-Y gate.
func Y(wire int) Gate { return circuit.Y(wire) }

// Z returns a Pauli-Z gate.
func Z(wire int) Gate { return circuit.Z(wire) }

// S returns a phase gate diag(1, i).
func S(wire int) Gate { return circuit.S(wire) }

// SDag returns the adjoint phase gate diag(1, -i).
func SDag(wire int) Gate { return circuit.SDag(wire) }

// CNOT returns a controlled-X gate.
func CNOT(control, target int) Gate { return circuit.CNOT(control, target) }

// CY returns a controlled-Y gate.
func CY(control, target int) Gate { return circuit.CY(control, target) }

// CZ returns a controlled-Z gate.
func CZ(control, target int) Gate { return circuit.CZ(control, target) }

// RX returns a rotation exp(-i theta X/2).
func RX(theta float64, wire int) Gate { return circuit.RX(theta, wire) }

// RY returns a rotation exp(-i theta Y/2).
func RY(theta float64, wire int) Gate { return circuit.RY(theta, wire) }

// RZ returns a rotation exp(-i theta Z/2).
func RZ(theta float64, wire int) Gate { return circuit.RZ(theta, wire) }

// Rot returns the three-parameter Euler rotation RZ(omega)·RY(theta)·RZ(phi).
func Rot(phi, theta, omega float64, wire int) Gate { return circuit.Rot(phi, theta, omega, wire) }

// PhaseShift returns the gate diag(1, exp(i phi)).
func PhaseShift(phi float64, wire int) Gate { return circuit.PhaseShift(phi, wire) }

// U1 returns the U1 gate, equal to PhaseShift up to naming.
func U1(phi float64, wire int) Gate { return circuit.U1(phi, wire) }

// CRX returns a controlled RX rotation.
func CRX(theta float64, control, target int) Gate { return circuit.CRX(theta, control, target) }

// CRY returns a controlled RY rotation.
func CRY(theta float64, control, target int) Gate { return circuit.CRY(theta, control, target) }

// CRZ returns a controlled RZ rotation.
func CRZ(theta float64, control, target int) Gate { return circuit.CRZ(theta, control, target) }

// IsingXX returns the two-qubit rotation exp(-i phi X⊗X/2).
func IsingXX(phi float64, wire0, wire1 int) Gate { return circuit.IsingXX(phi, wire0, wire1) }

// IsingYY returns the two-qubit rotation exp(-i phi Y⊗Y/2).
func IsingYY(phi float64, wire0, wire1 int) Gate { return circuit.IsingYY(phi, wire0, wire1) }

// IsingZZ returns the two-qubit rotation exp(-i phi Z⊗Z/2).
func IsingZZ(phi float64, wire0, wire1 int) Gate { return circuit.IsingZZ(phi, wire0, wire1) }

// U2 returns the two-parameter single-qubit gate. It has no generator
// decomposition; differentiating it requires a prior expansion.
func U2(phi, delta float64, wire int) Gate { return circuit.U2(phi, delta, wire) }

// U3 returns the general three-parameter single-qubit gate.
func U3(theta, phi, delta float64, wire int) Gate { return circuit.U3(theta, phi, delta, wire) }

// MeasurementKind identifies what a measurement returns.
type MeasurementKind = circuit.MeasurementKind

// Measurement kinds.
const (
	Expectation MeasurementKind = circuit.Expectation
	Probability MeasurementKind = circuit.Probability
	Variance    MeasurementKind = circuit.Variance
	StateVector MeasurementKind = circuit.StateVector
	VnEntropy   MeasurementKind = circuit.VnEntropy
	MutualInfo  MeasurementKind = circuit.MutualInfo
)

// Measurement is a single measurement specification.
type Measurement = circuit.Measurement

// Expval returns an expectation-value measurement of the observable.
func Expval(obs Observable) Measurement { return circuit.Expval(obs) }

// Var returns a variance measurement of the observable.
func Var(obs Observable) Measurement { return circuit.Var(obs) }

// Probs returns a computational-basis probability measurement over the
// given wires, first wire most significant.
func Probs(wires ...int) Measurement { return circuit.Probs(wires...) }

// ProbsObs returns a probability measurement in the observable's eigenbasis.
func ProbsObs(obs Observable) Measurement { return circuit.ProbsObs(obs) }

// State returns a raw statevector measurement.
func State() Measurement { return circuit.State() }

// Entropy returns a Von Neumann entropy measurement of the given subsystem.
func Entropy(wires ...int) Measurement { return circuit.Entropy(wires...) }

// MutualInfoBetween returns a mutual-information measurement between two
// subsystems.
func MutualInfoBetween(wiresA, wiresB []int) Measurement {
	return circuit.MutualInfoBetween(wiresA, wiresB)
}

// ParamRef resolves a trainable parameter to its owning gate.
type ParamRef = circuit.ParamRef

// Circuit is an immutable ordered sequence of gates and measurements.
type Circuit = circuit.Circuit

// Option configures circuit construction.
type Option = circuit.Option

// WithTrainable restricts the circuit's trainable parameters.
func WithTrainable(refs ...ParamRef) Option { return circuit.WithTrainable(refs...) }

// New constructs a circuit from gates and measurements.
func New(ops []Gate, measurements []Measurement, opts ...Option) *Circuit {
	return circuit.New(ops, measurements, opts...)
}

// Value is the numeric output of a single measurement.
type Value = circuit.Value

// Result holds one Value per measurement of a circuit.
type Result = circuit.Result

// DiagonalizeMeasurements computes the basis rotations needed to measure
// every observable in the list simultaneously in the computational basis,
// together with the diagonal equivalents of the measurements.
func DiagonalizeMeasurements(measurements []Measurement) ([]Gate, []Measurement, error) {
	return circuit.DiagonalizeMeasurements(measurements)
}
