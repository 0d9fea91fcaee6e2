package gradients

import "errors"

// Failure conditions of the hadamard-test transform. All are deterministic
// functions of the input; retrying without changing inputs cannot succeed.
var (
	// ErrUnsupportedMeasurement marks variance, state, entropy or
	// mutual-information measurements, which cannot be differentiated with
	// the hadamard test.
	ErrUnsupportedMeasurement = errors.New("measurement not differentiable with the hadamard test")

	// ErrUnsupportedOperation marks a trainable gate without a known
	// generator decomposition.
	ErrUnsupportedOperation = errors.New("operation has no generator decomposition")

	// ErrAuxWireInUse marks an auxiliary wire that already appears in the
	// circuit.
	ErrAuxWireInUse = errors.New("auxiliary wire is already used by the circuit")

	// ErrAuxWireNotOnDevice marks an auxiliary wire absent from the
	// execution target.
	ErrAuxWireNotOnDevice = errors.New("auxiliary wire does not exist on the device")

	// ErrNoSpareWire marks an execution target with no free wire for the
	// hadamard test.
	ErrNoSpareWire = errors.New("device has no free wire for the auxiliary wire")
)
