package gradients

// config collects the optional inputs of the transform.
type config struct {
	argnum      []int
	auxWire     int
	haveAuxWire bool
	deviceWires []int
}

// Option configures the hadamard-test transform.
type Option func(*config)

// WithArgnum restricts differentiation to the given trainable-parameter
// indices. Without it, every trainable parameter is differentiated.
func WithArgnum(indices ...int) Option {
	return func(c *config) {
		out := make([]int, len(indices))
		copy(out, indices)
		c.argnum = out
	}
}

// WithAuxWire fixes the auxiliary wire used for the hadamard tests. The
// wire must not appear in the circuit and, when device wires are supplied,
// must be one of them. Without it a free wire is selected automatically.
func WithAuxWire(wire int) Option {
	return func(c *config) {
		c.auxWire = wire
		c.haveAuxWire = true
	}
}

// WithDeviceWires declares the execution target's wires, enabling
// auxiliary-wire validation and selection against the real device.
func WithDeviceWires(wires ...int) Option {
	return func(c *config) {
		out := make([]int, len(wires))
		copy(out, wires)
		c.deviceWires = out
	}
}
