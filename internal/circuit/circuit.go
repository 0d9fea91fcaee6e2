package circuit

import "fmt"

// ParamRef resolves a trainable parameter to its owning gate: the index of
// the operation in the circuit and the parameter's position within it.
type ParamRef struct {
	Op    int
	Param int
}

// Circuit is an ordered sequence of gates followed by an ordered sequence
// of measurements, with a stable ordering of trainable parameters.
// Circuits are immutable once constructed; transformations build new ones.
type Circuit struct {
	ops       []Gate
	meas      []Measurement
	trainable []ParamRef
}

// Option configures circuit construction.
type Option func(*Circuit)

// WithTrainable restricts the circuit's trainable parameters to the given
// references, in the given order. Without this option every gate parameter
// is trainable, in declaration order.
func WithTrainable(refs ...ParamRef) Option {
	return func(c *Circuit) {
		out := make([]ParamRef, len(refs))
		copy(out, refs)
		c.trainable = out
	}
}

// New constructs a circuit from gates and measurements.
func New(ops []Gate, measurements []Measurement, opts ...Option) *Circuit {
	c := &Circuit{
		ops:  make([]Gate, len(ops)),
		meas: make([]Measurement, len(measurements)),
	}
	copy(c.ops, ops)
	copy(c.meas, measurements)
	for _, opt := range opts {
		opt(c)
	}
	if c.trainable == nil {
		for i, g := range c.ops {
			for p := 0; p < g.NumParams(); p++ {
				c.trainable = append(c.trainable, ParamRef{Op: i, Param: p})
			}
		}
	}
	return c
}

// Operations returns a copy of the circuit's gate sequence.
func (c *Circuit) Operations() []Gate {
	out := make([]Gate, len(c.ops))
	copy(out, c.ops)
	return out
}

// NumOperations returns the gate count.
func (c *Circuit) NumOperations() int { return len(c.ops) }

// Operation returns the i-th gate.
func (c *Circuit) Operation(i int) Gate { return c.ops[i] }

// Measurements returns a copy of the circuit's measurement sequence.
func (c *Circuit) Measurements() []Measurement {
	out := make([]Measurement, len(c.meas))
	copy(out, c.meas)
	return out
}

// NumMeasurements returns the measurement count.
func (c *Circuit) NumMeasurements() int { return len(c.meas) }

// Measurement returns the i-th measurement.
func (c *Circuit) Measurement(i int) Measurement { return c.meas[i] }

// Wires returns the circuit's wires in first-seen order, gates before
// measurements.
func (c *Circuit) Wires() []int {
	seen := make(map[int]bool)
	var wires []int
	add := func(ws []int) {
		for _, w := range ws {
			if !seen[w] {
				seen[w] = true
				wires = append(wires, w)
			}
		}
	}
	for _, g := range c.ops {
		add(g.Wires())
	}
	for _, m := range c.meas {
		add(m.Wires())
	}
	return wires
}

// NumWires returns the number of distinct wires used by the circuit.
func (c *Circuit) NumWires() int { return len(c.Wires()) }

// HasWire reports whether the circuit uses the given wire.
func (c *Circuit) HasWire(wire int) bool {
	for _, w := range c.Wires() {
		if w == wire {
			return true
		}
	}
	return false
}

// TrainableParams returns a copy of the trainable-parameter references in
// their stable ordering.
func (c *Circuit) TrainableParams() []ParamRef {
	out := make([]ParamRef, len(c.trainable))
	copy(out, c.trainable)
	return out
}

// NumTrainable returns the trainable-parameter count.
func (c *Circuit) NumTrainable() int { return len(c.trainable) }

// Resolve returns the gate owning trainable parameter i together with its
// reference.
func (c *Circuit) Resolve(i int) (Gate, ParamRef, error) {
	if i < 0 || i >= len(c.trainable) {
		return Gate{}, ParamRef{}, fmt.Errorf("circuit: trainable parameter %d out of range [0, %d)", i, len(c.trainable))
	}
	ref := c.trainable[i]
	if ref.Op < 0 || ref.Op >= len(c.ops) {
		return Gate{}, ParamRef{}, fmt.Errorf("circuit: trainable parameter %d references operation %d of %d", i, ref.Op, len(c.ops))
	}
	g := c.ops[ref.Op]
	if ref.Param < 0 || ref.Param >= g.NumParams() {
		return Gate{}, ParamRef{}, fmt.Errorf("circuit: trainable parameter %d references parameter %d of %s", i, ref.Param, g.Name())
	}
	return g, ref, nil
}

// Parameter returns the value of trainable parameter i.
func (c *Circuit) Parameter(i int) (float64, error) {
	g, ref, err := c.Resolve(i)
	if err != nil {
		return 0, err
	}
	return g.Param(ref.Param), nil
}

// ShiftParameter builds a new circuit with trainable parameter i shifted by
// delta. The receiver is unchanged.
func (c *Circuit) ShiftParameter(i int, delta float64) (*Circuit, error) {
	g, ref, err := c.Resolve(i)
	if err != nil {
		return nil, err
	}
	shifted, err := g.WithParam(ref.Param, g.Param(ref.Param)+delta)
	if err != nil {
		return nil, err
	}
	ops := c.Operations()
	ops[ref.Op] = shifted
	return New(ops, c.meas, WithTrainable(c.trainable...)), nil
}
