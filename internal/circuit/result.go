package circuit

// Value is the numeric output of a single measurement: length 1 for an
// expectation value, 2^n for a probability distribution over n wires.
type Value []float64

// Result holds one Value per measurement of a circuit, in measurement order.
type Result []Value

// Clone returns a deep copy of the value.
func (v Value) Clone() Value {
	out := make(Value, len(v))
	copy(out, v)
	return out
}
