package gradients

import (
	"fmt"

	"github.com/qugrad-ml/qugrad/internal/circuit"
)

// pickAuxWire selects a free wire for the hadamard test: the first device
// wire not used by the circuit or, without device wires, one past the
// largest circuit wire.
func pickAuxWire(c *circuit.Circuit, deviceWires []int) (int, error) {
	if deviceWires != nil {
		for _, w := range deviceWires {
			if !c.HasWire(w) {
				return w, nil
			}
		}
		return 0, fmt.Errorf("gradients: %w", ErrNoSpareWire)
	}
	next := 0
	for _, w := range c.Wires() {
		if w >= next {
			next = w + 1
		}
	}
	return next, nil
}
