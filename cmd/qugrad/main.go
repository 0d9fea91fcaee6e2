// Package main provides the QuGrad framework CLI.
package main

import (
	"fmt"
	"os"

	"github.com/qugrad-ml/qugrad/circuit"
	"github.com/qugrad-ml/qugrad/gradients"
	"github.com/qugrad-ml/qugrad/simulator"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("QuGrad Framework %s\n", version)
			return
		case "demo":
			if err := demo(); err != nil {
				fmt.Fprintf(os.Stderr, "demo failed: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	fmt.Println("QuGrad Framework - Hadamard-Test Gradients for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  demo       Differentiate a small variational circuit")
}

// demo differentiates a three-parameter single-qubit circuit.
func demo() error {
	c := circuit.New(
		[]circuit.Gate{
			circuit.RX(0.1, 0),
			circuit.RY(0.2, 0),
			circuit.RX(0.3, 0),
		},
		[]circuit.Measurement{circuit.Expval(circuit.PauliZ(0))},
	)

	batch, err := gradients.Hadamard(c)
	if err != nil {
		return err
	}

	dev, err := simulator.New(2)
	if err != nil {
		return err
	}
	results, err := dev.RunAll(batch.Circuits)
	if err != nil {
		return err
	}

	grad, err := batch.PostProcess(results)
	if err != nil {
		return err
	}

	fmt.Printf("emitted %d auxiliary circuits\n", len(batch.Circuits))
	for i, v := range grad.ByParameter() {
		fmt.Printf("d<Z>/d theta_%d = %+.7f\n", i, v[0])
	}
	return nil
}
