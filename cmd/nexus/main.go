// Command nexus prints the metrics scaffold for the Nexus prover.
// Usage: nexus [circuit_size]
package main

import (
	"fmt"
	"os"

	"github.com/rosemary-crypto/zkvm-benchmark/benchmark"
	"github.com/rosemary-crypto/zkvm-benchmark/logger"
)

func main() {
	size := benchmark.DefaultCircuitSize
	if len(os.Args) > 1 {
		size = os.Args[1]
	}
	out, err := benchmark.NewNexusReport("ecdsa_verification", size).Render()
	if err != nil {
		log := logger.Logger()
		log.Error().Err(err).Msg("rendering report")
		return
	}
	fmt.Println(string(out))
}
