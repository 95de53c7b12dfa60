// Command halo2 prints the metrics scaffold for the halo2 proving system.
// Usage: halo2 [circuit_size]
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
	out, err := benchmark.NewHalo2Report("ecdsa_verification", size).Render()
	if err != nil {
		log := logger.Logger()
		log.Error().Err(err).Msg("rendering report")
		return
	}
	fmt.Println(string(out))
}
