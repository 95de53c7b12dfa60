// Command zkbench prints the metric scaffolds of every known proving system
// as a single JSON array.
// Usage: zkbench [circuit_size]
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rosemary-crypto/zkvm-benchmark/benchmark"
	"github.com/rosemary-crypto/zkvm-benchmark/logger"
)

func main() {
	log := logger.Logger()
	size := benchmark.DefaultCircuitSize
	if len(os.Args) > 1 {
		size = os.Args[1]
	}
	reports, err := benchmark.CollectAll(context.Background(), "ecdsa_verification", size)
	if err != nil {
		log.Error().Err(err).Msg("collecting reports")
		return
	}
	out, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		log.Error().Err(err).Msg("rendering reports")
		return
	}
	fmt.Println(string(out))
}
