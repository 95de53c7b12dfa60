package benchmark

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/rosemary-crypto/zkvm-benchmark/logger"
)

// CollectAll builds the report for every known proving system concurrently
// and returns them in a fixed order (halo2, aleo-snarkos, aleo-snarkvm,
// miden, nexus).
func CollectAll(ctx context.Context, operation, circuitSize string) ([]*Report, error) {
	log := logger.Logger()

	builders := []func(string, string) *Report{
		NewHalo2Report,
		NewSnarkOSReport,
		NewSnarkVMReport,
		NewMidenReport,
		NewNexusReport,
	}

	reports := make([]*Report, len(builders))
	g, ctx := errgroup.WithContext(ctx)
	for i, build := range builders {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			reports[i] = build(operation, circuitSize)
			log.Debug().Str("system", reports[i].System).Msg("report collected")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
