package convert

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/kpfaulkner/gdxtex/core"
)

// Batch converts paths into outDir (next to each input when outDir is
// empty) using up to workers goroutines. A failing file is logged and
// recorded in its Outcome while the rest carry on. The returned error counts
// the failures, or is ctx's error when it is cancelled first; files that were
// never started then carry that error too.
func (c *Converter) Batch(ctx context.Context, paths []string, outDir string, ext string, workers int) ([]Outcome, error) {
	if workers < 1 {
		workers = 1
	}
	outcomes := make([]Outcome, len(paths))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				outcomes[i] = Outcome{Input: path, Err: err}
				return nil
			}
			outcomes[i] = c.Convert(path, OutputPath(path, outDir, ext))
			if outcomes[i].Err != nil {
				log.Errorf("%s: %v", path, outcomes[i].Err)
			}
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return outcomes, err
	}
	failed := 0
	for _, o := range outcomes {
		if o.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		return outcomes, fmt.Errorf("%d of %d files failed", failed, len(paths))
	}
	return outcomes, nil
}

// Batch converts paths to PNG with a default Converter around dec.
func Batch(ctx context.Context, paths []string, outDir string, dec *core.Decoder, workers int) ([]Outcome, error) {
	c := &Converter{Decoder: dec}
	return c.Batch(ctx, paths, outDir, ".png", workers)
}
