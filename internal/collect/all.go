package collect

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/stackmesa/qreport/internal/aggregate"
	"github.com/stackmesa/qreport/internal/models"
)

// All runs every domain collector concurrently and consolidates the
// results. The collectors share no mutable state, so one goroutine per
// domain is safe; only the filesystem is shared, and it is read-only during
// collection.
func All(ctx context.Context, opts Options) (*models.ConsolidatedSummary, error) {
	var (
		perf *models.PerformanceSummary
		a11y *models.AccessibilitySummary
		e2e  *models.E2ESummary
		vis  *models.VisualSummary
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		perf, err = Performance(ctx, opts)
		return err
	})
	g.Go(func() error {
		var err error
		a11y, err = Accessibility(ctx, opts)
		return err
	})
	g.Go(func() error {
		var err error
		e2e, err = E2E(ctx, opts)
		return err
	})
	g.Go(func() error {
		var err error
		vis, err = Visual(ctx, opts)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	c := aggregate.Consolidate(perf, a11y, e2e, vis)
	c.Artifacts = indexArtifacts(opts.Root)
	c.Metadata = models.RunMetadata{} // filled by the caller from CI env
	return c, nil
}
