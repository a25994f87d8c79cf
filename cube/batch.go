package cube

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Job names one input and output pair for TransposeAll.
type Job struct {
	Input  string
	Output string
}

// TransposeAll runs Transpose for every job with at most limit running at
// once (no limit when limit < 1). Each call keeps its own transform and
// buffers. Results are returned in job order; after the first failure no
// further jobs are started and the error names the failing input.
func TransposeAll(ctx context.Context, jobs []Job, limit int, opts ...Option) ([]*Result, error) {
	results := make([]*Result, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, job := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := Transpose(job.Input, job.Output, opts...)
			if err != nil {
				return fmt.Errorf("%s: %w", job.Input, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
