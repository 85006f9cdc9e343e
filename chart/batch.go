package chart

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Series returns one request per step from from through to inclusive,
// all sharing birthYear.
// Returns ErrEmptyRange if to is before from and ErrBadStep if step <= 0.
func Series(from, to time.Time, step time.Duration, birthYear string) ([]Request, error) {
	if step <= 0 {
		return nil, fmt.Errorf("Series(step=%s): %w", step, ErrBadStep)
	}
	if to.Before(from) {
		return nil, fmt.Errorf("Series(%s..%s): %w", from.Format(time.RFC3339), to.Format(time.RFC3339), ErrEmptyRange)
	}

	n := int(to.Sub(from)/step) + 1
	out := make([]Request, 0, n)
	for at := from; !at.After(to); at = at.Add(step) {
		out = append(out, Request{At: at, BirthYear: birthYear})
	}

	return out, nil
}

// GenerateAll generates a chart per request on a bounded worker pool.
// The result has the order of reqs. On cancellation it returns the
// context error and no charts.
func GenerateAll(ctx context.Context, reqs []Request, opts ...Option) ([]*Chart, error) {
	cfg := newConfig(opts...)
	if cfg.workers <= 0 {
		return nil, fmt.Errorf("GenerateAll(workers=%d): %w", cfg.workers, ErrBadWorkers)
	}

	out := make([]*Chart, len(reqs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)
	for i, r := range reqs {
		if gctx.Err() != nil {
			break
		}
		i, r := i, r
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = Generate(r.At, r.BirthYear, opts...)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("GenerateAll: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("GenerateAll: %w", err)
	}

	cfg.log.Debug("batch generated", zap.Int("charts", len(out)), zap.Int("workers", cfg.workers))

	return out, nil
}
