package lm

import (
	"context"

	"golang.org/x/sync/errgroup"

	"ngram/internal/domain"
)

// CountParallel counts seqs in contiguous chunks across workers goroutines
// and merges the partial tables. The result equals Count(est, seqs).
// A cancelled ctx stops the remaining chunks and returns its error.
func CountParallel(ctx context.Context, est Estimator, seqs []domain.TokenSequence, workers int) (domain.CountTable, error) {
	if workers < 1 {
		workers = 1
	}
	if workers > len(seqs) {
		workers = len(seqs)
	}
	if workers <= 1 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return Count(est, seqs), nil
	}

	partials := make([]domain.CountTable, workers)
	chunk := (len(seqs) + workers - 1) / workers

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		start := w * chunk
		end := min(start+chunk, len(seqs))
		if start >= end {
			partials[w] = domain.CountTable{}
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			partials[w] = Count(est, seqs[start:end])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return Merge(partials...), nil
}

// Merge sums count tables into a new table.
func Merge(tables ...domain.CountTable) domain.CountTable {
	size := 0
	for _, t := range tables {
		size = max(size, len(t))
	}
	merged := make(domain.CountTable, size)
	for _, t := range tables {
		for unit, n := range t {
			merged[unit] += n
		}
	}
	return merged
}
