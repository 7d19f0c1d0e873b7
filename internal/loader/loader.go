// Package loader reads pair files concurrently and merges them into a single
// dictionary.
package loader

import (
	"context"
	"log/slog"

	"github.com/UTD-JLA/dictionary/pkg/dictionary"
	"github.com/UTD-JLA/dictionary/pkg/pairs"
	"golang.org/x/sync/errgroup"
)

// Load reads every source in c and inserts their pairs in source order, so a
// key found in a later source replaces the value from an earlier one without
// moving.
func Load[K comparable, V any](ctx context.Context, c Config) (*dictionary.Dictionary[K, V], error) {
	results := make([][]dictionary.Pair[K, V], len(c.Sources))

	g, ctx := errgroup.WithContext(ctx)
	if c.MaxConcurrent > 0 {
		g.SetLimit(c.MaxConcurrent)
	}

	for i, source := range c.Sources {
		g.Go(func() error {
			slog.Debug("reading source", slog.String("path", source.Path))

			ps, err := pairs.Load[K, V](ctx, source)
			if err != nil {
				return err
			}

			slog.Debug("read source", slog.String("path", source.Path), slog.Int("pairs", len(ps)))
			results[i] = ps
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return merge(results, c.Capacity), nil
}

func merge[K comparable, V any](results [][]dictionary.Pair[K, V], capacity int) *dictionary.Dictionary[K, V] {
	if capacity <= 0 {
		for _, ps := range results {
			capacity += len(ps)
		}
	}

	if capacity == 0 {
		return dictionary.New[K, V]()
	}

	d := dictionary.WithCapacity[K, V](capacity)

	for _, ps := range results {
		for _, p := range ps {
			d.Insert(p.Key, p.Value)
		}
	}

	return d
}
