package snapshot

import (
	"context"
	"sync"

	"github.com/hupe1980/vect"
	"github.com/hupe1980/vect/blobstore"
	"golang.org/x/sync/errgroup"
)

// batchConcurrency bounds the number of in-flight store operations
// during SaveAll and LoadAll.
const batchConcurrency = 8

// SaveAll writes every vector in vs under its map key, concurrently.
// The first failure cancels the remaining operations; snapshots already
// written are not rolled back.
func SaveAll[T any](ctx context.Context, store blobstore.Store, vs map[string]*vect.Vector[T], optFns ...Option) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)

	for name, v := range vs {
		g.Go(func() error {
			return Save(ctx, store, name, v, optFns...)
		})
	}

	return g.Wait()
}

// LoadAll reads the named snapshots concurrently and returns them keyed
// by name. On error the partial results are discarded.
func LoadAll[T any](ctx context.Context, store blobstore.Store, names []string, optFns ...Option) (map[string]*vect.Vector[T], error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)

	var mu sync.Mutex
	out := make(map[string]*vect.Vector[T], len(names))

	for _, name := range names {
		g.Go(func() error {
			v, err := Load[T](ctx, store, name, optFns...)
			if err != nil {
				return err
			}

			mu.Lock()
			out[name] = v
			mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
