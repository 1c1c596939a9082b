package parser

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/tailwater/sawmill/internal/model"
)

// ParseFiles parses several files concurrently with bounded parallelism and
// returns entries keyed by path. A missing file fails the whole call; the
// per-line drop semantics are unchanged.
func ParseFiles(ctx context.Context, paths []string) (map[string][]model.Entry, error) {
	results := make(map[string][]model.Entry, len(paths))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for _, path := range paths {
		path := path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p, err := New(path)
			if err != nil {
				return err
			}
			entries, err := p.Parse()
			if err != nil {
				return err
			}
			mu.Lock()
			results[path] = entries
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
