package blobstore

import (
	"context"
	"io"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Throttled wraps a Store with IO throughput and concurrency limits,
// so background snapshot traffic cannot starve the rest of the process.
type Throttled struct {
	inner   Store
	limiter *rate.Limiter       // nil if unlimited
	sem     *semaphore.Weighted // nil if unlimited
}

var _ Store = (*Throttled)(nil)

// ThrottleConfig holds the limits for a Throttled store.
type ThrottleConfig struct {
	// BytesPerSec caps Put/Open throughput. 0 means unlimited.
	BytesPerSec int
	// MaxConcurrent caps in-flight operations. 0 means unlimited.
	MaxConcurrent int64
}

// NewThrottled wraps inner with the given limits.
func NewThrottled(inner Store, cfg ThrottleConfig) *Throttled {
	t := &Throttled{inner: inner}
	if cfg.BytesPerSec > 0 {
		t.limiter = rate.NewLimiter(rate.Limit(cfg.BytesPerSec), cfg.BytesPerSec)
	}
	if cfg.MaxConcurrent > 0 {
		t.sem = semaphore.NewWeighted(cfg.MaxConcurrent)
	}
	return t
}

func (t *Throttled) acquire(ctx context.Context) (func(), error) {
	if t.sem == nil {
		return func() {}, nil
	}
	if err := t.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	return func() { t.sem.Release(1) }, nil
}

// Put writes a blob, pacing the bytes read from r.
func (t *Throttled) Put(ctx context.Context, name string, r io.Reader) error {
	release, err := t.acquire(ctx)
	if err != nil {
		return err
	}
	defer release()

	if t.limiter != nil {
		r = &pacedReader{ctx: ctx, limiter: t.limiter, inner: r}
	}
	return t.inner.Put(ctx, name, r)
}

// Open opens a blob; reads through the returned reader are paced.
func (t *Throttled) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	release, err := t.acquire(ctx)
	if err != nil {
		return nil, err
	}

	rc, err := t.inner.Open(ctx, name)
	if err != nil {
		release()
		return nil, err
	}
	if t.limiter == nil {
		release()
		return rc, nil
	}
	return &pacedReadCloser{
		pacedReader: pacedReader{ctx: ctx, limiter: t.limiter, inner: rc},
		closer:      rc,
		release:     release,
	}, nil
}

func (t *Throttled) Delete(ctx context.Context, name string) error {
	release, err := t.acquire(ctx)
	if err != nil {
		return err
	}
	defer release()
	return t.inner.Delete(ctx, name)
}

func (t *Throttled) List(ctx context.Context, prefix string) ([]string, error) {
	release, err := t.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()
	return t.inner.List(ctx, prefix)
}

// pacedReader waits on the rate limiter for every chunk it passes
// through. Chunks larger than the limiter burst are split so WaitN
// never exceeds it.
type pacedReader struct {
	ctx     context.Context
	limiter *rate.Limiter
	inner   io.Reader
}

func (r *pacedReader) Read(p []byte) (int, error) {
	if burst := r.limiter.Burst(); len(p) > burst {
		p = p[:burst]
	}
	n, err := r.inner.Read(p)
	if n > 0 {
		if werr := r.limiter.WaitN(r.ctx, n); werr != nil {
			return n, werr
		}
	}
	return n, err
}

type pacedReadCloser struct {
	pacedReader
	closer  io.Closer
	release func()
}

func (r *pacedReadCloser) Close() error {
	r.release()
	return r.closer.Close()
}
