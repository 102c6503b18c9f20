package services

import (
	"context"
	"sync"
)

// Readiness is a once-only future. It resolves exactly once, with or without
// an error, and never goes back.
type Readiness struct {
	once sync.Once
	done chan struct{}
	err  error
}

func NewReadiness() *Readiness {
	return &Readiness{done: make(chan struct{})}
}

// Resolve settles the future. Calls after the first are ignored.
func (r *Readiness) Resolve(err error) {
	r.once.Do(func() {
		r.err = err
		close(r.done)
	})
}

// Ready reports whether the future resolved successfully, without blocking.
func (r *Readiness) Ready() bool {
	select {
	case <-r.done:
		return r.err == nil
	default:
		return false
	}
}

// Err returns the resolution error, or nil while still pending.
func (r *Readiness) Err() error {
	select {
	case <-r.done:
		return r.err
	default:
		return nil
	}
}

// Wait blocks until the future resolves or ctx is done.
func (r *Readiness) Wait(ctx context.Context) error {
	select {
	case <-r.done:
		return r.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
