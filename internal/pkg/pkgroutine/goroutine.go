package pkgroutine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"
)

// DefaultMaxGoroutine is used when NewManager receives a non-positive limit.
const DefaultMaxGoroutine int = 10

// ErrPanic wraps the value recovered from a panicking task.
var ErrPanic = errors.New("goroutine panicked")

// Manager runs background tasks with a concurrency limit. Returned errors and
// recovered panics are collected and reported by Wait.
type Manager struct {
	mu      sync.Mutex
	errs    []error
	wg      sync.WaitGroup
	sema    chan struct{}
	running atomic.Int64
}

// NewManager creates a new Manager with the provided maximum concurrency.
func NewManager(maxGoroutine int) *Manager {
	if maxGoroutine < 1 {
		maxGoroutine = DefaultMaxGoroutine
	}

	return &Manager{
		sema: make(chan struct{}, maxGoroutine),
	}
}

// Go runs f in a goroutine once a slot is free.
//
// Go blocks while the manager is at its limit. If pCtx is done first, f is
// dropped and a warning is logged.
func (g *Manager) Go(pCtx context.Context, f func(ctx context.Context) error) {
	select {
	case g.sema <- struct{}{}:
	case <-pCtx.Done():
		slog.WarnContext(pCtx, "goroutine canceled before start", "because", pCtx.Err())
		return
	}

	g.launch(pCtx, f)
}

// TryGo runs f only when a slot is free right now and reports whether it did.
func (g *Manager) TryGo(pCtx context.Context, f func(ctx context.Context) error) bool {
	select {
	case g.sema <- struct{}{}:
	default:
		return false
	}

	g.launch(pCtx, f)
	return true
}

// launch starts f in a goroutine. The caller holds a slot, released when f returns.
func (g *Manager) launch(pCtx context.Context, f func(ctx context.Context) error) {
	g.wg.Add(1)
	g.running.Add(1)
	go func() {
		defer func() {
			if rvr := recover(); rvr != nil {
				slog.ErrorContext(pCtx, "panic occurred in goroutine", "because", rvr, "stack", string(debug.Stack()))
				g.collect(fmt.Errorf("%w: %v", ErrPanic, rvr))
			}

			g.running.Add(-1)
			<-g.sema
			g.wg.Done()
		}()

		if err := pCtx.Err(); err != nil {
			slog.WarnContext(pCtx, "goroutine canceled", "because", err)
			return
		}

		if err := f(pCtx); err != nil {
			g.collect(err)
		}
	}()
}

// Running reports how many tasks are in flight.
func (g *Manager) Running() int {
	return int(g.running.Load())
}

func (g *Manager) collect(err error) {
	g.mu.Lock()
	g.errs = append(g.errs, err)
	g.mu.Unlock()
}

// Wait blocks until all scheduled goroutines finish and returns any collected errors.
func (g *Manager) Wait() error {
	g.wg.Wait()

	g.mu.Lock()
	defer g.mu.Unlock()

	return errors.Join(g.errs...)
}

// WaitContext is Wait bounded by ctx. On timeout the pending goroutines keep
// running and ctx.Err() is returned.
func (g *Manager) WaitContext(ctx context.Context) error {
	done := make(chan error, 1)
	go func() {
		done <- g.Wait()
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
