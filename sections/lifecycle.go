package sections

import (
	"context"
	"sync"
)

// Section is one independently mounted part of the page. A section fetches at
// most once per mount and never touches another section's state.
type Section interface {
	Name() string
	Mount(ctx context.Context)
	Unmount()
	// Settled is closed once the initial fetch has resolved (or the section was
	// torn down before it did).
	Settled() <-chan struct{}
	Wait()
}

// lifecycle carries the mount state shared by every section. mu guards the
// embedding section's fields as well.
type lifecycle struct {
	mu        sync.Mutex
	ctx       context.Context
	cancel    context.CancelFunc
	mounted   bool
	unmounted bool

	settled    chan struct{}
	settleOnce sync.Once
	wg         sync.WaitGroup
}

func newLifecycle() *lifecycle {
	return &lifecycle{settled: make(chan struct{})}
}

// mount derives the section context and runs load in its own goroutine.
// Mounting twice, or after Unmount, is a no-op.
func (l *lifecycle) mount(parent context.Context, load func(ctx context.Context)) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.mounted || l.unmounted {
		return
	}
	l.ctx, l.cancel = context.WithCancel(parent)
	l.mounted = true

	if load == nil {
		l.markSettled()
		return
	}
	l.goLocked(func(ctx context.Context) {
		defer l.markSettled()
		load(ctx)
	})
}

// goLocked starts fn bound to the section context. Caller holds mu and has
// checked the section is mounted.
func (l *lifecycle) goLocked(fn func(ctx context.Context)) {
	ctx := l.ctx
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		fn(ctx)
	}()
}

// apply runs fn under the section lock only while the section is mounted.
// Results that arrive after Unmount are dropped here.
func (l *lifecycle) apply(fn func()) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.mounted || l.unmounted {
		return false
	}
	fn()
	return true
}

func (l *lifecycle) markSettled() {
	l.settleOnce.Do(func() { close(l.settled) })
}

func (l *lifecycle) isSettled() bool {
	select {
	case <-l.settled:
		return true
	default:
		return false
	}
}

// Unmount cancels the section context, which stops its timers and in-flight
// fetches, and blocks any later state change. Safe to call more than once.
func (l *lifecycle) Unmount() {
	l.mu.Lock()
	if l.unmounted {
		l.mu.Unlock()
		return
	}
	l.unmounted = true
	cancel := l.cancel
	l.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	l.markSettled()
}

// Mounted reports whether the section is currently live
func (l *lifecycle) Mounted() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.mounted && !l.unmounted
}

func (l *lifecycle) Settled() <-chan struct{} {
	return l.settled
}

// Wait blocks until every goroutine the section started has returned.
func (l *lifecycle) Wait() {
	l.wg.Wait()
}
