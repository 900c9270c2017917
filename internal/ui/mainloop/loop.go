// Package mainloop provides the single-threaded task loop that owns UI
// component state, plus helpers for scheduling work onto it.
package mainloop

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bnema/tripbook/internal/application/port"
)

// Loop runs posted callbacks one at a time on the goroutine that called Run.
// Post and AfterFunc are safe to call from any goroutine, including from
// inside a running callback.
type Loop struct {
	mu      sync.Mutex
	queue   []func()
	stopped bool
	wake    chan struct{}
}

var _ port.Dispatcher = (*Loop)(nil)

// New creates an idle loop. Nothing runs until Run or Drain is called.
func New() *Loop {
	return &Loop{
		wake: make(chan struct{}, 1),
	}
}

// Post queues fn. Callbacks posted after Stop are dropped.
func (l *Loop) Post(fn func()) {
	if fn == nil {
		return
	}

	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return
	}
	l.queue = append(l.queue, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// AfterFunc posts fn once d has elapsed. The returned timer's Stop, when
// called from the loop goroutine, guarantees fn will not run.
func (l *Loop) AfterFunc(d time.Duration, fn func()) port.Timer {
	t := &loopTimer{}
	t.timer = time.AfterFunc(d, func() {
		l.Post(func() {
			if t.state.CompareAndSwap(timerPending, timerFired) {
				fn()
			}
		})
	})
	return t
}

// Run processes callbacks until ctx is done or Stop is called.
func (l *Loop) Run(ctx context.Context) error {
	for {
		l.Drain()

		l.mu.Lock()
		stopped := l.stopped
		l.mu.Unlock()
		if stopped {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.wake:
		}
	}
}

// Notify returns a channel that receives after a Post. Hosts that drain the
// loop from their own event loop wait on it instead of calling Run.
func (l *Loop) Notify() <-chan struct{} {
	return l.wake
}

// Drain runs every queued callback, including ones queued while draining,
// and returns how many ran.
func (l *Loop) Drain() int {
	ran := 0
	for {
		l.mu.Lock()
		if len(l.queue) == 0 {
			l.mu.Unlock()
			return ran
		}
		batch := l.queue
		l.queue = nil
		l.mu.Unlock()

		for _, fn := range batch {
			fn()
			ran++
		}
	}
}

// Stop makes Run return after the current batch and drops further posts.
func (l *Loop) Stop() {
	l.mu.Lock()
	l.stopped = true
	l.queue = nil
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

const (
	timerPending int32 = iota
	timerStopped
	timerFired
)

type loopTimer struct {
	timer *time.Timer
	state atomic.Int32
}

func (t *loopTimer) Stop() bool {
	if !t.state.CompareAndSwap(timerPending, timerStopped) {
		return false
	}
	t.timer.Stop()
	return true
}
