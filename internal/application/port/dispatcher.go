package port

import "time"

// Timer is a cancellable pending callback.
type Timer interface {
	// Stop prevents the callback from running. It returns false if the
	// callback already ran or was already stopped.
	Stop() bool
}

// Dispatcher runs callbacks on the single UI thread that owns component state.
// Components only mutate their state from callbacks delivered by their
// dispatcher, so they need no locking of their own.
type Dispatcher interface {
	// Post queues fn to run on the UI thread. Safe to call from any goroutine.
	Post(fn func())

	// AfterFunc runs fn on the UI thread once d has elapsed, unless stopped first.
	AfterFunc(d time.Duration, fn func()) Timer
}
