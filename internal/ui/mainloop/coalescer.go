package mainloop

import (
	"sync"

	"github.com/bnema/tripbook/internal/application/port"
)

// Coalescer merges bursts of same-key tasks so only the latest callback
// for a key runs once the dispatcher gets to it.
type Coalescer struct {
	mu         sync.Mutex
	pending    map[string]bool
	callbacks  map[string]func()
	dispatcher port.Dispatcher
	destroyed  bool
}

func NewCoalescer(dispatcher port.Dispatcher) *Coalescer {
	if dispatcher == nil {
		panic("mainloop.NewCoalescer: dispatcher cannot be nil")
	}

	return &Coalescer{
		pending:    make(map[string]bool),
		callbacks:  make(map[string]func()),
		dispatcher: dispatcher,
	}
}

func (c *Coalescer) Post(key string, fn func()) {
	if fn == nil || key == "" {
		return
	}

	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}
	c.callbacks[key] = fn
	if c.pending[key] {
		c.mu.Unlock()
		return
	}
	c.pending[key] = true
	c.mu.Unlock()

	c.dispatcher.Post(func() {
		c.mu.Lock()
		if c.destroyed {
			c.mu.Unlock()
			return
		}
		fn := c.callbacks[key]
		delete(c.pending, key)
		delete(c.callbacks, key)
		c.mu.Unlock()

		if fn != nil {
			fn()
		}
	})
}

func (c *Coalescer) Destroy() {
	c.mu.Lock()
	c.destroyed = true
	c.pending = map[string]bool{}
	c.callbacks = map[string]func(){}
	c.mu.Unlock()
}
