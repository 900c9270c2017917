package component_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/bnema/tripbook/internal/application/port"
	"github.com/bnema/tripbook/internal/domain/entity"
	"github.com/bnema/tripbook/internal/domain/suggest"
	"github.com/bnema/tripbook/internal/logging"
)

const asyncWait = 2 * time.Second

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

// fakeDispatcher runs timers only when the test says so. Callbacks posted by
// lookup goroutines are queued until runNext.
type fakeDispatcher struct {
	posted chan func()
	timers []*fakeTimer
}

func newFakeDispatcher() *fakeDispatcher {
	return &fakeDispatcher{posted: make(chan func(), 64)}
}

func (d *fakeDispatcher) Post(fn func()) {
	d.posted <- fn
}

func (d *fakeDispatcher) AfterFunc(delay time.Duration, fn func()) port.Timer {
	t := &fakeTimer{delay: delay, fn: fn}
	d.timers = append(d.timers, t)
	return t
}

// fireTimers runs every pending timer and returns how many fired.
func (d *fakeDispatcher) fireTimers() int {
	pending := make([]*fakeTimer, 0, len(d.timers))
	for _, t := range d.timers {
		if !t.stopped && !t.fired {
			pending = append(pending, t)
		}
	}
	for _, t := range pending {
		if t.stopped {
			continue
		}
		t.fired = true
		t.fn()
	}
	return len(pending)
}

func (d *fakeDispatcher) pendingTimers() int {
	n := 0
	for _, t := range d.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

func (d *fakeDispatcher) lastTimer() *fakeTimer {
	if len(d.timers) == 0 {
		return nil
	}
	return d.timers[len(d.timers)-1]
}

// runNext waits for one posted callback and runs it on the test goroutine.
func (d *fakeDispatcher) runNext(t *testing.T) {
	t.Helper()
	select {
	case fn := <-d.posted:
		fn()
	case <-time.After(asyncWait):
		t.Fatal("timed out waiting for posted callback")
	}
}

func (d *fakeDispatcher) assertNothingPosted(t *testing.T) {
	t.Helper()
	select {
	case <-d.posted:
		t.Fatal("unexpected posted callback")
	case <-time.After(20 * time.Millisecond):
	}
}

type fakeTimer struct {
	delay   time.Duration
	fn      func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// scriptedProvider blocks every search until the test replies, so tests
// choose the order in which responses arrive.
type scriptedProvider struct {
	requests chan *pendingSearch
}

type pendingSearch struct {
	category entity.Category
	query    string
	reply    chan searchReply
}

type searchReply struct {
	results []entity.SearchResult
	err     error
}

func newScriptedProvider() *scriptedProvider {
	return &scriptedProvider{requests: make(chan *pendingSearch, 16)}
}

func (p *scriptedProvider) Search(_ context.Context, category entity.Category, query string) ([]entity.SearchResult, error) {
	req := &pendingSearch{category: category, query: query, reply: make(chan searchReply, 1)}
	p.requests <- req
	r := <-req.reply
	return r.results, r.err
}

func (p *scriptedProvider) next(t *testing.T) *pendingSearch {
	t.Helper()
	select {
	case req := <-p.requests:
		return req
	case <-time.After(asyncWait):
		t.Fatal("timed out waiting for search request")
		return nil
	}
}

func (p *scriptedProvider) assertNoRequest(t *testing.T) {
	t.Helper()
	select {
	case req := <-p.requests:
		t.Fatalf("unexpected search request for %q", req.query)
	case <-time.After(20 * time.Millisecond):
	}
}

func (r *pendingSearch) respond(results ...entity.SearchResult) {
	r.reply <- searchReply{results: results}
}

func (r *pendingSearch) fail(err error) {
	r.reply <- searchReply{err: err}
}

// memoryRecents is an in-memory port.RecentItems.
type memoryRecents struct {
	mu    sync.Mutex
	lists map[entity.Category][]string
}

func newMemoryRecents() *memoryRecents {
	return &memoryRecents{lists: make(map[entity.Category][]string)}
}

func (m *memoryRecents) Add(_ context.Context, category entity.Category, item string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lists[category] = suggest.PushRecent(m.lists[category], item, suggest.DefaultRecentCapacity)
}

func (m *memoryRecents) Get(_ context.Context, category entity.Category) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string{}, m.lists[category]...)
}

// scriptedLookup blocks every route price lookup until the test replies.
type scriptedLookup struct {
	requests chan *pendingLookup
}

type pendingLookup struct {
	route entity.RouteKey
	reply chan lookupReply
}

type lookupReply struct {
	price float64
	found bool
	err   error
}

func newScriptedLookup() *scriptedLookup {
	return &scriptedLookup{requests: make(chan *pendingLookup, 16)}
}

func (l *scriptedLookup) LookupRoutePrice(_ context.Context, origin, destination string) (float64, bool, error) {
	req := &pendingLookup{route: entity.NewRouteKey(origin, destination), reply: make(chan lookupReply, 1)}
	l.requests <- req
	r := <-req.reply
	return r.price, r.found, r.err
}

func (l *scriptedLookup) InvalidateRoutePrice(string, string) {}

func (l *scriptedLookup) InvalidateAll() {}

func (l *scriptedLookup) next(t *testing.T) *pendingLookup {
	t.Helper()
	select {
	case req := <-l.requests:
		return req
	case <-time.After(asyncWait):
		t.Fatal("timed out waiting for route price lookup")
		return nil
	}
}

func (r *pendingLookup) found(price float64) {
	r.reply <- lookupReply{price: price, found: true}
}

func (r *pendingLookup) notFound() {
	r.reply <- lookupReply{}
}

func (r *pendingLookup) fail(err error) {
	r.reply <- lookupReply{err: err}
}

func result(kind entity.Kind, value string) entity.SearchResult {
	return entity.SearchResult{
		ID:       suggest.ResultID(kind, entity.CategoryVehicle, value),
		Value:    value,
		Label:    value,
		Kind:     kind,
		Category: entity.CategoryVehicle,
	}
}

func values(results []entity.SearchResult) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Value
	}
	return out
}
