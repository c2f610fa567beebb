// Package clock provides the frame schedulers used to animate charts.
package clock

import (
	"context"
	"sync"
	"time"
)

type queue struct {
	mu      sync.Mutex
	funcs   []func(time.Duration)
	running int
}

func (q *queue) push(fn func(time.Duration)) {
	if fn == nil {
		return
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.funcs = append(q.funcs, fn)
}

// take empties the queue. Callbacks pushed while the returned ones run are
// kept for the next frame.
func (q *queue) take() []func(time.Duration) {
	q.mu.Lock()
	defer q.mu.Unlock()
	list := q.funcs
	q.funcs = nil
	return list
}

func (q *queue) run(now time.Duration) int {
	list := q.take()
	q.mu.Lock()
	q.running = len(list)
	q.mu.Unlock()
	for _, fn := range list {
		fn(now)
	}
	q.mu.Lock()
	q.running = 0
	q.mu.Unlock()
	return len(list)
}

// len counts the callbacks waiting for a frame and the ones currently
// running.
func (q *queue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.funcs) + q.running
}

// Manual is a clock that only moves when told to. Frames requested on it run
// on the goroutine calling Advance.
type Manual struct {
	mu  sync.Mutex
	now time.Duration
	queue
}

func NewManual() *Manual {
	return &Manual{}
}

func (m *Manual) Now() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *Manual) RequestFrame(fn func(time.Duration)) {
	m.push(fn)
}

// Pending returns the number of callbacks waiting for the next frame.
func (m *Manual) Pending() int {
	return m.len()
}

// Advance moves the clock forward by d and runs the callbacks requested so
// far. It returns the number of callbacks run.
func (m *Manual) Advance(d time.Duration) int {
	if d < 0 {
		d = 0
	}
	m.mu.Lock()
	m.now += d
	now := m.now
	m.mu.Unlock()

	return m.queue.run(now)
}

// Drain advances the clock by step until no callback is pending and returns
// the number of frames produced.
func (m *Manual) Drain(step time.Duration) int {
	if step <= 0 {
		return 0
	}
	var frames int
	for m.Pending() > 0 {
		m.Advance(step)
		frames++
	}
	return frames
}

// Ticker is a real time clock. Requested callbacks run serially on a single
// goroutine at every tick of its interval.
type Ticker struct {
	start    time.Time
	interval time.Duration
	cancel   context.CancelFunc
	done     chan struct{}
	queue
}

func NewTicker(ctx context.Context, interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = time.Second / 60
	}
	ctx, cancel := context.WithCancel(ctx)
	t := Ticker{
		start:    time.Now(),
		interval: interval,
		cancel:   cancel,
		done:     make(chan struct{}),
	}
	go t.loop(ctx)
	return &t
}

func (t *Ticker) Now() time.Duration {
	return time.Since(t.start)
}

func (t *Ticker) RequestFrame(fn func(time.Duration)) {
	t.push(fn)
}

func (t *Ticker) Pending() int {
	return t.len()
}

// Wait blocks until no callback is pending or ctx is done.
func (t *Ticker) Wait(ctx context.Context) error {
	tick := time.NewTicker(t.interval)
	defer tick.Stop()
	for t.Pending() > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.done:
			return nil
		case <-tick.C:
		}
	}
	return nil
}

// Close stops the ticker and waits for its goroutine to exit. Pending
// callbacks are dropped.
func (t *Ticker) Close() error {
	t.cancel()
	<-t.done
	return nil
}

func (t *Ticker) loop(ctx context.Context) {
	defer close(t.done)

	tick := time.NewTicker(t.interval)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			t.take()
			return
		case <-tick.C:
			t.queue.run(t.Now())
		}
	}
}
