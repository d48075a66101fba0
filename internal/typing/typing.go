// Package typing reveals a fixed string one character per tick.
package typing

import (
	"context"
	"sync"
	"time"
)

// DefaultInterval is the delay between two revealed characters.
const DefaultInterval = 100 * time.Millisecond

// Effect holds the revealed prefix of a target string.
type Effect struct {
	mu     sync.Mutex
	target []rune
	shown  int
}

// New returns an effect with nothing revealed.
func New(target string) *Effect {
	return &Effect{target: []rune(target)}
}

// Text returns the revealed prefix.
func (e *Effect) Text() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return string(e.target[:e.shown])
}

// Done reports whether the full string is shown.
func (e *Effect) Done() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.shown == len(e.target)
}

// Tick reveals one more character. changed is false once the string is
// complete.
func (e *Effect) Tick() (text string, changed bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.shown == len(e.target) {
		return string(e.target), false
	}
	e.shown++
	return string(e.target[:e.shown]), true
}

// Start ticks every interval on its own goroutine and calls onChange with each
// new prefix. The returned stop function blocks until the goroutine has
// exited, so onChange is never called after stop returns. Stop is idempotent.
func (e *Effect) Start(interval time.Duration, onChange func(string)) (stop func()) {
	ticker := time.NewTicker(interval)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer ticker.Stop()
		e.run(ctx, ticker.C, onChange)
	}()
	return func() {
		cancel()
		<-done
	}
}

func (e *Effect) run(ctx context.Context, ticks <-chan time.Time, onChange func(string)) {
	for !e.Done() {
		select {
		case <-ctx.Done():
			return
		case <-ticks:
		}
		// Cancellation can race the tick; it wins.
		if ctx.Err() != nil {
			return
		}
		if text, changed := e.Tick(); changed && onChange != nil {
			onChange(text)
		}
	}
}
