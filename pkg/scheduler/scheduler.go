// Package scheduler controls when the textfield bridge delivers focus
// notifications and demand fulfillment back to the host.
//
// Delivering synchronously from inside a reconciliation pass can re-enter
// the host's render cycle while it is still rendering. The default
// [NextTick] scheduler defers delivery by one cooperative turn through the
// platform dispatch hook; hosts with different re-entrancy rules can pick
// [Immediate] or supply their own strategy.
package scheduler

import (
	"sync"

	"github.com/go-drift/textfield/pkg/platform"
)

// Scheduler delivers a callback according to a host-chosen strategy.
type Scheduler interface {
	// Schedule arranges for fn to run. Implementations decide whether that
	// happens on the current call stack or later.
	Schedule(fn func())
}

// Immediate runs callbacks synchronously on the caller's stack.
type Immediate struct{}

// Schedule runs fn immediately.
func (Immediate) Schedule(fn func()) {
	if fn != nil {
		fn()
	}
}

// NextTick defers callbacks by one turn of the UI loop using the platform
// dispatch hook. If no dispatch hook is registered the callback runs
// inline, which keeps headless hosts working.
type NextTick struct{}

// Schedule defers fn to the next UI turn.
func (NextTick) Schedule(fn func()) {
	if fn == nil {
		return
	}
	if !platform.Dispatch(fn) {
		fn()
	}
}

// Func adapts a plain function to a Scheduler.
type Func func(fn func())

// Schedule invokes the adapted function with fn.
func (f Func) Schedule(fn func()) {
	if f == nil || fn == nil {
		return
	}
	f(fn)
}

// Manual queues callbacks until drained. It exists for tests that need to
// observe the state between scheduling and delivery.
type Manual struct {
	mu    sync.Mutex
	queue []func()
}

// NewManual returns an empty manual scheduler.
func NewManual() *Manual {
	return &Manual{}
}

// Schedule appends fn to the queue.
func (m *Manual) Schedule(fn func()) {
	if fn == nil {
		return
	}
	m.mu.Lock()
	m.queue = append(m.queue, fn)
	m.mu.Unlock()
}

// Pending reports how many callbacks are queued.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queue)
}

// Step runs the oldest queued callback. It reports whether one ran.
func (m *Manual) Step() bool {
	m.mu.Lock()
	if len(m.queue) == 0 {
		m.mu.Unlock()
		return false
	}
	fn := m.queue[0]
	m.queue = m.queue[1:]
	m.mu.Unlock()
	fn()
	return true
}

// Drain runs queued callbacks until the queue is empty, including any
// scheduled while draining. It returns how many callbacks ran.
func (m *Manual) Drain() int {
	n := 0
	for m.Step() {
		n++
	}
	return n
}
