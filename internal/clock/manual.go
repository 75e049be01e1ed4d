package clock

import (
	"sync"
	"time"
)

// Manual is a virtual Clock. Nothing fires until Advance is called; callbacks then
// run synchronously on the caller's goroutine in fire-time order.
type Manual struct {
	mu     sync.Mutex
	now    time.Time
	timers []*manualTimer
	nextID int
}

type manualTimer struct {
	m        *Manual
	id       int
	interval time.Duration
	next     time.Time
	fn       func(now time.Time)
	stopped  bool
}

// NewManual returns a Manual clock set to start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *Manual) Every(interval time.Duration, fn func(now time.Time)) Timer {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	t := &manualTimer{
		m:        m,
		id:       m.nextID,
		interval: interval,
		next:     m.now.Add(interval),
		fn:       fn,
	}
	if interval <= 0 {
		// mirrors time.NewTicker refusing a non-positive period, without the panic
		t.stopped = true
		return t
	}
	m.timers = append(m.timers, t)
	return t
}

// Advance moves the clock forward by d, firing every callback that falls due.
// Callbacks may register or stop timers; a timer stopped mid-advance never fires again.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now.Add(d)
	m.mu.Unlock()

	for {
		m.mu.Lock()
		due := m.earliestDueLocked(target)
		if due == nil {
			m.now = target
			m.mu.Unlock()
			return
		}
		m.now = due.next
		due.next = due.next.Add(due.interval)
		fn, now := due.fn, m.now
		m.mu.Unlock()

		fn(now)
	}
}

// Pending reports how many timers are still registered.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.timers)
}

func (m *Manual) earliestDueLocked(target time.Time) *manualTimer {
	var due *manualTimer
	for _, t := range m.timers {
		if t.next.After(target) {
			continue
		}
		if due == nil || t.next.Before(due.next) || (t.next.Equal(due.next) && t.id < due.id) {
			due = t
		}
	}
	return due
}

func (t *manualTimer) Stop() {
	m := t.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if t.stopped {
		return
	}
	t.stopped = true
	for i, other := range m.timers {
		if other == t {
			m.timers = append(m.timers[:i], m.timers[i+1:]...)
			break
		}
	}
}
