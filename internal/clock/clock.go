package clock

import (
	"sync"
	"time"
)

// Clock schedules periodic callbacks. Engines depend on it instead of time.Ticker
// so tests can drive virtual time.
type Clock interface {
	Now() time.Time
	// Every calls fn once per interval until the returned Timer is stopped.
	Every(interval time.Duration, fn func(now time.Time)) Timer
}

// Timer is a handle to a periodic registration.
// Stop is idempotent and may be called from inside the callback.
type Timer interface {
	Stop()
}

type realClock struct{}

// NewReal returns a Clock backed by time.Ticker.
func NewReal() Clock { return realClock{} }

func (realClock) Now() time.Time { return time.Now() }

func (realClock) Every(interval time.Duration, fn func(now time.Time)) Timer {
	t := &realTimer{stop: make(chan struct{})}
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-t.stop:
				return
			case now := <-ticker.C:
				// Stop may have won the race against this tick.
				select {
				case <-t.stop:
					return
				default:
				}
				fn(now)
			}
		}
	}()
	return t
}

type realTimer struct {
	stop chan struct{}
	once sync.Once
}

func (t *realTimer) Stop() {
	t.once.Do(func() { close(t.stop) })
}
