package opener

import (
	"sync"
	"time"

	"github.com/atomicstack/rightclick/internal/menu"
)

// DefaultLaunchInterval spaces out browser launches when clicks arrive in
// bursts, for example from a script hammering the HTTP click endpoint.
const DefaultLaunchInterval = 750 * time.Millisecond

// Throttled forwards to another opener no more often than once per interval.
// Open blocks until the slot is free, so call it off the UI goroutine.
type Throttled struct {
	next     menu.Opener
	throttle *throttle
}

// NewThrottled wraps next. A non-positive interval disables throttling.
func NewThrottled(next menu.Opener, interval time.Duration) *Throttled {
	return &Throttled{next: next, throttle: newThrottle(interval)}
}

// Open implements menu.Opener.
func (t *Throttled) Open(url string) error {
	t.throttle.wait()
	return t.next.Open(url)
}

// throttle ensures a minimum interval between successive operations.
type throttle struct {
	interval time.Duration
	now      func() time.Time
	sleep    func(time.Duration)

	mu   sync.Mutex
	next time.Time
}

func newThrottle(interval time.Duration) *throttle {
	return &throttle{interval: max(interval, 0), now: time.Now, sleep: time.Sleep}
}

func (t *throttle) wait() {
	if t == nil || t.interval <= 0 {
		return
	}
	for {
		t.mu.Lock()
		wait := t.next.Sub(t.now())
		if wait <= 0 {
			t.next = t.now().Add(t.interval)
			t.mu.Unlock()
			return
		}
		t.mu.Unlock()
		t.sleep(min(wait, t.interval))
	}
}
