package server

import (
	"context"
	"sync"
	"time"
)

// clockService keeps at most one countdown per room. Starting a clock
// replaces any previous one; replacement and cancellation go through the
// same mutex so a cancelled clock can never fire its expiry callback.
type clockService struct {
	mu     sync.Mutex
	clocks map[string]*roomClock
}

type roomClock struct {
	cancel context.CancelFunc
}

func newClockService() *clockService {
	return &clockService{clocks: make(map[string]*roomClock)}
}

// Start arms a countdown of the given number of seconds. tick is invoked
// once immediately and then every second with the remaining time; expire is
// invoked (from the clock goroutine) when the countdown reaches zero.
func (c *clockService) Start(code string, seconds int, tick func(remaining int), expire func()) {
	ctx, cancel := context.WithCancel(context.Background())
	clock := &roomClock{cancel: cancel}

	c.mu.Lock()
	if prev, ok := c.clocks[code]; ok {
		prev.cancel()
	}
	c.clocks[code] = clock
	c.mu.Unlock()

	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()

		remaining := seconds
		tick(remaining)
		for {
			select {
			case <-ticker.C:
				remaining--
				tick(remaining)
				if remaining <= 0 {
					if c.disarm(code, clock) {
						expire()
					}
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Cancel stops the room's clock, if any. Safe to call with no clock armed.
func (c *clockService) Cancel(code string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if clock, ok := c.clocks[code]; ok {
		clock.cancel()
		delete(c.clocks, code)
	}
}

// disarm removes the clock on natural expiry. It reports false when the
// clock was replaced or cancelled while the last tick was in flight, in
// which case the expiry callback must not run.
func (c *clockService) disarm(code string, clock *roomClock) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if current, ok := c.clocks[code]; !ok || current != clock {
		return false
	}
	clock.cancel()
	delete(c.clocks, code)
	return true
}

func (c *clockService) active(code string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.clocks[code]
	return ok
}
