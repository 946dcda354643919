package clock

import (
	"sync"
	"time"
)

// Ticker implements ports.Scheduler with time.Ticker goroutines
type Ticker struct{}

// NewTicker creates a scheduler backed by the wall clock
func NewTicker() *Ticker {
	return &Ticker{}
}

// Every calls fn every interval until stop is called.
// stop is idempotent and does not wait for a callback in flight.
func (t *Ticker) Every(interval time.Duration, fn func()) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				select {
				case <-done:
					return
				default:
				}
				fn()
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() { close(done) })
	}
}
