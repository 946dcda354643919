package ports

import "time"

// Scheduler runs a function repeatedly
type Scheduler interface {
	// Every calls fn once per interval until the returned stop function is called.
	// stop is idempotent and does not wait for a call already in flight.
	Every(interval time.Duration, fn func()) (stop func())
}
