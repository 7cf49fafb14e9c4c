package clock

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Clock provides the current local time and a periodic ticker.
// Tests substitute a clockwork fake clock to control both.
type Clock interface {
	Now() time.Time
	NewTicker(d time.Duration) clockwork.Ticker
}

// NewRealClock returns a Clock backed by the system time
func NewRealClock() Clock {
	return clockwork.NewRealClock()
}
