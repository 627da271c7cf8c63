package session

import (
	"time"

	"github.com/edp1096/toy-circuit/internal/consts"
)

type Config struct {
	TickInterval time.Duration // Wall time between periodic passes
	TickDelta    float64       // Simulated seconds per periodic pass
	StepDelta    float64       // Simulated seconds per manual step
}

func DefaultConfig() Config {
	return Config{
		TickInterval: 16 * time.Millisecond,
		TickDelta:    consts.TickDelta,
		StepDelta:    consts.StepDelta,
	}
}

// Clock delivers periodic ticks to Session.Run.
type Clock interface {
	C() <-chan time.Time
	Stop()
}

type tickerClock struct{ ticker *time.Ticker }

func NewTickerClock(interval time.Duration) Clock {
	return &tickerClock{ticker: time.NewTicker(interval)}
}

func (c *tickerClock) C() <-chan time.Time { return c.ticker.C }
func (c *tickerClock) Stop()               { c.ticker.Stop() }
