// Package cooldown rate limits commands per key, usually a guild.
package cooldown

import (
	"sync"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"golang.org/x/time/rate"
)

type Cooldown struct {
	period time.Duration
	now    func() time.Time

	mu       sync.Mutex
	limiters map[snowflake.ID]*rate.Limiter
}

func New(period time.Duration) *Cooldown {
	return &Cooldown{
		period:   period,
		now:      time.Now,
		limiters: make(map[snowflake.ID]*rate.Limiter),
	}
}

func (c *Cooldown) Period() time.Duration {
	return c.period
}

// Allow consumes the cooldown for key. When it is still running Allow returns
// false and the time left.
func (c *Cooldown) Allow(key snowflake.ID) (bool, time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	limiter, ok := c.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(rate.Every(c.period), 1)
		c.limiters[key] = limiter
	}
	now := c.now()
	if limiter.AllowN(now, 1) {
		return true, 0
	}
	reservation := limiter.ReserveN(now, 1)
	wait := reservation.DelayFrom(now)
	reservation.CancelAt(now)
	return false, wait
}
