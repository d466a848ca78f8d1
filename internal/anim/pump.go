package anim

import (
	"context"
	"time"

	channerics "github.com/niceyeti/channerics/channels"
)

// DefaultPumpInterval approximates a 60Hz display refresh.
const DefaultPumpInterval = time.Second / 60

// Pump emits a frame signal every interval for hosts that have no display
// refresh callback. dispatch receives the time elapsed since Pump started
// and must hand the frame to the goroutine that owns the viewer. Pump
// returns when ctx is done.
func Pump(ctx context.Context, interval time.Duration, dispatch func(ts time.Duration)) error {
	if interval <= 0 {
		interval = DefaultPumpInterval
	}
	start := time.Now()
	ticker := channerics.NewTicker(ctx.Done(), interval)
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-ticker:
			if !ok {
				return nil
			}
			dispatch(time.Since(start))
		}
	}
}
