package anim

import "time"

// Throttle drops frames that arrive sooner than 1/limit seconds after the
// last accepted one. It does not own a timer; the host's frame signal
// decides when it is consulted.
type Throttle struct {
	limit    int
	step     time.Duration
	previous time.Duration
}

// NewThrottle constructs a Throttle targeting the given frames per second.
// A limit of 0 or less disables throttling.
func NewThrottle(limit int) *Throttle {
	t := &Throttle{}
	t.SetLimit(limit)
	return t
}

// SetLimit changes the rate. It takes effect on the next Ready call.
func (t *Throttle) SetLimit(limit int) {
	if limit <= 0 {
		t.limit, t.step = 0, 0
		return
	}
	t.limit = limit
	t.step = time.Second / time.Duration(limit)
}

// Limit returns the configured frames per second, 0 when unthrottled.
func (t *Throttle) Limit() int { return t.limit }

// Interval returns the minimum spacing between accepted frames.
func (t *Throttle) Interval() time.Duration { return t.step }

// Previous returns the timestamp of the last accepted frame.
func (t *Throttle) Previous() time.Duration { return t.previous }

// Ready reports whether a frame stamped ts should be accepted.
func (t *Throttle) Ready(ts time.Duration) bool {
	if t.limit <= 0 {
		return true
	}
	return ts-t.previous >= t.step
}

// Mark records ts as the last accepted frame. Timestamps older than the
// current one are ignored so Previous never moves backwards.
func (t *Throttle) Mark(ts time.Duration) {
	if ts > t.previous {
		t.previous = ts
	}
}
