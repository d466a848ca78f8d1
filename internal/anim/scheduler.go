package anim

import "time"

// Scheduler runs tick at most fpsLimit times per second while playing. It
// piggybacks on the host's frame signal, so the effective rate can never
// exceed the rate at which frames are delivered.
type Scheduler struct {
	frames   FrameRequester
	tick     func()
	throttle *Throttle
	handle   FrameHandle

	generations uint64
	skipped     uint64
}

// NewScheduler returns a paused scheduler. tick is called for every
// accepted frame.
func NewScheduler(frames FrameRequester, fpsLimit int, tick func()) *Scheduler {
	return &Scheduler{frames: frames, tick: tick, throttle: NewThrottle(fpsLimit)}
}

// IsPlaying reports whether a frame request is outstanding.
func (s *Scheduler) IsPlaying() bool { return s.handle != 0 }

// Play starts requesting frames. It is a no-op while already playing.
func (s *Scheduler) Play() {
	if s.IsPlaying() {
		return
	}
	s.handle = s.frames.RequestFrame(s.onFrame)
}

// Pause cancels the outstanding frame request.
func (s *Scheduler) Pause() {
	if !s.IsPlaying() {
		return
	}
	s.frames.CancelFrame(s.handle)
	s.handle = 0
}

// Toggle switches between playing and paused.
func (s *Scheduler) Toggle() {
	if s.IsPlaying() {
		s.Pause()
		return
	}
	s.Play()
}

// SetFPSLimit changes the rate limit; 0 disables throttling. The next
// delivered frame uses the new limit.
func (s *Scheduler) SetFPSLimit(limit int) { s.throttle.SetLimit(limit) }

// FPSLimit returns the current rate limit.
func (s *Scheduler) FPSLimit() int { return s.throttle.Limit() }

// Previous returns the timestamp of the last accepted frame.
func (s *Scheduler) Previous() time.Duration { return s.throttle.Previous() }

// Generations returns how many frames were accepted.
func (s *Scheduler) Generations() uint64 { return s.generations }

// Skipped returns how many delivered frames the throttle dropped.
func (s *Scheduler) Skipped() uint64 { return s.skipped }

func (s *Scheduler) onFrame(ts time.Duration) {
	// Reschedule first so Pause always has a live handle to cancel, even if
	// tick pauses us.
	s.handle = s.frames.RequestFrame(s.onFrame)

	if !s.throttle.Ready(ts) {
		s.skipped++
		return
	}
	if s.tick != nil {
		s.tick()
	}
	s.generations++
	s.throttle.Mark(ts)
}
