package anim

import (
	"context"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

func TestFrameQueue(t *testing.T) {
	Convey("Given a frame queue", t, func() {
		q := NewFrameQueue()
		var got []string

		Convey("Handles are distinct and nonzero", func() {
			a := q.RequestFrame(func(time.Duration) {})
			b := q.RequestFrame(func(time.Duration) {})
			So(a, ShouldNotEqual, FrameHandle(0))
			So(a, ShouldNotEqual, b)
			So(q.Pending(), ShouldEqual, 2)
		})

		Convey("A cancelled request is never delivered", func() {
			h := q.RequestFrame(func(time.Duration) { got = append(got, "cancelled") })
			q.RequestFrame(func(time.Duration) { got = append(got, "kept") })
			q.CancelFrame(h)
			So(q.Dispatch(ms(16)), ShouldEqual, 1)
			So(got, ShouldResemble, []string{"kept"})
		})

		Convey("Requests made during dispatch wait for the next frame", func() {
			var stamps []time.Duration
			var again FrameFunc
			again = func(ts time.Duration) {
				stamps = append(stamps, ts)
				q.RequestFrame(again)
			}
			q.RequestFrame(again)
			q.Dispatch(ms(16))
			So(stamps, ShouldResemble, []time.Duration{ms(16)})
			So(q.Pending(), ShouldEqual, 1)
			q.Dispatch(ms(33))
			So(stamps, ShouldResemble, []time.Duration{ms(16), ms(33)})
		})

		Convey("A callback can cancel a later member of the same batch", func() {
			var second FrameHandle
			q.RequestFrame(func(time.Duration) {
				got = append(got, "first")
				q.CancelFrame(second)
			})
			second = q.RequestFrame(func(time.Duration) { got = append(got, "second") })
			So(q.Dispatch(ms(16)), ShouldEqual, 1)
			So(got, ShouldResemble, []string{"first"})
		})

		Convey("Cancelling an unknown handle is harmless", func() {
			q.RequestFrame(func(time.Duration) {})
			q.CancelFrame(FrameHandle(999))
			So(q.Pending(), ShouldEqual, 1)
		})
	})
}

func TestScheduler(t *testing.T) {
	Convey("Given a paused scheduler limited to 10fps", t, func() {
		q := NewFrameQueue()
		ticks := 0
		s := NewScheduler(q, 10, func() { ticks++ })

		So(s.IsPlaying(), ShouldBeFalse)
		So(q.Pending(), ShouldEqual, 0)

		Convey("Frames are throttled against the last accepted timestamp", func() {
			s.Play()
			So(s.IsPlaying(), ShouldBeTrue)

			q.Dispatch(ms(0))
			So(ticks, ShouldEqual, 0)
			So(s.Skipped(), ShouldEqual, uint64(1))

			q.Dispatch(ms(50))
			So(ticks, ShouldEqual, 0)

			q.Dispatch(ms(120))
			So(ticks, ShouldEqual, 1)
			So(s.Previous(), ShouldEqual, ms(120))
			So(s.Generations(), ShouldEqual, uint64(1))
			So(s.Skipped(), ShouldEqual, uint64(2))
		})

		Convey("Every delivered frame reschedules, skipped or not", func() {
			s.Play()
			for _, ts := range []int{10, 20, 150, 160} {
				q.Dispatch(ms(ts))
				So(q.Pending(), ShouldEqual, 1)
			}
			So(ticks, ShouldEqual, 1)
		})

		Convey("Play, pause, play keeps exactly one request in flight", func() {
			s.Play()
			s.Play()
			So(q.Pending(), ShouldEqual, 1)

			s.Pause()
			So(s.IsPlaying(), ShouldBeFalse)
			So(q.Pending(), ShouldEqual, 0)

			q.Dispatch(ms(500))
			q.Dispatch(ms(1000))
			So(ticks, ShouldEqual, 0)

			s.Play()
			So(q.Pending(), ShouldEqual, 1)
			q.Dispatch(ms(1500))
			So(ticks, ShouldEqual, 1)
			So(q.Pending(), ShouldEqual, 1)
		})

		Convey("Pausing from inside a tick cancels the fresh request", func() {
			s = NewScheduler(q, 0, func() {
				ticks++
				s.Pause()
			})
			s.Play()
			q.Dispatch(ms(1))
			So(ticks, ShouldEqual, 1)
			So(s.IsPlaying(), ShouldBeFalse)
			So(q.Pending(), ShouldEqual, 0)
			q.Dispatch(ms(2))
			So(ticks, ShouldEqual, 1)
		})

		Convey("A limit change applies to the next delivered frame", func() {
			s.Play()
			q.Dispatch(ms(100))
			So(ticks, ShouldEqual, 1)

			s.SetFPSLimit(1)
			So(s.FPSLimit(), ShouldEqual, 1)
			q.Dispatch(ms(300))
			So(ticks, ShouldEqual, 1)

			s.SetFPSLimit(0)
			q.Dispatch(ms(301))
			So(ticks, ShouldEqual, 2)
		})

		Convey("Toggle flips between the two states", func() {
			s.Toggle()
			So(s.IsPlaying(), ShouldBeTrue)
			s.Toggle()
			So(s.IsPlaying(), ShouldBeFalse)
			So(q.Pending(), ShouldEqual, 0)
		})
	})
}

func TestPumpStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	frames := 0
	var last time.Duration
	err := Pump(ctx, 5*time.Millisecond, func(ts time.Duration) {
		if ts < last {
			t.Errorf("timestamp went backwards: %v after %v", ts, last)
		}
		last = ts
		frames++
	})
	if err != nil {
		t.Fatalf("Pump: %v", err)
	}
	if frames == 0 {
		t.Fatal("expected at least one frame before the deadline")
	}
}
