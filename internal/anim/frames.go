// Package anim drives the viewer's animation: a per-frame callback queue
// standing in for the host's display refresh, a rate throttle, and the
// play/pause scheduler built on both.
package anim

import "time"

// FrameFunc is called with the timestamp of the delivered frame, measured
// from an arbitrary host-defined origin.
type FrameFunc func(ts time.Duration)

// FrameHandle identifies a pending frame request. The zero handle is never
// issued.
type FrameHandle uint64

// FrameRequester is the host's per-frame callback facility.
type FrameRequester interface {
	// RequestFrame schedules fn for the next frame and returns a handle
	// that can cancel it.
	RequestFrame(fn FrameFunc) FrameHandle
	// CancelFrame drops a pending request. Unknown or already-delivered
	// handles are ignored.
	CancelFrame(h FrameHandle)
}

type pendingFrame struct {
	handle FrameHandle
	fn     FrameFunc
}

// FrameQueue is a single-threaded FrameRequester. The host calls Dispatch
// once per display refresh or timer tick.
type FrameQueue struct {
	next     FrameHandle
	pending  []pendingFrame
	inflight []pendingFrame
}

// NewFrameQueue returns an empty queue.
func NewFrameQueue() *FrameQueue { return &FrameQueue{} }

// RequestFrame queues fn for the next Dispatch.
func (q *FrameQueue) RequestFrame(fn FrameFunc) FrameHandle {
	q.next++
	q.pending = append(q.pending, pendingFrame{handle: q.next, fn: fn})
	return q.next
}

// CancelFrame removes h from the queue. Called from inside a callback it
// also drops members of the current batch that have not run yet.
func (q *FrameQueue) CancelFrame(h FrameHandle) {
	for i := range q.inflight {
		if q.inflight[i].handle == h {
			q.inflight[i].fn = nil
			return
		}
	}
	for i, p := range q.pending {
		if p.handle == h {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
}

// Pending returns the number of requests waiting for the next Dispatch.
func (q *FrameQueue) Pending() int { return len(q.pending) }

// Dispatch delivers ts to every request queued before the call and returns
// how many callbacks ran. Requests made by the callbacks wait for the next
// Dispatch.
func (q *FrameQueue) Dispatch(ts time.Duration) int {
	q.inflight, q.pending = q.pending, nil
	delivered := 0
	for i := range q.inflight {
		fn := q.inflight[i].fn
		if fn == nil {
			continue
		}
		q.inflight[i].fn = nil
		fn(ts)
		delivered++
	}
	q.inflight = nil
	return delivered
}
