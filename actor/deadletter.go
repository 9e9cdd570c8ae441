package actor

import (
	"sync"

	"github.com/t3rm1n4l/go-mpscqueue"
)

// Letter records a message that was still queued when its recipient
// terminated and that carried no cleanup hook of its own.
type Letter struct {
	PID string
	Msg any
}

// deadletterSink buffers discarded messages on a lock-free MPSC queue:
// any number of terminating actors push, a single diagnostic consumer
// drains.
type deadletterSink struct {
	q       *mpsc.MPSCQueue
	drainMu sync.Mutex
}

var deadletters = &deadletterSink{q: mpsc.New()}

func (s *deadletterSink) record(pid string, msg any) {
	s.q.Push(Letter{PID: pid, Msg: msg})
}

func (s *deadletterSink) drain() []Letter {
	s.drainMu.Lock()
	defer s.drainMu.Unlock()
	var out []Letter
	for s.q.Size() != 0 {
		out = append(out, s.q.Pop().(Letter))
	}
	return out
}

// Deadletters drains and returns every message discarded since the last
// call. Diagnostic use only.
func Deadletters() []Letter {
	return deadletters.drain()
}
