package reactor

import (
	"sync"

	"github.com/stagelight/mailroom/mailbox"
)

// Waker is the suspend/resume handle backing an event-loop mailbox. Wait
// parks the calling task; Signal, callable from any goroutine, asks the
// loop to resume it. A waker dies permanently when its owning task tears
// down (Cleanup) or when the loop stops; signaling a dead waker reports
// mailbox.ErrDeadWaker rather than silently doing nothing, so callers can
// tell "no one is waiting" from "no one will ever wait again".
type Waker struct {
	loop     *Loop
	wake     chan struct{}
	dead     chan struct{}
	killOnce sync.Once
}

var _ mailbox.Signaler = (*Waker)(nil)

// Wait suspends the calling task until the loop delivers a signal. The
// guard is released for the duration and reacquired before returning.
// Wake tokens are sticky: a signal sent before the task parks is not
// lost.
func (w *Waker) Wait(guard sync.Locker) error {
	guard.Unlock()
	defer guard.Lock()
	// Prefer a pending wake over a concurrent death so a shutdown that
	// signaled first is observed as a normal wake.
	select {
	case <-w.wake:
		return nil
	default:
	}
	select {
	case <-w.wake:
		return nil
	case <-w.dead:
		return mailbox.ErrDeadWaker
	}
}

// Signal schedules the waker for resumption on the loop. Safe to call
// from any goroutine, including after the waiter's task has exited, in
// which case it fails with mailbox.ErrDeadWaker.
func (w *Waker) Signal() error {
	select {
	case <-w.dead:
		return mailbox.ErrDeadWaker
	default:
	}
	if err := w.loop.ready.Put(w); err != nil {
		// Loop stopped: nothing can ever resume the waiter again.
		return mailbox.ErrDeadWaker
	}
	return nil
}

// deliver completes a pending signal. Runs on the loop goroutine;
// back-to-back signals coalesce into a single wake token.
func (w *Waker) deliver() {
	select {
	case <-w.dead:
		w.loop.logger.Debugf("reactor: dropping wake for dead waker")
		return
	default:
	}
	select {
	case w.wake <- struct{}{}:
	default:
	}
}

// Cleanup permanently kills the waker and releases its loop registration.
// A task parked in Wait resumes with mailbox.ErrDeadWaker. Idempotent.
func (w *Waker) Cleanup() {
	w.killOnce.Do(func() {
		close(w.dead)
		w.loop.forget(w)
	})
}
