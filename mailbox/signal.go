package mailbox

import "sync"

// Signaler is the suspend/resume capability backing a Mailbox. Exactly one
// instance is owned by each mailbox, selected at construction.
//
// Contract: Wait and Signal are only ever invoked with the mailbox lock
// held. Wait releases the guard for the duration of the suspension and
// reacquires it before returning, success or failure; anything weaker
// reintroduces lost wakeups. Signal reports ErrDeadWaker when the waiting
// task is permanently gone, never when it is merely not waiting. Cleanup
// releases whatever resource backs the Signaler and is idempotent.
type Signaler interface {
	Wait(guard sync.Locker) error
	Signal() error
	Cleanup()
}

// condSignal blocks the receiving OS thread on a condition variable bound
// to the mailbox lock. It cannot die: Wait and Signal always succeed.
type condSignal struct {
	cond *sync.Cond
}

func newCondSignal(guard sync.Locker) *condSignal {
	return &condSignal{cond: sync.NewCond(guard)}
}

func (s *condSignal) Wait(sync.Locker) error {
	s.cond.Wait()
	return nil
}

func (s *condSignal) Signal() error {
	s.cond.Signal()
	return nil
}

func (s *condSignal) Cleanup() {
	// Flush any remaining waiters so they re-check the dead flag.
	s.cond.Broadcast()
}
