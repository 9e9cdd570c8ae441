// Package mailbox implements the message queue owned by every actor: an
// unbounded FIFO for ordinary messages with front-of-queue priority for
// system events, selective receive, and a pluggable suspend/resume backend
// so the consumer can either block its thread or park as a cooperative
// task on an event loop.
package mailbox

import (
	"container/list"
	"fmt"
	"sync"

	"github.com/stagelight/mailroom/sysmsg"
)

// Delivery is the outcome of a successful Receive: either an ordinary
// message or a system event that pre-empted the receive. Callers branch
// on Interrupted instead of relying on panics for control flow.
type Delivery struct {
	// Msg is the received message when the delivery was not interrupted.
	Msg any
	// Event is set when a system event pre-empted the receive. It always
	// wins over the caller's predicate.
	Event sysmsg.Event
}

// Interrupted reports whether a system event pre-empted the receive.
func (d Delivery) Interrupted() bool {
	return d.Event != nil
}

// Cleanable is implemented by messages holding a resource that must be
// released when the mailbox drops them, e.g. a pending reply channel.
type Cleanable interface {
	Cleanup()
}

// Mailbox is the queue between an actor and its senders. Any number of
// producers may push concurrently; one logical consumer drains it with
// Receive. All operations are atomic with respect to the queue and the
// dead flag, which are guarded by a single lock.
type Mailbox struct {
	mu      sync.Mutex
	queue   *list.List
	dead    bool
	signal  Signaler
	discard func(msg any)
}

// Option configures a Mailbox at construction.
type Option func(*Mailbox)

// WithSignaler selects the suspend/resume backend. The default is a
// condition variable that blocks the consumer's thread; a reactor waker
// lets the consumer park as a cooperative task instead.
func WithSignaler(s Signaler) Option {
	return func(m *Mailbox) {
		m.signal = s
	}
}

// WithDiscard registers a hook invoked for every message drained by
// Shutdown that does not implement Cleanable, e.g. to feed a deadletter
// sink.
func WithDiscard(fn func(msg any)) Option {
	return func(m *Mailbox) {
		m.discard = fn
	}
}

// New creates an empty, live mailbox.
func New(opts ...Option) *Mailbox {
	m := &Mailbox{queue: list.New()}
	for _, opt := range opts {
		opt(m)
	}
	if m.signal == nil {
		m.signal = newCondSignal(&m.mu)
	}
	return m
}

// Push appends an ordinary message to the tail of the queue and wakes the
// consumer. It fails with ErrDeadRecipient if the mailbox has been shut
// down, or if the consumer's waker is permanently gone; the sender sees
// the same error either way.
func (m *Mailbox) Push(msg any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.dead {
		return ErrDeadRecipient
	}
	e := m.queue.PushBack(msg)
	if err := m.signal.Signal(); err != nil {
		// The waiter is permanently gone, so the message could never be
		// consumed. Undo the append: a failed push has no effect.
		m.queue.Remove(e)
		return fmt.Errorf("%w: %v", ErrDeadRecipient, err)
	}
	return nil
}

// PushSystemEvent inserts a control signal at the head of the queue so it
// is the next item any receive returns. Pushing to a dead mailbox is a
// silent no-op: broadcast control signals must never raise on the sender
// just because a peer already terminated. A dead-waker signal failure is
// swallowed for the same reason.
func (m *Mailbox) PushSystemEvent(ev sysmsg.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.dead {
		return
	}
	m.queue.PushFront(ev)
	_ = m.signal.Signal()
}

// Receive removes and returns the first queued message satisfying match,
// suspending until one arrives. A nil match accepts any ordinary message.
// System events always match regardless of the predicate and are surfaced
// in Delivery.Event rather than returned as values.
//
// It fails with ErrDeadMailbox once the mailbox is dead, and with
// ErrReceiveShutdown when the waker dies mid-wait; in the latter case the
// mailbox is force-shut first so it is never left half alive.
func (m *Mailbox) Receive(match func(msg any) bool) (Delivery, error) {
	m.mu.Lock()
	for {
		if m.dead {
			m.mu.Unlock()
			return Delivery{}, ErrDeadMailbox
		}
		if e := m.scan(match); e != nil {
			v := m.queue.Remove(e)
			m.mu.Unlock()
			if ev, ok := v.(sysmsg.Event); ok {
				return Delivery{Event: ev}, nil
			}
			return Delivery{Msg: v}, nil
		}
		if err := m.signal.Wait(&m.mu); err != nil {
			m.mu.Unlock()
			m.Shutdown()
			return Delivery{}, fmt.Errorf("%w: %v", ErrReceiveShutdown, err)
		}
	}
}

// scan returns the first element that is a system event or satisfies
// match. Called with the lock held.
func (m *Mailbox) scan(match func(msg any) bool) *list.Element {
	for e := m.queue.Front(); e != nil; e = e.Next() {
		if _, ok := e.Value.(sysmsg.Event); ok {
			return e
		}
		if match == nil || match(e.Value) {
			return e
		}
	}
	return nil
}

// Shutdown marks the mailbox dead, drains every queued message and runs
// each drained message's cleanup hook exactly once. A receiver blocked in
// Receive is woken and terminates with an error. Shutdown is idempotent
// and safe to call from any goroutine, including concurrently with an
// in-flight Receive.
func (m *Mailbox) Shutdown() {
	m.mu.Lock()
	drained := make([]any, 0, m.queue.Len())
	for e := m.queue.Front(); e != nil; e = e.Next() {
		drained = append(drained, e.Value)
	}
	m.queue.Init()
	m.dead = true
	// Wake a blocked receiver so it observes the dead flag. A dead waker
	// just means no one is left to wake.
	_ = m.signal.Signal()
	m.signal.Cleanup()
	m.mu.Unlock()

	// Hooks run outside the lock; they may push into other mailboxes.
	for _, msg := range drained {
		if c, ok := msg.(Cleanable); ok {
			c.Cleanup()
			continue
		}
		if m.discard != nil {
			m.discard(msg)
		}
	}
}

// Dead reports whether the mailbox has been shut down.
func (m *Mailbox) Dead() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.dead
}

// Snapshot returns a copy of the queue contents in order, for inspection
// only. It does not consume messages.
func (m *Mailbox) Snapshot() []any {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]any, 0, m.queue.Len())
	for e := m.queue.Front(); e != nil; e = e.Next() {
		out = append(out, e.Value)
	}
	return out
}
