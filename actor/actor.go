// Package actor is the runtime side of the mailbox: spawning consumers,
// sending messages and requests, and naming actors.
package actor

import (
	"github.com/stagelight/mailroom/log"
	"github.com/stagelight/mailroom/mailbox"
	"github.com/stagelight/mailroom/reactor"
	"github.com/stagelight/mailroom/sysmsg"
)

// Behavior is an actor's body. It owns the receive loop and returns when
// the actor is done; the runtime shuts the mailbox down afterwards,
// cleaning up whatever was left queued.
type Behavior func(ctx *Context)

var logger = log.DefaultLogger

// SetLogger replaces the package logger. Not safe to call once actors are
// running.
func SetLogger(l log.Logger) {
	logger = l
}

// Spawn starts an actor whose receive loop blocks its goroutine on a
// condition variable.
func Spawn(behavior Behavior) *PID {
	var pid *PID
	mb := mailbox.New(
		mailbox.WithDiscard(func(msg any) { deadletters.record(pid.ID(), msg) }),
	)
	pid = newPID(mb)
	go run(pid, behavior)
	return pid
}

// SpawnEvented starts an actor whose receive loop parks on a waker owned
// by the given reactor loop instead of blocking in a condition wait.
func SpawnEvented(loop *reactor.Loop, behavior Behavior) *PID {
	var pid *PID
	mb := mailbox.New(
		mailbox.WithSignaler(loop.NewWaker()),
		mailbox.WithDiscard(func(msg any) { deadletters.record(pid.ID(), msg) }),
	)
	pid = newPID(mb)
	go run(pid, behavior)
	return pid
}

func run(pid *PID, behavior Behavior) {
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("actor %s terminated by panic: %v", pid.ID(), r)
		}
		pid.mb.Shutdown()
	}()
	behavior(&Context{pid: pid})
}

// Send delivers an ordinary message to the actor. It fails with
// mailbox.ErrDeadRecipient once the actor has terminated.
func Send(pid *PID, msg any) error {
	return pid.mb.Push(msg)
}

// Notify delivers a system event to the actor. It never fails observably:
// notifying a terminated actor is a no-op.
func Notify(pid *PID, ev sysmsg.Event) {
	pid.mb.PushSystemEvent(ev)
}

// Stop asks the actor to stop by sending it a Shutdown event. The event
// pre-empts whatever the actor's receive loop is waiting on.
func Stop(pid *PID) {
	Notify(pid, sysmsg.Shutdown{})
}
