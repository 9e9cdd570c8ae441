package actor

import (
	"sync"

	"github.com/stagelight/mailroom/sysmsg"
)

// The name registry is itself an actor; registrations and lookups are
// serialized through its mailbox.

type registerCmd struct {
	name string
	pid  *PID
}

type unregisterCmd struct {
	name string
}

type whereIsCmd struct {
	name string
}

var (
	registryOnce sync.Once
	registryPID  *PID
)

func registry() *PID {
	registryOnce.Do(func() {
		registryPID = Spawn(registryBehavior)
	})
	return registryPID
}

func registryBehavior(ctx *Context) {
	names := make(map[string]*PID)
	for {
		d, err := ctx.Receive()
		if err != nil {
			return
		}
		if d.Interrupted() {
			if _, ok := d.Event.(sysmsg.Shutdown); ok {
				return
			}
			continue
		}
		switch msg := d.Msg.(type) {
		case registerCmd:
			names[msg.name] = msg.pid
		case unregisterCmd:
			delete(names, msg.name)
		case *Call:
			if cmd, ok := msg.Request.(whereIsCmd); ok {
				_ = msg.Reply(names[cmd.name])
			}
		default:
			logger.Warnf("registry: unknown message %T", msg)
		}
	}
}

// Register associates a name with a spawned actor, replacing any previous
// association.
func Register(name string, pid *PID) {
	_ = Send(registry(), registerCmd{name: name, pid: pid})
}

// Unregister removes a name.
func Unregister(name string) {
	_ = Send(registry(), unregisterCmd{name: name})
}

// WhereIs looks up a registered actor by name.
func WhereIs(name string) (*PID, bool) {
	v, err := Ask(registry(), whereIsCmd{name: name})
	if err != nil {
		return nil, false
	}
	pid, ok := v.(*PID)
	if !ok || pid == nil {
		return nil, false
	}
	return pid, true
}
