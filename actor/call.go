package actor

import (
	"fmt"

	"github.com/stagelight/mailroom/mailbox"
	"github.com/stagelight/mailroom/sysmsg"
)

// Call pairs a request with the reply mailbox of its asker. The recipient
// answers with Reply; if it shuts down with the call still queued, the
// mailbox runs the call's cleanup hook, which unblocks the asker with an
// exit event instead of leaving it hanging on a reply that never comes.
type Call struct {
	Request any
	reply   *mailbox.Mailbox
}

var _ mailbox.Cleanable = (*Call)(nil)

// Reply answers the call.
func (c *Call) Reply(v any) error {
	return c.reply.Push(v)
}

// Cleanup aborts the call. Silent if the asker already gave up.
func (c *Call) Cleanup() {
	c.reply.PushSystemEvent(sysmsg.Exit{
		Reason:   sysmsg.Discarded,
		Relation: sysmsg.Linked,
	})
}

// Ask sends a request to the actor and blocks until it replies or drops
// the request during shutdown.
func Ask(pid *PID, request any) (any, error) {
	reply := mailbox.New()
	defer reply.Shutdown()
	call := &Call{Request: request, reply: reply}
	if err := Send(pid, call); err != nil {
		return nil, err
	}
	d, err := reply.Receive(nil)
	if err != nil {
		return nil, err
	}
	if d.Interrupted() {
		return nil, fmt.Errorf("ask %s: %w", pid.ID(), d.Event)
	}
	return d.Msg, nil
}
