package actor

import "github.com/stagelight/mailroom/mailbox"

// Context is handed to a Behavior and scopes it to its own actor.
type Context struct {
	pid *PID
}

// Self returns the running actor's PID.
func (c *Context) Self() *PID {
	return c.pid
}

// Receive blocks until the next ordinary message or system event arrives.
func (c *Context) Receive() (mailbox.Delivery, error) {
	return c.pid.mb.Receive(nil)
}

// ReceiveMatch blocks until a message satisfying match arrives, skipping
// queued messages that do not. System events still pre-empt the match.
func (c *Context) ReceiveMatch(match func(msg any) bool) (mailbox.Delivery, error) {
	return c.pid.mb.Receive(match)
}
