package actor

import (
	"github.com/rs/xid"

	"github.com/stagelight/mailroom/mailbox"
)

// PID identifies a spawned actor and carries its mailbox.
type PID struct {
	id string
	mb *mailbox.Mailbox
}

func newPID(mb *mailbox.Mailbox) *PID {
	return &PID{id: xid.New().String(), mb: mb}
}

// ID returns the actor's unique identifier.
func (p *PID) ID() string {
	return p.id
}

// Mailbox exposes the actor's mailbox, e.g. for snapshots.
func (p *PID) Mailbox() *mailbox.Mailbox {
	return p.mb
}
