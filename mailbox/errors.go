package mailbox

import "errors"

var (
	// ErrDeadRecipient is returned to a sender pushing an ordinary
	// message into a mailbox that has been shut down, or whose waiter
	// is permanently gone.
	ErrDeadRecipient = errors.New("mailbox: recipient no longer exists")

	// ErrDeadMailbox is returned to a receiver calling Receive on a
	// mailbox that is already dead.
	ErrDeadMailbox = errors.New("mailbox: mailbox is dead")

	// ErrReceiveShutdown is returned to a receiver whose signal backend
	// died while it was blocked. The mailbox is force-shut before the
	// error is reported, so it cannot be left half alive.
	ErrReceiveShutdown = errors.New("mailbox: shut down during receive")

	// ErrDeadWaker is reported by a Signaler whose waiting task has
	// permanently torn down. It is distinct from "no one is waiting
	// right now", which is not an error.
	ErrDeadWaker = errors.New("mailbox: waker is dead")
)
