package sysmsg

// Event is a control signal delivered through an actor's mailbox with
// priority over ordinary messages. Events are error values so that a
// receiver interrupted by one can surface it directly to its caller.
type Event interface {
	error
	systemEvent()
}

// Reason describes why an actor terminated or why a control signal was
// emitted.
type Reason string

const (
	// Kill means the actor was terminated by another party.
	Kill Reason = "kill"
	// Panic means the actor terminated because of a recovered panic.
	Panic Reason = "panic"
	// Normal means the actor finished its work and returned.
	Normal Reason = "normal"
	// Discarded means a pending request was dropped because the
	// recipient shut down before answering it.
	Discarded Reason = "discarded"
)

// Relation describes the relationship between the terminated actor and
// the one receiving the event.
type Relation string

const (
	Linked    Relation = "linked"
	Monitored Relation = "monitored"
)
