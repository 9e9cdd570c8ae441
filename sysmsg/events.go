package sysmsg

import "fmt"

// Exit describes the termination of an actor. It is emitted to peers of
// the terminated actor and to askers whose pending requests were dropped.
type Exit struct {
	// Who is the actor that terminated
	Who any
	// Parent is the actor that made "Who" terminate, if any
	Parent any
	// Reason behind the termination
	Reason Reason
	// Relation between the terminated actor and the event's receiver
	Relation Relation
}

func (e Exit) systemEvent() {}

func (e Exit) Error() string {
	return fmt.Sprintf("exit: reason=%s relation=%s", e.Reason, e.Relation)
}

// Shutdown is a command asking the receiving actor to stop.
type Shutdown struct {
	// Parent is the commanding actor
	Parent any
}

func (s Shutdown) systemEvent() {}

func (s Shutdown) Error() string {
	return "shutdown requested"
}
