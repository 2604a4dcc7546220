package event

import (
	"time"

	"github.com/google/uuid"
)

// Event is a single emission. Each emission is a new value; handlers must not
// retain and mutate the payload.
type Event struct {
	ID        string
	Type      Type
	Source    string // panel or host component that emitted the event
	Timestamp time.Time
	Payload   any
}

// New builds an event stamped with a fresh ID and the current time.
func New(t Type, source string, payload any) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      t,
		Source:    source,
		Timestamp: time.Now(),
		Payload:   payload,
	}
}

// PayloadAs returns the payload as P. ok is false when the payload has a
// different type.
func PayloadAs[P any](e Event) (P, bool) {
	p, ok := e.Payload.(P)
	return p, ok
}
