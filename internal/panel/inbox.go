package panel

import (
	"sync"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/gitpanes/internal/event"
)

var inboxSeq atomic.Uint64

// EventMsg carries one bus event into a panel's Update.
type EventMsg struct {
	InboxID uint64
	Event   event.Event
}

// Inbox subscribes to a set of event types for the lifetime of one mount.
// Handlers only append to an unbounded queue, so emitting from inside Update
// never blocks on a panel that has not drained its inbox yet.
type Inbox struct {
	id     uint64
	mu     sync.Mutex
	queue  []event.Event
	notify chan struct{}
	done   chan struct{}
	once   sync.Once
	subs   []*event.Subscription
}

// NewInbox subscribes to types on ch.
func NewInbox(ch event.Channel, types ...event.Type) *Inbox {
	in := &Inbox{
		id:     inboxSeq.Add(1),
		notify: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	for _, t := range types {
		in.subs = append(in.subs, ch.On(t, in.push))
	}
	return in
}

// ID identifies the inbox in the EventMsgs it produces.
func (in *Inbox) ID() uint64 {
	if in == nil {
		return 0
	}
	return in.id
}

func (in *Inbox) push(e event.Event) {
	in.mu.Lock()
	select {
	case <-in.done:
		in.mu.Unlock()
		return
	default:
	}
	in.queue = append(in.queue, e)
	in.mu.Unlock()

	select {
	case in.notify <- struct{}{}:
	default:
	}
}

func (in *Inbox) pop() (event.Event, bool) {
	in.mu.Lock()
	defer in.mu.Unlock()
	if len(in.queue) == 0 {
		return event.Event{}, false
	}
	e := in.queue[0]
	in.queue[0] = event.Event{}
	in.queue = in.queue[1:]
	return e, true
}

// Pending returns the number of queued events.
func (in *Inbox) Pending() int {
	in.mu.Lock()
	defer in.mu.Unlock()
	return len(in.queue)
}

// Next waits for the next event. The command yields nil once the inbox is
// closed.
func (in *Inbox) Next() tea.Cmd {
	if in == nil {
		return nil
	}
	return func() tea.Msg {
		for {
			select {
			case <-in.done:
				return nil
			default:
			}
			if e, ok := in.pop(); ok {
				return EventMsg{InboxID: in.id, Event: e}
			}
			select {
			case <-in.notify:
			case <-in.done:
				return nil
			}
		}
	}
}

// Accepts reports whether msg came from this inbox and the inbox is open.
func (in *Inbox) Accepts(msg EventMsg) bool {
	return in != nil && msg.InboxID == in.id && !in.Closed()
}

// Closed reports whether Close has been called.
func (in *Inbox) Closed() bool {
	if in == nil {
		return true
	}
	select {
	case <-in.done:
		return true
	default:
		return false
	}
}

// Close releases every subscription and drops queued events. It is safe to
// call more than once.
func (in *Inbox) Close() {
	if in == nil {
		return
	}
	in.once.Do(func() {
		for _, s := range in.subs {
			s.Unsubscribe()
		}
		in.mu.Lock()
		close(in.done)
		in.queue = nil
		in.mu.Unlock()
	})
}
