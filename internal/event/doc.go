// Package event is the channel panels and the host use to talk to each other.
//
// An [Event] carries a [Type] from a closed vocabulary, the ID of the panel or
// host component that emitted it, a timestamp, and a typed payload. The [Bus]
// delivers an event synchronously to every handler subscribed to its type.
//
// # Vocabulary
//
// Each panel listens to and emits a fixed set of types:
//
//	Commit History   listens commit-history:refresh, commit-history:set-limit
//	                 emits   commit:selected
//	Commit Detail    listens commit-detail:loading, commit-detail:loaded, commit-detail:error
//	                 emits   commit:deselected
//	Pull Requests    listens pull-requests:refresh, pull-requests:set-filter
//	                 emits   pull-request:selected
//	PR Detail        listens pull-request:selected
//	                 emits   pull-request:deselected
//	Git Config       listens config:refresh, config:set-view
//
// Emitting a type outside the vocabulary is dropped and logged.
//
// # Subscriptions
//
// [Bus.On] returns a [Subscription]; releasing it more than once is a no-op.
// Handlers are snapshotted when an emission starts, so a handler added while
// an event is being delivered only sees later events. A panicking handler is
// recovered and logged, and delivery continues.
//
// # Basic Usage
//
//	bus := event.NewBus()
//	sub := bus.On(event.CommitSelected, func(e event.Event) {
//	    sel, _ := event.PayloadAs[event.CommitSelection](e)
//	    fmt.Println(sel.Hash)
//	})
//	defer sub.Unsubscribe()
//
//	bus.Emit(event.New(event.CommitSelected, "commit-history", event.CommitSelection{Hash: h}))
package event
