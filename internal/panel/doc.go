// Package panel holds the glue shared by every git panel: registration
// metadata, the event inbox that scopes a panel's subscriptions to its mount,
// and the lifecycle helpers run on mount and package load.
//
// Panels are Bubble Tea models with value receivers. Bus handlers never touch
// a model; they append to the panel's Inbox, and the inbox hands events to
// the Bubble Tea loop one EventMsg at a time.
package panel
