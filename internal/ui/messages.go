package ui

import (
	"opsdeck/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// mutationDoneMsg reports the outcome of a create/update/delete command
type mutationDoneMsg struct {
	entity string
	action string // "create", "update" or "delete"
	err    error
}

// pagerDoneMsg reports that the external pager has exited
type pagerDoneMsg struct {
	err error
}

// clearStatusMsg clears the transient status bar message
type clearStatusMsg struct{}
