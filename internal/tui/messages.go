package tui

import (
	"github.com/jeremy-dai/hi-time-sub000/internal/syncer"
	"github.com/jeremy-dai/hi-time-sub000/models"
)

// NavigateTo switches the active sign-in page. A non-nil Payload is
// delivered to the new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload any
}

// AuthResult is produced by the sign-in and register forms.
type AuthResult struct {
	Login    string
	Register bool
	Err      error
}

type entryOpenedMsg struct {
	engine *syncer.Engine[models.ShippingEntry]
	err    error
}

type entrySnapshotMsg struct {
	snapshot syncer.Snapshot[models.ShippingEntry]
}

type entriesLoadedMsg struct {
	entries []models.ShippingEntry
	err     error
}

type goalsLoadedMsg struct {
	goals []models.Goal
	err   error
}

type goalSavedMsg struct {
	err error
}

type syncDoneMsg struct {
	err error
}

type copiedMsg struct {
	what string
	err  error
}

type tickMsg struct{}

type clearStatusMsg struct{}
