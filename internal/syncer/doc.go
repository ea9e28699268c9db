// Package syncer implements the local-first sync engine of the hi-time
// client.
//
// An [Engine] owns one resource (a week, a shipping entry, the settings
// document, ...). Every edit lands in memory and in the local cache at once,
// and is pushed to the server once edits stop for the debounce interval.
// Status moves through idle, loading, pending, syncing, synced and error and
// can be observed with [Engine.Snapshot] and [Engine.Subscribe].
package syncer
