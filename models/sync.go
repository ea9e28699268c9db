package models

// SyncStatus is the externally visible state of one synced resource.
type SyncStatus string

const (
	// StatusIdle means nothing is loaded, or the remote confirmed the
	// resource does not exist.
	StatusIdle SyncStatus = "idle"
	// StatusLoading is set while the initial remote load runs.
	StatusLoading SyncStatus = "loading"
	// StatusSyncing is set while a remote write is in flight.
	StatusSyncing SyncStatus = "syncing"
	// StatusSynced means the in-memory value matches the server.
	StatusSynced SyncStatus = "synced"
	// StatusPending means local changes wait for the debounce timer or a
	// manual sync.
	StatusPending SyncStatus = "pending"
	// StatusError means the last remote write failed. It is never retried
	// automatically.
	StatusError SyncStatus = "error"
)

// String implements fmt.Stringer.
func (s SyncStatus) String() string {
	return string(s)
}
