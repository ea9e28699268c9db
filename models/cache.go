package models

import (
	"encoding/json"
	"time"
)

// CacheEntry is the durable local slot kept for one synced resource.
type CacheEntry struct {
	// Value is the last value the UI produced, JSON encoded.
	Value json.RawMessage `json:"value"`

	// Dirty is true while Value has not been confirmed by the server.
	Dirty bool `json:"dirty"`

	// Deleted marks a tombstone: the resource was emptied locally and a
	// remote delete is still owed.
	Deleted bool `json:"deleted"`

	// LastSyncedAt is the time of the last confirmed remote write or load.
	LastSyncedAt time.Time `json:"last_synced_at"`

	// UpdatedAt is the time of the last local write of this entry.
	UpdatedAt time.Time `json:"updated_at"`
}
