package models

import (
	"encoding/json"
	"strings"
	"time"
)

// ResourceKind names one family of independently synchronized user data.
// The kind is the first segment of a cache key and the "table" a backup
// snapshot is written for.
type ResourceKind string

const (
	KindWeek     ResourceKind = "weeks"
	KindSettings ResourceKind = "settings"
	KindGoal     ResourceKind = "goals"
	KindPlan     ResourceKind = "plans"
	KindShipping ResourceKind = "shipping"
	KindReview   ResourceKind = "reviews"
	KindMemories ResourceKind = "memories"
)

// AllKinds lists every resource kind in a stable order.
var AllKinds = []ResourceKind{
	KindWeek,
	KindSettings,
	KindGoal,
	KindPlan,
	KindShipping,
	KindReview,
	KindMemories,
}

// SettingsKey is the single resource key used for the settings document.
const SettingsKey = "default"

// String implements fmt.Stringer.
func (k ResourceKind) String() string {
	return string(k)
}

// Valid reports whether k is one of the known kinds.
func (k ResourceKind) Valid() bool {
	for _, known := range AllKinds {
		if k == known {
			return true
		}
	}
	return false
}

// Resource is one server-side row of user data. Payload holds the JSON
// document exactly as the client sent it inside its envelope.
type Resource struct {
	UserID    int64           `json:"user_id"`
	Kind      ResourceKind    `json:"kind"`
	Key       string          `json:"key"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// CacheKey joins a kind and a resource key into the key used by the local
// cache, e.g. "shipping/2025-06-01".
func CacheKey(kind ResourceKind, key string) string {
	return string(kind) + "/" + key
}

// SplitCacheKey is the inverse of [CacheKey]. ok is false when key has no
// kind prefix.
func SplitCacheKey(key string) (kind ResourceKind, resourceKey string, ok bool) {
	k, rest, found := strings.Cut(key, "/")
	if !found || k == "" || rest == "" {
		return "", "", false
	}
	return ResourceKind(k), rest, true
}
