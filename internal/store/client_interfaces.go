package store

import (
	"context"

	"github.com/jeremy-dai/hi-time-sub000/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalCache is the durable same-device slot store used by the sync engine.
//
// Read never fails on malformed content: an entry whose value is not valid
// JSON is reported as missing. Write overwrites without merging.
type LocalCache interface {
	Read(ctx context.Context, key string) (models.CacheEntry, bool, error)
	Write(ctx context.Context, key string, entry models.CacheEntry) error
	Clear(ctx context.Context, key string) error
	// Keys lists stored keys starting with prefix, sorted.
	Keys(ctx context.Context, prefix string) ([]string, error)
}

// SessionStore keeps the signed-in user's token between client runs.
// LoadSession returns ok=false when nobody is signed in.
type SessionStore interface {
	LoadSession(ctx context.Context) (models.Session, bool, error)
	SaveSession(ctx context.Context, session models.Session) error
	ClearSession(ctx context.Context) error
}
