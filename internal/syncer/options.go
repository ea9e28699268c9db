package syncer

import (
	"context"
	"time"

	"github.com/jeremy-dai/hi-time-sub000/internal/logger"
	"github.com/jeremy-dai/hi-time-sub000/models"
)

const (
	DefaultDebounce     = 5 * time.Second
	DefaultFlushTimeout = 5 * time.Second
)

// Mode selects how an engine pushes changes to the server.
type Mode int

const (
	// Debounced pushes after a quiet period and never rolls back.
	Debounced Mode = iota
	// WriteThrough pushes on every Set and rolls back when the push fails.
	WriteThrough
)

func (m Mode) String() string {
	if m == WriteThrough {
		return "write-through"
	}
	return "debounced"
}

// Capabilities are the remote operations of one resource. Load must return
// an error wrapping [ErrAbsent] when the server confirms the resource does
// not exist. Delete is optional; without it empty values are saved.
type Capabilities[T any] struct {
	Load   func(ctx context.Context) (T, error)
	Save   func(ctx context.Context, v T) error
	Delete func(ctx context.Context) error
}

// Options configure an [Engine].
type Options[T any] struct {
	// Key addresses the cache slot, e.g. "shipping/2025-06-01".
	Key string
	// Debounce is the quiet period before a push. Defaults to 5s.
	Debounce time.Duration
	Mode     Mode
	// Normalize runs on every value entering the engine: loaded, cached or
	// set by the UI. It must be idempotent.
	Normalize func(T) T
	// IsEmpty marks values that are pushed as a delete.
	IsEmpty func(T) bool
	Clock   Clock
	Logger  *logger.Logger
	// FlushTimeout bounds the final flush started by Close. Defaults to 5s.
	FlushTimeout time.Duration
}

// Snapshot is a copy of an engine's observable state.
type Snapshot[T any] struct {
	Key          string
	Value        T
	Status       models.SyncStatus
	Dirty        bool
	LastSyncedAt time.Time
	// Err is the last remote failure, cleared by the next success or edit.
	Err error
}
