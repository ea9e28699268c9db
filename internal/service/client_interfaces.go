package service

import (
	"context"
	"time"

	"github.com/jeremy-dai/hi-time-sub000/internal/adapter"
	"github.com/jeremy-dai/hi-time-sub000/internal/syncer"
	"github.com/jeremy-dai/hi-time-sub000/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService signs the user in and out and supplies the bearer token
// of every authenticated request.
type ClientAuthService interface {
	adapter.TokenSource

	// Register creates an account and signs the user in.
	Register(ctx context.Context, user models.User) error

	// Login signs the user in and persists the session so the next client
	// run starts signed in.
	Login(ctx context.Context, user models.User) error

	// Logout forgets the session. Unsynced local changes stay in the cache.
	Logout(ctx context.Context) error

	// Session returns the persisted session; ok is false when nobody is
	// signed in or the token has expired.
	Session(ctx context.Context) (session models.Session, ok bool)
}

// ClientWeekService opens the time-tracking grid of one ISO week.
type ClientWeekService interface {
	// Open returns the mounted engine of key ("2025-W23"). Repeated calls
	// return the same engine.
	Open(ctx context.Context, key string) (*syncer.Engine[models.Week], error)
}

// ClientSettingsService opens the single settings document.
type ClientSettingsService interface {
	Open(ctx context.Context) (*syncer.Engine[models.Settings], error)
}

// ClientPlanService opens quarterly plans and moves them in and out of the
// client as JSON files.
type ClientPlanService interface {
	Open(ctx context.Context, id string) (*syncer.Engine[models.QuarterlyPlan], error)

	// Import replaces plan id with the plan encoded in raw. A raw document
	// that is not a plan or has no usable start date yields a
	// *ValidationError and nothing is written.
	Import(ctx context.Context, id string, raw []byte) (models.QuarterlyPlan, error)

	// Export returns the normalized plan as indented JSON.
	Export(ctx context.Context, id string) ([]byte, error)
}

// ClientShippingService opens days of the shipping log.
type ClientShippingService interface {
	// Open returns the mounted engine of date ("2025-06-01").
	Open(ctx context.Context, date string) (*syncer.Engine[models.ShippingEntry], error)

	// List returns the non-empty entries of year, sorted by date. When the
	// server cannot be reached the cached entries are returned instead.
	List(ctx context.Context, year int) ([]models.ShippingEntry, error)
}

// ClientReviewService opens annual reviews.
type ClientReviewService interface {
	Open(ctx context.Context, year int) (*syncer.Engine[models.AnnualReview], error)
}

// ClientMemoriesService opens the memories of one year.
type ClientMemoriesService interface {
	Open(ctx context.Context, year int) (*syncer.Engine[models.YearMemories], error)
}

// ClientGoalService edits goals directly on the server. Goals are not
// cached or debounced.
type ClientGoalService interface {
	List(ctx context.Context) ([]models.Goal, error)
	Create(ctx context.Context, goal models.Goal) (models.Goal, error)
	Update(ctx context.Context, goal models.Goal) (models.Goal, error)
	Delete(ctx context.Context, id string) error
}

// ClientHealthJob polls the server in the background so the UI can show
// whether changes can currently be synced.
type ClientHealthJob interface {
	// Start launches the polling goroutine. It polls every interval,
	// defaulting to 30 seconds if interval is zero or negative. Any
	// previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()

	// Online reports the result of the last poll.
	Online() bool

	// ServerInfo returns the build info of the last successful poll.
	ServerInfo() (models.AppBuildInfo, bool)
}
