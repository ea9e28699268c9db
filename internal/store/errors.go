package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same login already exists.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when a lookup by login matches no user.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrResourceNotFound is returned when the requested (user, kind, key)
	// row does not exist. The HTTP layer turns it into 404, which clients
	// read as "confirmed absent".
	ErrResourceNotFound = errors.New("resource was not found")

	// ErrResourceNotSaved is returned when an upsert completes without error
	// but returns no row.
	ErrResourceNotSaved = errors.New("resource was not saved")

	// ErrUnknownTable is returned by the exporter for a table name it does
	// not know how to snapshot.
	ErrUnknownTable = errors.New("unknown table")
)

// Low-level database operation errors, returned wrapped when a SQL-level
// operation fails before any domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
