package store

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification is the result of [ErrorClassificator.Classify]. The
// backup job uses it to stop retrying a table export that cannot succeed.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

// PostgresErrorClassifier implements [ErrorClassificator] for the pgx driver.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify treats errors without a Postgres code (dial failures, resets) as
// transient. A cancelled export is never retried.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil || errors.Is(err, context.Canceled) {
		return NonRetryable
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}
	return Retryable
}

// ClassifyPgError decides by SQLSTATE class. Lost connections (08),
// rollbacks such as deadlocks (40), exhausted resources (53) and operator
// intervention (57) are worth another export attempt; everything else,
// including bad data and missing tables, fails the same way again.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	code := pgErr.Code
	switch {
	case pgerrcode.IsConnectionException(code),
		pgerrcode.IsTransactionRollback(code),
		pgerrcode.IsInsufficientResources(code),
		pgerrcode.IsOperatorIntervention(code):
		return Retryable
	default:
		return NonRetryable
	}
}
