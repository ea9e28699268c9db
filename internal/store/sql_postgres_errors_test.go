package store

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"nil", nil, NonRetryable},
		{"canceled", fmt.Errorf("query: %w", context.Canceled), NonRetryable},
		{"dial failure", errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"), Retryable},
		{"deadlock", pgError(pgerrcode.DeadlockDetected), Retryable},
		{"serialization", fmt.Errorf("wrapped: %w", pgError(pgerrcode.SerializationFailure)), Retryable},
		{"cannot connect now", pgError(pgerrcode.CannotConnectNow), Retryable},
		{"too many connections", pgError(pgerrcode.TooManyConnections), Retryable},
		{"statement timeout", pgError(pgerrcode.QueryCanceled), Retryable},
		{"invalid json", pgError(pgerrcode.InvalidTextRepresentation), NonRetryable},
		{"undefined table", pgError(pgerrcode.UndefinedTable), NonRetryable},
		{"unique violation", pgError(pgerrcode.UniqueViolation), NonRetryable},
		{"unknown code", pgError("XX999"), NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestDB_ClassifyWithoutClassifier(t *testing.T) {
	db := &DB{}
	assert.Equal(t, Retryable, db.Classify(errors.New("anything")))
}
