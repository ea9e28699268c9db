package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserIDContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		wantID int64
		wantOK bool
	}{
		{name: "set by auth middleware", ctx: WithUserID(context.Background(), 7), wantID: 7, wantOK: true},
		{name: "missing", ctx: context.Background()},
		{name: "wrong type", ctx: context.WithValue(context.Background(), UserIDCtxKey, "7")},
		{name: "other key", ctx: context.WithValue(context.Background(), contextKey("traceID"), int64(7))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := GetUserIDFromContext(tt.ctx)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}

	assert.Equal(t, "userID", UserIDCtxKey.String())
}
