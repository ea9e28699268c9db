package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/jeremy-dai/hi-time-sub000/internal/logger"
	"github.com/jeremy-dai/hi-time-sub000/internal/mock"
	"github.com/jeremy-dai/hi-time-sub000/internal/store"
	"github.com/jeremy-dai/hi-time-sub000/internal/utils"
	"github.com/jeremy-dai/hi-time-sub000/internal/validators"
	"github.com/jeremy-dai/hi-time-sub000/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestResourceSvc(t *testing.T) (*resourceService, *mock.MockResourceRepository) {
	t.Helper()
	repo := mock.NewMockResourceRepository(gomock.NewController(t))
	svc := NewResourceService(repo, logger.Nop()).(*resourceService)
	svc.now = func() time.Time { return fixedNow }
	return svc, repo
}

// echoPut returns the resource it was asked to store.
func echoPut(_ context.Context, r models.Resource) (models.Resource, error) {
	return r, nil
}

// ── Put ──────────────────────────────────────────────────────────────────────

func TestResourceService_Put_NewGoalIsStamped(t *testing.T) {
	svc, repo := newTestResourceSvc(t)
	ctx := context.Background()
	id := "0190a6f1-7b7c-7cc4-8a8e-5d4f3a2b1c0d"

	repo.EXPECT().GetResource(ctx, int64(1), models.KindGoal, id).Return(models.Resource{}, store.ErrResourceNotFound)
	repo.EXPECT().PutResource(ctx, gomock.Any()).DoAndReturn(echoPut)

	saved, err := svc.Put(ctx, models.Resource{
		UserID:  1,
		Kind:    models.KindGoal,
		Key:     id,
		Payload: json.RawMessage(`{"id":"other","title":"Ship","createdAt":"2001-01-01T00:00:00Z"}`),
	})
	require.NoError(t, err)

	var goal models.Goal
	require.NoError(t, json.Unmarshal(saved.Payload, &goal))
	assert.Equal(t, id, goal.ID, "the key wins over the body")
	assert.Equal(t, "Ship", goal.Title)
	assert.True(t, goal.CreatedAt.Equal(fixedNow))
	assert.True(t, goal.UpdatedAt.Equal(fixedNow))
}

func TestResourceService_Put_ExistingGoalKeepsCreatedAt(t *testing.T) {
	svc, repo := newTestResourceSvc(t)
	ctx := context.Background()
	id := "0190a6f1-7b7c-7cc4-8a8e-5d4f3a2b1c0d"
	created := fixedNow.Add(-48 * time.Hour)

	prev, err := json.Marshal(models.Goal{ID: id, Title: "Old", CreatedAt: created})
	require.NoError(t, err)

	repo.EXPECT().GetResource(ctx, int64(1), models.KindGoal, id).
		Return(models.Resource{UserID: 1, Kind: models.KindGoal, Key: id, Payload: prev}, nil)
	repo.EXPECT().PutResource(ctx, gomock.Any()).DoAndReturn(echoPut)

	saved, err := svc.Put(ctx, models.Resource{UserID: 1, Kind: models.KindGoal, Key: id, Payload: json.RawMessage(`{"title":"New"}`)})
	require.NoError(t, err)

	var goal models.Goal
	require.NoError(t, json.Unmarshal(saved.Payload, &goal))
	assert.True(t, goal.CreatedAt.Equal(created))
	assert.True(t, goal.UpdatedAt.Equal(fixedNow))
}

func TestResourceService_Put_CanonicalizesDocuments(t *testing.T) {
	tests := []struct {
		name  string
		kind  models.ResourceKind
		key   string
		body  string
		check func(t *testing.T, payload json.RawMessage)
	}{
		{
			name: "plan weeks renumbered",
			kind: models.KindPlan,
			key:  "2025-Q2",
			body: `{"startDate":"2025-03-31","weeks":[{"weekNumber":5},{"weekNumber":5}]}`,
			check: func(t *testing.T, payload json.RawMessage) {
				var p models.QuarterlyPlan
				require.NoError(t, json.Unmarshal(payload, &p))
				assert.Equal(t, "2025-Q2", p.ID)
				assert.Equal(t, 2, p.Weeks[1].WeekNumber)
				assert.Equal(t, "2025-04-07", p.Weeks[1].StartDate)
			},
		},
		{
			name: "review year from key",
			kind: models.KindReview,
			key:  "2024",
			body: `{"year":1999,"answers":{"wins":"a"}}`,
			check: func(t *testing.T, payload json.RawMessage) {
				var r models.AnnualReview
				require.NoError(t, json.Unmarshal(payload, &r))
				assert.Equal(t, 2024, r.Year)
				assert.True(t, r.UpdatedAt.Equal(fixedNow))
			},
		},
		{
			name: "shipping date from key",
			kind: models.KindShipping,
			key:  "2025-06-01",
			body: `{"shipped":"docs"}`,
			check: func(t *testing.T, payload json.RawMessage) {
				var e models.ShippingEntry
				require.NoError(t, json.Unmarshal(payload, &e))
				assert.Equal(t, "2025-06-01", e.Date)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestResourceSvc(t)
			repo.EXPECT().PutResource(gomock.Any(), gomock.Any()).DoAndReturn(echoPut)

			saved, err := svc.Put(context.Background(), models.Resource{UserID: 1, Kind: tt.kind, Key: tt.key, Payload: json.RawMessage(tt.body)})
			require.NoError(t, err)
			tt.check(t, saved.Payload)
		})
	}
}

func TestResourceService_Put_MalformedPayload(t *testing.T) {
	svc, _ := newTestResourceSvc(t)

	_, err := svc.Put(context.Background(), models.Resource{UserID: 1, Kind: models.KindShipping, Key: "2025-06-01", Payload: json.RawMessage(`[1,2]`)})
	assert.ErrorIs(t, err, ErrInvalidResource)
}

// ── Get / Create / Delete ────────────────────────────────────────────────────

func TestResourceService_Get_NotFound(t *testing.T) {
	svc, repo := newTestResourceSvc(t)
	repo.EXPECT().GetResource(gomock.Any(), int64(1), models.KindWeek, "2025-W01").Return(models.Resource{}, store.ErrResourceNotFound)

	_, err := svc.Get(context.Background(), 1, models.KindWeek, "2025-W01")
	assert.ErrorIs(t, err, ErrResourceNotFound)
	assert.ErrorIs(t, err, store.ErrResourceNotFound)
}

func TestResourceService_Create_GeneratesKey(t *testing.T) {
	svc, repo := newTestResourceSvc(t)
	repo.EXPECT().GetResource(gomock.Any(), int64(1), models.KindGoal, gomock.Any()).Return(models.Resource{}, store.ErrResourceNotFound)
	repo.EXPECT().PutResource(gomock.Any(), gomock.Any()).DoAndReturn(echoPut)

	saved, err := svc.Create(context.Background(), models.Resource{UserID: 1, Kind: models.KindGoal, Payload: json.RawMessage(`{"title":"x"}`)})
	require.NoError(t, err)
	assert.True(t, utils.IsUUID(saved.Key))
}

func TestResourceService_Delete_NotFound(t *testing.T) {
	svc, repo := newTestResourceSvc(t)
	repo.EXPECT().DeleteResource(gomock.Any(), int64(1), models.KindShipping, "2025-06-01").Return(store.ErrResourceNotFound)

	err := svc.Delete(context.Background(), 1, models.KindShipping, "2025-06-01")
	assert.ErrorIs(t, err, ErrResourceNotFound)
}

// ── Validation wrapper ───────────────────────────────────────────────────────

func TestResourceValidationService(t *testing.T) {
	goalID := "0190a6f1-7b7c-7cc4-8a8e-5d4f3a2b1c0d"

	tests := []struct {
		name    string
		call    func(svc ResourceService) error
		expect  func(inner *mock.MockResourceService)
		wantErr error
	}{
		{
			name: "bad week key",
			call: func(svc ResourceService) error {
				_, err := svc.Get(context.Background(), 1, models.KindWeek, "2025-23")
				return err
			},
			wantErr: ErrInvalidKey,
		},
		{
			name: "unknown kind",
			call: func(svc ResourceService) error {
				_, err := svc.List(context.Background(), 1, models.ResourceKind("notes"), "")
				return err
			},
			wantErr: validators.ErrUnknownKind,
		},
		{
			name: "payload is not json",
			call: func(svc ResourceService) error {
				_, err := svc.Put(context.Background(), models.Resource{UserID: 1, Kind: models.KindShipping, Key: "2025-06-01", Payload: json.RawMessage(`{`)})
				return err
			},
			wantErr: ErrInvalidResource,
		},
		{
			name: "goal progress out of range",
			call: func(svc ResourceService) error {
				_, err := svc.Put(context.Background(), models.Resource{UserID: 1, Kind: models.KindGoal, Key: goalID, Payload: json.RawMessage(`{"title":"x","progress":150}`)})
				return err
			},
			wantErr: validators.ErrInvalidProgress,
		},
		{
			name: "week with an hour past midnight",
			call: func(svc ResourceService) error {
				_, err := svc.Put(context.Background(), models.Resource{UserID: 1, Kind: models.KindWeek, Key: "2025-W23", Payload: json.RawMessage(`{"startingHour":24}`)})
				return err
			},
			wantErr: validators.ErrInvalidHour,
		},
		{
			name: "create without key reaches inner service",
			call: func(svc ResourceService) error {
				_, err := svc.Create(context.Background(), models.Resource{UserID: 1, Kind: models.KindGoal, Payload: json.RawMessage(`{"title":"x"}`)})
				return err
			},
			expect: func(inner *mock.MockResourceService) {
				inner.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.Resource{}, nil)
			},
		},
		{
			name: "valid delete reaches inner service",
			call: func(svc ResourceService) error {
				return svc.Delete(context.Background(), 1, models.KindReview, "2024")
			},
			expect: func(inner *mock.MockResourceService) {
				inner.EXPECT().Delete(gomock.Any(), int64(1), models.KindReview, "2024").Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner := mock.NewMockResourceService(gomock.NewController(t))
			if tt.expect != nil {
				tt.expect(inner)
			}
			svc := NewResourceValidationService(validators.NewResourceValidator(), logger.Nop()).Wrap(inner)

			err := tt.call(svc)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
