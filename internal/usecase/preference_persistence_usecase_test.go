package usecase

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"
	"time"

	"nanny_booking/internal/domain/entities"
	"nanny_booking/internal/domain/preferences"
	mock_interfaces "nanny_booking/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var clientIdentity = entities.Identity{SessionID: "sess-1", ClientID: "client-1", Role: entities.RoleClient}

func TestPreferencePersistenceUseCase_Persist(t *testing.T) {
	t.Run("anonymous visitors are skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewPreferencePersistenceUseCase(mock_interfaces.NewMockIProfileRepository(ctrl), nil, 0, nil)

		if err := uc.Persist(context.Background(), entities.Identity{SessionID: "sess-1"}, preferences.Defaults()); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})

	t.Run("non-client roles are skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewPreferencePersistenceUseCase(mock_interfaces.NewMockIProfileRepository(ctrl), nil, 0, nil)

		id := entities.Identity{SessionID: "sess-1", ClientID: "nanny-1", Role: "provider"}
		if err := uc.Persist(context.Background(), id, preferences.Defaults()); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})

	t.Run("empty address is not written", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProfileRepository(ctrl)
		uc := NewPreferencePersistenceUseCase(repo, nil, 0, nil)

		repo.EXPECT().Upsert(gomock.Any(), "client-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, fields map[string]any) error {
				for _, key := range preferences.AddressFields {
					if _, ok := fields[key]; ok {
						t.Fatalf("address key %q must be stripped", key)
					}
				}
				if fields[preferences.FieldCooking] != true {
					t.Fatalf("expected cooking=true, got %v", fields[preferences.FieldCooking])
				}
				return nil
			},
		)

		p := preferences.Defaults()
		p.Cooking = true
		if err := uc.Persist(context.Background(), clientIdentity, p); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})

	t.Run("partial address keeps every address key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProfileRepository(ctrl)
		uc := NewPreferencePersistenceUseCase(repo, nil, 0, nil)

		repo.EXPECT().Upsert(gomock.Any(), "client-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, fields map[string]any) error {
				if fields[preferences.FieldPostalCode] != "8001" {
					t.Fatalf("expected postal code, got %v", fields[preferences.FieldPostalCode])
				}
				if _, ok := fields[preferences.FieldStreetAddress]; !ok {
					t.Fatalf("expected street address key to be kept")
				}
				return nil
			},
		)

		p := preferences.Defaults()
		p.PostalCode = "8001"
		if err := uc.Persist(context.Background(), clientIdentity, p); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})

	t.Run("write failure becomes a warning", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProfileRepository(ctrl)
		uc := NewPreferencePersistenceUseCase(repo, nil, 0, nil)

		cause := errors.New("db")
		repo.EXPECT().Upsert(gomock.Any(), "client-1", gomock.Any()).Return(cause)

		err := uc.Persist(context.Background(), clientIdentity, preferences.Defaults())
		var warning *PersistenceWarning
		if !errors.As(err, &warning) {
			t.Fatalf("expected PersistenceWarning, got %v", err)
		}
		if !errors.Is(err, cause) {
			t.Fatalf("expected the cause to be wrapped")
		}
	})
}

func TestPreferencePersistenceUseCase_Load(t *testing.T) {
	t.Run("missing profile yields defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProfileRepository(ctrl)
		uc := NewPreferencePersistenceUseCase(repo, nil, 0, nil)

		repo.EXPECT().GetByClientID(gomock.Any(), "client-1").Return(entities.Profile{}, nil)

		p, err := uc.Load(context.Background(), " client-1 ")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if p.ChildrenAges == nil || p.SelectedDates == nil || p.TimeSlots == nil {
			t.Fatalf("expected empty collections, got %+v", p)
		}
	})

	t.Run("stored profile is normalized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProfileRepository(ctrl)
		uc := NewPreferencePersistenceUseCase(repo, nil, 0, nil)

		stored := entities.UserPreferences{
			DurationType:     "long-term",
			SelectedDates:    []string{"2024-06-01"},
			HouseholdSupport: []string{entities.TagFoodPrep},
		}
		repo.EXPECT().GetByClientID(gomock.Any(), "client-1").Return(entities.Profile{ClientID: "client-1", Preferences: stored}, nil)

		p, err := uc.Load(context.Background(), "client-1")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if p.DurationType != entities.DurationLongTerm || len(p.SelectedDates) != 0 || !p.Cooking {
			t.Fatalf("expected normalized document, got %+v", p)
		}
	})

	transport := []struct {
		name string
		err  error
	}{
		{"deadline", fmt.Errorf("get item: %w", context.DeadlineExceeded)},
		{"net error", &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("refused")}},
		{"message", errors.New("operation error DynamoDB: GetItem, connection refused")},
	}
	for _, tc := range transport {
		t.Run("transport failure "+tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIProfileRepository(ctrl)
			uc := NewPreferencePersistenceUseCase(repo, nil, 0, nil)

			repo.EXPECT().GetByClientID(gomock.Any(), "client-1").Return(entities.Profile{}, tc.err)

			_, err := uc.Load(context.Background(), "client-1")
			var recoverable *RecoverableLoadFailure
			if !errors.As(err, &recoverable) {
				t.Fatalf("expected RecoverableLoadFailure, got %v", err)
			}
		})
	}

	t.Run("other failures are not recoverable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProfileRepository(ctrl)
		uc := NewPreferencePersistenceUseCase(repo, nil, 0, nil)

		repo.EXPECT().GetByClientID(gomock.Any(), "client-1").Return(entities.Profile{}, errors.New("ValidationException: bad key"))

		_, err := uc.Load(context.Background(), "client-1")
		var recoverable *RecoverableLoadFailure
		if err == nil || errors.As(err, &recoverable) {
			t.Fatalf("expected a plain error, got %v", err)
		}
	})
}

func TestPreferencePersistenceUseCase_RecoverSelection(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	provider := entities.SelectedProvider{ID: "nanny-1"}

	t.Run("fresh selection is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cache := mock_interfaces.NewMockIRecoveryCache(ctrl)
		uc := NewPreferencePersistenceUseCase(nil, cache, 0, nil)
		uc.now = func() time.Time { return now }

		cache.EXPECT().LoadSelection(gomock.Any(), "sess-1").Return(entities.CachedSelection{Provider: provider, Timestamp: now.Add(-23 * time.Hour)}, true, nil)

		got := uc.RecoverSelection(context.Background(), "sess-1")
		if got == nil || got.ID != "nanny-1" {
			t.Fatalf("expected nanny-1, got %+v", got)
		}
	})

	stale := []struct {
		name string
		ts   time.Time
	}{
		{"older than a day", now.Add(-25 * time.Hour)},
		{"no timestamp", time.Time{}},
	}
	for _, tc := range stale {
		t.Run("discards selection "+tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			cache := mock_interfaces.NewMockIRecoveryCache(ctrl)
			uc := NewPreferencePersistenceUseCase(nil, cache, 0, nil)
			uc.now = func() time.Time { return now }

			cache.EXPECT().LoadSelection(gomock.Any(), "sess-1").Return(entities.CachedSelection{Provider: provider, Timestamp: tc.ts}, true, nil)
			cache.EXPECT().ClearSelection(gomock.Any(), "sess-1").Return(nil)

			if got := uc.RecoverSelection(context.Background(), "sess-1"); got != nil {
				t.Fatalf("expected nil, got %+v", got)
			}
		})
	}

	t.Run("cache failure is ignored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cache := mock_interfaces.NewMockIRecoveryCache(ctrl)
		uc := NewPreferencePersistenceUseCase(nil, cache, 0, nil)

		cache.EXPECT().LoadSelection(gomock.Any(), "sess-1").Return(entities.CachedSelection{}, false, errors.New("redis down"))

		if got := uc.RecoverSelection(context.Background(), "sess-1"); got != nil {
			t.Fatalf("expected nil, got %+v", got)
		}
	})
}

func TestPreferencePersistenceUseCase_CacheSelectionStampsTime(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	cache := mock_interfaces.NewMockIRecoveryCache(ctrl)
	uc := NewPreferencePersistenceUseCase(nil, cache, 0, nil)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return now }

	cache.EXPECT().SaveSelection(gomock.Any(), "sess-1", entities.CachedSelection{Provider: entities.SelectedProvider{ID: "nanny-1"}, Timestamp: now}).Return(nil)

	uc.CacheSelection(context.Background(), "sess-1", entities.SelectedProvider{ID: "nanny-1"})
}
