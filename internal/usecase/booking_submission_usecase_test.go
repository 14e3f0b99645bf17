package usecase

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"

	"nanny_booking/internal/domain/entities"
	mock_interfaces "nanny_booking/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type submissionFixture struct {
	sessionFixture
	gateway  *mock_interfaces.MockIBookingGateway
	bookings *mock_interfaces.MockIBookingRepository
	uc       *BookingSubmissionUseCase
}

func newSubmissionFixture(t *testing.T, ctrl *gomock.Controller) submissionFixture {
	t.Helper()
	sf := newSessionFixture(t, ctrl, SessionOptions{Debounce: time.Hour, FastDebounce: time.Hour})
	gateway := mock_interfaces.NewMockIBookingGateway(ctrl)
	bookings := mock_interfaces.NewMockIBookingRepository(ctrl)
	return submissionFixture{
		sessionFixture: sf,
		gateway:        gateway,
		bookings:       bookings,
		uc:             NewBookingSubmissionUseCase(sf.uc, gateway, bookings, nil),
	}
}

// openWith opens the client session with prefs as the stored profile.
func (f submissionFixture) openWith(t *testing.T, prefs entities.UserPreferences) {
	t.Helper()
	f.cache.EXPECT().LoadPreferences(gomock.Any(), "sess-1").Return(entities.UserPreferences{}, false, nil)
	f.profile.EXPECT().GetByClientID(gomock.Any(), "client-1").Return(entities.Profile{ClientID: "client-1", Preferences: prefs}, nil)
	f.cache.EXPECT().LoadSelection(gomock.Any(), "sess-1").Return(entities.CachedSelection{}, false, nil)
	if _, err := f.sessionFixture.uc.Open(context.Background(), clientIdentity); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestBookingSubmissionUseCase_Submit(t *testing.T) {
	shortTerm := entities.UserPreferences{
		DurationType:   entities.DurationShortTerm,
		BookingSubType: entities.SubTypeDateNight,
		SelectedDates:  []string{"2024-06-07"},
		TimeSlots:      []entities.TimeSlot{{Start: "18:00", End: "22:00"}},
	}

	t.Run("invalid session", func(t *testing.T) {
		uc := NewBookingSubmissionUseCase(nil, nil, nil, nil)
		_, err := uc.Submit(context.Background(), entities.Identity{}, "nanny-1")
		if !errors.Is(err, ErrInvalidSessionID) {
			t.Fatalf("expected ErrInvalidSessionID, got %v", err)
		}
	})

	t.Run("anonymous visitor", func(t *testing.T) {
		uc := NewBookingSubmissionUseCase(nil, nil, nil, nil)
		_, err := uc.Submit(context.Background(), entities.Identity{SessionID: "anon"}, "nanny-1")
		if !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("expected ErrUnauthenticated, got %v", err)
		}
	})

	t.Run("missing provider", func(t *testing.T) {
		uc := NewBookingSubmissionUseCase(nil, nil, nil, nil)
		_, err := uc.Submit(context.Background(), clientIdentity, "  ")
		var verr *ValidationError
		if !errors.As(err, &verr) || !reflect.DeepEqual(verr.MissingFields, []string{"providerId"}) {
			t.Fatalf("expected providerId validation error, got %v", err)
		}
	})

	t.Run("short-term without schedule fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newSubmissionFixture(t, ctrl)
		f.openWith(t, entities.UserPreferences{DurationType: entities.DurationShortTerm})

		_, err := f.uc.Submit(context.Background(), clientIdentity, "nanny-1")
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		want := []string{"bookingSubType", "selectedDates", "timeSlots"}
		if !reflect.DeepEqual(verr.MissingFields, want) {
			t.Fatalf("expected %v, got %v", want, verr.MissingFields)
		}
	})

	t.Run("inferred short-term is validated too", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newSubmissionFixture(t, ctrl)
		f.openWith(t, entities.UserPreferences{BookingSubType: entities.SubTypeEmergency})

		_, err := f.uc.Submit(context.Background(), clientIdentity, "nanny-1")
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		want := []string{"selectedDates", "timeSlots"}
		if !reflect.DeepEqual(verr.MissingFields, want) {
			t.Fatalf("expected %v, got %v", want, verr.MissingFields)
		}
	})

	t.Run("gateway failure keeps the preferences", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newSubmissionFixture(t, ctrl)
		f.openWith(t, shortTerm)

		cause := errors.New("provider unavailable")
		f.gateway.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(entities.Booking{}, cause)

		_, err := f.uc.Submit(context.Background(), clientIdentity, "nanny-1")
		var cerr *BookingCreationError
		if !errors.As(err, &cerr) || !errors.Is(err, cause) {
			t.Fatalf("expected BookingCreationError wrapping the cause, got %v", err)
		}

		snap, _ := f.sessionFixture.uc.Snapshot(context.Background(), clientIdentity)
		if snap.Preferences.BookingSubType != entities.SubTypeDateNight {
			t.Fatalf("preferences must survive a failed submission")
		}
	})

	t.Run("success resolves the duration type and resets the session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newSubmissionFixture(t, ctrl)
		prefs := shortTerm
		prefs.DurationType = ""
		f.openWith(t, prefs)

		f.gateway.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req entities.BookingRequest) (entities.Booking, error) {
				if req.ClientID != "client-1" || req.ProviderID != "nanny-1" {
					t.Fatalf("unexpected request: %+v", req)
				}
				if req.Preferences.DurationType != entities.DurationShortTerm {
					t.Fatalf("expected inferred short_term, got %q", req.Preferences.DurationType)
				}
				return entities.Booking{ID: "b-1", Status: "pending"}, nil
			},
		)
		f.cache.EXPECT().Clear(gomock.Any(), "sess-1").Return(nil)

		booking, err := f.uc.Submit(context.Background(), clientIdentity, " nanny-1 ")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if booking.ID != "b-1" {
			t.Fatalf("expected b-1, got %q", booking.ID)
		}

		snap, _ := f.sessionFixture.uc.Snapshot(context.Background(), clientIdentity)
		if snap.Preferences.BookingSubType != entities.SubTypeNone || len(snap.Preferences.SelectedDates) != 0 {
			t.Fatalf("expected defaults after submission, got %+v", snap.Preferences)
		}
		if len(f.uc.inFlight) != 0 {
			t.Fatalf("expected the submission slot to be released, got %v", f.uc.inFlight)
		}
	})

	t.Run("concurrent submission is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newSubmissionFixture(t, ctrl)
		f.openWith(t, shortTerm)

		entered := make(chan struct{})
		release := make(chan struct{})
		f.gateway.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).DoAndReturn(
			func(context.Context, entities.BookingRequest) (entities.Booking, error) {
				close(entered)
				<-release
				return entities.Booking{ID: "b-1"}, nil
			},
		).Times(1)
		f.cache.EXPECT().Clear(gomock.Any(), "sess-1").Return(nil)

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = f.uc.Submit(context.Background(), clientIdentity, "nanny-1")
		}()
		<-entered

		_, err := f.uc.Submit(context.Background(), clientIdentity, "nanny-1")
		if !errors.Is(err, ErrSubmissionInFlight) {
			t.Fatalf("expected ErrSubmissionInFlight, got %v", err)
		}

		close(release)
		wg.Wait()
	})
}

func TestBookingSubmissionUseCase_GetBooking(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewBookingSubmissionUseCase(nil, nil, nil, nil)
		_, err := uc.GetBooking(context.Background(), " ")
		if !errors.Is(err, ErrInvalidBookingID) {
			t.Fatalf("expected ErrInvalidBookingID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewBookingSubmissionUseCase(nil, nil, repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Booking{}, nil)

		_, err := uc.GetBooking(context.Background(), "b-1")
		if !errors.Is(err, ErrBookingNotFound) {
			t.Fatalf("expected ErrBookingNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewBookingSubmissionUseCase(nil, nil, repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Booking{ID: "b-1", TotalAmount: 995}, nil)

		b, err := uc.GetBooking(context.Background(), " b-1 ")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if b.TotalAmount != 995 {
			t.Fatalf("expected the stored amount, got %v", b.TotalAmount)
		}
	})
}

func TestResolveDurationType(t *testing.T) {
	cases := []struct {
		name string
		p    entities.UserPreferences
		want entities.DurationType
	}{
		{"explicit", entities.UserPreferences{DurationType: "long-term", BookingSubType: entities.SubTypeEmergency}, entities.DurationLongTerm},
		{"inferred short", entities.UserPreferences{BookingSubType: entities.SubTypeEmergency}, entities.DurationShortTerm},
		{"inferred long", entities.UserPreferences{}, entities.DurationLongTerm},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveDurationType(tc.p); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
