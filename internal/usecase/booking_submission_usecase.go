package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"nanny_booking/internal/domain/entities"
	"nanny_booking/internal/domain/preferences"
	"nanny_booking/internal/usecase/interfaces"
)

// IBookingSubmissionUseCase hands a completed wizard document to the booking service.
type IBookingSubmissionUseCase interface {
	Submit(ctx context.Context, identity entities.Identity, providerID string) (entities.Booking, error)
	GetBooking(ctx context.Context, bookingID string) (entities.Booking, error)
}

type BookingSubmissionUseCase struct {
	sessions IPreferenceSessionUseCase
	gateway  interfaces.IBookingGateway
	bookings interfaces.IBookingRepository
	logger   *zap.Logger

	// inFlight holds the ids of sessions with a submission running.
	mu       sync.Mutex
	inFlight map[string]struct{}
}

var _ IBookingSubmissionUseCase = (*BookingSubmissionUseCase)(nil)

func NewBookingSubmissionUseCase(
	sessions IPreferenceSessionUseCase,
	gateway interfaces.IBookingGateway,
	bookings interfaces.IBookingRepository,
	logger *zap.Logger,
) *BookingSubmissionUseCase {
	return &BookingSubmissionUseCase{
		sessions: sessions,
		gateway:  gateway,
		bookings: bookings,
		logger:   namedLogger(logger, "submission"),
		inFlight: make(map[string]struct{}),
	}
}

// Submit validates the session document and creates the booking. At most one
// submission runs per session; a second one is rejected, not queued. On failure
// the document is kept so the client can retry; on success the session resets.
func (u *BookingSubmissionUseCase) Submit(ctx context.Context, identity entities.Identity, providerID string) (entities.Booking, error) {
	sid := strings.TrimSpace(identity.SessionID)
	if sid == "" {
		return entities.Booking{}, ErrInvalidSessionID
	}

	if !u.acquire(sid) {
		u.logger.Warn("submission ignored, another one is in flight", zap.String("session_id", sid))
		return entities.Booking{}, ErrSubmissionInFlight
	}
	defer u.releaseSession(sid)

	if !identity.Authenticated() {
		return entities.Booking{}, ErrUnauthenticated
	}
	providerID = strings.TrimSpace(providerID)
	if providerID == "" {
		return entities.Booking{}, &ValidationError{MissingFields: []string{"providerId"}}
	}

	snap, err := u.sessions.Snapshot(ctx, identity)
	if err != nil {
		return entities.Booking{}, err
	}
	p := snap.Preferences
	p.DurationType = ResolveDurationType(p)
	if missing := MissingBookingFields(p); len(missing) > 0 {
		return entities.Booking{}, &ValidationError{MissingFields: missing}
	}
	p = preferences.Normalize(p)

	req := entities.BookingRequest{
		Preferences: p,
		ProviderID:  providerID,
		ClientID:    identity.ClientID,

		// a resubmit of an unchanged document reuses the key
		IdempotencyKey: fmt.Sprintf("%s-%d", sid, snap.Revision),
	}
	booking, err := u.gateway.CreateBooking(ctx, req)
	if err != nil {
		u.logger.Warn("booking creation failed",
			zap.String("session_id", sid),
			zap.String("client_id", identity.ClientID),
			zap.Error(err))
		return entities.Booking{}, &BookingCreationError{Cause: err}
	}

	if err := u.sessions.Reset(ctx, identity); err != nil {
		u.logger.Warn("session reset after booking failed", zap.String("session_id", sid), zap.Error(err))
	}
	u.logger.Info("booking created",
		zap.String("session_id", sid),
		zap.String("client_id", identity.ClientID),
		zap.String("booking_id", booking.ID))
	return booking, nil
}

// acquire marks sid as submitting and reports false when it already was.
func (u *BookingSubmissionUseCase) acquire(sid string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, busy := u.inFlight[sid]; busy {
		return false
	}
	u.inFlight[sid] = struct{}{}
	return true
}

func (u *BookingSubmissionUseCase) releaseSession(sid string) {
	u.mu.Lock()
	delete(u.inFlight, sid)
	u.mu.Unlock()
}

func (u *BookingSubmissionUseCase) GetBooking(ctx context.Context, bookingID string) (entities.Booking, error) {
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return entities.Booking{}, ErrInvalidBookingID
	}

	b, err := u.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return entities.Booking{}, err
	}
	if b.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	return b, nil
}

// MissingBookingFields lists the fields a short-term booking still needs.
// Long-term bookings recur on the weekly schedule and need none of them.
func MissingBookingFields(p entities.UserPreferences) []string {
	if preferences.NormalizeDurationType(p.DurationType) != entities.DurationShortTerm {
		return nil
	}
	var missing []string
	if p.BookingSubType == entities.SubTypeNone {
		missing = append(missing, "bookingSubType")
	}
	if len(p.SelectedDates) == 0 {
		missing = append(missing, "selectedDates")
	}
	if len(p.TimeSlots) == 0 {
		missing = append(missing, "timeSlots")
	}
	return missing
}

// ResolveDurationType keeps an explicit duration type, otherwise infers
// short_term from a set sub-type and long_term from its absence.
func ResolveDurationType(p entities.UserPreferences) entities.DurationType {
	if d := preferences.NormalizeDurationType(p.DurationType); d != "" {
		return d
	}
	if p.BookingSubType != entities.SubTypeNone {
		return entities.DurationShortTerm
	}
	return entities.DurationLongTerm
}
