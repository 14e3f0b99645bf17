package usecase

import (
	"context"
	"strings"
	"sync"

	"nanny_booking/internal/domain/entities"
	"nanny_booking/internal/domain/pricing"
)

// IPricingUseCase renders preview estimates for the current session document.
// Estimates are never persisted and never authoritative.
type IPricingUseCase interface {
	Preview(ctx context.Context, identity entities.Identity) (entities.PricingBreakdown, error)
	PreviewForProvider(ctx context.Context, identity entities.Identity, provider *entities.SelectedProvider) (entities.PricingBreakdown, error)
}

type pricingMemo struct {
	generation string
	revision   uint64
	providerID string
	breakdown  entities.PricingBreakdown
}

type PricingUseCase struct {
	sessions IPreferenceSessionUseCase

	mu   sync.Mutex
	memo map[string]pricingMemo
}

var _ IPricingUseCase = (*PricingUseCase)(nil)

func NewPricingUseCase(sessions IPreferenceSessionUseCase) *PricingUseCase {
	return &PricingUseCase{sessions: sessions, memo: make(map[string]pricingMemo)}
}

// Preview routes on the session's duration type.
func (u *PricingUseCase) Preview(ctx context.Context, identity entities.Identity) (entities.PricingBreakdown, error) {
	snap, err := u.sessions.Snapshot(ctx, identity)
	if err != nil {
		return entities.PricingBreakdown{}, err
	}
	return u.memoized(snap, "", func() entities.PricingBreakdown {
		return pricing.Calculate(snap.Preferences)
	}), nil
}

// PreviewForProvider prices the session document for one candidate, as a
// long-term arrangement. A nil or empty provider means the selected one.
func (u *PricingUseCase) PreviewForProvider(ctx context.Context, identity entities.Identity, provider *entities.SelectedProvider) (entities.PricingBreakdown, error) {
	snap, err := u.sessions.Snapshot(ctx, identity)
	if err != nil {
		return entities.PricingBreakdown{}, err
	}

	var target entities.SelectedProvider
	switch {
	case provider != nil && strings.TrimSpace(provider.ID) != "":
		target = *provider
		target.ID = strings.TrimSpace(target.ID)
	case snap.SelectedProvider != nil:
		target = *snap.SelectedProvider
	default:
		return entities.PricingBreakdown{}, ErrNoProviderSelected
	}

	return u.memoized(snap, target.ID, func() entities.PricingBreakdown {
		return pricing.CalculateForProvider(snap.Preferences, target)
	}), nil
}

// Forget drops the memoized breakdown of a session.
func (u *PricingUseCase) Forget(sessionID string) {
	u.mu.Lock()
	delete(u.memo, sessionID)
	u.mu.Unlock()
}

// memoized keeps the last breakdown of each session and recomputes when the
// document moved or another provider is priced. Revisions restart at zero when a
// session is reopened, so the key carries the session generation too.
func (u *PricingUseCase) memoized(snap entities.SessionSnapshot, providerID string, calc func() entities.PricingBreakdown) entities.PricingBreakdown {
	u.mu.Lock()
	m, ok := u.memo[snap.SessionID]
	u.mu.Unlock()
	if ok && m.generation == snap.Generation && m.revision == snap.Revision && m.providerID == providerID {
		return cloneBreakdown(m.breakdown)
	}

	b := calc()
	u.mu.Lock()
	u.memo[snap.SessionID] = pricingMemo{
		generation: snap.Generation,
		revision:   snap.Revision,
		providerID: providerID,
		breakdown:  b,
	}
	u.mu.Unlock()
	return cloneBreakdown(b)
}

func cloneBreakdown(b entities.PricingBreakdown) entities.PricingBreakdown {
	b.AddOns = append([]entities.AddOn{}, b.AddOns...)
	return b
}
