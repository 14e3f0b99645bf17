package interfaces

import (
	"context"

	"nanny_booking/internal/domain/entities"
)

// IRecoveryCache keeps a crash-recovery copy of a session's wizard state.
// Both entries are scoped by session id and are last-write-wins.
type IRecoveryCache interface {
	SavePreferences(ctx context.Context, sessionID string, p entities.UserPreferences) error
	LoadPreferences(ctx context.Context, sessionID string) (entities.UserPreferences, bool, error)
	SaveSelection(ctx context.Context, sessionID string, sel entities.CachedSelection) error
	LoadSelection(ctx context.Context, sessionID string) (entities.CachedSelection, bool, error)
	ClearSelection(ctx context.Context, sessionID string) error
	Clear(ctx context.Context, sessionID string) error
}
