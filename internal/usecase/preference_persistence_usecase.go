package usecase

import (
	"context"
	"errors"
	"io"
	"net"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"nanny_booking/internal/domain/entities"
	"nanny_booking/internal/domain/preferences"
	"nanny_booking/internal/usecase/interfaces"
)

const DefaultSelectionTTL = 24 * time.Hour

// IPreferencePersistenceUseCase mirrors a session's preferences to the remote
// profile record and the recovery cache.
//
// Remote writes and cache writes are best-effort: failures are reported or
// logged and never undo local state.
type IPreferencePersistenceUseCase interface {
	Persist(ctx context.Context, identity entities.Identity, p entities.UserPreferences) error
	Load(ctx context.Context, clientID string) (entities.UserPreferences, error)
	CachePreferences(ctx context.Context, sessionID string, p entities.UserPreferences)
	LoadCachedPreferences(ctx context.Context, sessionID string) (entities.UserPreferences, bool)
	CacheSelection(ctx context.Context, sessionID string, provider entities.SelectedProvider)
	RecoverSelection(ctx context.Context, sessionID string) *entities.SelectedProvider
	ForgetSelection(ctx context.Context, sessionID string)
	ClearRecovery(ctx context.Context, sessionID string)
}

type PreferencePersistenceUseCase struct {
	profiles     interfaces.IProfileRepository
	cache        interfaces.IRecoveryCache
	selectionTTL time.Duration
	now          func() time.Time
	logger       *zap.Logger
}

var _ IPreferencePersistenceUseCase = (*PreferencePersistenceUseCase)(nil)

func NewPreferencePersistenceUseCase(
	profiles interfaces.IProfileRepository,
	cache interfaces.IRecoveryCache,
	selectionTTL time.Duration,
	logger *zap.Logger,
) *PreferencePersistenceUseCase {
	if selectionTTL <= 0 {
		selectionTTL = DefaultSelectionTTL
	}
	return &PreferencePersistenceUseCase{
		profiles:     profiles,
		cache:        cache,
		selectionTTL: selectionTTL,
		now:          time.Now,
		logger:       namedLogger(logger, "persistence"),
	}
}

// Persist writes the persistable fields of p to the client's profile. Anonymous
// visitors and non-client roles are skipped. Address keys are left out when all
// of them are empty, so the partial upsert keeps a previously saved address.
func (u *PreferencePersistenceUseCase) Persist(ctx context.Context, identity entities.Identity, p entities.UserPreferences) error {
	if !identity.CanPersist() {
		return nil
	}

	fields := preferences.StripEmptyAddress(preferences.Fields(p))
	if err := u.profiles.Upsert(ctx, identity.ClientID, fields); err != nil {
		u.logger.Warn("profile write failed",
			zap.String("client_id", identity.ClientID),
			zap.String("session_id", identity.SessionID),
			zap.Error(err))
		return &PersistenceWarning{Cause: err}
	}

	u.logger.Debug("profile written", zap.String("client_id", identity.ClientID), zap.Int("fields", len(fields)))
	return nil
}

// Load reads the client's profile. A missing profile yields defaults. Transport
// failures come back as *RecoverableLoadFailure; other failures are returned as is.
func (u *PreferencePersistenceUseCase) Load(ctx context.Context, clientID string) (entities.UserPreferences, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return preferences.Defaults(), nil
	}

	profile, err := u.profiles.GetByClientID(ctx, clientID)
	if err != nil {
		if isTransportError(err) {
			return entities.UserPreferences{}, &RecoverableLoadFailure{Cause: err}
		}
		return entities.UserPreferences{}, err
	}
	if profile.ClientID == "" {
		return preferences.Defaults(), nil
	}
	return preferences.Normalize(profile.Preferences), nil
}

func (u *PreferencePersistenceUseCase) CachePreferences(ctx context.Context, sessionID string, p entities.UserPreferences) {
	if err := u.cache.SavePreferences(ctx, sessionID, p); err != nil {
		u.logger.Warn("recovery cache write failed", zap.String("session_id", sessionID), zap.Error(err))
	}
}

func (u *PreferencePersistenceUseCase) LoadCachedPreferences(ctx context.Context, sessionID string) (entities.UserPreferences, bool) {
	p, ok, err := u.cache.LoadPreferences(ctx, sessionID)
	if err != nil {
		u.logger.Warn("recovery cache read failed", zap.String("session_id", sessionID), zap.Error(err))
		return entities.UserPreferences{}, false
	}
	if !ok {
		return entities.UserPreferences{}, false
	}
	return preferences.Normalize(p), true
}

func (u *PreferencePersistenceUseCase) CacheSelection(ctx context.Context, sessionID string, provider entities.SelectedProvider) {
	sel := entities.CachedSelection{Provider: provider, Timestamp: u.now().UTC()}
	if err := u.cache.SaveSelection(ctx, sessionID, sel); err != nil {
		u.logger.Warn("selection cache write failed", zap.String("session_id", sessionID), zap.Error(err))
	}
}

// RecoverSelection returns the cached provider when it was selected less than
// the selection TTL ago. Stale or untimestamped entries are deleted.
func (u *PreferencePersistenceUseCase) RecoverSelection(ctx context.Context, sessionID string) *entities.SelectedProvider {
	sel, ok, err := u.cache.LoadSelection(ctx, sessionID)
	if err != nil {
		u.logger.Warn("selection cache read failed", zap.String("session_id", sessionID), zap.Error(err))
		return nil
	}
	if !ok {
		return nil
	}
	if !sel.Fresh(u.now(), u.selectionTTL) {
		u.logger.Debug("discarding stale provider selection", zap.String("session_id", sessionID))
		u.ForgetSelection(ctx, sessionID)
		return nil
	}
	provider := sel.Provider
	return &provider
}

func (u *PreferencePersistenceUseCase) ForgetSelection(ctx context.Context, sessionID string) {
	if err := u.cache.ClearSelection(ctx, sessionID); err != nil {
		u.logger.Warn("selection cache delete failed", zap.String("session_id", sessionID), zap.Error(err))
	}
}

func (u *PreferencePersistenceUseCase) ClearRecovery(ctx context.Context, sessionID string) {
	if err := u.cache.Clear(ctx, sessionID); err != nil {
		u.logger.Warn("recovery cache clear failed", zap.String("session_id", sessionID), zap.Error(err))
	}
}

var transportMessages = []string{
	"timeout",
	"timed out",
	"connection refused",
	"connection reset",
	"broken pipe",
	"no such host",
	"network is unreachable",
	"server selection error",
	"failed to fetch",
	"network",
}

// isTransportError separates network and timeout failures from a profile that
// genuinely cannot be read. Wrapped SDK errors are checked by type first, then
// by message.
func isTransportError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, m := range transportMessages {
		if strings.Contains(msg, m) {
			return true
		}
	}
	return false
}
