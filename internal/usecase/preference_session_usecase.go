package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"nanny_booking/internal/domain/entities"
	"nanny_booking/internal/domain/preferences"
)

// IPreferenceSessionUseCase owns the booking wizard document of every live session.
//
// Each session is the single writer of its document. Updates apply in memory
// immediately, are mirrored to the recovery cache synchronously and reach the
// remote profile through a debounced write.
type IPreferenceSessionUseCase interface {
	Open(ctx context.Context, identity entities.Identity) (entities.SessionSnapshot, error)
	Snapshot(ctx context.Context, identity entities.Identity) (entities.SessionSnapshot, error)
	ApplyUpdate(ctx context.Context, identity entities.Identity, patch entities.PreferencesPatch) (entities.SessionSnapshot, error)
	SelectProvider(ctx context.Context, identity entities.Identity, provider entities.SelectedProvider) (entities.SessionSnapshot, error)
	ClearProvider(ctx context.Context, identity entities.Identity) (entities.SessionSnapshot, error)
	Reset(ctx context.Context, identity entities.Identity) error
	Close(ctx context.Context, identity entities.Identity) error
}

type SessionOptions struct {
	// Debounce is the write delay after an ordinary update.
	Debounce time.Duration
	// FastDebounce applies when an update flipped the cooking flag.
	FastDebounce time.Duration
	// WriteTimeout bounds a single remote profile write.
	WriteTimeout time.Duration
	// IdleTTL is how long an untouched session is kept in memory.
	IdleTTL time.Duration
	// SweepInterval is the period of the idle session sweep.
	SweepInterval time.Duration
}

func DefaultSessionOptions() SessionOptions {
	return SessionOptions{
		Debounce:      500 * time.Millisecond,
		FastDebounce:  100 * time.Millisecond,
		WriteTimeout:  5 * time.Second,
		IdleTTL:       30 * time.Minute,
		SweepInterval: time.Minute,
	}
}

type session struct {
	mu         sync.Mutex
	identity   entities.Identity
	generation string
	prefs      entities.UserPreferences
	revision   uint64
	provider   *entities.SelectedProvider
	warnings   []string

	// closed is set once the session left the registry; no write is scheduled
	// or run for it afterwards.
	closed bool

	// lastSeen is guarded by the use case mutex, not s.mu.
	lastSeen time.Time
}

// snapshot copies the session state. Callers hold s.mu.
func (s *session) snapshot(drainWarnings bool) entities.SessionSnapshot {
	snap := entities.SessionSnapshot{
		SessionID:   s.identity.SessionID,
		Generation:  s.generation,
		Revision:    s.revision,
		Preferences: s.prefs.Clone(),
	}
	if s.provider != nil {
		p := *s.provider
		snap.SelectedProvider = &p
	}
	if drainWarnings && len(s.warnings) > 0 {
		snap.Warnings = s.warnings
		s.warnings = nil
	}
	return snap
}

type PreferenceSessionUseCase struct {
	persistence IPreferencePersistenceUseCase
	scheduler   *PersistenceScheduler
	opts        SessionOptions
	logger      *zap.Logger

	mu        sync.Mutex
	sessions  map[string]*session
	onRelease []func(sessionID string)
}

var _ IPreferenceSessionUseCase = (*PreferenceSessionUseCase)(nil)

func NewPreferenceSessionUseCase(
	persistence IPreferencePersistenceUseCase,
	scheduler *PersistenceScheduler,
	opts SessionOptions,
	logger *zap.Logger,
) *PreferenceSessionUseCase {
	def := DefaultSessionOptions()
	if opts.Debounce <= 0 {
		opts.Debounce = def.Debounce
	}
	if opts.FastDebounce <= 0 {
		opts.FastDebounce = def.FastDebounce
	}
	if opts.WriteTimeout <= 0 {
		opts.WriteTimeout = def.WriteTimeout
	}
	if opts.IdleTTL <= 0 {
		opts.IdleTTL = def.IdleTTL
	}
	if opts.SweepInterval <= 0 {
		opts.SweepInterval = def.SweepInterval
	}
	if scheduler == nil {
		scheduler = NewPersistenceScheduler()
	}
	return &PreferenceSessionUseCase{
		persistence: persistence,
		scheduler:   scheduler,
		opts:        opts,
		logger:      namedLogger(logger, "session"),
		sessions:    make(map[string]*session),
	}
}

// Open returns the session of identity, creating it on first use. A new session
// starts from the recovery cache or defaults, is replaced by the remote profile
// when that loads, and gets back a provider selection younger than the TTL.
func (u *PreferenceSessionUseCase) Open(ctx context.Context, identity entities.Identity) (entities.SessionSnapshot, error) {
	s, err := u.session(ctx, identity)
	if err != nil {
		return entities.SessionSnapshot{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot(true), nil
}

// Snapshot is Open without draining pending warnings.
func (u *PreferenceSessionUseCase) Snapshot(ctx context.Context, identity entities.Identity) (entities.SessionSnapshot, error) {
	s, err := u.session(ctx, identity)
	if err != nil {
		return entities.SessionSnapshot{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot(false), nil
}

// ApplyUpdate merges patch into the session document. It never fails for a
// valid session; persistence problems surface later as snapshot warnings.
func (u *PreferenceSessionUseCase) ApplyUpdate(ctx context.Context, identity entities.Identity, patch entities.PreferencesPatch) (entities.SessionSnapshot, error) {
	s, err := u.session(ctx, identity)
	if err != nil {
		return entities.SessionSnapshot{}, err
	}

	s.mu.Lock()
	prev := s.prefs
	next := preferences.Apply(prev, patch)
	s.prefs = next
	s.revision++
	u.persistence.CachePreferences(ctx, s.identity.SessionID, next)

	delay := u.opts.Debounce
	if prev.Cooking != next.Cooking {
		delay = u.opts.FastDebounce
	}
	if s.identity.CanPersist() {
		u.schedulePersist(s, delay)
	}
	snap := s.snapshot(true)
	s.mu.Unlock()
	return snap, nil
}

func (u *PreferenceSessionUseCase) SelectProvider(ctx context.Context, identity entities.Identity, provider entities.SelectedProvider) (entities.SessionSnapshot, error) {
	provider.ID = strings.TrimSpace(provider.ID)
	if provider.ID == "" {
		return entities.SessionSnapshot{}, ErrInvalidProviderID
	}
	s, err := u.session(ctx, identity)
	if err != nil {
		return entities.SessionSnapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.provider = &provider
	s.revision++
	u.persistence.CacheSelection(ctx, s.identity.SessionID, provider)
	return s.snapshot(true), nil
}

func (u *PreferenceSessionUseCase) ClearProvider(ctx context.Context, identity entities.Identity) (entities.SessionSnapshot, error) {
	s, err := u.session(ctx, identity)
	if err != nil {
		return entities.SessionSnapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.provider != nil {
		s.provider = nil
		s.revision++
	}
	u.persistence.ForgetSelection(ctx, s.identity.SessionID)
	return s.snapshot(true), nil
}

// Reset returns the session to defaults after a successful submission: the
// pending remote write is cancelled and the recovery entries are removed.
func (u *PreferenceSessionUseCase) Reset(ctx context.Context, identity entities.Identity) error {
	sid := strings.TrimSpace(identity.SessionID)
	if sid == "" {
		return ErrInvalidSessionID
	}
	u.scheduler.Cancel(sid)

	u.mu.Lock()
	s, ok := u.sessions[sid]
	u.mu.Unlock()
	if ok {
		s.mu.Lock()
		s.prefs = preferences.Defaults()
		s.provider = nil
		s.warnings = nil
		s.revision++
		s.mu.Unlock()
	}

	u.persistence.ClearRecovery(ctx, sid)
	return nil
}

// Close drops the session. A pending remote write is cancelled, not flushed.
func (u *PreferenceSessionUseCase) Close(_ context.Context, identity entities.Identity) error {
	sid := strings.TrimSpace(identity.SessionID)
	if sid == "" {
		return ErrInvalidSessionID
	}

	u.mu.Lock()
	s, ok := u.sessions[sid]
	delete(u.sessions, sid)
	u.mu.Unlock()

	u.drop(sid, s, ok)
	u.logger.Debug("session closed", zap.String("session_id", sid))
	return nil
}

// OnRelease registers fn to run with the id of every session that is closed or
// evicted for being idle.
func (u *PreferenceSessionUseCase) OnRelease(fn func(sessionID string)) {
	u.mu.Lock()
	u.onRelease = append(u.onRelease, fn)
	u.mu.Unlock()
}

// SweepIdle evicts the sessions untouched for longer than the idle TTL at now
// and returns how many went.
func (u *PreferenceSessionUseCase) SweepIdle(now time.Time) int {
	cutoff := now.Add(-u.opts.IdleTTL)

	u.mu.Lock()
	idle := make(map[string]*session)
	for sid, s := range u.sessions {
		if s.lastSeen.Before(cutoff) {
			idle[sid] = s
			delete(u.sessions, sid)
		}
	}
	u.mu.Unlock()

	for sid, s := range idle {
		u.drop(sid, s, true)
	}
	return len(idle)
}

// StartSweeper evicts idle sessions every SweepInterval until ctx is done.
func (u *PreferenceSessionUseCase) StartSweeper(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(u.opts.SweepInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				if n := u.SweepIdle(now); n > 0 {
					u.logger.Info("idle sessions evicted", zap.Int("count", n))
				}
			}
		}
	}()
}

// drop finishes the removal of a session already taken out of the registry.
func (u *PreferenceSessionUseCase) drop(sid string, s *session, found bool) {
	if found {
		s.mu.Lock()
		s.closed = true
		s.mu.Unlock()
	}
	u.scheduler.Cancel(sid)

	u.mu.Lock()
	hooks := append([]func(string){}, u.onRelease...)
	u.mu.Unlock()
	for _, fn := range hooks {
		fn(sid)
	}
}

// Shutdown cancels every pending write.
func (u *PreferenceSessionUseCase) Shutdown() {
	u.scheduler.Stop()
}

func (u *PreferenceSessionUseCase) session(ctx context.Context, identity entities.Identity) (*session, error) {
	identity.SessionID = strings.TrimSpace(identity.SessionID)
	identity.ClientID = strings.TrimSpace(identity.ClientID)
	if identity.SessionID == "" {
		return nil, ErrInvalidSessionID
	}

	u.mu.Lock()
	s, ok := u.sessions[identity.SessionID]
	if ok {
		s.lastSeen = time.Now()
	}
	u.mu.Unlock()
	if ok {
		u.refreshIdentity(ctx, s, identity)
		return s, nil
	}

	fresh := u.hydrate(ctx, identity)

	u.mu.Lock()
	defer u.mu.Unlock()
	if s, ok := u.sessions[identity.SessionID]; ok {
		s.lastSeen = time.Now()
		return s, nil
	}
	fresh.lastSeen = time.Now()
	u.sessions[identity.SessionID] = fresh
	return fresh, nil
}

func (u *PreferenceSessionUseCase) hydrate(ctx context.Context, identity entities.Identity) *session {
	s := &session{identity: identity, generation: uuid.NewString(), prefs: preferences.Defaults()}

	if cached, ok := u.persistence.LoadCachedPreferences(ctx, identity.SessionID); ok {
		s.prefs = cached
	}
	if identity.CanPersist() {
		if remote, ok := u.loadRemote(ctx, identity); ok {
			s.prefs = remote
		}
	}
	s.provider = u.persistence.RecoverSelection(ctx, identity.SessionID)

	u.logger.Debug("session opened",
		zap.String("session_id", identity.SessionID),
		zap.String("client_id", identity.ClientID),
		zap.Bool("provider_recovered", s.provider != nil))
	return s
}

// refreshIdentity handles a client signing in on an existing session: the
// remote profile is loaded once for the new client.
func (u *PreferenceSessionUseCase) refreshIdentity(ctx context.Context, s *session, identity entities.Identity) {
	s.mu.Lock()
	prev := s.identity
	if prev == identity {
		s.mu.Unlock()
		return
	}
	s.identity = identity
	s.mu.Unlock()

	if !identity.CanPersist() || identity.ClientID == prev.ClientID {
		return
	}
	remote, ok := u.loadRemote(ctx, identity)
	if !ok {
		return
	}
	s.mu.Lock()
	s.prefs = remote
	s.revision++
	s.mu.Unlock()
}

func (u *PreferenceSessionUseCase) loadRemote(ctx context.Context, identity entities.Identity) (entities.UserPreferences, bool) {
	remote, err := u.persistence.Load(ctx, identity.ClientID)
	if err == nil {
		return remote, true
	}

	var recoverable *RecoverableLoadFailure
	if errors.As(err, &recoverable) {
		u.logger.Warn("profile unavailable, using local state",
			zap.String("session_id", identity.SessionID),
			zap.String("client_id", identity.ClientID),
			zap.Error(err))
	} else {
		u.logger.Error("profile load failed",
			zap.String("session_id", identity.SessionID),
			zap.String("client_id", identity.ClientID),
			zap.Error(err))
	}
	return entities.UserPreferences{}, false
}

// schedulePersist writes the session's latest document when the debounce window
// closes. The document is read at fire time, so the write carries every update
// of the burst. Callers hold s.mu.
func (u *PreferenceSessionUseCase) schedulePersist(s *session, delay time.Duration) {
	if s.closed {
		return
	}
	u.scheduler.Schedule(s.identity.SessionID, delay, func() {
		s.mu.Lock()
		if s.closed {
			s.mu.Unlock()
			return
		}
		identity := s.identity
		p := s.prefs.Clone()
		s.mu.Unlock()

		ctx, cancel := context.WithTimeout(context.Background(), u.opts.WriteTimeout)
		defer cancel()
		if err := u.persistence.Persist(ctx, identity, p); err != nil {
			s.mu.Lock()
			s.warnings = append(s.warnings, err.Error())
			s.mu.Unlock()
		}
	})
}
