package session

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/pobuilder/backend/internal/domain/purchasing"
	"github.com/pobuilder/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// Defaults for the in-memory session store
const (
	DefaultTTL             = 2 * time.Hour
	DefaultCleanupInterval = time.Minute
	DefaultMaxSessions     = 10000
)

// Config holds the session store settings
type Config struct {
	TTL             time.Duration // idle time after which a session is evicted
	CleanupInterval time.Duration // how often expired sessions are swept
	MaxSessions     int           // 0 means unlimited
}

// DefaultConfig returns the default session store settings
func DefaultConfig() Config {
	return Config{
		TTL:             DefaultTTL,
		CleanupInterval: DefaultCleanupInterval,
		MaxSessions:     DefaultMaxSessions,
	}
}

// sessionEntry wraps a snapshot with its expiration time
type sessionEntry struct {
	order     purchasing.PurchaseOrder
	expiresAt time.Time
}

// InMemorySessionStore implements purchasing.SessionRepository with a map
// guarded by a mutex. Every read or write renews the session's TTL. Sessions
// are lost when the process exits.
type InMemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*sessionEntry
	config   Config
	logger   *zap.Logger
	now      func() time.Time
	onEvict  func(sessionID string)
	stopCh   chan struct{}
	stopped  int32
	started  int32

	// Stats for monitoring
	hits   int64
	misses int64
}

// Option is a functional option for configuring the store
type Option func(*InMemorySessionStore)

// WithConfig sets the store configuration
func WithConfig(cfg Config) Option {
	return func(s *InMemorySessionStore) {
		if cfg.TTL > 0 {
			s.config.TTL = cfg.TTL
		}
		if cfg.CleanupInterval > 0 {
			s.config.CleanupInterval = cfg.CleanupInterval
		}
		if cfg.MaxSessions >= 0 {
			s.config.MaxSessions = cfg.MaxSessions
		}
	}
}

// WithLogger sets the logger for the store
func WithLogger(logger *zap.Logger) Option {
	return func(s *InMemorySessionStore) {
		s.logger = logger
	}
}

// WithClock replaces time.Now, used by tests
func WithClock(now func() time.Time) Option {
	return func(s *InMemorySessionStore) {
		s.now = now
	}
}

// WithEvictionHook registers a callback run for every session removed by expiry
func WithEvictionHook(fn func(sessionID string)) Option {
	return func(s *InMemorySessionStore) {
		s.onEvict = fn
	}
}

// NewInMemorySessionStore creates a new store. Call Start to run the
// background sweep of expired sessions.
func NewInMemorySessionStore(opts ...Option) *InMemorySessionStore {
	s := &InMemorySessionStore{
		sessions: make(map[string]*sessionEntry),
		config:   DefaultConfig(),
		logger:   zap.NewNop(),
		now:      time.Now,
		stopCh:   make(chan struct{}),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Create stores order under a new session id
func (s *InMemorySessionStore) Create(ctx context.Context, order purchasing.PurchaseOrder) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.config.MaxSessions > 0 && len(s.sessions) >= s.config.MaxSessions {
		// Sessions past their TTL may still be waiting for the sweeper
		if s.sweepLocked(); len(s.sessions) >= s.config.MaxSessions {
			return "", shared.ErrSessionLimit
		}
	}

	id := uuid.New().String()
	s.sessions[id] = &sessionEntry{
		order:     order.Clone(),
		expiresAt: s.now().Add(s.config.TTL),
	}
	s.logger.Debug("Created editing session", zap.String("session_id", id))
	return id, nil
}

// Get returns the current snapshot of a session
func (s *InMemorySessionStore) Get(ctx context.Context, sessionID string) (purchasing.PurchaseOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.lookup(sessionID)
	if err != nil {
		return purchasing.PurchaseOrder{}, err
	}
	return entry.order.Clone(), nil
}

// Update applies fn to the current snapshot under the store lock.
// When fn fails the stored snapshot is kept and the error is returned.
func (s *InMemorySessionStore) Update(ctx context.Context, sessionID string, fn purchasing.TransitionFunc) (purchasing.PurchaseOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.lookup(sessionID)
	if err != nil {
		return purchasing.PurchaseOrder{}, err
	}

	next, err := fn(entry.order.Clone())
	if err != nil {
		return entry.order.Clone(), err
	}
	entry.order = next.Clone()
	return next, nil
}

// Delete removes a session. Deleting an unknown session is an error.
func (s *InMemorySessionStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return sessionNotFound(sessionID)
	}
	delete(s.sessions, sessionID)
	s.logger.Debug("Deleted editing session", zap.String("session_id", sessionID))
	return nil
}

// Count returns the number of stored sessions, including expired ones not yet swept
func (s *InMemorySessionStore) Count(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// lookup returns a live entry and renews its TTL. Must be called with mu held.
func (s *InMemorySessionStore) lookup(sessionID string) (*sessionEntry, error) {
	now := s.now()
	entry, ok := s.sessions[sessionID]
	if !ok || now.After(entry.expiresAt) {
		if ok {
			s.evictLocked(sessionID)
		}
		atomic.AddInt64(&s.misses, 1)
		return nil, sessionNotFound(sessionID)
	}
	atomic.AddInt64(&s.hits, 1)
	entry.expiresAt = now.Add(s.config.TTL)
	return entry, nil
}

func (s *InMemorySessionStore) evictLocked(sessionID string) {
	delete(s.sessions, sessionID)
	if s.onEvict != nil {
		s.onEvict(sessionID)
	}
}

// Start runs the background sweep until ctx is done or Stop is called
func (s *InMemorySessionStore) Start(ctx context.Context) {
	if !atomic.CompareAndSwapInt32(&s.started, 0, 1) {
		return
	}
	go s.cleanupExpired(ctx)
}

// Stop ends the background sweep. It is safe to call more than once.
func (s *InMemorySessionStore) Stop() {
	if atomic.CompareAndSwapInt32(&s.stopped, 0, 1) {
		close(s.stopCh)
	}
}

// GetStats returns lookup statistics
func (s *InMemorySessionStore) GetStats() (hits, misses int64) {
	return atomic.LoadInt64(&s.hits), atomic.LoadInt64(&s.misses)
}

// cleanupExpired periodically removes expired sessions
func (s *InMemorySessionStore) cleanupExpired(ctx context.Context) {
	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopCh:
			return
		case <-ticker.C:
			func() {
				defer func() {
					if r := recover(); r != nil {
						s.logger.Error("Panic in session cleanup",
							zap.Any("panic", r))
					}
				}()
				s.Sweep()
			}()
		}
	}
}

// Sweep removes every expired session and returns how many were removed
func (s *InMemorySessionStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sweepLocked()
}

func (s *InMemorySessionStore) sweepLocked() int {
	now := s.now()
	removed := 0
	for id, entry := range s.sessions {
		if now.After(entry.expiresAt) {
			s.evictLocked(id)
			removed++
		}
	}

	if removed > 0 {
		s.logger.Debug("Cleaned up expired editing sessions",
			zap.Int("sessions_removed", removed),
			zap.Int("sessions_remaining", len(s.sessions)))
	}
	return removed
}

func sessionNotFound(sessionID string) error {
	return shared.NewDomainError(shared.CodeSessionNotFound,
		fmt.Sprintf("editing session %q not found or expired", sessionID))
}

// Ensure InMemorySessionStore implements SessionRepository
var _ purchasing.SessionRepository = (*InMemorySessionStore)(nil)
