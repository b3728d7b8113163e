package sessions

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/randomtoy/change-game/internal/domain"
)

type session struct {
	game       *domain.Game
	createdAt  time.Time
	lastAccess time.Time
}

// MemoryStore keeps games in process memory and forgets the ones left idle
// longer than the configured TTL.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*session
	ttl      time.Duration
	limit    int
	now      func() time.Time
	logger   *slog.Logger
}

// Option configures a MemoryStore.
type Option func(*MemoryStore)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *MemoryStore) { s.now = now }
}

// WithLogger sets the logger used for expiry messages.
func WithLogger(logger *slog.Logger) Option {
	return func(s *MemoryStore) { s.logger = logger }
}

// NewMemoryStore returns a store holding at most limit games. A limit of
// zero or less means unbounded.
func NewMemoryStore(ttl time.Duration, limit int, opts ...Option) *MemoryStore {
	s := &MemoryStore{
		sessions: make(map[string]*session),
		ttl:      ttl,
		limit:    limit,
		now:      time.Now,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *MemoryStore) Create(_ context.Context, g *domain.Game) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.limit > 0 && len(s.sessions) >= s.limit {
		return "", domain.ErrTooManyGames
	}

	id := uuid.NewString()
	now := s.now()
	s.sessions[id] = &session{game: g, createdAt: now, lastAccess: now}
	return id, nil
}

func (s *MemoryStore) Update(_ context.Context, id string, fn func(g *domain.Game)) (domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookup(id)
	if err != nil {
		return domain.Snapshot{}, err
	}
	fn(sess.game)
	return sess.game.Snapshot(), nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookup(id)
	if err != nil {
		return domain.Snapshot{}, err
	}
	return sess.game.Snapshot(), nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return domain.ErrGameNotFound
	}
	delete(s.sessions, id)
	return nil
}

// Len returns the number of live games.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep drops every game idle for longer than the TTL and returns how many
// were dropped.
func (s *MemoryStore) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	dropped := 0
	for id, sess := range s.sessions {
		if now.Sub(sess.lastAccess) > s.ttl {
			delete(s.sessions, id)
			dropped++
			s.logger.Debug("game expired", "game_id", id, "age", now.Sub(sess.createdAt).String())
		}
	}
	return dropped
}

// Run sweeps expired games every interval until ctx is done.
func (s *MemoryStore) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(s.now()); n > 0 {
				s.logger.Info("expired idle games", "count", n, "remaining", s.Len())
			}
		}
	}
}

// lookup must be called with mu held. Expired games are treated as missing
// even if the janitor has not dropped them yet.
func (s *MemoryStore) lookup(id string) (*session, error) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrGameNotFound
	}
	now := s.now()
	if now.Sub(sess.lastAccess) > s.ttl {
		delete(s.sessions, id)
		return nil, domain.ErrGameNotFound
	}
	sess.lastAccess = now
	return sess, nil
}
