// Package sessionsync keeps the subscription flags cached in user sessions
// consistent with the user store.
//
// Every write to a user's subscription state bumps that user's generation.
// A session remembers the generation its copy was taken at, and the Refresh
// middleware reloads the copy whenever the two disagree, so a change made by
// an administrator reaches the user's own session on their next request.
package sessionsync

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"gitea.com/go-chi/session"
	"github.com/rs/zerolog"

	"github.com/dreambabycare/babycare/models"
	"github.com/dreambabycare/babycare/repositories"
)

// Session keys
const (
	KeyUserID              = "user_id"
	KeyIsSubscribed        = "is_subscribed"
	KeySubscriptionPending = "subscription_pending"
	KeyGeneration          = "subscription_generation"
)

// Invalidator is notified after a user's subscription state is written
type Invalidator interface {
	Invalidate(userID int)
}

// Tracker hands out per-user generations
type Tracker struct {
	mu   sync.RWMutex
	base uint64
	gens map[int]uint64
}

// NewTracker creates a tracker. The base differs per process so sessions
// that outlive a restart are reloaded once.
func NewTracker() *Tracker {
	base := uint64(time.Now().UnixNano())
	if base == unsynced {
		base++
	}
	return &Tracker{
		base: base,
		gens: make(map[int]uint64),
	}
}

// Invalidate marks every cached copy for userID as stale
func (t *Tracker) Invalidate(userID int) {
	t.mu.Lock()
	t.gens[userID]++
	t.mu.Unlock()
}

// Generation returns the current generation for userID
func (t *Tracker) Generation(userID int) uint64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.base + t.gens[userID]
}

// StateSource loads the authoritative user record
type StateSource interface {
	GetByID(ctx context.Context, id int) (*models.User, error)
}

// Values is the subset of a session store used here
type Values interface {
	Set(key, value interface{}) error
	Get(key interface{}) interface{}
	Delete(key interface{}) error
}

// unsynced never matches a tracker generation
const unsynced uint64 = 0

// Seed writes state loaded at login. The generation it was read at is
// unknown, so the copy is marked unsynced and the next request reloads it.
func Seed(sess Values, userID int, state models.SubscriptionState) {
	write(sess, userID, state, unsynced)
}

// Store writes a copy of state read at generation gen. Take gen before
// reading the store so a concurrent write forces a reload.
func Store(sess Values, userID int, state models.SubscriptionState, gen uint64) {
	write(sess, userID, state, gen)
}

func write(sess Values, userID int, state models.SubscriptionState, gen uint64) {
	_ = sess.Set(KeyUserID, userID)
	_ = sess.Set(KeyIsSubscribed, state.IsSubscribed)
	_ = sess.Set(KeySubscriptionPending, state.SubscriptionPending)
	_ = sess.Set(KeyGeneration, gen)
}

// Clear removes the user identity and the cached copy
func Clear(sess Values) {
	for _, key := range []string{KeyUserID, KeyIsSubscribed, KeySubscriptionPending, KeyGeneration} {
		_ = sess.Delete(key)
	}
}

// UserID returns the logged-in user id stored in the session
func UserID(sess Values) (int, bool) {
	return toInt(sess.Get(KeyUserID))
}

// Mirror returns the cached subscription state
func Mirror(sess Values) (models.SubscriptionState, bool) {
	subscribed, ok1 := toInt(sess.Get(KeyIsSubscribed))
	pending, ok2 := toInt(sess.Get(KeySubscriptionPending))
	if !ok1 || !ok2 {
		return models.StateInactive, false
	}
	return models.NewSubscriptionState(subscribed, pending), true
}

// Syncer reloads stale session copies
type Syncer struct {
	tracker *Tracker
	source  StateSource
	logger  zerolog.Logger
}

// NewSyncer creates a Syncer
func NewSyncer(tracker *Tracker, source StateSource, logger zerolog.Logger) *Syncer {
	return &Syncer{
		tracker: tracker,
		source:  source,
		logger:  logger.With().Str("component", "sessionsync").Logger(),
	}
}

// Refresh is the middleware that brings the session copy up to date
func (s *Syncer) Refresh(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Sync(r.Context(), session.GetSession(r))
		next.ServeHTTP(w, r)
	})
}

// Sync reloads the session copy when its generation is out of date.
// A session whose user no longer exists is logged out. When the store
// cannot be read the copy is dropped rather than served stale.
func (s *Syncer) Sync(ctx context.Context, sess Values) {
	if sess == nil {
		return
	}

	userID, ok := UserID(sess)
	if !ok {
		return
	}

	current := s.tracker.Generation(userID)
	if cached, ok := sess.Get(KeyGeneration).(uint64); ok && cached == current {
		if _, ok := Mirror(sess); ok {
			return
		}
	}

	user, err := s.source.GetByID(ctx, userID)
	if errors.Is(err, repositories.ErrNotFound) {
		s.logger.Info().Int("user_id", userID).Msg("Session user no longer exists, logging out")
		Clear(sess)
		return
	}
	if err != nil {
		s.logger.Error().Err(err).Int("user_id", userID).Msg("Failed to reload subscription state")
		_ = sess.Delete(KeyIsSubscribed)
		_ = sess.Delete(KeySubscriptionPending)
		_ = sess.Delete(KeyGeneration)
		return
	}

	// A write landing while the user was loaded bumps the generation
	// again, so the next request reloads.
	write(sess, userID, user.SubscriptionState, current)
	s.logger.Debug().Int("user_id", userID).Uint64("generation", current).Msg("Session subscription state refreshed")
}

func toInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}
