package sessionsync

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"sync"
	"testing"

	"gitea.com/go-chi/session"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dreambabycare/babycare/models"
	"github.com/dreambabycare/babycare/repositories"
	"github.com/dreambabycare/babycare/repositories/mocks"
)

type mapStore map[interface{}]interface{}

func (m mapStore) Set(key, value interface{}) error {
	m[key] = value
	return nil
}

func (m mapStore) Get(key interface{}) interface{} {
	return m[key]
}

func (m mapStore) Delete(key interface{}) error {
	delete(m, key)
	return nil
}

func TestTracker(t *testing.T) {
	tracker := NewTracker()

	first := tracker.Generation(1)
	assert.Equal(t, first, tracker.Generation(1))
	assert.Equal(t, first, tracker.Generation(2))

	tracker.Invalidate(1)
	assert.NotEqual(t, first, tracker.Generation(1))
	assert.Equal(t, first, tracker.Generation(2))
}

func TestSeedAndMirror(t *testing.T) {
	sess := mapStore{}

	_, ok := Mirror(sess)
	assert.False(t, ok)

	Seed(sess, 5, models.StatePending)

	id, ok := UserID(sess)
	require.True(t, ok)
	assert.Equal(t, 5, id)

	state, ok := Mirror(sess)
	require.True(t, ok)
	assert.Equal(t, models.StatePending, state)

	Clear(sess)
	_, ok = UserID(sess)
	assert.False(t, ok)
	assert.Empty(t, sess)
}

func TestSync_FreshCopyIsNotReloaded(t *testing.T) {
	tracker := NewTracker()
	repo := mocks.NewMockUserRepository(t)
	syncer := NewSyncer(tracker, repo, zerolog.Nop())

	sess := mapStore{}
	Store(sess, 5, models.StateActive, tracker.Generation(5))

	// No repository expectation: a GetByID call fails the test
	syncer.Sync(context.Background(), sess)

	state, _ := Mirror(sess)
	assert.Equal(t, models.StateActive, state)
}

func TestSync_InvalidatedCopyIsReloaded(t *testing.T) {
	tracker := NewTracker()
	repo := mocks.NewMockUserRepository(t)
	syncer := NewSyncer(tracker, repo, zerolog.Nop())

	sess := mapStore{}
	Seed(sess, 5, models.StatePending)

	tracker.Invalidate(5)
	repo.EXPECT().GetByID(mock.Anything, 5).Return(&models.User{
		ID:                5,
		SubscriptionState: models.StateActive,
	}, nil).Once()

	syncer.Sync(context.Background(), sess)

	state, ok := Mirror(sess)
	require.True(t, ok)
	assert.Equal(t, models.StateActive, state)
	assert.Equal(t, tracker.Generation(5), sess.Get(KeyGeneration))

	// Second request in the same generation stays on the copy
	syncer.Sync(context.Background(), sess)
}

func TestSync_SeededCopyIsReloadedAfterConcurrentApproval(t *testing.T) {
	tracker := NewTracker()
	repo := mocks.NewMockUserRepository(t)
	syncer := NewSyncer(tracker, repo, zerolog.Nop())

	// Login loaded the user while pending, then an approval landed
	loaded := models.StatePending
	tracker.Invalidate(7)

	sess := mapStore{}
	Seed(sess, 7, loaded)

	repo.EXPECT().GetByID(mock.Anything, 7).Return(&models.User{
		ID:                7,
		SubscriptionState: models.StateActive,
	}, nil).Once()

	syncer.Sync(context.Background(), sess)

	state, ok := Mirror(sess)
	require.True(t, ok)
	assert.Equal(t, models.StateActive, state)
	assert.Equal(t, tracker.Generation(7), sess.Get(KeyGeneration))
}

func TestSync_MissingMirrorIsReloaded(t *testing.T) {
	tracker := NewTracker()
	repo := mocks.NewMockUserRepository(t)
	syncer := NewSyncer(tracker, repo, zerolog.Nop())

	sess := mapStore{KeyUserID: 9}
	repo.EXPECT().GetByID(mock.Anything, 9).Return(&models.User{ID: 9, SubscriptionState: models.StateInactive}, nil)

	syncer.Sync(context.Background(), sess)

	state, ok := Mirror(sess)
	require.True(t, ok)
	assert.Equal(t, models.StateInactive, state)
}

func TestSync_DeletedUserIsLoggedOut(t *testing.T) {
	tracker := NewTracker()
	repo := mocks.NewMockUserRepository(t)
	syncer := NewSyncer(tracker, repo, zerolog.Nop())

	sess := mapStore{}
	Seed(sess, 5, models.StateActive)
	tracker.Invalidate(5)

	repo.EXPECT().GetByID(mock.Anything, 5).Return(nil, fmt.Errorf("user with ID 5: %w", repositories.ErrNotFound))

	syncer.Sync(context.Background(), sess)

	_, ok := UserID(sess)
	assert.False(t, ok)
}

func TestSync_StoreErrorDropsCopy(t *testing.T) {
	tracker := NewTracker()
	repo := mocks.NewMockUserRepository(t)
	syncer := NewSyncer(tracker, repo, zerolog.Nop())

	sess := mapStore{}
	Seed(sess, 5, models.StateActive)
	tracker.Invalidate(5)

	repo.EXPECT().GetByID(mock.Anything, 5).Return(nil, errors.New("database is locked"))

	syncer.Sync(context.Background(), sess)

	id, ok := UserID(sess)
	assert.True(t, ok)
	assert.Equal(t, 5, id)
	_, ok = Mirror(sess)
	assert.False(t, ok)
}

func TestSync_AnonymousSession(t *testing.T) {
	repo := mocks.NewMockUserRepository(t)
	syncer := NewSyncer(NewTracker(), repo, zerolog.Nop())

	sess := mapStore{}
	syncer.Sync(context.Background(), sess)
	assert.Empty(t, sess)
}

func TestRefresh_PropagatesAdminChangeToUserSession(t *testing.T) {
	tracker := NewTracker()
	var mu sync.Mutex
	stored := models.StatePending
	load := func() models.SubscriptionState {
		mu.Lock()
		defer mu.Unlock()
		return stored
	}

	repo := mocks.NewMockUserRepository(t)
	repo.EXPECT().GetByID(mock.Anything, 3).RunAndReturn(func(context.Context, int) (*models.User, error) {
		return &models.User{ID: 3, SubscriptionState: load()}, nil
	}).Maybe()

	syncer := NewSyncer(tracker, repo, zerolog.Nop())

	sessioner, err := session.Sessioner(session.Options{
		Provider:    "memory",
		CookieName:  "test_session",
		Gclifetime:  3600,
		Maxlifetime: 3600,
	})
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(sessioner)
	r.Use(syncer.Refresh)
	r.Get("/login", func(w http.ResponseWriter, r *http.Request) {
		Seed(session.GetSession(r), 3, load())
	})
	r.Get("/state", func(w http.ResponseWriter, r *http.Request) {
		state, _ := Mirror(session.GetSession(r))
		fmt.Fprint(w, state.Status())
	})

	server := httptest.NewServer(r)
	defer server.Close()

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := &http.Client{Jar: jar}

	get := func(path string) string {
		resp, err := client.Get(server.URL + path)
		require.NoError(t, err)
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return string(body)
	}

	get("/login")
	assert.Equal(t, "pending", get("/state"))

	// Administrator approves from another session
	mu.Lock()
	stored = models.StateActive
	mu.Unlock()
	tracker.Invalidate(3)

	assert.Equal(t, "active", get("/state"))
}
