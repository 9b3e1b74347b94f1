package main

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dreambabycare/babycare/actionlog"
	"github.com/dreambabycare/babycare/config"
	"github.com/dreambabycare/babycare/controllers"
	"github.com/dreambabycare/babycare/database"
	"github.com/dreambabycare/babycare/metrics"
	"github.com/dreambabycare/babycare/models"
	"github.com/dreambabycare/babycare/notify/mocks"
	"github.com/dreambabycare/babycare/repositories"
	"github.com/dreambabycare/babycare/services"
	"github.com/dreambabycare/babycare/sessionsync"
)

type app struct {
	server     *httptest.Server
	repos      *repositories.Repositories
	notifier   *mocks.MockNotifier
	actionsLog string
}

func newApp(t *testing.T) *app {
	dir := t.TempDir()

	contentDir := filepath.Join(dir, "videos")
	require.NoError(t, os.Mkdir(contentDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(contentDir, "feeding.mp4"), []byte("feeding-video"), 0o644))

	hash, err := services.HashPassword("back-office")
	require.NoError(t, err)

	cfg := &config.Config{
		Server: config.ServerConfig{
			Port:              "0",
			BaseURL:           "http://babycare.test",
			SessionLifetime:   time.Hour,
			SubscriptionPrice: 99,
			ContentDir:        contentDir,
		},
		Database:  config.DatabaseConfig{Path: filepath.Join(dir, "babycare.db")},
		ActionLog: config.ActionLogConfig{Path: filepath.Join(dir, "logs", "admin_actions.log")},
		Admin:     config.AdminConfig{Username: "ops", PasswordHash: hash},
	}

	log := zerolog.Nop()

	require.NoError(t, database.InitializeDatabase(cfg.Database.Path, log))
	t.Cleanup(func() { _ = database.CloseDB() })
	repos := repositories.NewRepositories(database.GetDB())
	tracker := sessionsync.NewTracker()

	notifier := mocks.NewMockNotifier(t)

	srvs := services.NewServices(services.Dependencies{
		Repos:       repos,
		Journal:     actionlog.NewFileJournal(cfg.ActionLog.Path, log),
		Notifier:    notifier,
		Invalidator: tracker,
		Config:      cfg,
		Logger:      log,
	})

	ctrl := controllers.NewControllers(controllers.Dependencies{
		Services: srvs,
		Config:   cfg,
		Tracker:  tracker,
		Logger:   log,
	})

	metrics.Init()

	r, err := setupRouter(cfg, ctrl, routerDeps{
		syncer: sessionsync.NewSyncer(tracker, repos.Users, log),
		audit:  repos.Audit,
		logger: log,
	})
	require.NoError(t, err)

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	return &app{server: server, repos: repos, notifier: notifier, actionsLog: cfg.ActionLog.Path}
}

type browser struct {
	t      *testing.T
	base   string
	client *http.Client
}

func (a *app) browser(t *testing.T) *browser {
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &browser{
		t:    t,
		base: a.server.URL,
		client: &http.Client{
			Jar: jar,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

func (b *browser) get(path string) (int, string, string) {
	resp, err := b.client.Get(b.base + path)
	require.NoError(b.t, err)
	return readResponse(b.t, resp)
}

func (b *browser) post(path string, form url.Values) (int, string, string) {
	resp, err := b.client.PostForm(b.base+path, form)
	require.NoError(b.t, err)
	return readResponse(b.t, resp)
}

func readResponse(t *testing.T, resp *http.Response) (int, string, string) {
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, resp.Header.Get("Location"), string(body)
}

func readJournal(t *testing.T, path string) []models.AdminAction {
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var entries []models.AdminAction
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry models.AdminAction
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		entries = append(entries, entry)
	}
	require.NoError(t, scanner.Err())
	return entries
}

func TestSubscriptionLifecycle(t *testing.T) {
	a := newApp(t)
	parent := a.browser(t)
	admin := a.browser(t)

	a.notifier.EXPECT().
		Notify(mock.Anything, "Subscription request: asha@example.com", mock.MatchedBy(func(body string) bool {
			return strings.Contains(body, "http://babycare.test/admin/subscriptions")
		})).
		Return(true).Once()

	// Register
	status, location, _ := parent.post("/register", url.Values{
		"email":       {"asha@example.com"},
		"password":    {"correct-horse"},
		"parent_name": {"Asha"},
		"baby_name":   {"Mira"},
		"baby_dob":    {"2025-03-14"},
	})
	require.Equal(t, http.StatusSeeOther, status)
	require.Equal(t, "/subscribe", location)

	// Content is gated
	status, location, _ = parent.get("/content/videos/feeding.mp4")
	assert.Equal(t, http.StatusSeeOther, status)
	assert.Equal(t, "/subscribe", location)

	// "I've paid"
	status, _, _ = parent.post("/subscribe", nil)
	require.Equal(t, http.StatusSeeOther, status)

	_, _, body := parent.get("/api/subscription/status")
	assert.JSONEq(t, `{"is_subscribed":0,"subscription_pending":1}`, body)

	// Admin signs in and approves
	status, location, _ = admin.get("/admin/subscriptions")
	assert.Equal(t, http.StatusSeeOther, status)
	assert.Equal(t, "/admin/login", location)

	status, location, _ = admin.post("/admin/login", url.Values{"username": {"ops"}, "password": {"back-office"}})
	require.Equal(t, http.StatusSeeOther, status)
	assert.Equal(t, "/admin/subscriptions", location)

	_, _, body = admin.get("/admin/subscriptions")
	assert.Contains(t, body, "asha@example.com")

	user, err := a.repos.Users.GetByEmail(context.Background(), "asha@example.com")
	require.NoError(t, err)

	status, _, _ = admin.post("/admin/subscriptions/"+strconv.Itoa(user.ID)+"/approve", nil)
	require.Equal(t, http.StatusSeeOther, status)

	// The parent's session picks up the change on the next request
	status, _, body = parent.get("/content/videos/feeding.mp4")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "feeding-video", body)

	// Undo the approval
	status, location, _ = admin.post("/admin/actions/undo-last", nil)
	require.Equal(t, http.StatusSeeOther, status)
	assert.Equal(t, "/admin/actions", location)

	_, _, body = admin.get("/admin/actions")
	assert.Contains(t, body, "Undid approve for asha@example.com.")

	status, location, _ = parent.get("/content/videos/feeding.mp4")
	assert.Equal(t, http.StatusSeeOther, status)
	assert.Equal(t, "/subscribe", location)

	_, _, body = parent.get("/api/subscription/status")
	assert.JSONEq(t, `{"is_subscribed":0,"subscription_pending":1}`, body)

	// Journal: request, approve, undo
	entries := readJournal(t, a.actionsLog)
	require.Len(t, entries, 3)
	assert.Equal(t, models.ActionRequest, entries[0].Action)
	assert.Equal(t, "asha@example.com", entries[0].Admin)
	assert.Equal(t, models.ActionApprove, entries[1].Action)
	assert.Equal(t, "ops", entries[1].Admin)
	assert.Equal(t, models.ActionUndo, entries[2].Action)
	assert.Equal(t, entries[1].ID, entries[2].Reverts)
	assert.Equal(t, models.StateActive, entries[2].PrevState())
	assert.Equal(t, models.StatePending, entries[2].NewState())

	// HTTP mutations are audited with secrets redacted
	assert.Eventually(t, func() bool {
		recent, err := a.repos.Audit.Recent(context.Background(), 50)
		if err != nil {
			return false
		}
		for _, entry := range recent {
			if entry.Path == "/register" {
				return !strings.Contains(entry.FormData, "correct-horse")
			}
		}
		return false
	}, 2*time.Second, 20*time.Millisecond)

	// Metrics are exposed
	_, _, body = parent.get("/metrics")
	assert.Contains(t, body, "subscription_transitions_total")
}

func TestHealth(t *testing.T) {
	a := newApp(t)

	status, _, body := a.browser(t).get("/health")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "healthy")
}
