package controllers

import (
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

	"gitea.com/go-chi/session"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreambabycare/babycare/authenticator"
	"github.com/dreambabycare/babycare/config"
	"github.com/dreambabycare/babycare/middleware"
	"github.com/dreambabycare/babycare/models"
	"github.com/dreambabycare/babycare/services"
	"github.com/dreambabycare/babycare/services/mocks"
	"github.com/dreambabycare/babycare/sessionsync"
	"github.com/dreambabycare/babycare/userctx"
)

type testEnv struct {
	server        *httptest.Server
	client        *http.Client
	subscriptions *mocks.MockSubscriptionService
	accounts      *mocks.MockAccountService
	tracker       *sessionsync.Tracker
}

type envOptions struct {
	sso        authenticator.Provider
	contentDir string
}

// newTestEnv wires the controllers behind a real session store.
// POST /seed logs in a user (user_id, email, subscribed, pending) and/or an admin.
func newTestEnv(t *testing.T, opts envOptions) *testEnv {
	env := &testEnv{
		subscriptions: mocks.NewMockSubscriptionService(t),
		accounts:      mocks.NewMockAccountService(t),
		tracker:       sessionsync.NewTracker(),
	}

	ctrl := NewControllers(Dependencies{
		Services: &services.Services{Subscriptions: env.subscriptions, Accounts: env.accounts},
		Config: &config.Config{Server: config.ServerConfig{
			SubscriptionPrice: 99,
			ContentDir:        opts.contentDir,
		}},
		Tracker: env.tracker,
		SSO:     opts.sso,
		Logger:  zerolog.Nop(),
	})

	sessioner, err := session.Sessioner(session.Options{
		Provider:    "memory",
		CookieName:  "test_session",
		Gclifetime:  3600,
		Maxlifetime: 3600,
	})
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(sessioner)
	r.Use(middleware.Identify)

	r.Post("/seed", func(w http.ResponseWriter, r *http.Request) {
		sess := session.GetSession(r)
		require.NoError(t, r.ParseForm())
		if id, err := strconv.Atoi(r.Form.Get("user_id")); err == nil {
			state := models.NewSubscriptionState(atoi(r.Form.Get("subscribed")), atoi(r.Form.Get("pending")))
			sessionsync.Seed(sess, id, state)
			_ = sess.Set(middleware.SessionUserEmail, r.Form.Get("email"))
		}
		if admin := r.Form.Get("admin"); admin != "" {
			_ = sess.Set(middleware.SessionAdminUser, admin)
		}
	})
	r.Get("/whoami", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(userctx.Identity(r.Context())))
	})

	r.Get("/", ctrl.Account.Home)
	r.Get("/register", ctrl.Account.ShowRegister)
	r.Post("/register", ctrl.Account.Register)
	r.Get("/login", ctrl.Account.ShowLogin)
	r.Post("/login", ctrl.Account.Login)
	r.Post("/logout", ctrl.Account.Logout)

	r.Get("/subscribe", ctrl.Subscription.Show)
	r.Post("/subscribe", ctrl.Subscription.Request)
	r.Get("/api/subscription/status", ctrl.Subscription.Status)

	r.Get("/content/", ctrl.Content.Index)
	r.Get("/content/videos/*", ctrl.Content.Video)

	r.Get("/admin/login", ctrl.Admin.ShowLogin)
	r.Post("/admin/login", ctrl.Admin.Login)
	r.Get("/admin/sso", ctrl.Admin.SSO)
	r.Get("/admin/callback", ctrl.Admin.Callback)
	r.Post("/admin/logout", ctrl.Admin.Logout)
	r.Get("/admin/subscriptions", ctrl.Admin.Subscriptions)
	r.Post("/admin/subscriptions/{id}/{action}", ctrl.Admin.Transition)
	r.Get("/admin/actions", ctrl.Admin.Actions)
	r.Post("/admin/actions/undo-last", ctrl.Admin.UndoLast)
	r.Post("/admin/actions/{index}/undo", ctrl.Admin.UndoAt)

	env.server = httptest.NewServer(r)
	t.Cleanup(env.server.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	env.client = &http.Client{
		Jar: jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	return env
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

type response struct {
	status   int
	location string
	body     string
}

func (e *testEnv) do(t *testing.T, req *http.Request) response {
	resp, err := e.client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return response{status: resp.StatusCode, location: resp.Header.Get("Location"), body: string(body)}
}

func (e *testEnv) get(t *testing.T, path string) response {
	req, err := http.NewRequest(http.MethodGet, e.server.URL+path, nil)
	require.NoError(t, err)
	return e.do(t, req)
}

func (e *testEnv) post(t *testing.T, path string, form url.Values) response {
	req, err := http.NewRequest(http.MethodPost, e.server.URL+path, strings.NewReader(form.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return e.do(t, req)
}

func (e *testEnv) seed(t *testing.T, form url.Values) {
	resp := e.post(t, "/seed", form)
	require.Equal(t, http.StatusOK, resp.status)
}

func TestFlashFromResult(t *testing.T) {
	tests := []struct {
		outcome models.TransitionOutcome
		want    string
	}{
		{models.OutcomeApplied, models.FlashSuccess},
		{models.OutcomeNothingToUndo, models.FlashInfo},
		{models.OutcomeRefused, models.FlashInfo},
		{models.OutcomeNotFound, models.FlashWarning},
		{models.OutcomeFailed, models.FlashError},
	}

	for _, tt := range tests {
		t.Run(string(tt.outcome), func(t *testing.T) {
			flash := flashFromResult(&models.TransitionResult{Outcome: tt.outcome, Message: "msg"})
			assert.Equal(t, tt.want, flash.Type)
			assert.Equal(t, "msg", flash.Message)
		})
	}

	assert.Equal(t, models.FlashError, flashFromResult(nil).Type)
}

func TestRenderTemplate_AllPagesParse(t *testing.T) {
	pages := []string{
		"home.html", "register.html", "login.html", "subscribe.html", "content.html",
		"admin_login.html", "admin_subscriptions.html", "admin_actions.html",
	}

	for _, page := range pages {
		t.Run(page, func(t *testing.T) {
			_, err := newTemplate(page, page)
			assert.NoError(t, err)
		})
	}
}

func TestHome_ShowsLoggedInUser(t *testing.T) {
	env := newTestEnv(t, envOptions{})

	resp := env.get(t, "/")
	assert.Equal(t, http.StatusOK, resp.status)
	assert.Contains(t, resp.body, "Create an account")

	env.seed(t, url.Values{"user_id": {"7"}, "email": {"parent@example.com"}})

	resp = env.get(t, "/")
	assert.Contains(t, resp.body, "parent@example.com")
	assert.Contains(t, resp.body, "View my subscription")
}

func TestContentController(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sleep-routines.mp4"), []byte("video-bytes"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("notes"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "drafts"), 0o755))

	env := newTestEnv(t, envOptions{contentDir: dir})

	t.Run("index lists videos only", func(t *testing.T) {
		resp := env.get(t, "/content/")
		assert.Equal(t, http.StatusOK, resp.status)
		assert.Contains(t, resp.body, "sleep-routines.mp4")
		assert.NotContains(t, resp.body, "notes.txt")
		assert.NotContains(t, resp.body, "drafts")
	})

	t.Run("serves a video", func(t *testing.T) {
		resp := env.get(t, "/content/videos/sleep-routines.mp4")
		assert.Equal(t, http.StatusOK, resp.status)
		assert.Equal(t, "video-bytes", resp.body)
	})

	t.Run("no directory listing", func(t *testing.T) {
		resp := env.get(t, "/content/videos/drafts/")
		assert.Equal(t, http.StatusNotFound, resp.status)
	})

	t.Run("missing directory is an empty library", func(t *testing.T) {
		env := newTestEnv(t, envOptions{contentDir: filepath.Join(dir, "missing")})
		resp := env.get(t, "/content/")
		assert.Equal(t, http.StatusOK, resp.status)
		assert.Contains(t, resp.body, "No videos have been published yet.")
	})
}
