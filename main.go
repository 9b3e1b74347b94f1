package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gitea.com/go-chi/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/dreambabycare/babycare/actionlog"
	"github.com/dreambabycare/babycare/authenticator"
	"github.com/dreambabycare/babycare/config"
	"github.com/dreambabycare/babycare/controllers"
	"github.com/dreambabycare/babycare/database"
	"github.com/dreambabycare/babycare/logger"
	"github.com/dreambabycare/babycare/metrics"
	appmiddleware "github.com/dreambabycare/babycare/middleware"
	"github.com/dreambabycare/babycare/notify"
	"github.com/dreambabycare/babycare/repositories"
	"github.com/dreambabycare/babycare/services"
	"github.com/dreambabycare/babycare/sessionsync"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("Server stopped with error")
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize database
	if err := database.InitializeDatabase(cfg.Database.Path, log); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.CloseDB()

	repos := repositories.NewRepositories(database.GetDB())
	journal := actionlog.NewFileJournal(cfg.ActionLog.Path, log)

	notifier := notify.FromConfig(cfg.Notify, log)
	defer func() {
		if err := notify.Close(notifier); err != nil {
			log.Error().Err(err).Msg("Failed to close notifier")
		}
	}()

	tracker := sessionsync.NewTracker()

	srvs := services.NewServices(services.Dependencies{
		Repos:       repos,
		Journal:     journal,
		Notifier:    notifier,
		Invalidator: tracker,
		Config:      cfg,
		Logger:      log,
	})

	var sso authenticator.Provider
	if cfg.OIDC.Enabled() {
		provider, err := authenticator.NewOpenIDProvider(ctx, authenticator.OpenIDConfig{
			Domain:       cfg.OIDC.Domain,
			ClientID:     cfg.OIDC.ClientID,
			ClientSecret: cfg.OIDC.ClientSecret,
			CallbackURL:  cfg.OIDC.CallbackURL,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize single sign-on: %w", err)
		}
		sso = provider
	}

	ctrl := controllers.NewControllers(controllers.Dependencies{
		Services: srvs,
		Config:   cfg,
		Tracker:  tracker,
		SSO:      sso,
		Logger:   log,
	})

	metrics.Init()

	r, err := setupRouter(cfg, ctrl, routerDeps{
		syncer: sessionsync.NewSyncer(tracker, repos.Users, log),
		audit:  repos.Audit,
		logger: log,
	})
	if err != nil {
		return fmt.Errorf("failed to setup router: %w", err)
	}

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("port", cfg.Server.Port).
			Str("database", cfg.Database.Path).
			Str("action_log", journal.Path()).
			Bool("sso", sso != nil).
			Msg("Dream Baby Care starting")

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	log.Info().Msg("Server stopped")
	return nil
}

type routerDeps struct {
	syncer *sessionsync.Syncer
	audit  repositories.AuditRepository
	logger zerolog.Logger
}

// setupRouter configures all routes
func setupRouter(cfg *config.Config, ctrl *controllers.Controllers, deps routerDeps) (*chi.Mux, error) {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second)) // 60 second timeout for OAuth callbacks
	r.Use(appmiddleware.HTTPMetrics)

	lifetime := int64(cfg.Server.SessionLifetime / time.Second)

	// Session middleware
	sessionHandler, err := session.Sessioner(session.Options{
		Provider:       "memory",
		ProviderConfig: "",
		CookieName:     "babycare_session",
		Secure:         cfg.Server.UseHTTPS, // Set to true when USE_HTTPS=true (production)
		Gclifetime:     lifetime,
		Maxlifetime:    lifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session: %w", err)
	}
	r.Use(sessionHandler)
	r.Use(deps.syncer.Refresh)
	r.Use(appmiddleware.Identify)
	r.Use(appmiddleware.AuditLogger(deps.audit, deps.logger))

	// PUBLIC ROUTES (no authentication required)
	r.Get("/", ctrl.Account.Home)
	r.Get("/register", ctrl.Account.ShowRegister)
	r.Post("/register", ctrl.Account.Register)
	r.Get("/login", ctrl.Account.ShowLogin)
	r.Post("/login", ctrl.Account.Login)
	r.Post("/logout", ctrl.Account.Logout)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status": "healthy", "service": "babycare"}`)
	})
	r.Handle("/metrics", metrics.Handler())

	// JSON API polled by the subscribe page
	r.Route("/api", func(r chi.Router) {
		if len(cfg.Server.CORSAllowedOrigins) > 0 {
			r.Use(cors.Handler(cors.Options{
				AllowedOrigins:   cfg.Server.CORSAllowedOrigins,
				AllowedMethods:   []string{"GET", "OPTIONS"},
				AllowedHeaders:   []string{"Accept", "Content-Type"},
				AllowCredentials: true,
				MaxAge:           300,
			}))
		}
		r.Get("/subscription/status", ctrl.Subscription.Status)
	})

	// PARENT ROUTES (login required)
	r.Group(func(r chi.Router) {
		r.Use(appmiddleware.RequireUser)

		r.Get("/subscribe", ctrl.Subscription.Show)
		r.Post("/subscribe", ctrl.Subscription.Request)
	})

	// SUBSCRIBER ROUTES (active subscription required)
	r.Group(func(r chi.Router) {
		r.Use(appmiddleware.RequireSubscription)

		r.Get("/content", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/content/", http.StatusMovedPermanently)
		})
		r.Get("/content/", ctrl.Content.Index)
		r.Get("/content/videos/*", ctrl.Content.Video)
	})

	// ADMIN ROUTES
	r.Route("/admin", func(r chi.Router) {
		r.Get("/login", ctrl.Admin.ShowLogin)
		r.Post("/login", ctrl.Admin.Login)
		r.Get("/sso", ctrl.Admin.SSO)
		r.Get("/callback", ctrl.Admin.Callback)
		r.Post("/logout", ctrl.Admin.Logout)

		r.Group(func(r chi.Router) {
			r.Use(appmiddleware.RequireAdmin)

			r.Get("/", func(w http.ResponseWriter, r *http.Request) {
				http.Redirect(w, r, "/admin/subscriptions", http.StatusSeeOther)
			})

			r.Get("/subscriptions", ctrl.Admin.Subscriptions)
			r.Post("/subscriptions/{id}/{action}", ctrl.Admin.Transition)

			r.Get("/actions", ctrl.Admin.Actions)
			r.Post("/actions/undo-last", ctrl.Admin.UndoLast)
			r.Post("/actions/{index}/undo", ctrl.Admin.UndoAt)
		})
	})

	return r, nil
}
