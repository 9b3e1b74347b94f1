package middleware

import (
	"net/http"

	"gitea.com/go-chi/session"

	"github.com/dreambabycare/babycare/models"
	"github.com/dreambabycare/babycare/sessionsync"
	"github.com/dreambabycare/babycare/userctx"
)

// Session keys shared with the controllers
const (
	SessionUserEmail     = "user_email"
	SessionIsAdmin       = "is_admin"
	SessionAdminUser     = "admin_user"
	SessionRedirectAfter = "redirect_after_login"
)

// Identify puts the acting identity of the session into the request context
func Identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := session.GetSession(r)
		ctx := r.Context()

		if email, ok := sess.Get(SessionUserEmail).(string); ok && email != "" {
			ctx = userctx.SetUserEmail(ctx, email)
		}
		if userID, ok := sessionsync.UserID(sess); ok {
			ctx = userctx.SetUserID(ctx, userID)
		}
		if admin := AdminName(sess); admin != "" {
			ctx = userctx.SetAdmin(ctx, admin)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminName returns the back-office identity of the session, if any
func AdminName(sess sessionsync.Values) string {
	if admin, ok := sess.Get(SessionAdminUser).(string); ok && admin != "" {
		return admin
	}
	if isAdmin, ok := sess.Get(SessionIsAdmin).(bool); ok && isAdmin {
		if email, ok := sess.Get(SessionUserEmail).(string); ok {
			return email
		}
	}
	return ""
}

// RequireUser ensures a parent account is logged in
// If not, redirects to /login and stores the intended destination
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := session.GetSession(r)

		if _, ok := sessionsync.UserID(sess); !ok {
			// Store the intended destination for redirect after login
			_ = sess.Set(SessionRedirectAfter, r.URL.Path)
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireAdmin ensures the session belongs to an administrator
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := session.GetSession(r)

		if AdminName(sess) == "" {
			_ = sess.Set(SessionRedirectAfter, r.URL.Path)
			http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireSubscription ensures the logged-in user has gated-content access.
// It reads the session copy, which sessionsync.Syncer keeps current.
func RequireSubscription(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := session.GetSession(r)

		if _, ok := sessionsync.UserID(sess); !ok {
			_ = sess.Set(SessionRedirectAfter, r.URL.Path)
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		state, ok := sessionsync.Mirror(sess)
		if !ok || !state.HasAccess() {
			http.Redirect(w, r, "/subscribe", http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// ActorFromRequest returns who is acting and from where.
// Administrators are named by their back-office identity, users by email.
func ActorFromRequest(r *http.Request) models.Actor {
	name := userctx.GetAdmin(r.Context())
	if name == "" {
		name = userctx.GetUserEmail(r.Context())
	}
	return models.Actor{Name: name, IP: ClientIP(r)}
}
