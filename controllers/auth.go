package controllers

import (
	"crypto/rand"
	"encoding/base64"
	"net/http"
	"strings"

	"gitea.com/go-chi/session"

	"github.com/dreambabycare/babycare/middleware"
	"github.com/dreambabycare/babycare/models"
)

const sessionOIDCState = "oidc_state"

type adminLoginPage struct {
	SSOEnabled bool
}

// ShowLogin handles GET /admin/login
func (c *AdminController) ShowLogin(w http.ResponseWriter, r *http.Request) {
	if middleware.AdminName(session.GetSession(r)) != "" {
		http.Redirect(w, r, "/admin/subscriptions", http.StatusSeeOther)
		return
	}

	data := newPageData(r, "Admin sign-in", "admin_login", adminLoginPage{SSOEnabled: c.sso != nil})
	renderTemplate(w, "admin_login", "admin_login.html", data)
}

// Login handles POST /admin/login with the local back-office credentials
func (c *AdminController) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	if !c.accounts.AuthenticateAdmin(username, r.FormValue("password")) {
		c.logger.Warn().Str("username", username).Str("ip", middleware.ClientIP(r)).Msg("Rejected admin sign-in")

		data := newPageData(r, "Admin sign-in", "admin_login", adminLoginPage{SSOEnabled: c.sso != nil})
		data.FlashMessage = &models.FlashMessage{Type: models.FlashError, Message: "Invalid admin credentials."}
		renderTemplateWithStatus(w, http.StatusUnauthorized, "admin_login_error", "admin_login.html", data)
		return
	}

	sess := session.GetSession(r)
	_ = sess.Set(middleware.SessionAdminUser, username)
	c.logger.Info().Str("admin", username).Msg("Admin signed in")

	http.Redirect(w, r, redirectTarget(sess, "/admin/subscriptions"), http.StatusSeeOther)
}

// SSO initiates the single sign-on flow
func (c *AdminController) SSO(w http.ResponseWriter, r *http.Request) {
	if c.sso == nil {
		http.NotFound(w, r)
		return
	}

	// Generate random state
	state, err := generateRandomState()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// Save the state in the session to validate in callback
	sess := session.GetSession(r)
	_ = sess.Set(sessionOIDCState, state)

	http.Redirect(w, r, c.sso.GetAuthURL(state), http.StatusTemporaryRedirect)
}

// Callback handles the callback from the identity provider
func (c *AdminController) Callback(w http.ResponseWriter, r *http.Request) {
	if c.sso == nil {
		http.NotFound(w, r)
		return
	}

	sess := session.GetSession(r)

	// Verify state
	storedState, _ := sess.Get(sessionOIDCState).(string)
	if storedState == "" {
		http.Error(w, "State not found in session", http.StatusBadRequest)
		return
	}
	_ = sess.Delete(sessionOIDCState)

	if r.URL.Query().Get("state") != storedState {
		http.Error(w, "Invalid state parameter", http.StatusBadRequest)
		return
	}

	token, err := c.sso.ExchangeCode(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		c.logger.Warn().Err(err).Msg("Single sign-on code exchange failed")
		http.Error(w, "Failed to exchange authorization code", http.StatusUnauthorized)
		return
	}

	claims, err := c.sso.GetClaims(r.Context(), token)
	if err != nil {
		c.logger.Warn().Err(err).Msg("Single sign-on token verification failed")
		http.Error(w, "Failed to verify ID token", http.StatusUnauthorized)
		return
	}

	email := claims.Email()
	if email == "" || !claims.EmailVerified() || !c.accounts.IsAdminEmail(email) {
		c.logger.Warn().Str("email", email).Msg("Single sign-on identity is not an administrator")
		setFlash(sess, models.FlashError, "This account is not allowed to use the admin area.")
		http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
		return
	}

	_ = sess.Set(middleware.SessionAdminUser, email)
	c.logger.Info().Str("admin", email).Msg("Admin signed in with single sign-on")

	http.Redirect(w, r, redirectTarget(sess, "/admin/subscriptions"), http.StatusSeeOther)
}

// Logout handles POST /admin/logout
func (c *AdminController) Logout(w http.ResponseWriter, r *http.Request) {
	sess := session.GetSession(r)
	_ = sess.Delete(middleware.SessionAdminUser)
	_ = sess.Delete(middleware.SessionIsAdmin)

	http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
}

// generateRandomState generates a random state value for CSRF protection
func generateRandomState() (string, error) {
	b := make([]byte, 32)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
