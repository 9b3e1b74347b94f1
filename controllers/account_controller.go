package controllers

import (
	"errors"
	"net/http"
	"strings"

	"gitea.com/go-chi/session"
	"github.com/rs/zerolog"

	"github.com/dreambabycare/babycare/middleware"
	"github.com/dreambabycare/babycare/models"
	"github.com/dreambabycare/babycare/services"
	"github.com/dreambabycare/babycare/sessionsync"
)

// AccountController handles parent registration and login
type AccountController struct {
	accounts services.AccountService
	logger   zerolog.Logger
}

// NewAccountController creates a new account controller
func NewAccountController(accounts services.AccountService, logger zerolog.Logger) *AccountController {
	return &AccountController{
		accounts: accounts,
		logger:   logger,
	}
}

type registerPage struct {
	Form   *models.RegisterForm
	Errors []string
}

type loginPage struct {
	Email string
}

// Home handles GET /
func (c *AccountController) Home(w http.ResponseWriter, r *http.Request) {
	renderTemplate(w, "home", "home.html", newPageData(r, "Home", "home", nil))
}

// ShowRegister handles GET /register
func (c *AccountController) ShowRegister(w http.ResponseWriter, r *http.Request) {
	data := newPageData(r, "Register", "register", registerPage{Form: &models.RegisterForm{}})
	renderTemplate(w, "register", "register.html", data)
}

// Register handles POST /register
func (c *AccountController) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	form := &models.RegisterForm{
		Email:      strings.ToLower(strings.TrimSpace(r.FormValue("email"))),
		Password:   r.FormValue("password"),
		ParentName: r.FormValue("parent_name"),
		BabyName:   r.FormValue("baby_name"),
		BabyDOB:    r.FormValue("baby_dob"),
	}

	user, err := c.accounts.Register(r.Context(), form)
	if err != nil {
		var validationErr *services.ValidationError
		var messages []string
		status := http.StatusBadRequest

		switch {
		case errors.As(err, &validationErr):
			messages = validationErr.Messages
		case errors.Is(err, services.ErrEmailTaken):
			messages = []string{"An account with this email already exists."}
			status = http.StatusConflict
		default:
			c.logger.Error().Err(err).Msg("Failed to register account")
			messages = []string{"We could not create your account. Please try again."}
			status = http.StatusInternalServerError
		}

		// Never echo the password back
		form.Password = ""
		data := newPageData(r, "Register", "register", registerPage{Form: form, Errors: messages})
		renderTemplateWithStatus(w, status, "register_error", "register.html", data)
		return
	}

	c.startSession(session.GetSession(r), user)
	setFlash(session.GetSession(r), models.FlashSuccess, "Welcome, "+user.ParentName+"! Your account is ready.")
	http.Redirect(w, r, "/subscribe", http.StatusSeeOther)
}

// ShowLogin handles GET /login
func (c *AccountController) ShowLogin(w http.ResponseWriter, r *http.Request) {
	renderTemplate(w, "login", "login.html", newPageData(r, "Log in", "login", loginPage{}))
}

// Login handles POST /login
func (c *AccountController) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	email := strings.ToLower(strings.TrimSpace(r.FormValue("email")))
	user, err := c.accounts.Authenticate(r.Context(), email, r.FormValue("password"))
	if err != nil {
		status := http.StatusUnauthorized
		message := "Invalid email or password."
		if !errors.Is(err, services.ErrInvalidCredentials) {
			c.logger.Error().Err(err).Msg("Failed to authenticate")
			status = http.StatusInternalServerError
			message = "We could not log you in. Please try again."
		}

		data := newPageData(r, "Log in", "login", loginPage{Email: email})
		data.FlashMessage = &models.FlashMessage{Type: models.FlashError, Message: message}
		renderTemplateWithStatus(w, status, "login_error", "login.html", data)
		return
	}

	sess := session.GetSession(r)
	c.startSession(sess, user)

	http.Redirect(w, r, redirectTarget(sess, "/subscribe"), http.StatusSeeOther)
}

// Logout handles POST /logout
func (c *AccountController) Logout(w http.ResponseWriter, r *http.Request) {
	sess := session.GetSession(r)

	sessionsync.Clear(sess)
	_ = sess.Delete(middleware.SessionUserEmail)
	_ = sess.Delete(middleware.SessionIsAdmin)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// startSession stores the user identity and a fresh subscription copy
func (c *AccountController) startSession(sess sessionsync.Values, user *models.User) {
	sessionsync.Seed(sess, user.ID, user.SubscriptionState)
	_ = sess.Set(middleware.SessionUserEmail, user.Email)
	_ = sess.Set(middleware.SessionIsAdmin, user.IsAdmin)

	c.logger.Info().Int("user_id", user.ID).Msg("User logged in")
}

// redirectTarget pops the page that triggered a login redirect
func redirectTarget(sess sessionsync.Values, fallback string) string {
	target, ok := sess.Get(middleware.SessionRedirectAfter).(string)
	_ = sess.Delete(middleware.SessionRedirectAfter)
	if !ok || !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") {
		return fallback
	}
	return target
}
