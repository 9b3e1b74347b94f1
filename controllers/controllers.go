package controllers

import (
	"encoding/json"
	"html/template"
	"net/http"

	"gitea.com/go-chi/session"
	"github.com/rs/zerolog"

	"github.com/dreambabycare/babycare/authenticator"
	"github.com/dreambabycare/babycare/config"
	"github.com/dreambabycare/babycare/models"
	"github.com/dreambabycare/babycare/services"
	"github.com/dreambabycare/babycare/sessionsync"
	"github.com/dreambabycare/babycare/templates"
	"github.com/dreambabycare/babycare/userctx"
)

const sessionFlash = "flash"

var templateFuncs = template.FuncMap{
	"formatDate":     models.FormatDate,
	"formatDateTime": models.FormatDateTime,
	"statusClass":    statusClass,
}

// renderTemplate creates a template set and renders it with the provided data
func renderTemplate(w http.ResponseWriter, templateName string, pageTemplate string, data interface{}) error {
	return renderTemplateWithStatus(w, http.StatusOK, templateName, pageTemplate, data)
}

// renderTemplateWithStatus creates a template set and renders it with the provided data and status code
func renderTemplateWithStatus(w http.ResponseWriter, statusCode int, templateName string, pageTemplate string, data interface{}) error {
	tmpl, err := newTemplate(templateName, pageTemplate)
	if err != nil {
		http.Error(w, "Failed to parse template: "+err.Error(), http.StatusInternalServerError)
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	// Set status code if not OK
	if statusCode != http.StatusOK {
		w.WriteHeader(statusCode)
	}

	if err := tmpl.ExecuteTemplate(w, "layout.html", data); err != nil {
		http.Error(w, "Failed to render template: "+err.Error(), http.StatusInternalServerError)
		return err
	}

	return nil
}

// newTemplate creates a template set with only the layout and the page
func newTemplate(templateName, pageTemplate string) (*template.Template, error) {
	return template.New(templateName).Funcs(templateFuncs).ParseFS(templates.FS, "layout.html", pageTemplate)
}

// writeJSON writes v as a JSON response
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// newPageData builds the common page data and consumes the pending flash message
func newPageData(r *http.Request, title, currentPage string, data interface{}) models.PageData {
	return models.PageData{
		Title:        title,
		CurrentPage:  currentPage,
		FlashMessage: popFlash(session.GetSession(r)),
		UserEmail:    userctx.GetUserEmail(r.Context()),
		IsAdmin:      userctx.GetAdmin(r.Context()) != "",
		Data:         data,
	}
}

// setFlash stores a message shown on the next rendered page
func setFlash(sess sessionsync.Values, flashType, message string) {
	_ = sess.Set(sessionFlash, models.FlashMessage{Type: flashType, Message: message})
}

func popFlash(sess sessionsync.Values) *models.FlashMessage {
	if sess == nil {
		return nil
	}
	flash, ok := sess.Get(sessionFlash).(models.FlashMessage)
	if !ok {
		return nil
	}
	_ = sess.Delete(sessionFlash)
	return &flash
}

// flashFromResult maps a transition outcome to a flash message
func flashFromResult(result *models.TransitionResult) models.FlashMessage {
	if result == nil {
		return models.FlashMessage{Type: models.FlashError, Message: "Something went wrong. Please try again."}
	}

	flash := models.FlashMessage{Message: result.Message}
	switch result.Outcome {
	case models.OutcomeApplied:
		flash.Type = models.FlashSuccess
	case models.OutcomeNothingToUndo, models.OutcomeRefused:
		flash.Type = models.FlashInfo
	case models.OutcomeNotFound:
		flash.Type = models.FlashWarning
	default:
		flash.Type = models.FlashError
	}
	return flash
}

func statusClass(status models.SubscriptionStatus) string {
	switch status {
	case models.StatusActive:
		return "success"
	case models.StatusPending:
		return "warning"
	default:
		return "secondary"
	}
}

// Controllers holds all controller instances
type Controllers struct {
	Account      *AccountController
	Subscription *SubscriptionController
	Admin        *AdminController
	Content      *ContentController
}

// Dependencies holds what the controllers need beyond the services
type Dependencies struct {
	Services *services.Services
	Config   *config.Config
	Tracker  *sessionsync.Tracker
	// SSO is nil when single sign-on is not configured
	SSO    authenticator.Provider
	Logger zerolog.Logger
}

// NewControllers creates and initializes all controller instances
func NewControllers(deps Dependencies) *Controllers {
	logger := deps.Logger.With().Str("component", "controllers").Logger()

	return &Controllers{
		Account:      NewAccountController(deps.Services.Accounts, logger),
		Subscription: NewSubscriptionController(deps.Services.Subscriptions, deps.Tracker, deps.Config.Server.SubscriptionPrice, logger),
		Admin:        NewAdminController(deps.Services.Accounts, deps.Services.Subscriptions, deps.SSO, logger),
		Content:      NewContentController(deps.Config.Server.ContentDir, logger),
	}
}
