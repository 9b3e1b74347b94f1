package controllers

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"gitea.com/go-chi/session"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/dreambabycare/babycare/authenticator"
	"github.com/dreambabycare/babycare/middleware"
	"github.com/dreambabycare/babycare/models"
	"github.com/dreambabycare/babycare/services"
)

const (
	adminSubscriptionsPath = "/admin/subscriptions"
	adminActionsPath       = "/admin/actions"
)

// AdminController handles the back office
type AdminController struct {
	accounts      services.AccountService
	subscriptions services.SubscriptionService
	sso           authenticator.Provider
	logger        zerolog.Logger
}

// NewAdminController creates a new admin controller. sso may be nil.
func NewAdminController(
	accounts services.AccountService,
	subscriptions services.SubscriptionService,
	sso authenticator.Provider,
	logger zerolog.Logger,
) *AdminController {
	return &AdminController{
		accounts:      accounts,
		subscriptions: subscriptions,
		sso:           sso,
		logger:        logger,
	}
}

type transitionFunc func(ctx context.Context, userID int, actor models.Actor) (*models.TransitionResult, error)

// Subscriptions handles GET /admin/subscriptions
func (c *AdminController) Subscriptions(w http.ResponseWriter, r *http.Request) {
	overview, err := c.subscriptions.Overview(r.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to load subscription overview")
		http.Error(w, "Failed to load subscriptions", http.StatusInternalServerError)
		return
	}

	data := newPageData(r, "Manage subscriptions", "admin_subscriptions", overview)
	renderTemplate(w, "admin_subscriptions", "admin_subscriptions.html", data)
}

// Transition handles POST /admin/subscriptions/{id}/{action}
func (c *AdminController) Transition(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	var apply transitionFunc
	returnToReferrer := false

	switch models.ActionType(chi.URLParam(r, "action")) {
	case models.ActionApprove:
		apply, returnToReferrer = c.subscriptions.Approve, true
	case models.ActionReject:
		apply, returnToReferrer = c.subscriptions.Reject, true
	case models.ActionGrant:
		apply = c.subscriptions.Grant
	case models.ActionRevoke:
		apply = c.subscriptions.Revoke
	default:
		http.NotFound(w, r)
		return
	}

	result, err := apply(r.Context(), userID, middleware.ActorFromRequest(r))
	if err != nil {
		c.logger.Warn().Err(err).Int("user_id", userID).Str("action", chi.URLParam(r, "action")).Msg("Subscription action failed")
	}

	flash := flashFromResult(result)
	setFlash(session.GetSession(r), flash.Type, flash.Message)

	target := adminSubscriptionsPath
	if returnToReferrer {
		target = sameHostReferrer(r, adminSubscriptionsPath)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// Actions handles GET /admin/actions
func (c *AdminController) Actions(w http.ResponseWriter, r *http.Request) {
	actions, err := c.subscriptions.Actions(r.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to read admin action log")

		data := newPageData(r, "Action log", "admin_actions", []models.AdminAction(nil))
		data.FlashMessage = &models.FlashMessage{Type: models.FlashError, Message: "The action log could not be read."}
		renderTemplateWithStatus(w, http.StatusServiceUnavailable, "admin_actions_error", "admin_actions.html", data)
		return
	}

	data := newPageData(r, "Action log", "admin_actions", actions)
	renderTemplate(w, "admin_actions", "admin_actions.html", data)
}

// UndoLast handles POST /admin/actions/undo-last
func (c *AdminController) UndoLast(w http.ResponseWriter, r *http.Request) {
	result, err := c.subscriptions.UndoLast(r.Context(), middleware.ActorFromRequest(r))
	if err != nil {
		c.logger.Warn().Err(err).Msg("Undo of the last action failed")
	}

	flash := flashFromResult(result)
	setFlash(session.GetSession(r), flash.Type, flash.Message)
	http.Redirect(w, r, adminActionsPath, http.StatusSeeOther)
}

// UndoAt handles POST /admin/actions/{index}/undo
func (c *AdminController) UndoAt(w http.ResponseWriter, r *http.Request) {
	sess := session.GetSession(r)

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		setFlash(sess, models.FlashWarning, "Action not found.")
		http.Redirect(w, r, adminActionsPath, http.StatusSeeOther)
		return
	}

	result, err := c.subscriptions.UndoAt(r.Context(), index, middleware.ActorFromRequest(r))
	if err != nil {
		c.logger.Warn().Err(err).Int("log_index", index).Msg("Undo failed")
	}

	flash := flashFromResult(result)
	setFlash(sess, flash.Type, flash.Message)
	http.Redirect(w, r, adminActionsPath, http.StatusSeeOther)
}

// sameHostReferrer returns the Referer path when it points back at this host
func sameHostReferrer(r *http.Request, fallback string) string {
	ref, err := url.Parse(r.Referer())
	if err != nil || ref.Path == "" || ref.Host != r.Host {
		return fallback
	}
	if ref.RawQuery != "" {
		return ref.Path + "?" + ref.RawQuery
	}
	return ref.Path
}
