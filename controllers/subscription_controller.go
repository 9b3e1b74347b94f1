package controllers

import (
	"errors"
	"net/http"

	"gitea.com/go-chi/session"
	"github.com/rs/zerolog"

	"github.com/dreambabycare/babycare/middleware"
	"github.com/dreambabycare/babycare/services"
	"github.com/dreambabycare/babycare/sessionsync"
	"github.com/dreambabycare/babycare/userctx"
)

// SubscriptionController handles the parent side of the subscription flow
type SubscriptionController struct {
	subscriptions services.SubscriptionService
	tracker       *sessionsync.Tracker
	price         int
	logger        zerolog.Logger
}

// NewSubscriptionController creates a new subscription controller
func NewSubscriptionController(subscriptions services.SubscriptionService, tracker *sessionsync.Tracker, price int, logger zerolog.Logger) *SubscriptionController {
	return &SubscriptionController{
		subscriptions: subscriptions,
		tracker:       tracker,
		price:         price,
		logger:        logger,
	}
}

type subscribePage struct {
	Price  int
	Status string
}

// statusResponse is the body of GET /api/subscription/status
type statusResponse struct {
	IsSubscribed        int `json:"is_subscribed"`
	SubscriptionPending int `json:"subscription_pending"`
}

// Show handles GET /subscribe
func (c *SubscriptionController) Show(w http.ResponseWriter, r *http.Request) {
	state, _ := sessionsync.Mirror(session.GetSession(r))

	data := newPageData(r, "Subscription", "subscribe", subscribePage{
		Price:  c.price,
		Status: string(state.Status()),
	})
	renderTemplate(w, "subscribe", "subscribe.html", data)
}

// Request handles POST /subscribe
func (c *SubscriptionController) Request(w http.ResponseWriter, r *http.Request) {
	sess := session.GetSession(r)

	userID, ok := userctx.GetUserID(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	result, err := c.subscriptions.Request(r.Context(), userID, middleware.ActorFromRequest(r))
	if err != nil && !errors.Is(err, services.ErrAlreadySubscribed) {
		c.logger.Warn().Err(err).Int("user_id", userID).Msg("Subscription request failed")
	}

	flash := flashFromResult(result)
	setFlash(sess, flash.Type, flash.Message)
	http.Redirect(w, r, "/subscribe", http.StatusSeeOther)
}

// Status handles GET /api/subscription/status
func (c *SubscriptionController) Status(w http.ResponseWriter, r *http.Request) {
	sess := session.GetSession(r)

	userID, ok := sessionsync.UserID(sess)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "not logged in"})
		return
	}

	gen := c.tracker.Generation(userID)
	state, err := c.subscriptions.Status(r.Context(), userID)
	if errors.Is(err, services.ErrUserNotFound) {
		sessionsync.Clear(sess)
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "account no longer exists"})
		return
	}
	if err != nil {
		c.logger.Error().Err(err).Int("user_id", userID).Msg("Failed to read subscription status")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "status unavailable"})
		return
	}

	sessionsync.Store(sess, userID, state, gen)

	writeJSON(w, http.StatusOK, statusResponse{
		IsSubscribed:        state.IsSubscribed,
		SubscriptionPending: state.SubscriptionPending,
	})
}
