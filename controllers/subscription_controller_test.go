package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dreambabycare/babycare/models"
	"github.com/dreambabycare/babycare/services"
)

func parentSession() url.Values {
	return url.Values{"user_id": {"7"}, "email": {"parent@example.com"}}
}

func TestSubscriptionController_Show(t *testing.T) {
	tests := []struct {
		name       string
		subscribed string
		pending    string
		want       string
	}{
		{"inactive", "0", "0", "Unlock every parenting video"},
		{"pending", "0", "1", "We are verifying your payment."},
		{"active", "1", "0", "Your subscription is active."},
		{"subscribed and pending", "1", "1", "Your subscription is active."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, envOptions{})
			seed := parentSession()
			seed.Set("subscribed", tt.subscribed)
			seed.Set("pending", tt.pending)
			env.seed(t, seed)

			resp := env.get(t, "/subscribe")
			assert.Equal(t, http.StatusOK, resp.status)
			assert.Contains(t, resp.body, tt.want)
		})
	}
}

func TestSubscriptionController_Request(t *testing.T) {
	t.Run("request is attributed to the user", func(t *testing.T) {
		env := newTestEnv(t, envOptions{})
		env.seed(t, parentSession())

		env.subscriptions.EXPECT().
			Request(mock.Anything, 7, mock.MatchedBy(func(a models.Actor) bool {
				return a.Name == "parent@example.com" && a.IP == "127.0.0.1"
			})).
			Return(&models.TransitionResult{
				Success: true,
				Outcome: models.OutcomeApplied,
				Message: "Thanks! Your payment is being verified.",
			}, nil).Once()

		resp := env.post(t, "/subscribe", nil)
		assert.Equal(t, http.StatusSeeOther, resp.status)
		assert.Equal(t, "/subscribe", resp.location)

		resp = env.get(t, "/subscribe")
		assert.Contains(t, resp.body, "alert-success")
		assert.Contains(t, resp.body, "Thanks! Your payment is being verified.")
	})

	t.Run("already subscribed is informational", func(t *testing.T) {
		env := newTestEnv(t, envOptions{})
		env.seed(t, parentSession())

		env.subscriptions.EXPECT().Request(mock.Anything, 7, mock.Anything).
			Return(&models.TransitionResult{
				Outcome: models.OutcomeRefused,
				Message: "Your subscription is already active.",
			}, services.ErrAlreadySubscribed).Once()

		env.post(t, "/subscribe", nil)

		resp := env.get(t, "/subscribe")
		assert.Contains(t, resp.body, "alert-info")
		assert.Contains(t, resp.body, "Your subscription is already active.")
	})

	t.Run("anonymous is sent to login", func(t *testing.T) {
		env := newTestEnv(t, envOptions{})

		resp := env.post(t, "/subscribe", nil)
		assert.Equal(t, http.StatusSeeOther, resp.status)
		assert.Equal(t, "/login", resp.location)
	})
}

func TestSubscriptionController_Status(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		env := newTestEnv(t, envOptions{})

		resp := env.get(t, "/api/subscription/status")
		assert.Equal(t, http.StatusUnauthorized, resp.status)
	})

	t.Run("returns the stored state and refreshes the session", func(t *testing.T) {
		env := newTestEnv(t, envOptions{})
		seed := parentSession()
		seed.Set("pending", "1")
		env.seed(t, seed)

		env.subscriptions.EXPECT().Status(mock.Anything, 7).Return(models.StateActive, nil).Once()

		resp := env.get(t, "/api/subscription/status")
		require.Equal(t, http.StatusOK, resp.status)

		var body map[string]int
		require.NoError(t, json.Unmarshal([]byte(resp.body), &body))
		assert.Equal(t, map[string]int{"is_subscribed": 1, "subscription_pending": 0}, body)

		resp = env.get(t, "/subscribe")
		assert.Contains(t, resp.body, "Your subscription is active.")
	})

	t.Run("deleted user is logged out", func(t *testing.T) {
		env := newTestEnv(t, envOptions{})
		env.seed(t, parentSession())

		env.subscriptions.EXPECT().Status(mock.Anything, 7).
			Return(models.StateInactive, services.ErrUserNotFound).Once()

		resp := env.get(t, "/api/subscription/status")
		assert.Equal(t, http.StatusUnauthorized, resp.status)

		resp = env.get(t, "/api/subscription/status")
		assert.Equal(t, http.StatusUnauthorized, resp.status)
	})

	t.Run("store failure", func(t *testing.T) {
		env := newTestEnv(t, envOptions{})
		env.seed(t, parentSession())

		env.subscriptions.EXPECT().Status(mock.Anything, 7).
			Return(models.StateInactive, errors.New("database is locked")).Once()

		resp := env.get(t, "/api/subscription/status")
		assert.Equal(t, http.StatusInternalServerError, resp.status)
		assert.NotContains(t, resp.body, "database is locked")
	})
}
