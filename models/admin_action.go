package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// ActionType tags an entry in the admin action journal
type ActionType string

const (
	ActionRequest ActionType = "request"
	ActionApprove ActionType = "approve"
	ActionReject  ActionType = "reject"
	ActionGrant   ActionType = "grant"
	ActionRevoke  ActionType = "revoke"
	ActionUndo    ActionType = "undo"
)

// Known reports whether t is one of the journal's action types
func (t ActionType) Known() bool {
	switch t {
	case ActionRequest, ActionApprove, ActionReject, ActionGrant, ActionRevoke, ActionUndo:
		return true
	}
	return false
}

// UnknownActor is recorded when no acting identity is available
const UnknownActor = "unknown"

// AdminAction is one line of the admin action journal.
// LogIndex is assigned when the journal is read and is never written.
type AdminAction struct {
	ID                      string     `json:"id,omitempty"`
	Timestamp               Timestamp  `json:"timestamp"`
	Action                  ActionType `json:"action"`
	UserID                  int        `json:"user_id"`
	UserEmail               string     `json:"user_email"`
	PrevIsSubscribed        int        `json:"prev_is_subscribed"`
	PrevSubscriptionPending int        `json:"prev_subscription_pending"`
	NewIsSubscribed         int        `json:"new_is_subscribed"`
	NewSubscriptionPending  int        `json:"new_subscription_pending"`
	Admin                   string     `json:"admin"`
	IP                      string     `json:"ip"`
	Reverts                 string     `json:"reverts,omitempty"`
	LogIndex                int        `json:"-"`
}

// PrevState returns the state captured before the mutation
func (a AdminAction) PrevState() SubscriptionState {
	return NewSubscriptionState(a.PrevIsSubscribed, a.PrevSubscriptionPending)
}

// NewState returns the state written by the mutation
func (a AdminAction) NewState() SubscriptionState {
	return NewSubscriptionState(a.NewIsSubscribed, a.NewSubscriptionPending)
}

// SetTransition records the prev and new states on the entry
func (a *AdminAction) SetTransition(prev, next SubscriptionState) {
	a.PrevIsSubscribed = prev.IsSubscribed
	a.PrevSubscriptionPending = prev.SubscriptionPending
	a.NewIsSubscribed = next.IsSubscribed
	a.NewSubscriptionPending = next.SubscriptionPending
}

// Actor identifies who performed an action and from where
type Actor struct {
	Name string
	IP   string
}

// NameOrUnknown returns the actor name, falling back to UnknownActor
func (a Actor) NameOrUnknown() string {
	if a.Name == "" {
		return UnknownActor
	}
	return a.Name
}

// IPOrUnknown returns the actor network origin, falling back to UnknownActor
func (a Actor) IPOrUnknown() string {
	if a.IP == "" {
		return UnknownActor
	}
	return a.IP
}

// Timestamp is an ISO-8601 event time. It also accepts the zone-less
// form written by earlier versions of the journal.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
}

// MarshalJSON writes the time in RFC 3339 form
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Time.Format(time.RFC3339Nano))
}

// UnmarshalJSON parses any of the accepted layouts
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	for _, layout := range timestampLayouts {
		if parsed, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			t.Time = parsed
			return nil
		}
	}

	return fmt.Errorf("invalid timestamp %q", raw)
}
