package models

// SubscriptionStatus is the derived state of the two subscription flags
type SubscriptionStatus string

const (
	StatusInactive SubscriptionStatus = "inactive"
	StatusPending  SubscriptionStatus = "pending"
	StatusActive   SubscriptionStatus = "active"
)

// SubscriptionState holds the persisted subscription flags of a user.
// Both fields are 0 or 1.
type SubscriptionState struct {
	IsSubscribed        int `json:"is_subscribed" db:"is_subscribed"`
	SubscriptionPending int `json:"subscription_pending" db:"subscription_pending"`
}

var (
	StateInactive = SubscriptionState{IsSubscribed: 0, SubscriptionPending: 0}
	StatePending  = SubscriptionState{IsSubscribed: 0, SubscriptionPending: 1}
	StateActive   = SubscriptionState{IsSubscribed: 1, SubscriptionPending: 0}
)

// NewSubscriptionState builds a state, clamping any non-zero flag to 1
func NewSubscriptionState(isSubscribed, pending int) SubscriptionState {
	return SubscriptionState{
		IsSubscribed:        flag(isSubscribed),
		SubscriptionPending: flag(pending),
	}
}

// Status maps the flags to a status. A stored (1,1) counts as active.
func (s SubscriptionState) Status() SubscriptionStatus {
	switch {
	case s.IsSubscribed == 1:
		return StatusActive
	case s.SubscriptionPending == 1:
		return StatusPending
	default:
		return StatusInactive
	}
}

// HasAccess reports whether the state grants access to gated content
func (s SubscriptionState) HasAccess() bool {
	return s.IsSubscribed == 1
}

func flag(v int) int {
	if v != 0 {
		return 1
	}
	return 0
}
