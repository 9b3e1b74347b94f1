package models

// TransitionOutcome classifies how a subscription operation ended
type TransitionOutcome string

const (
	OutcomeApplied       TransitionOutcome = "applied"
	OutcomeNothingToUndo TransitionOutcome = "nothing_to_undo"
	OutcomeNotFound      TransitionOutcome = "not_found"
	OutcomeRefused       TransitionOutcome = "refused"
	OutcomeFailed        TransitionOutcome = "failed"
)

// TransitionResult represents the result of a subscription state operation.
// Message is always set and is safe to show to the acting user.
type TransitionResult struct {
	Success  bool              `json:"success"`
	Outcome  TransitionOutcome `json:"outcome"`
	Message  string            `json:"message"`
	Entry    *AdminAction      `json:"entry,omitempty"`
	Logged   bool              `json:"logged"`
	Notified bool              `json:"notified"`
}

// SubscriptionOverview is the admin view of all subscription states
type SubscriptionOverview struct {
	Pending    []User `json:"pending"`
	Subscribed []User `json:"subscribed"`
	Users      []User `json:"users"`
}

// PendingCount returns the number of open requests
func (o *SubscriptionOverview) PendingCount() int {
	return len(o.Pending)
}

// SubscribedCount returns the number of users with access
func (o *SubscriptionOverview) SubscribedCount() int {
	return len(o.Subscribed)
}

// TotalCount returns the number of registered users
func (o *SubscriptionOverview) TotalCount() int {
	return len(o.Users)
}
