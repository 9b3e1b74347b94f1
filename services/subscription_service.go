package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dreambabycare/babycare/actionlog"
	"github.com/dreambabycare/babycare/metrics"
	"github.com/dreambabycare/babycare/models"
	"github.com/dreambabycare/babycare/notify"
	"github.com/dreambabycare/babycare/repositories"
	"github.com/dreambabycare/babycare/sessionsync"
)

var timeNow = func() time.Time {
	return time.Now()
}

var newActionID = func() string {
	return uuid.NewString()
}

var (
	// ErrUserNotFound is returned when the target user does not exist
	ErrUserNotFound = errors.New("user not found")
	// ErrPersistence is returned when the state write fails
	ErrPersistence = errors.New("failed to save subscription state")
	// ErrActionNotFound is returned when a log index does not resolve
	ErrActionNotFound = errors.New("action not found")
	// ErrAlreadySubscribed is returned when a subscribed user requests again
	ErrAlreadySubscribed = errors.New("user is already subscribed")
	// ErrActionLogUnavailable is returned when the journal cannot be read
	ErrActionLogUnavailable = errors.New("action log unavailable")
)

// defaultNotifyTimeout bounds the best-effort notification of a request
const defaultNotifyTimeout = 10 * time.Second

// SubscriptionService interface defines the subscription state machine and its undo log.
//
// Mutations follow one protocol: read the previous state, write the new state,
// then append one journal entry. The journal append and the request
// notification are best effort. Their failure is reported in the result and
// logged, but never undoes the state write and never becomes an error.
type SubscriptionService interface {
	Request(ctx context.Context, userID int, actor models.Actor) (*models.TransitionResult, error)
	Approve(ctx context.Context, userID int, actor models.Actor) (*models.TransitionResult, error)
	Reject(ctx context.Context, userID int, actor models.Actor) (*models.TransitionResult, error)
	Grant(ctx context.Context, userID int, actor models.Actor) (*models.TransitionResult, error)
	Revoke(ctx context.Context, userID int, actor models.Actor) (*models.TransitionResult, error)
	UndoLast(ctx context.Context, actor models.Actor) (*models.TransitionResult, error)
	UndoAt(ctx context.Context, logIndex int, actor models.Actor) (*models.TransitionResult, error)
	Status(ctx context.Context, userID int) (models.SubscriptionState, error)
	Overview(ctx context.Context) (*models.SubscriptionOverview, error)
	Actions(ctx context.Context) ([]models.AdminAction, error)
}

// SubscriptionOptions holds the non-collaborator settings of the service
type SubscriptionOptions struct {
	BaseURL       string
	NotifyTimeout time.Duration
}

// subscriptionService implements SubscriptionService interface
type subscriptionService struct {
	userRepo    repositories.UserRepository
	journal     actionlog.Journal
	notifier    notify.Notifier
	invalidator sessionsync.Invalidator
	opts        SubscriptionOptions
	logger      zerolog.Logger
}

// NewSubscriptionService creates a new subscription service
func NewSubscriptionService(
	userRepo repositories.UserRepository,
	journal actionlog.Journal,
	notifier notify.Notifier,
	invalidator sessionsync.Invalidator,
	opts SubscriptionOptions,
	logger zerolog.Logger,
) SubscriptionService {
	if notifier == nil {
		notifier = notify.Nop{}
	}
	if opts.NotifyTimeout <= 0 {
		opts.NotifyTimeout = defaultNotifyTimeout
	}

	return &subscriptionService{
		userRepo:    userRepo,
		journal:     journal,
		notifier:    notifier,
		invalidator: invalidator,
		opts:        opts,
		logger:      logger.With().Str("service", "subscription").Logger(),
	}
}

// Request records that the user has paid and is waiting for a decision
func (s *subscriptionService) Request(ctx context.Context, userID int, actor models.Actor) (*models.TransitionResult, error) {
	user, result, err := s.loadUser(ctx, models.ActionRequest, userID)
	if err != nil {
		return result, err
	}

	if user.HasAccess() {
		s.count(models.ActionRequest, metrics.OutcomeRefused)
		return &models.TransitionResult{
			Outcome: models.OutcomeRefused,
			Message: "Your subscription is already active.",
		}, ErrAlreadySubscribed
	}

	// The requester is the acting identity for their own request
	actor.Name = user.Email

	result, err = s.apply(ctx, models.ActionRequest, user, models.StatePending, actor)
	if err != nil {
		return result, err
	}
	result.Message = "Thanks! Your payment is being verified. Access unlocks once an admin approves it."

	subject := fmt.Sprintf("Subscription request: %s", user.Email)
	body := fmt.Sprintf(
		"%s (%s) has requested a subscription and says they have paid.\n\nReview pending requests: %s/admin/subscriptions",
		user.ParentName, user.Email, s.opts.BaseURL,
	)
	result.Notified = s.notify(ctx, subject, body)

	return result, nil
}

// Approve activates a user's subscription
func (s *subscriptionService) Approve(ctx context.Context, userID int, actor models.Actor) (*models.TransitionResult, error) {
	return s.transition(ctx, models.ActionApprove, userID, models.StateActive, actor, "Subscription approved for %s.")
}

// Reject clears a user's request
func (s *subscriptionService) Reject(ctx context.Context, userID int, actor models.Actor) (*models.TransitionResult, error) {
	return s.transition(ctx, models.ActionReject, userID, models.StateInactive, actor, "Subscription request rejected for %s.")
}

// Grant activates a subscription without a prior request
func (s *subscriptionService) Grant(ctx context.Context, userID int, actor models.Actor) (*models.TransitionResult, error) {
	return s.transition(ctx, models.ActionGrant, userID, models.StateActive, actor, "Subscription granted to %s.")
}

// Revoke removes a user's access
func (s *subscriptionService) Revoke(ctx context.Context, userID int, actor models.Actor) (*models.TransitionResult, error) {
	return s.transition(ctx, models.ActionRevoke, userID, models.StateInactive, actor, "Subscription revoked for %s.")
}

// UndoLast reverts the most recent journal entry
func (s *subscriptionService) UndoLast(ctx context.Context, actor models.Actor) (*models.TransitionResult, error) {
	last, err := s.journal.ReadLast()
	if err != nil {
		return s.journalUnavailable(err)
	}

	if last == nil {
		s.count(models.ActionUndo, metrics.OutcomeNoop)
		return &models.TransitionResult{
			Success: true,
			Outcome: models.OutcomeNothingToUndo,
			Message: "Nothing to undo.",
		}, nil
	}

	return s.undo(ctx, *last, actor)
}

// UndoAt reverts the journal entry at logIndex, restoring the state captured
// before it regardless of what happened afterwards
func (s *subscriptionService) UndoAt(ctx context.Context, logIndex int, actor models.Actor) (*models.TransitionResult, error) {
	entries, err := s.journal.ReadAll()
	if err != nil {
		return s.journalUnavailable(err)
	}

	if logIndex < 0 || logIndex >= len(entries) {
		s.count(models.ActionUndo, metrics.OutcomeNotFound)
		return &models.TransitionResult{
			Outcome: models.OutcomeNotFound,
			Message: "Action not found.",
		}, fmt.Errorf("log index %d: %w", logIndex, ErrActionNotFound)
	}

	return s.undo(ctx, entries[logIndex], actor)
}

// Status returns the stored subscription state of a user
func (s *subscriptionService) Status(ctx context.Context, userID int) (models.SubscriptionState, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if errors.Is(err, repositories.ErrNotFound) {
		return models.StateInactive, fmt.Errorf("user %d: %w", userID, ErrUserNotFound)
	}
	if err != nil {
		return models.StateInactive, fmt.Errorf("failed to get subscription state: %w", err)
	}
	return user.SubscriptionState, nil
}

// Overview returns pending requests, subscribers and all users
func (s *subscriptionService) Overview(ctx context.Context) (*models.SubscriptionOverview, error) {
	pending, err := s.userRepo.GetPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get pending users: %w", err)
	}

	subscribed, err := s.userRepo.GetSubscribed(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get subscribed users: %w", err)
	}

	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	return &models.SubscriptionOverview{
		Pending:    pending,
		Subscribed: subscribed,
		Users:      users,
	}, nil
}

// Actions returns every journal entry, newest first. LogIndex keeps the
// file position so entries can be passed back to UndoAt.
func (s *subscriptionService) Actions(ctx context.Context) ([]models.AdminAction, error) {
	entries, err := s.journal.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrActionLogUnavailable, err)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].LogIndex > entries[j].LogIndex
	})

	return entries, nil
}

// transition runs the admin mutation protocol for a fixed target state
func (s *subscriptionService) transition(
	ctx context.Context,
	action models.ActionType,
	userID int,
	next models.SubscriptionState,
	actor models.Actor,
	successFormat string,
) (*models.TransitionResult, error) {
	user, result, err := s.loadUser(ctx, action, userID)
	if err != nil {
		return result, err
	}

	result, err = s.apply(ctx, action, user, next, actor)
	if err != nil {
		return result, err
	}
	result.Message = fmt.Sprintf(successFormat, user.Email)

	return result, nil
}

// undo restores the state captured before target as a new forward entry.
// The entry records target's new state as prev and target's prev state as new.
func (s *subscriptionService) undo(ctx context.Context, target models.AdminAction, actor models.Actor) (*models.TransitionResult, error) {
	user, result, err := s.loadUser(ctx, models.ActionUndo, target.UserID)
	if err != nil {
		return result, err
	}

	restored := target.PrevState()
	if err := s.userRepo.SetSubscriptionState(ctx, user.ID, restored); err != nil {
		return s.persistenceFailure(models.ActionUndo, user, err)
	}
	s.invalidate(user.ID)

	entry := s.newEntry(models.ActionUndo, user, actor)
	entry.UserEmail = target.UserEmail
	entry.Reverts = target.ID
	entry.SetTransition(target.NewState(), restored)

	result = &models.TransitionResult{
		Success: true,
		Outcome: models.OutcomeApplied,
		Message: fmt.Sprintf("Undid %s for %s.", target.Action, target.UserEmail),
		Entry:   &entry,
		Logged:  s.appendEntry(entry),
	}
	s.count(models.ActionUndo, metrics.OutcomeSuccess)

	return result, nil
}

// apply writes next for user and journals the change
func (s *subscriptionService) apply(
	ctx context.Context,
	action models.ActionType,
	user *models.User,
	next models.SubscriptionState,
	actor models.Actor,
) (*models.TransitionResult, error) {
	prev := user.SubscriptionState

	if err := s.userRepo.SetSubscriptionState(ctx, user.ID, next); err != nil {
		return s.persistenceFailure(action, user, err)
	}
	s.invalidate(user.ID)

	entry := s.newEntry(action, user, actor)
	entry.SetTransition(prev, next)

	s.count(action, metrics.OutcomeSuccess)

	return &models.TransitionResult{
		Success: true,
		Outcome: models.OutcomeApplied,
		Entry:   &entry,
		Logged:  s.appendEntry(entry),
	}, nil
}

func (s *subscriptionService) loadUser(ctx context.Context, action models.ActionType, userID int) (*models.User, *models.TransitionResult, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if errors.Is(err, repositories.ErrNotFound) {
		s.count(action, metrics.OutcomeNotFound)
		return nil, &models.TransitionResult{
			Outcome: models.OutcomeNotFound,
			Message: "User not found.",
		}, fmt.Errorf("user %d: %w", userID, ErrUserNotFound)
	}
	if err != nil {
		s.logger.Error().Err(err).Int("user_id", userID).Str("action", string(action)).Msg("Failed to load user")
		s.count(action, metrics.OutcomeFailed)
		return nil, &models.TransitionResult{
			Outcome: models.OutcomeFailed,
			Message: "Could not load the user. Please try again.",
		}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return user, nil, nil
}

func (s *subscriptionService) persistenceFailure(action models.ActionType, user *models.User, err error) (*models.TransitionResult, error) {
	s.logger.Error().Err(err).
		Int("user_id", user.ID).
		Str("action", string(action)).
		Msg("Failed to write subscription state")
	s.count(action, metrics.OutcomeFailed)

	if errors.Is(err, repositories.ErrNotFound) {
		return &models.TransitionResult{
			Outcome: models.OutcomeNotFound,
			Message: "User not found.",
		}, fmt.Errorf("user %d: %w", user.ID, ErrUserNotFound)
	}

	return &models.TransitionResult{
		Outcome: models.OutcomeFailed,
		Message: "Failed to update the subscription. Please try again.",
	}, fmt.Errorf("%w: %v", ErrPersistence, err)
}

func (s *subscriptionService) journalUnavailable(err error) (*models.TransitionResult, error) {
	s.logger.Error().Err(err).Msg("Failed to read action log")
	s.count(models.ActionUndo, metrics.OutcomeFailed)
	return &models.TransitionResult{
		Outcome: models.OutcomeFailed,
		Message: "The action log could not be read.",
	}, fmt.Errorf("%w: %v", ErrActionLogUnavailable, err)
}

func (s *subscriptionService) newEntry(action models.ActionType, user *models.User, actor models.Actor) models.AdminAction {
	return models.AdminAction{
		ID:        newActionID(),
		Timestamp: models.Timestamp{Time: timeNow()},
		Action:    action,
		UserID:    user.ID,
		UserEmail: user.Email,
		Admin:     actor.NameOrUnknown(),
		IP:        actor.IPOrUnknown(),
	}
}

// appendEntry writes to the journal. The state change has already
// happened, so a failure is only logged and counted.
func (s *subscriptionService) appendEntry(entry models.AdminAction) bool {
	if err := s.journal.Append(entry); err != nil {
		s.logger.Error().Err(err).
			Str("action", string(entry.Action)).
			Int("user_id", entry.UserID).
			Str("entry_id", entry.ID).
			Msg("Failed to append admin action")
		metrics.ActionLogAppendFailures.Inc()
		return false
	}
	return true
}

func (s *subscriptionService) notify(ctx context.Context, subject, body string) bool {
	nctx, cancel := context.WithTimeout(ctx, s.opts.NotifyTimeout)
	defer cancel()

	delivered := s.notifier.Notify(nctx, subject, body)
	if !delivered {
		s.logger.Info().Str("subject", subject).Msg("Subscription request notification not delivered")
	}
	return delivered
}

func (s *subscriptionService) invalidate(userID int) {
	if s.invalidator != nil {
		s.invalidator.Invalidate(userID)
	}
}

func (s *subscriptionService) count(action models.ActionType, outcome string) {
	metrics.SubscriptionTransitions.WithLabelValues(string(action), outcome).Inc()
}
