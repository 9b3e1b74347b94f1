package services

import (
	"github.com/rs/zerolog"

	"github.com/dreambabycare/babycare/actionlog"
	"github.com/dreambabycare/babycare/config"
	"github.com/dreambabycare/babycare/notify"
	"github.com/dreambabycare/babycare/repositories"
	"github.com/dreambabycare/babycare/sessionsync"
)

// Services holds all service instances
type Services struct {
	Subscriptions SubscriptionService
	Accounts      AccountService
}

// Dependencies holds the collaborators shared by the services
type Dependencies struct {
	Repos       *repositories.Repositories
	Journal     actionlog.Journal
	Notifier    notify.Notifier
	Invalidator sessionsync.Invalidator
	Config      *config.Config
	Logger      zerolog.Logger
}

// NewServices creates and initializes all service instances
func NewServices(deps Dependencies) *Services {
	return &Services{
		Subscriptions: NewSubscriptionService(
			deps.Repos.Users,
			deps.Journal,
			deps.Notifier,
			deps.Invalidator,
			SubscriptionOptions{BaseURL: deps.Config.Server.BaseURL},
			deps.Logger,
		),
		Accounts: NewAccountService(deps.Repos.Users, deps.Config.Admin, deps.Logger),
	}
}
