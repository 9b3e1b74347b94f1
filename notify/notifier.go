// Package notify delivers administrator notifications. Delivery is best
// effort: a Notifier reports whether the message went out and never fails
// the caller.
package notify

import (
	"context"
	"errors"
	"io"

	"github.com/rs/zerolog"

	"github.com/dreambabycare/babycare/config"
	"github.com/dreambabycare/babycare/metrics"
)

// Notifier sends a short message to the site administrators
type Notifier interface {
	Notify(ctx context.Context, subject, body string) bool
}

// Nop never delivers. It stands in when no channel is configured.
type Nop struct{}

// Notify implements Notifier
func (Nop) Notify(context.Context, string, string) bool {
	return false
}

// Multi fans a notification out to every channel
type Multi []Notifier

// Notify reports true when at least one channel delivered
func (m Multi) Notify(ctx context.Context, subject, body string) bool {
	delivered := false
	for _, n := range m {
		if n.Notify(ctx, subject, body) {
			delivered = true
		}
	}
	return delivered
}

// FromConfig builds the configured channels. Channels that are not
// configured are left out; with none configured the result is Nop.
func FromConfig(cfg config.NotifyConfig, logger zerolog.Logger) Notifier {
	var channels Multi

	if cfg.SMTP.Host != "" && cfg.SMTP.AdminEmail != "" {
		channels = append(channels, NewSMTPNotifier(cfg.SMTP, logger))
	}

	if cfg.Telegram.Token != "" {
		tg, err := NewTelegramNotifier(cfg.Telegram, logger)
		if err != nil {
			logger.Warn().Err(err).Msg("Telegram notifications disabled")
		} else {
			channels = append(channels, tg)
		}
	}

	if len(cfg.Kafka.Brokers) > 0 {
		channels = append(channels, NewKafkaNotifier(cfg.Kafka, logger))
	}

	switch len(channels) {
	case 0:
		logger.Info().Msg("No notification channel configured")
		return Nop{}
	case 1:
		return channels[0]
	default:
		return channels
	}
}

// Close releases any channel holding a connection
func Close(n Notifier) error {
	switch v := n.(type) {
	case Multi:
		var errs []error
		for _, ch := range v {
			errs = append(errs, Close(ch))
		}
		return errors.Join(errs...)
	case io.Closer:
		return v.Close()
	default:
		return nil
	}
}

func record(channel string, delivered bool) {
	outcome := metrics.OutcomeNotDelivered
	if delivered {
		outcome = metrics.OutcomeDelivered
	}
	metrics.Notifications.WithLabelValues(channel, outcome).Inc()
}
