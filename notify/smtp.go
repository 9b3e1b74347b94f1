package notify

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/dreambabycare/babycare/config"
)

const channelSMTP = "smtp"

// sendMailFunc matches smtp.SendMail
type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPNotifier mails the administrator inbox through a relay
type SMTPNotifier struct {
	cfg      config.SMTPConfig
	logger   zerolog.Logger
	sendMail sendMailFunc
}

// NewSMTPNotifier creates a mail notifier. smtp.SendMail upgrades with
// STARTTLS when the relay offers it. Credentials are only sent when UseTLS is set.
func NewSMTPNotifier(cfg config.SMTPConfig, logger zerolog.Logger) *SMTPNotifier {
	return &SMTPNotifier{
		cfg:      cfg,
		logger:   logger.With().Str("channel", channelSMTP).Logger(),
		sendMail: smtp.SendMail,
	}
}

// Notify implements Notifier
func (n *SMTPNotifier) Notify(ctx context.Context, subject, body string) bool {
	if n.cfg.Host == "" || n.cfg.AdminEmail == "" {
		return false
	}

	from := n.cfg.User
	if from == "" {
		from = n.cfg.AdminEmail
	}

	var auth smtp.Auth
	if n.cfg.UseTLS && n.cfg.User != "" {
		auth = smtp.PlainAuth("", n.cfg.User, n.cfg.Password, n.cfg.Host)
	}

	addr := net.JoinHostPort(n.cfg.Host, strconv.Itoa(n.cfg.Port))
	msg := buildMessage(from, n.cfg.AdminEmail, subject, body)

	// net/smtp has no context support, so the send runs aside and the
	// caller stops waiting when ctx is done.
	done := make(chan error, 1)
	go func() {
		done <- n.sendMail(addr, auth, from, []string{n.cfg.AdminEmail}, msg)
	}()

	var err error
	select {
	case err = <-done:
	case <-ctx.Done():
		err = ctx.Err()
	}

	if err != nil {
		n.logger.Warn().Err(err).Str("addr", addr).Msg("Failed to send notification email")
		record(channelSMTP, false)
		return false
	}

	n.logger.Debug().Str("to", n.cfg.AdminEmail).Msg("Notification email sent")
	record(channelSMTP, true)
	return true
}

func buildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", sanitizeHeader(subject))
	fmt.Fprintf(&b, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))
	return []byte(b.String())
}

func sanitizeHeader(v string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(v)
}
