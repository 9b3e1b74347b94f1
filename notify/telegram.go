package notify

import (
	"context"
	"fmt"

	tgbot "github.com/go-telegram/bot"
	tgmodels "github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"

	"github.com/dreambabycare/babycare/config"
)

const channelTelegram = "telegram"

// telegramSender is the part of *tgbot.Bot the notifier uses
type telegramSender interface {
	SendMessage(ctx context.Context, params *tgbot.SendMessageParams) (*tgmodels.Message, error)
}

// TelegramNotifier posts notifications to the administrators' chat
type TelegramNotifier struct {
	bot    telegramSender
	chatID int64
	logger zerolog.Logger
}

// NewTelegramNotifier creates the bot client. The bot only sends; it never polls for updates.
func NewTelegramNotifier(cfg config.TelegramConfig, logger zerolog.Logger) (*TelegramNotifier, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("telegram token is required")
	}
	if cfg.AdminChatID == 0 {
		return nil, fmt.Errorf("telegram admin chat id is required")
	}

	bot, err := tgbot.New(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	logger.Info().Int64("chat_id", cfg.AdminChatID).Msg("Telegram notifier created")

	return newTelegramNotifier(bot, cfg.AdminChatID, logger), nil
}

func newTelegramNotifier(bot telegramSender, chatID int64, logger zerolog.Logger) *TelegramNotifier {
	return &TelegramNotifier{
		bot:    bot,
		chatID: chatID,
		logger: logger.With().Str("channel", channelTelegram).Logger(),
	}
}

// Notify implements Notifier
func (n *TelegramNotifier) Notify(ctx context.Context, subject, body string) bool {
	_, err := n.bot.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID: n.chatID,
		Text:   subject + "\n\n" + body,
	})
	if err != nil {
		n.logger.Warn().Err(err).Int64("chat_id", n.chatID).Msg("Failed to send Telegram notification")
		record(channelTelegram, false)
		return false
	}

	n.logger.Debug().Int64("chat_id", n.chatID).Msg("Telegram notification sent")
	record(channelTelegram, true)
	return true
}
