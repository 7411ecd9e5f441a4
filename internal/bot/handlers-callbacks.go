package bot

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"pricing-bot/internal/viewstate"
)

func (b *Bot) processCallback(ctx context.Context, callback *tgbotapi.CallbackQuery) {
	if callback.Message == nil || callback.Message.Chat == nil {
		b.answerCallback(callback.ID, "", false)
		return
	}

	chatID := callback.Message.Chat.ID
	data := callback.Data

	b.logger.Debug("Processing callback",
		zap.Int64("chat_id", chatID),
		zap.String("data", data))

	s, err := b.loadSession(ctx, chatID)
	if err != nil {
		b.logger.Error("Failed to get session",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
		b.answerCallback(callback.ID, "", false)
		b.sendError(chatID, "Failed to process request")
		return
	}
	// Redraw the message the button belongs to.
	s.MessageID = callback.Message.MessageID

	switch data {
	case dataExport:
		b.answerCallback(callback.ID, "Preparing Excel file...", false)
		b.sendExport(chatID, s)
		return
	case dataToggleTheme:
		s.Theme = b.themeFor(s).Toggle()
		b.answerCallback(callback.ID, "", false)
	case dataToggleLayout:
		s.Layout = b.layoutFor(s).Toggle()
		b.answerCallback(callback.ID, "", false)
	default:
		err := applyAction(&s, data)
		switch {
		case err == nil:
			b.answerCallback(callback.ID, "", false)
		case errors.Is(err, viewstate.ErrIllegalTransition):
			// A button from an older screen; redraw the current one.
			b.logger.Warn("Stale callback",
				zap.Int64("chat_id", chatID),
				zap.String("data", data),
				zap.String("view", string(s.State.View)),
				zap.Error(err))
			b.answerCallback(callback.ID, "This button is no longer active.", false)
		default:
			b.logger.Error("Invalid callback data",
				zap.Int64("chat_id", chatID),
				zap.String("data", data),
				zap.Error(err))
			b.answerCallback(callback.ID, "", false)
			b.sendError(chatID, "Unsupported action")
			return
		}
	}

	if err := b.show(ctx, chatID, &s); err != nil {
		b.logger.Error("Failed to redraw screen",
			zap.Int64("chat_id", chatID),
			zap.String("data", data),
			zap.Error(err))
		b.sendError(chatID, "Failed to display pricing")
		return
	}
	if err := b.saveSession(ctx, chatID, s); err != nil {
		b.logger.Error("Failed to save session",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
	}
}
