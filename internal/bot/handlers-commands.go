package bot

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"pricing-bot/internal/render"
	"pricing-bot/internal/session"
	"pricing-bot/internal/theme"
)

const helpText = `Available commands:
/start - Open the pricing screen
/layout [table|cards] - Switch between the table and card layouts
/export - Download the pricing for your revenue range as Excel
/help - Show this help

Pick a product, choose your expected monthly GGR and tap "View Pricing".`

const adminHelpText = `
Admin:
/theme light|dark - Set the default theme for everyone`

// handleStart resets the flow and sends a fresh pricing message. The chat's
// theme and layout choices survive.
func (b *Bot) handleStart(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	prev, err := b.loadSession(ctx, chatID)
	if err != nil {
		b.logger.Error("Failed to get session",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
		b.sendError(chatID, "Failed to process request")
		return
	}

	s := session.New()
	s.Theme = prev.Theme
	s.Layout = prev.Layout

	if err := b.show(ctx, chatID, &s); err != nil {
		b.logger.Error("Failed to show selection screen",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
		return
	}
	if err := b.saveSession(ctx, chatID, s); err != nil {
		b.logger.Error("Failed to save session",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
	}
}

func (b *Bot) handleHelp(_ context.Context, msg *tgbotapi.Message) {
	text := helpText
	if b.cfg.IsAdmin(msg.Chat.ID) {
		text += "\n" + adminHelpText
	}
	_, _ = b.sendMessage(tgbotapi.NewMessage(msg.Chat.ID, text))
}

func (b *Bot) handleExport(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	s, err := b.loadSession(ctx, chatID)
	if err != nil {
		b.logger.Error("Failed to get session",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
		b.sendError(chatID, "Failed to process request")
		return
	}
	b.sendExport(chatID, s)
}

// handleLayout sets the chat's layout, or toggles it when no argument is
// given, and redraws the pricing message.
func (b *Bot) handleLayout(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	s, err := b.loadSession(ctx, chatID)
	if err != nil {
		b.logger.Error("Failed to get session",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
		b.sendError(chatID, "Failed to process request")
		return
	}

	if arg := strings.TrimSpace(msg.CommandArguments()); arg != "" {
		l, err := render.ParseLayout(arg)
		if err != nil {
			b.sendError(chatID, "Usage: /layout [table|cards]")
			return
		}
		s.Layout = l
	} else {
		s.Layout = b.layoutFor(s).Toggle()
	}

	if err := b.show(ctx, chatID, &s); err != nil {
		b.logger.Error("Failed to redraw screen",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
		return
	}
	if err := b.saveSession(ctx, chatID, s); err != nil {
		b.logger.Error("Failed to save session",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
	}
}

// handleTheme changes the shared theme preference. Chats that picked their
// own theme keep it.
func (b *Bot) handleTheme(_ context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	if !b.cfg.IsAdmin(chatID) {
		b.sendError(chatID, "This command is only available to administrators.")
		return
	}

	t, err := theme.Parse(msg.CommandArguments())
	if err != nil {
		b.sendError(chatID, "Usage: /theme light|dark")
		return
	}

	b.prefs.Set(t)
	b.logger.Info("Default theme changed",
		zap.Int64("admin_id", chatID),
		zap.String("theme", string(t)))

	_, _ = b.sendMessage(tgbotapi.NewMessage(chatID,
		fmt.Sprintf("✅ Default theme set to %s", t)))
	b.notifyAdmins(chatID, fmt.Sprintf("🎨 Default theme set to %s by admin %d", t, chatID))
}
