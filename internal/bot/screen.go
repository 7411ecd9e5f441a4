package bot

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"pricing-bot/internal/export"
	"pricing-bot/internal/pricing"
	"pricing-bot/internal/render"
	"pricing-bot/internal/session"
	"pricing-bot/internal/theme"
	"pricing-bot/internal/viewstate"
)

func (b *Bot) screen(s session.Session) (string, tgbotapi.InlineKeyboardMarkup, error) {
	vm, err := viewstate.Derive(s.State, b.catalog)
	if err != nil {
		return "", tgbotapi.InlineKeyboardMarkup{}, err
	}

	t := b.themeFor(s)
	l := b.layoutFor(s)
	text := render.Screen(vm, render.Options{Layout: l, Theme: t, HTML: true})
	return text, keyboardFor(vm, t, l), nil
}

// show draws the session's screen, editing the chat's pricing message in
// place when there is one. s.MessageID is updated when a new message had to
// be sent.
func (b *Bot) show(ctx context.Context, chatID int64, s *session.Session) error {
	text, kb, err := b.screen(*s)
	if err != nil {
		return fmt.Errorf("failed to render screen: %w", err)
	}

	if s.MessageID != 0 {
		edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, s.MessageID, text, kb)
		edit.ParseMode = tgbotapi.ModeHTML
		_, err := b.api.Send(edit)
		if err == nil || isNotModified(err) {
			b.active[chatID] = struct{}{}
			return nil
		}
		b.logger.Warn("Failed to edit message, sending a new one",
			zap.Int64("chat_id", chatID),
			zap.Int("message_id", s.MessageID),
			zap.Error(err))
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = kb
	sent, err := b.sendMessage(msg)
	if err != nil {
		return err
	}
	s.MessageID = sent.MessageID
	b.active[chatID] = struct{}{}
	return nil
}

// Telegram rejects edits that leave the message unchanged, e.g. tapping the
// tab that is already open.
func isNotModified(err error) bool {
	return strings.Contains(err.Error(), "message is not modified")
}

// refreshActive redraws every live chat that follows the shared theme
// preference.
func (b *Bot) refreshActive(ctx context.Context, t theme.Theme) {
	b.logger.Info("Theme preference changed",
		zap.String("theme", string(t)),
		zap.Int("active_chats", len(b.active)))

	for chatID := range b.active {
		s, err := b.loadSession(ctx, chatID)
		if err != nil {
			b.logger.Error("Failed to load session for refresh",
				zap.Int64("chat_id", chatID),
				zap.Error(err))
			continue
		}
		if s.Theme != "" || s.MessageID == 0 {
			continue
		}
		if err := b.show(ctx, chatID, &s); err != nil {
			b.logger.Error("Failed to refresh screen",
				zap.Int64("chat_id", chatID),
				zap.Error(err))
			continue
		}
		if err := b.saveSession(ctx, chatID, s); err != nil {
			b.logger.Error("Failed to save session",
				zap.Int64("chat_id", chatID),
				zap.Error(err))
		}
	}
}

// sendExport sends the workbook for the session's bracket as a document.
func (b *Bot) sendExport(chatID int64, s session.Session) {
	bracket := s.State.Bracket

	var buf bytes.Buffer
	if err := export.Write(&buf, b.catalog, bracket); err != nil {
		b.logger.Error("Failed to export pricing",
			zap.Int64("chat_id", chatID),
			zap.Stringer("bracket", bracket),
			zap.Error(err))
		b.sendError(chatID, "Failed to export pricing")
		return
	}

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{
		Name:  export.Filename(bracket, time.Now()),
		Bytes: buf.Bytes(),
	})
	doc.Caption = "📊 Pricing for Monthly GGR " + pricing.FormatBracket(bracket)

	if _, err := b.api.Send(doc); err != nil {
		b.logger.Error("Failed to send Excel file",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
		b.sendError(chatID, "Failed to send exported file")
	}
}
