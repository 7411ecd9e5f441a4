package bot

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"pricing-bot/internal/render"
	"pricing-bot/internal/session"
	"pricing-bot/internal/theme"
	"pricing-bot/internal/viewstate"
)

// loadSession returns the stored session for the chat, or a fresh one on
// the selection screen.
func (b *Bot) loadSession(ctx context.Context, chatID int64) (session.Session, error) {
	s, err := b.sessions.Get(ctx, chatID)
	if errors.Is(err, session.ErrNotFound) {
		if err != session.ErrNotFound {
			b.logger.Warn("Discarding stored session",
				zap.Int64("chat_id", chatID),
				zap.Error(err))
		}
		return session.New(), nil
	}
	if err != nil {
		return session.Session{}, fmt.Errorf("failed to get session: %w", err)
	}
	return s, nil
}

func (b *Bot) saveSession(ctx context.Context, chatID int64, s session.Session) error {
	if err := b.sessions.Save(ctx, chatID, s); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// applyAction decodes callback data and runs it through the controller.
// On error the session is left untouched.
func applyAction(s *session.Session, data string) error {
	action, err := viewstate.ParseAction(data)
	if err != nil {
		return err
	}
	c, err := viewstate.Restore(s.State)
	if err != nil {
		return err
	}
	if err := c.Apply(action); err != nil {
		return err
	}
	s.State = c.State()
	return nil
}

// themeFor is the chat's own theme, or the shared preference when the chat
// never picked one.
func (b *Bot) themeFor(s session.Session) theme.Theme {
	if s.Theme != "" {
		return s.Theme
	}
	return b.prefs.Current()
}

func (b *Bot) layoutFor(s session.Session) render.Layout {
	if s.Layout != "" {
		return s.Layout
	}
	return b.layout
}
