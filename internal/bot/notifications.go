package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// notifyAdmins sends text to every configured admin except the one who
// triggered it.
func (b *Bot) notifyAdmins(from int64, text string) {
	for _, id := range b.cfg.AdminIDs {
		if id == from {
			continue
		}
		if _, err := b.api.Send(tgbotapi.NewMessage(id, text)); err != nil {
			b.logger.Warn("Failed to notify admin",
				zap.Int64("admin_id", id),
				zap.Error(err))
		}
	}
}
