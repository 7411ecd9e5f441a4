package bot

import (
	"context"
	"fmt"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"pricing-bot/internal/config"
	"pricing-bot/internal/pricing"
	"pricing-bot/internal/render"
	"pricing-bot/internal/session"
	"pricing-bot/internal/theme"
)

// API is the part of the Telegram client the bot uses.
type API interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

type Bot struct {
	api      API
	logger   *zap.Logger
	cfg      *config.Config
	catalog  *pricing.Catalog
	sessions session.Store
	prefs    *theme.Preference
	layout   render.Layout

	mu       sync.Mutex
	handlers map[string]func(context.Context, *tgbotapi.Message)

	// chats with a live pricing message in this process
	active       map[int64]struct{}
	themeChanges chan theme.Theme
	unsubscribe  func()
}

func New(
	token string,
	cfg *config.Config,
	catalog *pricing.Catalog,
	sessions session.Store,
	prefs *theme.Preference,
	logger *zap.Logger,
) (*Bot, error) {
	botAPI, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot API: %w", err)
	}

	botAPI.Debug = cfg.BotDebug

	logger.Info("Bot authorized",
		zap.String("username", botAPI.Self.UserName),
		zap.Int64("id", botAPI.Self.ID))

	return newBot(botAPI, cfg, catalog, sessions, prefs, logger)
}

func newBot(
	api API,
	cfg *config.Config,
	catalog *pricing.Catalog,
	sessions session.Store,
	prefs *theme.Preference,
	logger *zap.Logger,
) (*Bot, error) {
	layout, err := render.ParseLayout(cfg.DefaultLayout)
	if err != nil {
		return nil, fmt.Errorf("bot.New: %w", err)
	}

	b := &Bot{
		api:          api,
		logger:       logger,
		cfg:          cfg,
		catalog:      catalog,
		sessions:     sessions,
		prefs:        prefs,
		layout:       layout,
		active:       make(map[int64]struct{}),
		themeChanges: make(chan theme.Theme, 1),
	}

	// Set is called from a handler that already holds b.mu, so the
	// callback only queues the change and Start redraws.
	b.unsubscribe = prefs.Subscribe(func(t theme.Theme) {
		select {
		case b.themeChanges <- t:
		default:
		}
	})

	b.registerHandlers()
	return b, nil
}

func (b *Bot) registerHandlers() {
	b.handlers = map[string]func(context.Context, *tgbotapi.Message){
		"start":  b.handleStart,
		"help":   b.handleHelp,
		"export": b.handleExport,
		"layout": b.handleLayout,
		"theme":  b.handleTheme,
	}
}

func (b *Bot) Start(ctx context.Context) error {
	b.logger.Info("Starting bot")
	defer b.unsubscribe()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)
	defer b.api.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			b.logger.Info("Shutting down bot")
			return nil

		case t := <-b.themeChanges:
			b.mu.Lock()
			b.refreshActive(ctx, t)
			b.mu.Unlock()

		case update, ok := <-updates:
			if !ok {
				b.logger.Info("Update channel closed")
				return nil
			}
			b.mu.Lock()
			b.handleUpdate(ctx, update)
			b.mu.Unlock()
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.Message != nil {
		b.processMessage(ctx, update.Message)
	} else if update.CallbackQuery != nil {
		b.processCallback(ctx, update.CallbackQuery)
	}
}

func (b *Bot) processMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	b.logger.Debug("Processing message",
		zap.Int64("chat_id", chatID),
		zap.String("text", msg.Text))

	if !msg.IsCommand() {
		b.sendError(chatID, "Please use the buttons, or /start to begin.")
		return
	}

	if handler, exists := b.handlers[msg.Command()]; exists {
		handler(ctx, msg)
	} else {
		b.sendError(chatID, "Unknown command. Use /help to see what I can do.")
	}
}

func (b *Bot) sendMessage(msg tgbotapi.MessageConfig) (tgbotapi.Message, error) {
	sent, err := b.api.Send(msg)
	if err != nil {
		b.logger.Error("Failed to send message",
			zap.Int64("chat_id", msg.ChatID),
			zap.String("text", msg.Text),
			zap.Error(err))
	}
	return sent, err
}

func (b *Bot) sendError(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, "❌ "+text)
	_, _ = b.sendMessage(msg)
}

func (b *Bot) answerCallback(id, text string, alert bool) {
	cb := tgbotapi.NewCallback(id, text)
	cb.ShowAlert = alert
	if _, err := b.api.Request(cb); err != nil {
		b.logger.Warn("Failed to answer callback",
			zap.String("callback_id", id),
			zap.Error(err))
	}
}
