package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"

	"github.com/starglow/casino-services/internal/botsvc/client"
)

// Bot is the chat front end. It owns no state: every action is one
// request to the rewards service plus a rendered reply.
type Bot struct {
	api             *tgbotapi.BotAPI
	client          *client.Client
	adminID         int64
	adminUsername   string
	channelUsername string
}

func New(token string, c *client.Client, adminID int64, adminUsername, channelUsername string) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	return &Bot{
		api:             api,
		client:          c,
		adminID:         adminID,
		adminUsername:   adminUsername,
		channelUsername: channelUsername,
	}, nil
}

// Run processes updates until the context is canceled.
func (b *Bot) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30

	updates := b.api.GetUpdatesChan(u)
	log.Infof("bot started as @%s", b.api.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			log.Info("bot stopped")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.handleUpdate(ctx, update)
		}
	}
}

// Notify sends a plain message to a chat. Used by the event broker to
// relay service-side notifications.
func (b *Bot) Notify(chatID int64, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Errorf("Failed to send message to chat %d: %v", chatID, err)
	}
}

func (b *Bot) reply(chatID int64, text string) {
	b.Notify(chatID, text)
}

func (b *Bot) replyWithKeyboard(chatID int64, text string, keyboard tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = keyboard
	if _, err := b.api.Send(msg); err != nil {
		log.Errorf("Failed to send message to chat %d: %v", chatID, err)
	}
}

func (b *Bot) editWithKeyboard(chatID int64, messageID int, text string, keyboard tgbotapi.InlineKeyboardMarkup) {
	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, keyboard)
	if _, err := b.api.Send(edit); err != nil {
		log.Errorf("Failed to edit message in chat %d: %v", chatID, err)
	}
}

func (b *Bot) isAdmin(userID int64) bool {
	return userID == b.adminID
}

func mainMenuKeyboard(channelUsername string) tgbotapi.InlineKeyboardMarkup {
	rows := [][]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎡 Spin roulette (25⭐)", "menu_spin"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎁 Daily bonus", "menu_bonus"),
			tgbotapi.NewInlineKeyboardButtonData("💫 Balance", "menu_balance"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎒 Inventory", "menu_inventory"),
			tgbotapi.NewInlineKeyboardButtonData("📤 Withdraw", "menu_withdraw"),
		),
	}
	if channelUsername != "" {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("📢 Our channel", "https://t.me/"+channelUsername),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func adminMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📊 Statistics", "admin_stats"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📤 Withdrawal requests", "admin_withdrawals"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⭐ Add stars", "admin_add_stars"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Refresh", "admin_refresh"),
		),
	)
}

func adminBackKeyboard(refreshData string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Refresh", refreshData),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📋 Main menu", "admin_back"),
		),
	)
}
