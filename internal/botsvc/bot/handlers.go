package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"

	"github.com/starglow/casino-services/internal/botsvc/client"
)

const requestTimeout = 10 * time.Second

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("panic while handling update: %v", r)
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	switch {
	case update.Message != nil && update.Message.IsCommand():
		b.handleCommand(ctx, update.Message)
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	}
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		b.handleStart(ctx, msg)
	case "help":
		b.reply(msg.Chat.ID, helpText(b.adminUsername))
	case "stats":
		b.handleStats(ctx, msg)
	case "admin":
		b.handleAdmin(msg)
	case "addstars":
		b.handleAddStars(ctx, msg)
	case "complete":
		b.handleComplete(ctx, msg)
	}
}

// handleStart registers the user best effort: when the backend is down
// the welcome menu must still render.
func (b *Bot) handleStart(ctx context.Context, msg *tgbotapi.Message) {
	userID := msg.From.ID
	username := msg.From.UserName
	if username == "" {
		username = "Unknown"
	}

	if err := b.client.Register(ctx, userID, username); err != nil {
		log.Warnf("Failed to register user %d, continuing: %v", userID, err)
	} else {
		log.Infof("User %d (@%s) registered", userID, username)
	}

	b.replyWithKeyboard(msg.Chat.ID, welcomeText(b.adminUsername), mainMenuKeyboard(b.channelUsername))
}

func (b *Bot) handleStats(ctx context.Context, msg *tgbotapi.Message) {
	targetID := msg.From.ID

	// Admin may pass another user id.
	args := strings.Fields(msg.CommandArguments())
	if len(args) == 1 && b.isAdmin(msg.From.ID) {
		if id, err := strconv.ParseInt(args[0], 10, 64); err == nil {
			targetID = id
		}
	}

	user, err := b.client.GetUser(ctx, targetID)
	if err != nil {
		b.replyServiceError(msg.Chat.ID, err)
		return
	}

	b.reply(msg.Chat.ID, statsText(user))
}

func (b *Bot) handleAdmin(msg *tgbotapi.Message) {
	if !b.isAdmin(msg.From.ID) {
		b.reply(msg.Chat.ID, msgAccessDenied)
		return
	}

	b.replyWithKeyboard(msg.Chat.ID, "👑 Admin panel", adminMenuKeyboard())
}

func (b *Bot) handleAddStars(ctx context.Context, msg *tgbotapi.Message) {
	if !b.isAdmin(msg.From.ID) {
		b.reply(msg.Chat.ID, msgAccessDenied)
		return
	}

	args := strings.Fields(msg.CommandArguments())
	if len(args) != 2 {
		b.reply(msg.Chat.ID, msgAddStarsUsage)
		return
	}

	targetID, err1 := strconv.ParseInt(args[0], 10, 64)
	amount, err2 := strconv.ParseInt(args[1], 10, 64)
	if err1 != nil || err2 != nil {
		b.reply(msg.Chat.ID, msgAddStarsUsage)
		return
	}

	result, err := b.client.AdminAddStars(ctx, targetID, amount)
	if err != nil {
		b.replyServiceError(msg.Chat.ID, err)
		return
	}

	b.reply(msg.Chat.ID, fmt.Sprintf("✅ Added %d⭐ to user %d (new balance: %d⭐)",
		amount, targetID, result.NewBalance))
}

func (b *Bot) handleComplete(ctx context.Context, msg *tgbotapi.Message) {
	if !b.isAdmin(msg.From.ID) {
		b.reply(msg.Chat.ID, msgAccessDenied)
		return
	}

	args := strings.Fields(msg.CommandArguments())
	if len(args) != 1 {
		b.reply(msg.Chat.ID, msgCompleteUsage)
		return
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		b.reply(msg.Chat.ID, msgCompleteUsage)
		return
	}

	if err := b.client.AdminCompleteWithdrawal(ctx, id); err != nil {
		b.replyServiceError(msg.Chat.ID, err)
		return
	}

	b.reply(msg.Chat.ID, fmt.Sprintf("✅ Withdrawal %d completed", id))
}

func (b *Bot) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	if _, err := b.api.Request(tgbotapi.NewCallback(cq.ID, "")); err != nil {
		log.Errorf("Failed to answer callback query: %v", err)
	}

	data := cq.Data
	chatID := cq.Message.Chat.ID

	if strings.HasPrefix(data, "admin_") {
		if !b.isAdmin(cq.From.ID) {
			b.reply(chatID, msgAccessDenied)
			return
		}
		b.handleAdminCallback(ctx, cq)
		return
	}

	switch {
	case data == "menu_spin":
		b.handleMenuSpin(ctx, cq)
	case data == "menu_bonus":
		b.handleMenuBonus(ctx, cq)
	case data == "menu_balance":
		b.handleMenuBalance(ctx, cq)
	case data == "menu_inventory":
		b.handleMenuInventory(ctx, cq)
	case data == "menu_withdraw":
		b.handleMenuWithdraw(ctx, cq)
	case strings.HasPrefix(data, withdrawPrefix):
		b.handleWithdrawItem(ctx, cq)
	}
}

func (b *Bot) handleAdminCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	chatID := cq.Message.Chat.ID
	messageID := cq.Message.MessageID

	switch cq.Data {
	case "admin_stats":
		stats, err := b.client.AdminStats(ctx)
		if err != nil {
			b.replyServiceError(chatID, err)
			return
		}
		b.editWithKeyboard(chatID, messageID, adminStatsText(stats, b.adminUsername), adminBackKeyboard("admin_stats"))

	case "admin_withdrawals":
		withdrawals, err := b.client.AdminWithdrawals(ctx)
		if err != nil {
			b.replyServiceError(chatID, err)
			return
		}
		b.editWithKeyboard(chatID, messageID, withdrawalsText(withdrawals), adminBackKeyboard("admin_withdrawals"))

	case "admin_add_stars":
		text := "⭐ Adding stars\n\nUse the command:\n/addstars <user_id> <amount>\n\nExample:\n/addstars 123456789 100"
		b.editWithKeyboard(chatID, messageID, text, adminBackKeyboard("admin_add_stars"))

	case "admin_back", "admin_refresh":
		b.editWithKeyboard(chatID, messageID, "👑 Admin panel", adminMenuKeyboard())
	}
}

func (b *Bot) handleMenuSpin(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	result, err := b.client.SpinRoulette(ctx, cq.From.ID)
	if err != nil {
		b.replyServiceError(cq.Message.Chat.ID, err)
		return
	}

	text := fmt.Sprintf("%s %s\n💫 Balance: %d⭐", result.WonItem.Emoji, result.Message, result.NewBalance)
	b.reply(cq.Message.Chat.ID, text)
}

func (b *Bot) handleMenuBonus(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	result, err := b.client.DailyBonus(ctx, cq.From.ID)
	if err != nil {
		b.replyServiceError(cq.Message.Chat.ID, err)
		return
	}

	b.reply(cq.Message.Chat.ID, fmt.Sprintf("%s\n💫 Balance: %d⭐", result.Message, result.NewBalance))
}

func (b *Bot) handleMenuBalance(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	user, err := b.client.GetUser(ctx, cq.From.ID)
	if err != nil {
		b.replyServiceError(cq.Message.Chat.ID, err)
		return
	}

	b.reply(cq.Message.Chat.ID, fmt.Sprintf("💫 Your balance: %d⭐", user.Balance))
}

func (b *Bot) handleMenuInventory(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	items, err := b.client.Inventory(ctx, cq.From.ID)
	if err != nil {
		b.replyServiceError(cq.Message.Chat.ID, err)
		return
	}

	b.reply(cq.Message.Chat.ID, inventoryText(items))
}

func (b *Bot) handleMenuWithdraw(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	chatID := cq.Message.Chat.ID

	items, err := b.client.Inventory(ctx, cq.From.ID)
	if err != nil {
		b.replyServiceError(chatID, err)
		return
	}
	if len(items) == 0 {
		b.reply(chatID, "🎒 Nothing to withdraw, your inventory is empty")
		return
	}

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(items))
	for _, it := range items {
		label := fmt.Sprintf("%s %s (%d⭐)", itemEmoji(it.ItemName), it.ItemName, it.ItemValue)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, withdrawCallbackData(it.ItemName, it.ItemValue)),
		))
	}

	b.replyWithKeyboard(chatID, "📤 Choose an item to withdraw:", tgbotapi.NewInlineKeyboardMarkup(rows...))
}

func (b *Bot) handleWithdrawItem(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	chatID := cq.Message.Chat.ID

	itemName, itemValue, ok := parseWithdrawCallbackData(cq.Data)
	if !ok {
		b.reply(chatID, msgGenericError)
		return
	}

	username := cq.From.UserName
	if username == "" {
		username = "Unknown"
	}

	result, err := b.client.Withdraw(ctx, cq.From.ID, username, itemName, itemValue)
	if err != nil {
		b.replyServiceError(chatID, err)
		return
	}

	b.reply(chatID, fmt.Sprintf("✅ %s (request #%d)", result.Message, result.ID))
}

// replyServiceError relays validation and not-found messages, which are
// user safe, and hides everything else behind a generic reply.
func (b *Bot) replyServiceError(chatID int64, err error) {
	log.Errorf("rewards service call failed: %v", err)
	if msg, ok := client.IsUserFacing(err); ok {
		b.reply(chatID, "❌ "+msg)
		return
	}
	b.reply(chatID, msgGenericError)
}
