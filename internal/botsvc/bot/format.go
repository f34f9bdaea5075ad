package bot

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/starglow/casino-services/internal/botsvc/client"
)

// Fixed user-safe replies. Raw backend errors never reach the chat.
const (
	msgAccessDenied  = "❌ Access denied"
	msgGenericError  = "❌ Something went wrong. Please try again later."
	msgAddStarsUsage = "❌ Wrong command format\n\nUsage: /addstars <user_id> <amount>\nExample: /addstars 123456789 100"
	msgCompleteUsage = "❌ Wrong command format\n\nUsage: /complete <withdrawal_id>"
)

// StarPackage is one top-up offer shown in the welcome and help texts.
type StarPackage struct {
	Stars    int64
	PriceRUB decimal.Decimal
}

var starPackages = []StarPackage{
	{Stars: 50, PriceRUB: decimal.NewFromInt(85)},
	{Stars: 100, PriceRUB: decimal.NewFromInt(160)},
	{Stars: 250, PriceRUB: decimal.NewFromInt(400)},
}

func priceList() string {
	parts := make([]string, 0, len(starPackages))
	for _, p := range starPackages {
		parts = append(parts, fmt.Sprintf("%d⭐ = %s rub", p.Stars, p.PriceRUB.StringFixed(0)))
	}
	return strings.Join(parts, " | ")
}

func welcomeText(adminUsername string) string {
	var b strings.Builder
	b.WriteString("👻 Welcome to Star Casino!\n\n")
	b.WriteString("🎰 Game modes:\n")
	b.WriteString("• 🎡 Roulette (25 stars)\n")
	b.WriteString("• 🎁 Daily bonus\n\n")
	b.WriteString("💫 Star top-up:\n")
	b.WriteString(priceList() + "\n\n")
	b.WriteString("💌 Contact: " + adminUsername + "\n\n")
	b.WriteString("Use the menu below to play! 🎮")
	return b.String()
}

func helpText(adminUsername string) string {
	var b strings.Builder
	b.WriteString("🤖 Star Casino commands:\n\n")
	b.WriteString("/start - Open the main menu\n")
	b.WriteString("/help - Show this help\n")
	b.WriteString("/stats - My statistics\n\n")
	b.WriteString("👑 Admin commands:\n")
	b.WriteString("/admin - Control panel\n")
	b.WriteString("/addstars <user_id> <amount> - Add stars\n")
	b.WriteString("/complete <withdrawal_id> - Complete a withdrawal\n\n")
	b.WriteString("💫 Star top-up:\n")
	b.WriteString(priceList() + "\n")
	b.WriteString("Contact: " + adminUsername)
	return b.String()
}

func statsText(user *client.User) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📊 Statistics for @%s\n\n", user.Username))
	b.WriteString(fmt.Sprintf("🆔 ID: %d\n", user.UserID))
	b.WriteString(fmt.Sprintf("⭐ Balance: %d\n", user.Balance))
	if user.Stats != nil {
		b.WriteString(fmt.Sprintf("🎡 Spins: %d\n", user.Stats.SpinsCount))
		b.WriteString(fmt.Sprintf("🏆 Total won: %d⭐\n", user.Stats.TotalWon))
		if user.Stats.LastSpin != nil {
			b.WriteString("⏰ Last spin: " + clipTimestamp(*user.Stats.LastSpin))
		}
	}
	return b.String()
}

func inventoryText(items []client.InventoryItem) string {
	if len(items) == 0 {
		return "🎒 Your inventory is empty. Spin the roulette to win prizes!"
	}

	var b strings.Builder
	b.WriteString("🎒 Your inventory:\n\n")
	for _, it := range items {
		b.WriteString(fmt.Sprintf("%s %s (%d⭐)\n", itemEmoji(it.ItemName), it.ItemName, it.ItemValue))
	}
	return b.String()
}

func withdrawalsText(items []client.Withdrawal) string {
	if len(items) == 0 {
		return "📭 No pending withdrawal requests"
	}

	var b strings.Builder
	b.WriteString("📤 Withdrawal requests:\n\n")
	for _, w := range items {
		b.WriteString(fmt.Sprintf("ID: %d\n", w.ID))
		b.WriteString(fmt.Sprintf("User: @%s (ID: %d)\n", w.Username, w.UserID))
		b.WriteString(fmt.Sprintf("Item: %s (%d stars)\n", w.ItemName, w.ItemValue))
		b.WriteString("Time: " + clipTimestamp(w.CreatedAt) + "\n")
		b.WriteString("⎯⎯⎯⎯⎯⎯⎯⎯⎯⎯⎯⎯⎯\n")
	}
	return b.String()
}

func adminStatsText(stats *client.AdminStats, adminUsername string) string {
	return fmt.Sprintf("📊 Star Casino statistics\n\n👥 Users: %d\n📤 Total withdrawals: %d\n👑 Admin: %s",
		stats.TotalUsers, stats.TotalWithdrawals, adminUsername)
}

func itemEmoji(name string) string {
	switch name {
	case "Bear":
		return "🧸"
	case "Heart":
		return "💖"
	case "Rocket":
		return "🚀"
	case "Cake":
		return "🎂"
	case "Cup":
		return "🏆"
	case "Ring":
		return "💍"
	}
	return "🎁"
}

// clipTimestamp trims an RFC3339 value down to date and time.
func clipTimestamp(ts string) string {
	if len(ts) > 19 {
		return ts[:19]
	}
	return ts
}

const withdrawPrefix = "wd|"

func withdrawCallbackData(itemName string, itemValue int64) string {
	return fmt.Sprintf("%s%s|%d", withdrawPrefix, itemName, itemValue)
}

func parseWithdrawCallbackData(data string) (string, int64, bool) {
	if !strings.HasPrefix(data, withdrawPrefix) {
		return "", 0, false
	}
	parts := strings.Split(strings.TrimPrefix(data, withdrawPrefix), "|")
	if len(parts) != 2 {
		return "", 0, false
	}
	value, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || value <= 0 {
		return "", 0, false
	}
	return parts[0], value, true
}
