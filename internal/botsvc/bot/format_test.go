package bot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starglow/casino-services/internal/botsvc/client"
)

func TestWelcomeTextMentionsPricesAndAdmin(t *testing.T) {
	text := welcomeText("@boss")

	assert.Contains(t, text, "Star Casino")
	assert.Contains(t, text, "50⭐ = 85 rub")
	assert.Contains(t, text, "100⭐ = 160 rub")
	assert.Contains(t, text, "250⭐ = 400 rub")
	assert.Contains(t, text, "@boss")
}

func TestHelpTextListsCommands(t *testing.T) {
	text := helpText("@boss")

	for _, cmd := range []string{"/start", "/help", "/stats", "/admin", "/addstars", "/complete"} {
		assert.Contains(t, text, cmd)
	}
}

func TestStatsTextWithoutGameStats(t *testing.T) {
	user := &client.User{UserID: 7, Username: "alice", Balance: 120}

	text := statsText(user)

	assert.Contains(t, text, "@alice")
	assert.Contains(t, text, "ID: 7")
	assert.Contains(t, text, "Balance: 120")
	assert.NotContains(t, text, "Spins")
}

func TestStatsTextWithGameStats(t *testing.T) {
	lastSpin := "2026-08-28T10:15:00Z"
	user := &client.User{
		UserID:   7,
		Username: "alice",
		Balance:  120,
		Stats:    &client.GameStats{SpinsCount: 4, TotalWon: 130, LastSpin: &lastSpin},
	}

	text := statsText(user)

	assert.Contains(t, text, "Spins: 4")
	assert.Contains(t, text, "Total won: 130⭐")
	assert.Contains(t, text, "2026-08-28T10:15:00")
	assert.NotContains(t, text, "10:15:00Z")
}

func TestInventoryTextEmpty(t *testing.T) {
	assert.Contains(t, inventoryText(nil), "inventory is empty")
}

func TestInventoryTextListsItems(t *testing.T) {
	items := []client.InventoryItem{
		{ItemName: "Bear", ItemValue: 15},
		{ItemName: "Rocket", ItemValue: 50},
	}

	text := inventoryText(items)

	assert.Contains(t, text, "🧸 Bear (15⭐)")
	assert.Contains(t, text, "🚀 Rocket (50⭐)")
}

func TestWithdrawalsTextEmpty(t *testing.T) {
	assert.Contains(t, withdrawalsText(nil), "No pending withdrawal requests")
}

func TestWithdrawalsTextListsRequests(t *testing.T) {
	items := []client.Withdrawal{
		{ID: 42, UserID: 7, Username: "alice", ItemName: "Bear", ItemValue: 15, Status: "pending", CreatedAt: "2026-08-28T10:15:00Z"},
	}

	text := withdrawalsText(items)

	assert.Contains(t, text, "ID: 42")
	assert.Contains(t, text, "@alice (ID: 7)")
	assert.Contains(t, text, "Bear (15 stars)")
	assert.Contains(t, text, "2026-08-28T10:15:00")
}

func TestItemEmojiFallback(t *testing.T) {
	assert.Equal(t, "🧸", itemEmoji("Bear"))
	assert.Equal(t, "💍", itemEmoji("Ring"))
	assert.Equal(t, "🎁", itemEmoji("Mystery Box"))
}

func TestWithdrawCallbackDataRoundTrip(t *testing.T) {
	data := withdrawCallbackData("Bear", 15)
	require.True(t, strings.HasPrefix(data, withdrawPrefix))

	name, value, ok := parseWithdrawCallbackData(data)
	require.True(t, ok)
	assert.Equal(t, "Bear", name)
	assert.Equal(t, int64(15), value)
}

func TestParseWithdrawCallbackDataRejectsGarbage(t *testing.T) {
	for _, data := range []string{
		"menu_spin",
		"wd|",
		"wd|Bear",
		"wd|Bear|nope",
		"wd|Bear|15abc",
		"wd|Bear|0",
		"wd|Bear|-5",
		"wd|Bear|15|extra",
	} {
		_, _, ok := parseWithdrawCallbackData(data)
		assert.False(t, ok, "expected %q to be rejected", data)
	}
}
