package broker

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starglow/casino-services/internal/comm"
)

type fakeNotifier struct {
	chatIDs []int64
	texts   []string
}

func (f *fakeNotifier) Notify(chatID int64, text string) {
	f.chatIDs = append(f.chatIDs, chatID)
	f.texts = append(f.texts, text)
}

func TestWithdrawalCreatedNotifiesAdmin(t *testing.T) {
	notifier := &fakeNotifier{}
	b := NewBroker(nil, notifier, 100)

	payload, err := json.Marshal(comm.WithdrawalCreated{
		ID:        42,
		UserID:    7,
		Username:  "alice",
		ItemName:  "Bear",
		ItemValue: 15,
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)

	b.handleWithdrawalCreated(&nats.Msg{Data: payload})

	require.Len(t, notifier.chatIDs, 1)
	assert.Equal(t, int64(100), notifier.chatIDs[0])
	assert.Contains(t, notifier.texts[0], "#42")
	assert.Contains(t, notifier.texts[0], "@alice")
	assert.Contains(t, notifier.texts[0], "Bear (15⭐)")
	assert.Contains(t, notifier.texts[0], "/complete 42")
}

func TestStarsCreditedNotifiesUser(t *testing.T) {
	notifier := &fakeNotifier{}
	b := NewBroker(nil, notifier, 100)

	payload, err := json.Marshal(comm.StarsCredited{UserID: 7, Amount: 50, NewBalance: 150})
	require.NoError(t, err)

	b.handleStarsCredited(&nats.Msg{Data: payload})

	require.Len(t, notifier.chatIDs, 1)
	assert.Equal(t, int64(7), notifier.chatIDs[0])
	assert.Contains(t, notifier.texts[0], "50⭐")
	assert.Contains(t, notifier.texts[0], "150⭐")
}

func TestMalformedEventIsDropped(t *testing.T) {
	notifier := &fakeNotifier{}
	b := NewBroker(nil, notifier, 100)

	b.handleWithdrawalCreated(&nats.Msg{Data: []byte("not json")})
	b.handleStarsCredited(&nats.Msg{Data: []byte("not json")})

	assert.Empty(t, notifier.chatIDs)
}
