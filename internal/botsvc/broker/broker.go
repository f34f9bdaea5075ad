package broker

import (
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
	log "github.com/sirupsen/logrus"

	"github.com/starglow/casino-services/internal/comm"
)

// Notifier delivers a plain text message to a Telegram chat.
type Notifier interface {
	Notify(chatID int64, text string)
}

// Broker listens for rewards service events and turns them into
// Telegram notifications.
type Broker struct {
	Conn     *nats.Conn
	Notifier Notifier
	AdminID  int64
}

func NewBroker(nc *nats.Conn, notifier Notifier, adminID int64) *Broker {
	return &Broker{
		Conn:     nc,
		Notifier: notifier,
		AdminID:  adminID,
	}
}

func (b *Broker) Subscribe() error {
	if _, err := b.Conn.Subscribe(comm.TopicWithdrawalCreated, b.handleWithdrawalCreated); err != nil {
		return err
	}
	if _, err := b.Conn.Subscribe(comm.TopicStarsCredited, b.handleStarsCredited); err != nil {
		return err
	}
	log.Infof("Subscribed to %s, %s", comm.TopicWithdrawalCreated, comm.TopicStarsCredited)
	return nil
}

func (b *Broker) handleWithdrawalCreated(msgNats *nats.Msg) {
	event := &comm.WithdrawalCreated{}
	if err := json.Unmarshal(msgNats.Data, event); err != nil {
		log.Errorf("Error nats message %s", err)
		return
	}

	text := fmt.Sprintf("📤 New withdrawal request #%d\n\n👤 User: @%s (%d)\n🎁 Item: %s (%d⭐)\n\nComplete with /complete %d",
		event.ID, event.Username, event.UserID, event.ItemName, event.ItemValue, event.ID)
	b.Notifier.Notify(b.AdminID, text)
}

func (b *Broker) handleStarsCredited(msgNats *nats.Msg) {
	event := &comm.StarsCredited{}
	if err := json.Unmarshal(msgNats.Data, event); err != nil {
		log.Errorf("Error nats message %s", err)
		return
	}

	text := fmt.Sprintf("🎉 You received %d⭐!\n💫 New balance: %d⭐", event.Amount, event.NewBalance)
	b.Notifier.Notify(event.UserID, text)
}
