package events

import (
	"encoding/json"

	"github.com/starglow/casino-services/internal/comm"

	"github.com/nats-io/nats.go"
	log "github.com/sirupsen/logrus"
)

// Publisher notifies the bot front end about service-side events. Event
// delivery is best effort and never fails the operation that emitted it.
type Publisher interface {
	WithdrawalCreated(ev comm.WithdrawalCreated)
	StarsCredited(ev comm.StarsCredited)
}

type NatsPublisher struct {
	conn *nats.Conn
}

func NewNatsPublisher(conn *nats.Conn) *NatsPublisher {
	return &NatsPublisher{conn: conn}
}

func (p *NatsPublisher) WithdrawalCreated(ev comm.WithdrawalCreated) {
	p.publish(comm.TopicWithdrawalCreated, ev)
}

func (p *NatsPublisher) StarsCredited(ev comm.StarsCredited) {
	p.publish(comm.TopicStarsCredited, ev)
}

func (p *NatsPublisher) publish(topic string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Errorf("Error marshaling event for %s: %s", topic, err)
		return
	}
	if err := p.conn.Publish(topic, data); err != nil {
		log.Errorf("Error publishing to topic %s: %s", topic, err)
	}
}

// NoopPublisher is used when no NATS server is configured.
type NoopPublisher struct{}

func NewNoopPublisher() *NoopPublisher { return &NoopPublisher{} }

func (*NoopPublisher) WithdrawalCreated(ev comm.WithdrawalCreated) {}

func (*NoopPublisher) StarsCredited(ev comm.StarsCredited) {}
