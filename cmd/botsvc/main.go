package main

import (
	"context"
	"os"
	"os/signal"

	configs "github.com/starglow/casino-services/configs"
	"github.com/starglow/casino-services/internal/botsvc/bot"
	"github.com/starglow/casino-services/internal/botsvc/broker"
	"github.com/starglow/casino-services/internal/botsvc/client"
	"github.com/starglow/casino-services/internal/botsvc/config"
	"github.com/starglow/casino-services/internal/nats"
	log "github.com/sirupsen/logrus"
)

const SERVICE_NAME = "bot"

var instanceId string

func init() {
	instanceId = configs.CreateUniqueInstance(SERVICE_NAME)
	configs.Logging(SERVICE_NAME + "_service_" + instanceId)
	configs.LoadEnv(SERVICE_NAME)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	apiClient := client.New(cfg.APIBaseURL, cfg.ServiceSecret)

	b, err := bot.New(cfg.BotToken, apiClient, cfg.AdminID, cfg.AdminUsername, cfg.ChannelUsername)
	if err != nil {
		log.Fatalf("Failed to start bot: %v", err)
	}

	// Relay rewards service events to chat when NATS is available.
	if cfg.NatsURL != "" {
		n, err := nats.Connect()
		if err != nil {
			log.Fatalf("Failed to connect to NATS server: %v", err)
		}
		defer n.Conn.Close()
		log.Printf("NATS connection established successfully %s", n.Url)

		brk := broker.NewBroker(n.Conn, b, cfg.AdminID)
		if err := brk.Subscribe(); err != nil {
			log.Fatalf("Failed to subscribe: %v", err)
		}
	} else {
		log.Warn("NATS_URL not set, event notifications disabled")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt)
		<-stop
		cancel()
	}()

	log.Infof("%s service running", SERVICE_NAME)
	b.Run(ctx)
	log.Infof("%s service gracefully stopped", SERVICE_NAME)
}
