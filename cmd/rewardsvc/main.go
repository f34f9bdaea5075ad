package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/httprate"

	configs "github.com/starglow/casino-services/configs"
	"github.com/starglow/casino-services/internal/nats"
	"github.com/starglow/casino-services/internal/rewardsvc/config"
	"github.com/starglow/casino-services/internal/rewardsvc/db"
	"github.com/starglow/casino-services/internal/rewardsvc/events"
	"github.com/starglow/casino-services/internal/rewardsvc/handlers"
	"github.com/starglow/casino-services/internal/rewardsvc/service"
	"github.com/starglow/casino-services/internal/rewardsvc/store"
	log "github.com/sirupsen/logrus"
)

const SERVICE_NAME = "rewards"

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

	// pg connection
	dbpool, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer db.ClosePool()
	log.Printf("pg connection established successfully")

	if err := db.MigrateUp(dbpool); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Event publisher; the bot subscribes and relays notifications to chat.
	var pub events.Publisher = events.NewNoopPublisher()
	if cfg.NatsURL != "" {
		n, err := nats.Connect()
		if err != nil {
			log.Fatalf("Failed to connect to NATS server: %v", err)
		}
		defer n.Conn.Close()
		log.Printf("NATS connection established successfully %s", n.Url)
		pub = events.NewNatsPublisher(n.Conn)
	} else {
		log.Warn("NATS_URL not set, event notifications disabled")
	}

	userStore := store.NewUserStore(dbpool)
	gameStore := store.NewGameStore(dbpool)
	inventoryStore := store.NewInventoryStore(dbpool)
	withdrawalStore := store.NewWithdrawalStore(dbpool)
	transactionStore := store.NewTransactionStore(dbpool)

	userService := service.NewUserService(userStore, transactionStore)
	gameService := service.NewGameService(gameStore)
	withdrawalService := service.NewWithdrawalService(withdrawalStore, inventoryStore, pub)
	adminService := service.NewAdminService(userStore, withdrawalStore, pub)

	// Setup router
	r := chi.NewRouter()
	c := configs.CORS()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(configs.CustomLoggerMiddleware())
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(c.Handler)

	// to protect the service api from any over requests
	r.Use(httprate.LimitByIP(cfg.RateLimit, 1*time.Minute))

	// Init handlers and routes
	h := handlers.NewHandler(cfg.ServiceSecret, userService, gameService, withdrawalService, adminService)
	h.SetRoutes(r)

	// Create server with timeout settings
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()
	log.Infof("%s service running at port %s", SERVICE_NAME, server.Addr)

	// Wait for interrupt signal to gracefully shutdown the server
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("%s service shutdown Failed:%+v", SERVICE_NAME, err)
	}
	log.Infof("%s service gracefully stopped", SERVICE_NAME)
}
