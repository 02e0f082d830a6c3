package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/giftora/settlement-service/internal/app/background"
	"github.com/giftora/settlement-service/internal/config"
	"github.com/giftora/settlement-service/internal/delivery/http/handlers"
	publisher "github.com/giftora/settlement-service/internal/infrastructure/kafka"
	"github.com/giftora/settlement-service/internal/infrastructure/metrics"
	"github.com/giftora/settlement-service/internal/infrastructure/migrate"
	"github.com/giftora/settlement-service/internal/infrastructure/postgres"
	"github.com/giftora/settlement-service/internal/infrastructure/postgres/repository"
	"github.com/giftora/settlement-service/internal/infrastructure/stripe"
	"github.com/giftora/settlement-service/internal/usecase"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	// Init database
	db := postgres.MustInitDB(cfg)

	if cfg.SettlementDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.SettlementDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	pub := publisher.NewDefaultKafkaPublisher(brokers)

	// Init repos
	vendorOrderRepo := repository.NewDefaultVendorOrderRepository(db)
	orderRepo := repository.NewDefaultOrderRepository(db)
	orderItemRepo := repository.NewDefaultOrderItemRepository(db)
	storeRepo := repository.NewDefaultStoreRepository(db)
	payoutRecordRepo := repository.NewDefaultPayoutRecordRepository(db)
	settingsRepo := repository.NewDefaultSettingsRepository(db)

	settlementMetrics := metrics.NewSettlementMetrics()

	transferClient := stripe.NewClient(
		cfg.StripeService.APIKey,
		time.Duration(cfg.StripeService.TimeoutSeconds)*time.Second,
	)

	// Init usecases
	attributionUsecase := usecase.NewDefaultAttributionUsecase(orderItemRepo)
	settlementUsecase := usecase.NewDefaultSettlementUsecase(
		vendorOrderRepo,
		orderRepo,
		storeRepo,
		settingsRepo,
		attributionUsecase,
		transferClient,
		pub,
		settlementMetrics,
		cfg.KafkaService.Topic,
		time.Duration(cfg.Settlement.CooldownDays)*24*time.Hour,
		cfg.Settlement.MinTransferCents,
		cfg.Settlement.Currency,
	)
	payoutUsecase := usecase.NewDefaultPayoutUsecase(
		vendorOrderRepo,
		payoutRecordRepo,
		orderRepo,
		storeRepo,
		settingsRepo,
		attributionUsecase,
		cfg.Settlement.MaxPageSize,
	)
	settingsUsecase := usecase.NewDefaultSettingsUsecase(settingsRepo)

	// Init handlers
	settlementHandler := handlers.NewSettlementHandler(settlementUsecase)
	payoutHandler := handlers.NewPayoutHandler(payoutUsecase)
	settingsHandler := handlers.NewSettingsHandler(settingsUsecase)

	router := handlers.NewRouter(settlementHandler, payoutHandler, settingsHandler)

	// Periodic settlement pass
	backgroundTasks := background.NewBackgroundTasks(
		settlementUsecase,
		time.Duration(cfg.Settlement.PassIntervalMinutes)*time.Minute,
	)
	backgroundTasks.StartAll(context.Background())

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	log.Printf("settlement service started on %s\n", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}
