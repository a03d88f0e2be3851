package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/ayoqsh/loyalty-service/internal/config"
	deliveryhttp "github.com/ayoqsh/loyalty-service/internal/delivery/http"
	"github.com/ayoqsh/loyalty-service/internal/delivery/http/handlers"
	"github.com/ayoqsh/loyalty-service/internal/infrastructure/fetcher"
	"github.com/ayoqsh/loyalty-service/internal/infrastructure/kafka"
	"github.com/ayoqsh/loyalty-service/internal/infrastructure/logger"
	"github.com/ayoqsh/loyalty-service/internal/infrastructure/metrics"
	"github.com/ayoqsh/loyalty-service/internal/infrastructure/migrate"
	"github.com/ayoqsh/loyalty-service/internal/infrastructure/notifier"
	"github.com/ayoqsh/loyalty-service/internal/infrastructure/postgres"
	"github.com/ayoqsh/loyalty-service/internal/infrastructure/postgres/repository"
	"github.com/ayoqsh/loyalty-service/internal/infrastructure/redisguard"
	"github.com/ayoqsh/loyalty-service/internal/usecase"
	"github.com/ayoqsh/loyalty-service/internal/usecase/pipeline"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()

	zapLogger := logger.New(cfg.LogConfig.LogLevel, cfg.LogConfig.LogFormat)
	defer zapLogger.Sync()

	// Init database
	db := postgres.MustInitDB(cfg)

	if cfg.LoyaltyDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.LoyaltyDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	location, err := time.LoadLocation(cfg.Station.Timezone)
	if err != nil {
		log.Fatalf("failed to load station timezone %q: %v", cfg.Station.Timezone, err)
	}

	// Init redis submission guard
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisConfig.Addr,
		Password: cfg.RedisConfig.Password,
		DB:       cfg.RedisConfig.DB,
	})
	guard := redisguard.NewDefaultSubmissionGuard(redisClient, cfg.RedisConfig.GuardTTL)

	// Init kafka publisher
	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	pub := kafka.NewDefaultKafkaPublisher(brokers)

	// Init repos
	ledgerRepo := repository.NewDefaultLedgerRepository(db)
	customerRepo := repository.NewDefaultCustomerRepository(db)
	ruleRepo := repository.NewDefaultRuleRepository(db)
	settingsRepo := repository.NewDefaultSettingsRepository(db)

	// Init fiscal authority fetcher
	receiptFetcher := fetcher.NewDefaultReceiptFetcher(cfg.FiscalAPI, location)

	// Init bot callback notifier
	botNotifier := notifier.NewHTTPBotNotifier(cfg.BotCallback.URL, zapLogger)

	pipelineMetrics := metrics.NewPipelineMetrics()

	// Init pipeline usecase
	pipelineUsecase := pipeline.NewDefaultPipelineUsecase(
		receiptFetcher,
		ledgerRepo,
		customerRepo,
		ruleRepo,
		settingsRepo,
		guard,
		pub,
		botNotifier,
		pipelineMetrics,
		zapLogger,
		pipeline.Options{
			Location:     location,
			Currency:     cfg.Station.Currency,
			FetchRetries: cfg.FiscalAPI.FetchRetries,
			FetchBackoff: cfg.FiscalAPI.FetchBackoff,
			EventTopic:   cfg.KafkaService.Topic,
		},
	)

	// Init admin usecases
	ruleUsecase := usecase.NewDefaultRuleUsecase(ruleRepo)
	settingsUsecase := usecase.NewDefaultSettingsUsecase(settingsRepo)
	customerUsecase := usecase.NewDefaultCustomerUsecase(customerRepo, ledgerRepo)

	router := deliveryhttp.NewRouter(deliveryhttp.RouterDeps{
		Submission: handlers.NewSubmissionHandler(pipelineUsecase),
		Rules:      handlers.NewRuleHandler(ruleUsecase),
		Settings:   handlers.NewSettingsHandler(settingsUsecase),
		Customers:  handlers.NewCustomerHandler(customerUsecase),
	})

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	zapLogger.Info("loyalty service listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
