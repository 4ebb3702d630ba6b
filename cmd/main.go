package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/shenikar/snaktox/internal/config"
	v1 "github.com/shenikar/snaktox/internal/handler/http/v1"
	"github.com/shenikar/snaktox/internal/repository"
	"github.com/shenikar/snaktox/internal/service"
	"github.com/shenikar/snaktox/internal/sms"
	"github.com/shenikar/snaktox/internal/webhook"
	"github.com/shenikar/snaktox/pkg/logger"
	"github.com/shenikar/snaktox/pkg/postgres"
	redisclient "github.com/shenikar/snaktox/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/snaktox/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title SnaKTox API
// @version 1.0
// @description Snakebite emergency response: hospital alerting, snake identification and antivenom search.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Издатель и воркер вебхуков
	webhookPublisher := webhook.NewRedisPublisher(redisClient)
	webhookWorker := webhook.NewWorker(redisClient, log, cfg)
	webhookWorker.Start(ctx)

	// Инициализация репозиториев
	hospitalRepo := repository.NewHospitalRepository(dbpool)
	speciesRepo := repository.NewSpeciesRepository(dbpool)
	emergencyRepo := repository.NewEmergencyRepository(dbpool, redisClient, cfg.CacheTTL)
	history := repository.NewIdentificationHistory(redisClient)

	// SMS-канал получает неизменяемую конфигурацию при создании
	channel := sms.NewTwilioChannel(sms.ConfigFromApp(cfg), log)
	status := channel.Status()
	log.WithFields(logrus.Fields{"mode": status.Mode, "has_credentials": status.HasCredentials}).Info(sms.Instructions(status))

	// Инициализация сервисов
	locator := service.NewHospitalLocator(hospitalRepo, log, cfg.SearchMaxLimit)
	dispatcher := service.NewAlertDispatcher(channel, log, cfg.SMSTimeout)
	emergencyService := service.NewEmergencyService(
		emergencyRepo,
		speciesRepo,
		hospitalRepo,
		locator,
		dispatcher,
		webhookPublisher,
		log,
		service.DispatchConfig{RadiusMeters: cfg.DispatchRadiusMeters, Limit: cfg.DispatchLimit},
	)
	identificationService := service.NewIdentificationService(service.NewSpeciesMatcher(speciesRepo), history, log)

	// Инициализация хэндлеров
	handler := v1.NewHandler(emergencyService, identificationService, locator, log, cfg)

	// Настройка Gin роутера
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	// останавливаем воркер вебхуков вместе с сервером
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
