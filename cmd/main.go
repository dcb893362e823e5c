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

	"github.com/shenikar/ambulance_dispatch_system/internal/config"
	v1 "github.com/shenikar/ambulance_dispatch_system/internal/handler/http/v1"
	"github.com/shenikar/ambulance_dispatch_system/internal/repository/memory"
	"github.com/shenikar/ambulance_dispatch_system/internal/repository/postgres"
	"github.com/shenikar/ambulance_dispatch_system/internal/service"
	"github.com/shenikar/ambulance_dispatch_system/internal/simulator"
	"github.com/shenikar/ambulance_dispatch_system/internal/webhook"
	"github.com/shenikar/ambulance_dispatch_system/pkg/logger"
	pgclient "github.com/shenikar/ambulance_dispatch_system/pkg/postgres"
	redisclient "github.com/shenikar/ambulance_dispatch_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/ambulance_dispatch_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Ambulance Dispatch System API
// @version 1.0
// @description Emergency ambulance dispatch API: SOS handling, fleet tracking and incident lifecycle.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
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

	// Инициализация репозиториев. Без DATABASE_URL поднимаемся на
	// in-memory хранилище с демо-данными Джайпура.
	var (
		fleetRepo    service.FleetRepository
		incidentRepo service.IncidentRepository
		hospitalRepo service.HospitalRepository
		patientRepo  service.PatientRepository
	)

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	if cfg.DatabaseURL != "" {
		// Запуск миграций
		if err := runMigrations(cfg, log); err != nil {
			log.Fatalf("Failed to run database migrations: %v", err)
		}

		// Подключение к PostgreSQL
		dbpool, err := pgclient.NewPostgresDB(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		}
		defer dbpool.Close()
		log.Info("Successfully connected to PostgreSQL")

		fleetRepo = postgres.NewFleetRepository(dbpool)
		incidentRepo = postgres.NewIncidentRepository(dbpool, redisClient)
		hospitalRepo = postgres.NewHospitalRepository(dbpool)
		patientRepo = postgres.NewPatientRepository(dbpool)
	} else {
		log.Info("DATABASE_URL is not set, using in-memory storage with demo data")

		memFleet := memory.NewFleetRepository()
		memIncidents := memory.NewIncidentRepository()
		memHospitals := memory.NewHospitalRepository()
		memPatients := memory.NewPatientRepository()

		if err := memory.SeedDemoData(ctx, memFleet, memHospitals, memPatients); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}

		fleetRepo = memFleet
		incidentRepo = memIncidents
		hospitalRepo = memHospitals
		patientRepo = memPatients
	}

	// Инициализация издателя событий диспетчеризации
	dispatchPublisher := webhook.NewRedisDispatchPublisher(redisClient)

	// Инициализация и запуск воркера вебхуков
	webhookWorker := webhook.NewWebhookWorker(redisClient, log, cfg)
	webhookWorker.Start(ctx)

	// Инициализация сервисов
	dispatchService := service.NewDispatchService(fleetRepo, incidentRepo, log, cfg, dispatchPublisher)
	fleetService := service.NewFleetService(fleetRepo, log)
	hospitalService := service.NewHospitalService(hospitalRepo, log)
	patientService := service.NewPatientService(patientRepo, log, cfg)

	// Запуск симулятора движения автопарка
	if cfg.SimulatorEnabled {
		fleetSimulator := simulator.NewFleetSimulator(fleetRepo, log, cfg)
		fleetSimulator.Start(ctx)
	}

	// Инициализация хэндлеров
	handler := v1.NewHandler(dispatchService, fleetService, hospitalService, patientService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
