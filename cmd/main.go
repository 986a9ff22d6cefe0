package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	checkAvailabilityHandler "github.com/m04kA/Barber-BookingService/internal/api/handlers/check_availability"
	completeAppointmentHandler "github.com/m04kA/Barber-BookingService/internal/api/handlers/complete_appointment"
	createAppointmentHandler "github.com/m04kA/Barber-BookingService/internal/api/handlers/create_appointment"
	deleteAppointmentHandler "github.com/m04kA/Barber-BookingService/internal/api/handlers/delete_appointment"
	getAppointmentHandler "github.com/m04kA/Barber-BookingService/internal/api/handlers/get_appointment"
	listAppointmentsHandler "github.com/m04kA/Barber-BookingService/internal/api/handlers/list_appointments"
	updateAppointmentHandler "github.com/m04kA/Barber-BookingService/internal/api/handlers/update_appointment"
	"github.com/m04kA/Barber-BookingService/internal/api/middleware"
	"github.com/m04kA/Barber-BookingService/internal/auth"
	"github.com/m04kA/Barber-BookingService/internal/config"
	appointmentRepo "github.com/m04kA/Barber-BookingService/internal/infra/storage/appointment"
	catalogServiceClient "github.com/m04kA/Barber-BookingService/internal/integrations/catalogservice"
	clientServiceClient "github.com/m04kA/Barber-BookingService/internal/integrations/clientservice"
	appointmentsService "github.com/m04kA/Barber-BookingService/internal/service/appointments"
	checkAvailabilityUC "github.com/m04kA/Barber-BookingService/internal/usecase/check_availability"
	createAppointmentUC "github.com/m04kA/Barber-BookingService/internal/usecase/create_appointment"
	updateAppointmentUC "github.com/m04kA/Barber-BookingService/internal/usecase/update_appointment"
	"github.com/m04kA/Barber-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Barber-BookingService/pkg/logger"
	"github.com/m04kA/Barber-BookingService/pkg/metrics"
	"github.com/m04kA/Barber-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/Barber-BookingService/pkg/txmanager"
)

func main() {
	// Подхватываем .env, если он есть (секреты для локальной разработки)
	_ = godotenv.Load()

	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting Barber-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime.Duration)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.Name)

	// Инициализируем интеграционных клиентов
	catalogClient := catalogServiceClient.NewClient(
		cfg.CatalogService.URL,
		cfg.CatalogService.Timeout.Duration,
		log,
	)
	clientClient := clientServiceClient.NewClient(
		cfg.ClientService.URL,
		cfg.ClientService.Timeout.Duration,
		log,
	)
	log.Info("Integration clients initialized (CatalogService=%s, ClientService=%s)",
		cfg.CatalogService.URL, cfg.ClientService.URL)

	// Инициализируем репозиторий и transaction manager (с метриками или без)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	var (
		repository *appointmentRepo.Repository
		txMgr      TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		repository = appointmentRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		repository = appointmentRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервис записей
	appointmentSvc := appointmentsService.NewService(
		repository,
		catalogClient,
		clientClient,
		log,
	)

	// Инициализируем use cases
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(repository, log)

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		repository,
		catalogClient,
		clientClient,
		txMgr,
		log,
	)

	updateAppointmentUseCase := updateAppointmentUC.NewUseCase(
		repository,
		catalogClient,
		txMgr,
		log,
	)

	// Инициализируем handlers
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	updateAppointment := updateAppointmentHandler.NewHandler(updateAppointmentUseCase, log)
	completeAppointment := completeAppointmentHandler.NewHandler(appointmentSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentSvc, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentSvc, log)

	// Менеджер сессий для защищенных маршрутов
	sessionManager := auth.NewManager(cfg.Auth.JWTSecret)

	// Настраиваем роутер
	r := mux.NewRouter()

	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Проверка доступности слота — публичная, её дергает форма записи
	api.HandleFunc("/appointments/check-availability",
		checkAvailability.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют токен сессии)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(sessionManager, log))

	// Создание записи
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Список записей со сводкой по выручке
	protected.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)

	// Получение записи по ID
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Редактирование записи
	protected.HandleFunc("/appointments/{appointmentId}", updateAppointment.Handle).Methods(http.MethodPut)

	// Отметка записи выполненной
	protected.HandleFunc("/appointments/{appointmentId}/complete", completeAppointment.Handle).Methods(http.MethodPatch)

	// Удаление записи (с подтверждением)
	protected.HandleFunc("/appointments/{appointmentId}", deleteAppointment.Handle).Methods(http.MethodDelete)

	// CORS для фронтенда записи
	corsHandler := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins([]string{"*"}),
		gorillaHandlers.AllowedMethods([]string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", "Authorization", "X-Request-Id"}),
	)(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
		ReadTimeout:  cfg.Server.ReadTimeout.Duration,
		WriteTimeout: cfg.Server.WriteTimeout.Duration,
		IdleTimeout:  cfg.Server.IdleTimeout.Duration,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout.Duration,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
