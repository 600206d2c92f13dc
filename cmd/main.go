package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/avelesk/TenantBookingService/internal/api/handlers/cancel_booking"
	confirmBookingHandler "github.com/avelesk/TenantBookingService/internal/api/handlers/confirm_booking"
	createBookingHandler "github.com/avelesk/TenantBookingService/internal/api/handlers/create_booking"
	getAvailabilityHandler "github.com/avelesk/TenantBookingService/internal/api/handlers/get_availability"
	getBookingHandler "github.com/avelesk/TenantBookingService/internal/api/handlers/get_booking"
	getTenantPolicyHandler "github.com/avelesk/TenantBookingService/internal/api/handlers/get_tenant_policy"
	getTenantScheduleHandler "github.com/avelesk/TenantBookingService/internal/api/handlers/get_tenant_schedule"
	listDueRemindersHandler "github.com/avelesk/TenantBookingService/internal/api/handlers/list_due_reminders"
	listServicesHandler "github.com/avelesk/TenantBookingService/internal/api/handlers/list_services"
	markReminderSentHandler "github.com/avelesk/TenantBookingService/internal/api/handlers/mark_reminder_sent"
	updateTenantPolicyHandler "github.com/avelesk/TenantBookingService/internal/api/handlers/update_tenant_policy"
	updateTenantScheduleHandler "github.com/avelesk/TenantBookingService/internal/api/handlers/update_tenant_schedule"
	"github.com/avelesk/TenantBookingService/internal/api/middleware"
	"github.com/avelesk/TenantBookingService/internal/config"
	bookingRepo "github.com/avelesk/TenantBookingService/internal/infra/storage/booking"
	customerRepo "github.com/avelesk/TenantBookingService/internal/infra/storage/customer"
	scheduleRepo "github.com/avelesk/TenantBookingService/internal/infra/storage/schedule"
	serviceRepo "github.com/avelesk/TenantBookingService/internal/infra/storage/service"
	tenantRepo "github.com/avelesk/TenantBookingService/internal/infra/storage/tenant"
	bookingsService "github.com/avelesk/TenantBookingService/internal/service/bookings"
	catalogService "github.com/avelesk/TenantBookingService/internal/service/catalog"
	tenantcfgService "github.com/avelesk/TenantBookingService/internal/service/tenantcfg"
	createBookingUC "github.com/avelesk/TenantBookingService/internal/usecase/create_booking"
	getAvailabilityUC "github.com/avelesk/TenantBookingService/internal/usecase/get_availability"
	"github.com/avelesk/TenantBookingService/pkg/dbmetrics"
	"github.com/avelesk/TenantBookingService/pkg/logger"
	"github.com/avelesk/TenantBookingService/pkg/metrics"
	"github.com/avelesk/TenantBookingService/pkg/simpletxmanager"
	"github.com/avelesk/TenantBookingService/pkg/txmanager"
)

func main() {
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

	log.Info("Starting TenantBookingService...")
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
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		tenantRepository   *tenantRepo.Repository
		serviceRepository  *serviceRepo.Repository
		scheduleRepository *scheduleRepo.Repository
		customerRepository *customerRepo.Repository
		txMgr              TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		tenantRepository = tenantRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		customerRepository = customerRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		tenantRepository = tenantRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		customerRepository = customerRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, txMgr, log)
	tenantcfgSvc := tenantcfgService.NewService(tenantRepository, scheduleRepository, txMgr, log)
	catalogSvc := catalogService.NewService(tenantRepository, serviceRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		tenantRepository,
		serviceRepository,
		scheduleRepository,
		bookingRepository,
		customerRepository,
		txMgr,
		log,
	)

	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		tenantRepository,
		scheduleRepository,
		bookingRepository,
		log,
	)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	confirmBooking := confirmBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	listDueReminders := listDueRemindersHandler.NewHandler(bookingSvc, log)
	markReminderSent := markReminderSentHandler.NewHandler(bookingSvc, log)
	getTenantPolicy := getTenantPolicyHandler.NewHandler(tenantcfgSvc, log)
	updateTenantPolicy := updateTenantPolicyHandler.NewHandler(tenantcfgSvc, log)
	getTenantSchedule := getTenantScheduleHandler.NewHandler(tenantcfgSvc, log)
	updateTenantSchedule := updateTenantScheduleHandler.NewHandler(tenantcfgSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог услуг тенанта
	api.HandleFunc("/tenants/{slug}/services", listServices.Handle).Methods(http.MethodGet)

	// Доступные слоты тенанта на дату
	api.HandleFunc("/tenants/{slug}/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Создание бронирования
	api.HandleFunc("/tenants/{slug}/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Подтверждение бронирования после оплаты (идемпотентно)
	api.HandleFunc("/bookings/{bookingId}/confirm", confirmBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Напоминания о завтрашних бронированиях; маршрут регистрируется
	// раньше /bookings/{bookingId}, иначе "reminders" матчится как ID
	protected.HandleFunc("/bookings/reminders", listDueReminders.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/reminder-sent", markReminderSent.Handle).Methods(http.MethodPost)

	// Просмотр и отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPost)

	// Настройки тенанта
	protected.HandleFunc("/tenants/{tenantId}/policy", getTenantPolicy.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/tenants/{tenantId}/policy", updateTenantPolicy.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/tenants/{tenantId}/schedule", getTenantSchedule.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/tenants/{tenantId}/schedule", updateTenantSchedule.Handle).Methods(http.MethodPut)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}

// TxManager объединяет транзакционные интерфейсы сервисов и use case'ов
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}
