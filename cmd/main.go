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

	createAgentBookingHandler "github.com/harbourline/yacht-booking-service/internal/api/handlers/create_agent_booking"
	createBookingHandler "github.com/harbourline/yacht-booking-service/internal/api/handlers/create_booking"
	getBookingHandler "github.com/harbourline/yacht-booking-service/internal/api/handlers/get_booking"
	getUserBookingsHandler "github.com/harbourline/yacht-booking-service/internal/api/handlers/get_user_bookings"
	searchYachtsHandler "github.com/harbourline/yacht-booking-service/internal/api/handlers/search_yachts"
	validatePromoHandler "github.com/harbourline/yacht-booking-service/internal/api/handlers/validate_promo"
	"github.com/harbourline/yacht-booking-service/internal/api/middleware"
	"github.com/harbourline/yacht-booking-service/internal/config"
	bookingRepo "github.com/harbourline/yacht-booking-service/internal/infra/storage/booking"
	yachtRepo "github.com/harbourline/yacht-booking-service/internal/infra/storage/yacht"
	promoServiceClient "github.com/harbourline/yacht-booking-service/internal/integrations/promoservice"
	razorpayClient "github.com/harbourline/yacht-booking-service/internal/integrations/razorpay"
	userServiceClient "github.com/harbourline/yacht-booking-service/internal/integrations/userservice"
	bookingsService "github.com/harbourline/yacht-booking-service/internal/service/bookings"
	pricingService "github.com/harbourline/yacht-booking-service/internal/service/pricing"
	createAgentBookingUC "github.com/harbourline/yacht-booking-service/internal/usecase/create_agent_booking"
	createBookingUC "github.com/harbourline/yacht-booking-service/internal/usecase/create_booking"
	searchYachtsUC "github.com/harbourline/yacht-booking-service/internal/usecase/search_yachts"
	validatePromoUC "github.com/harbourline/yacht-booking-service/internal/usecase/validate_promo"
	"github.com/harbourline/yacht-booking-service/pkg/dbmetrics"
	"github.com/harbourline/yacht-booking-service/pkg/logger"
	"github.com/harbourline/yacht-booking-service/pkg/metrics"
	"github.com/harbourline/yacht-booking-service/pkg/simpletxmanager"
	"github.com/harbourline/yacht-booking-service/pkg/txmanager"
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

	log.Info("Starting yacht-booking-service...")
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

	// Инициализируем интеграционных клиентов
	userClient := userServiceClient.NewClient(
		cfg.UserService.URL,
		time.Duration(cfg.UserService.Timeout)*time.Second,
		log,
	)
	promoClient := promoServiceClient.NewClient(
		cfg.PromoService.URL,
		time.Duration(cfg.PromoService.Timeout)*time.Second,
		log,
	)
	gateway := razorpayClient.NewClient(
		cfg.PaymentGateway.URL,
		cfg.PaymentGateway.KeyID,
		cfg.PaymentGateway.KeySecret,
		time.Duration(cfg.PaymentGateway.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (UserService=%s, PromoService=%s, PaymentGateway=%s)",
		cfg.UserService.URL, cfg.PromoService.URL, cfg.PaymentGateway.URL)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		yachtRepository   *yachtRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		yachtRepository = yachtRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		yachtRepository = yachtRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	calculator := pricingService.NewCalculator(pricingService.Config{
		TaxPercent:    cfg.Pricing.TaxPercent,
		PeakStartHour: cfg.Pricing.PeakStartHour,
		PeakEndHour:   cfg.Pricing.PeakEndHour,
		WeekendIsPeak: cfg.Pricing.WeekendIsPeak,
	})
	log.Info("Pricing calculator initialized (tax=%.1f%%, peak=%d-%d, weekend_is_peak=%t)",
		cfg.Pricing.TaxPercent, cfg.Pricing.PeakStartHour, cfg.Pricing.PeakEndHour, cfg.Pricing.WeekendIsPeak)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		yachtRepository,
		userClient,
		gateway,
		calculator,
		txMgr,
		log,
	)

	createAgentBookingUseCase := createAgentBookingUC.NewUseCase(
		bookingRepository,
		yachtRepository,
		userClient,
		gateway,
		calculator,
		txMgr,
		log,
	)

	searchYachtsUseCase := searchYachtsUC.NewUseCase(
		yachtRepository,
		bookingRepository,
		time.Duration(cfg.Availability.SearchBufferMinutes)*time.Minute,
		log,
	)

	validatePromoUseCase := validatePromoUC.NewUseCase(
		bookingRepository,
		promoClient,
		gateway,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	createAgentBooking := createAgentBookingHandler.NewHandler(createAgentBookingUseCase, log)
	searchYachts := searchYachtsHandler.NewHandler(searchYachtsUseCase, log)
	validatePromo := validatePromoHandler.NewHandler(validatePromoUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Подбор свободных яхт
	api.HandleFunc("/yachts/search", searchYachts.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования клиентом
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Создание бронирования агентом от имени клиента
	protected.HandleFunc("/agent-bookings", createAgentBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Применение промокода к бронированию
	protected.HandleFunc("/bookings/{bookingId}/promo", validatePromo.Handle).Methods(http.MethodPost)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

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
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
