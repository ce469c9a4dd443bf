package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createBookingHandler "github.com/sportbook/SB-BookingService/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/sportbook/SB-BookingService/internal/api/handlers/get_available_slots"
	getCurrentBookingHandler "github.com/sportbook/SB-BookingService/internal/api/handlers/get_current_booking"
	getFacilityHandler "github.com/sportbook/SB-BookingService/internal/api/handlers/get_facility"
	listFacilitiesHandler "github.com/sportbook/SB-BookingService/internal/api/handlers/list_facilities"
	"github.com/sportbook/SB-BookingService/internal/api/middleware"
	"github.com/sportbook/SB-BookingService/internal/config"
	catalogRepo "github.com/sportbook/SB-BookingService/internal/infra/catalog"
	"github.com/sportbook/SB-BookingService/internal/infra/sessionstore"
	bookingsService "github.com/sportbook/SB-BookingService/internal/service/bookings"
	catalogService "github.com/sportbook/SB-BookingService/internal/service/catalog"
	createBookingUC "github.com/sportbook/SB-BookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/sportbook/SB-BookingService/internal/usecase/get_available_slots"
	"github.com/sportbook/SB-BookingService/pkg/logger"
	"github.com/sportbook/SB-BookingService/pkg/metrics"
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

	log.Info("Starting SB-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Загружаем каталог площадок и генерируем календарь доступности.
	// Календарь детерминирован относительно зерна из конфигурации
	gen := catalogRepo.NewAvailabilityGenerator(cfg.Catalog.AvailabilitySeed, cfg.Catalog.BookedRate)
	catalog, err := catalogRepo.NewRepository(cfg.Catalog.SeedFile, gen, time.Now())
	if err != nil {
		log.Fatal("Failed to load facility catalog: %v", err)
	}
	log.Info("Facility catalog loaded from %s (availability_seed=%d, booked_rate=%.2f)",
		cfg.Catalog.SeedFile, cfg.Catalog.AvailabilitySeed, cfg.Catalog.BookedRate)

	// Инициализируем хранилище сессий
	// Интерфейс хранилища: запись и чтение последнего бронирования сессии
	type BookingStore interface {
		createBookingUC.BookingStore
		bookingsService.BookingStore
	}
	var store BookingStore

	sessionTTL := time.Duration(cfg.Booking.SessionTTL) * time.Second
	stopJanitorCh := make(chan struct{})

	if cfg.Redis.Enabled {
		client, err := sessionstore.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatal("Failed to connect to Redis: %v", err)
		}
		defer client.Close()

		store = sessionstore.NewRedisStore(client, sessionTTL)
		log.Info("Session store: Redis at %s (db=%d, ttl=%s)", cfg.Redis.Addr, cfg.Redis.DB, sessionTTL)
	} else {
		store = sessionstore.NewMemoryStore(sessionTTL, stopJanitorCh)
		log.Info("Session store: in-memory (ttl=%s)", sessionTTL)
	}

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(catalog, log)
	bookingsSvc := bookingsService.NewService(store, log)

	// Инициализируем use cases
	processingDelay := time.Duration(cfg.Booking.ProcessingDelayMS) * time.Millisecond
	createBookingUseCase := createBookingUC.NewUseCase(catalog, store, processingDelay, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(catalog, log)

	// Инициализируем handlers
	listFacilities := listFacilitiesHandler.NewHandler(catalogSvc, log)
	getFacility := getFacilityHandler.NewHandler(catalogSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getCurrentBooking := getCurrentBookingHandler.NewHandler(bookingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без сессии)
	// ============================================================

	// Каталог площадок: поиск и фильтр по виду спорта
	api.HandleFunc("/facilities", listFacilities.Handle).Methods(http.MethodGet)

	// Карточка площадки с календарем доступности
	api.HandleFunc("/facilities/{facilityId}", getFacility.Handle).Methods(http.MethodGet)

	// Слоты площадки на дату
	api.HandleFunc("/facilities/{facilityId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// SESSION ROUTES (требуют X-Session-ID header)
	// ============================================================

	session := api.PathPrefix("").Subrouter()
	session.Use(middleware.Session)

	// Создание бронирования
	session.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Последнее бронирование сессии
	session.HandleFunc("/bookings/current", getCurrentBooking.Handle).Methods(http.MethodGet)

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

	// Останавливаем фоновую очистку in-memory хранилища
	close(stopJanitorCh)

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
