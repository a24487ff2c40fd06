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
	_ "time/tzdata"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	addCartItemHandler "github.com/m04kA/CleanHome-BookingService/internal/api/handlers/add_cart_item"
	clearCartHandler "github.com/m04kA/CleanHome-BookingService/internal/api/handlers/clear_cart"
	createCartHandler "github.com/m04kA/CleanHome-BookingService/internal/api/handlers/create_cart"
	deleteReservationHandler "github.com/m04kA/CleanHome-BookingService/internal/api/handlers/delete_reservation"
	discardScheduleHandler "github.com/m04kA/CleanHome-BookingService/internal/api/handlers/discard_schedule"
	geocodeHandler "github.com/m04kA/CleanHome-BookingService/internal/api/handlers/geocode"
	getAvailabilityHandler "github.com/m04kA/CleanHome-BookingService/internal/api/handlers/get_availability"
	getAvailableDatesHandler "github.com/m04kA/CleanHome-BookingService/internal/api/handlers/get_available_dates"
	getCartHandler "github.com/m04kA/CleanHome-BookingService/internal/api/handlers/get_cart"
	getReservationHandler "github.com/m04kA/CleanHome-BookingService/internal/api/handlers/get_reservation"
	getScheduleHandler "github.com/m04kA/CleanHome-BookingService/internal/api/handlers/get_schedule"
	getWizardHandler "github.com/m04kA/CleanHome-BookingService/internal/api/handlers/get_wizard"
	listReservationsHandler "github.com/m04kA/CleanHome-BookingService/internal/api/handlers/list_reservations"
	listServicesHandler "github.com/m04kA/CleanHome-BookingService/internal/api/handlers/list_services"
	removeCartItemHandler "github.com/m04kA/CleanHome-BookingService/internal/api/handlers/remove_cart_item"
	saveScheduleHandler "github.com/m04kA/CleanHome-BookingService/internal/api/handlers/save_schedule"
	setCartAddressHandler "github.com/m04kA/CleanHome-BookingService/internal/api/handlers/set_cart_address"
	setCartContactHandler "github.com/m04kA/CleanHome-BookingService/internal/api/handlers/set_cart_contact"
	toggleScheduleHandler "github.com/m04kA/CleanHome-BookingService/internal/api/handlers/toggle_schedule"
	updateReservationHandler "github.com/m04kA/CleanHome-BookingService/internal/api/handlers/update_reservation"
	wizardFinishHandler "github.com/m04kA/CleanHome-BookingService/internal/api/handlers/wizard_finish"
	wizardSlotHandler "github.com/m04kA/CleanHome-BookingService/internal/api/handlers/wizard_slot"
	wizardStepHandler "github.com/m04kA/CleanHome-BookingService/internal/api/handlers/wizard_step"
	wizardSubmitHandler "github.com/m04kA/CleanHome-BookingService/internal/api/handlers/wizard_submit"
	"github.com/m04kA/CleanHome-BookingService/internal/api/middleware"
	"github.com/m04kA/CleanHome-BookingService/internal/catalog"
	"github.com/m04kA/CleanHome-BookingService/internal/config"
	"github.com/m04kA/CleanHome-BookingService/internal/infra/realtime"
	cartRepo "github.com/m04kA/CleanHome-BookingService/internal/infra/storage/cart"
	cartMirrorRepo "github.com/m04kA/CleanHome-BookingService/internal/infra/storage/cartmirror"
	reservationRepo "github.com/m04kA/CleanHome-BookingService/internal/infra/storage/reservation"
	scheduleRepo "github.com/m04kA/CleanHome-BookingService/internal/infra/storage/schedule"
	wizardRepo "github.com/m04kA/CleanHome-BookingService/internal/infra/storage/wizard"
	"github.com/m04kA/CleanHome-BookingService/internal/integrations/eventbus"
	"github.com/m04kA/CleanHome-BookingService/internal/integrations/formnotifier"
	"github.com/m04kA/CleanHome-BookingService/internal/integrations/geocoder"
	availabilityService "github.com/m04kA/CleanHome-BookingService/internal/service/availability"
	cartService "github.com/m04kA/CleanHome-BookingService/internal/service/cart"
	reservationsService "github.com/m04kA/CleanHome-BookingService/internal/service/reservations"
	scheduleService "github.com/m04kA/CleanHome-BookingService/internal/service/schedule"
	wizardService "github.com/m04kA/CleanHome-BookingService/internal/service/wizard"
	submitReservationUC "github.com/m04kA/CleanHome-BookingService/internal/usecase/submit_reservation"
	"github.com/m04kA/CleanHome-BookingService/pkg/dbmetrics"
	"github.com/m04kA/CleanHome-BookingService/pkg/logger"
	"github.com/m04kA/CleanHome-BookingService/pkg/metrics"
	"github.com/m04kA/CleanHome-BookingService/pkg/telemetry"
	"github.com/m04kA/CleanHome-BookingService/pkg/txmanager"
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

	log.Info("Starting CleanHome-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Контекст фоновых задач (опрос, LISTEN/NOTIFY)
	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Трейсинг (выключен, если endpoint не задан)
	shutdownTracing, err := telemetry.Setup(ctx, cfg.Metrics.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.Insecure)
	if err != nil {
		log.Fatal("Failed to initialize tracing: %v", err)
	}

	loc, err := time.LoadLocation(cfg.Availability.Timezone)
	if err != nil {
		log.Fatal("Failed to load timezone %s: %v", cfg.Availability.Timezone, err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Без метрик обёртка работает как прокси
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Redis: корзины и состояние мастера
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to ping redis: %v", err)
	}
	log.Info("Successfully connected to redis (addr=%s)", cfg.Redis.Addr)

	// Каталог услуг
	services, err := catalog.NewDefault()
	if err != nil {
		log.Fatal("Failed to load service catalog: %v", err)
	}

	// Инициализируем репозитории
	cartTTL := time.Duration(cfg.Redis.CartTTLHours) * time.Hour
	reservationRepository := reservationRepo.NewRepository(wrappedDB)
	scheduleRepository := scheduleRepo.NewRepository(wrappedDB)
	cartMirrorRepository := cartMirrorRepo.NewRepository(wrappedDB)
	cartRepository := cartRepo.NewRepository(redisClient, cartTTL)
	wizardRepository := wizardRepo.NewRepository(redisClient, cartTTL, loc)

	// Инициализируем интеграционных клиентов
	geocoderClient := geocoder.NewClient(geocoder.Config{
		BaseURL:      cfg.Geocoder.BaseURL,
		Token:        cfg.Geocoder.Token,
		Country:      cfg.Geocoder.Country,
		ProximityLon: cfg.Geocoder.ProximityLon,
		ProximityLat: cfg.Geocoder.ProximityLat,
		MinResults:   cfg.Geocoder.MinResults,
		Limit:        cfg.Geocoder.Limit,
		Timeout:      time.Duration(cfg.Geocoder.Timeout) * time.Second,
	}, log)
	notifier := formnotifier.NewClient(
		cfg.Notifier.FormURL,
		cfg.Notifier.FormName,
		time.Duration(cfg.Notifier.Timeout)*time.Second,
	)
	publisher := eventbus.NewPublisher(cfg.AMQP.URL, cfg.AMQP.Queue)
	log.Info("Integration clients initialized (geocoder=%s, notifier=%t, amqp=%t)",
		cfg.Geocoder.BaseURL, cfg.Notifier.FormURL != "", publisher.Enabled())

	// Инициализируем сервисы
	availabilitySvc := availabilityService.NewService(
		reservationRepository,
		scheduleRepository,
		metricsCollector,
		loc,
		cfg.Availability.HorizonDays,
		log,
	)
	cartSvc := cartService.NewService(cartRepository, services, log)
	reservationsSvc := reservationsService.NewService(reservationRepository, availabilitySvc, log)
	scheduleSvc := scheduleService.NewService(scheduleRepository, txMgr, availabilitySvc, loc, log)

	// Инициализируем use cases
	submitReservationUseCase := submitReservationUC.NewUseCase(
		reservationRepository,
		scheduleRepository,
		cartMirrorRepository,
		notifier,
		publisher,
		txMgr,
		metricsCollector,
		cfg.Booking.DurationMinutes,
		log,
	)

	wizardSvc := wizardService.NewService(
		wizardRepository,
		cartSvc,
		availabilitySvc,
		submitReservationUseCase,
		log,
	)

	// Первичный снимок занятых слотов
	if err := availabilitySvc.Refresh(ctx, availabilityService.TriggerStartup); err != nil {
		log.Warn("Initial availability refresh failed, poller will retry: %v", err)
	}

	// Фоновое обновление снимка
	go availabilitySvc.RunPoller(ctx, time.Duration(cfg.Availability.PollIntervalSeconds)*time.Second)

	if cfg.Availability.RealtimeChannel != "" {
		listener := realtime.NewListener(cfg.Database.DSN(), cfg.Availability.RealtimeChannel, log)
		go func() {
			if err := listener.Run(ctx, availabilitySvc.OnRealtimeChange); err != nil && ctx.Err() == nil {
				log.Error("Realtime listener stopped: %v", err)
			}
		}()
		log.Info("Realtime updates enabled (channel=%s)", cfg.Availability.RealtimeChannel)
	}

	// Инициализируем handlers
	listServices := listServicesHandler.NewHandler(services, log)
	createCart := createCartHandler.NewHandler(cartSvc, log)
	getCart := getCartHandler.NewHandler(cartSvc, log)
	clearCart := clearCartHandler.NewHandler(cartSvc, log)
	addCartItem := addCartItemHandler.NewHandler(cartSvc, services, log)
	removeCartItem := removeCartItemHandler.NewHandler(cartSvc, log)
	setCartAddress := setCartAddressHandler.NewHandler(cartSvc, log)
	setCartContact := setCartContactHandler.NewHandler(cartSvc, log)
	getWizard := getWizardHandler.NewHandler(wizardSvc, log)
	wizardStep := wizardStepHandler.NewHandler(wizardSvc, log)
	wizardSlot := wizardSlotHandler.NewHandler(wizardSvc, loc, log)
	wizardSubmit := wizardSubmitHandler.NewHandler(wizardSvc, log)
	wizardFinish := wizardFinishHandler.NewHandler(wizardSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(availabilitySvc, log)
	getAvailableDates := getAvailableDatesHandler.NewHandler(availabilitySvc, log)
	geocode := geocodeHandler.NewHandler(geocoderClient, log)
	listReservations := listReservationsHandler.NewHandler(reservationsSvc, loc, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	updateReservation := updateReservationHandler.NewHandler(reservationsSvc, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationsSvc, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, loc, log)
	toggleSchedule := toggleScheduleHandler.NewHandler(scheduleSvc, loc, log)
	saveSchedule := saveScheduleHandler.NewHandler(scheduleSvc, log)
	discardSchedule := discardScheduleHandler.NewHandler(scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (корзина, мастер, доступность)
	// ============================================================

	public := api.PathPrefix("").Subrouter()
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
		public.Use(limiter.Middleware)
		log.Info("Rate limit enabled (%d req/min, burst=%d)", cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
	}

	// --- Каталог и поиск адреса ---
	public.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	public.HandleFunc("/geocode", geocode.Handle).Methods(http.MethodGet)

	// --- Корзина ---
	public.HandleFunc("/carts", createCart.Handle).Methods(http.MethodPost)
	public.HandleFunc("/carts/{sessionId}", getCart.Handle).Methods(http.MethodGet)
	public.HandleFunc("/carts/{sessionId}", clearCart.Handle).Methods(http.MethodDelete)
	public.HandleFunc("/carts/{sessionId}/items", addCartItem.Handle).Methods(http.MethodPost)
	public.HandleFunc("/carts/{sessionId}/items/{itemId}", removeCartItem.Handle).Methods(http.MethodDelete)
	public.HandleFunc("/carts/{sessionId}/address", setCartAddress.Handle).Methods(http.MethodPut)
	public.HandleFunc("/carts/{sessionId}/contact", setCartContact.Handle).Methods(http.MethodPut)

	// --- Мастер оформления ---
	public.HandleFunc("/carts/{sessionId}/wizard", getWizard.Handle).Methods(http.MethodGet)
	public.HandleFunc("/carts/{sessionId}/wizard/step", wizardStep.Handle).Methods(http.MethodPost)
	public.HandleFunc("/carts/{sessionId}/wizard/slot", wizardSlot.Handle).Methods(http.MethodPut)
	public.HandleFunc("/carts/{sessionId}/wizard/submit", wizardSubmit.Handle).Methods(http.MethodPost)
	public.HandleFunc("/carts/{sessionId}/wizard/finish", wizardFinish.Handle).Methods(http.MethodPost)

	// --- Доступность ---
	public.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)
	public.HandleFunc("/availability/dates", getAvailableDates.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют Bearer JWT с ролью администратора)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Auth.JWTSecret, cfg.Auth.AdminRole))

	// --- Резервации ---
	admin.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/reservations/{id}", getReservation.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/reservations/{id}", updateReservation.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/reservations/{id}", deleteReservation.Handle).Methods(http.MethodDelete)

	// --- Расписание ---
	admin.HandleFunc("/schedule", getSchedule.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/schedule/toggle", toggleSchedule.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/schedule/save", saveSchedule.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/schedule/pending", discardSchedule.Handle).Methods(http.MethodDelete)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      telemetry.Handler(r, cfg.Metrics.ServiceName),
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

	// Останавливаем опрос и LISTEN
	stop()

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

	// Дожидаемся отправки уведомлений
	submitReservationUseCase.Wait()

	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error("Failed to flush traces: %v", err)
	}

	log.Info("Server stopped gracefully")
}
