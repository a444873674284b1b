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

	backStepHandler "github.com/velalaser/VLL-SchedulingService/internal/api/handlers/back_step"
	continueToCustomerHandler "github.com/velalaser/VLL-SchedulingService/internal/api/handlers/continue_to_customer"
	createLeadHandler "github.com/velalaser/VLL-SchedulingService/internal/api/handlers/create_lead"
	createSessionHandler "github.com/velalaser/VLL-SchedulingService/internal/api/handlers/create_session"
	getSessionHandler "github.com/velalaser/VLL-SchedulingService/internal/api/handlers/get_session"
	liveSearchUnitsHandler "github.com/velalaser/VLL-SchedulingService/internal/api/handlers/live_search_units"
	navigateMonthHandler "github.com/velalaser/VLL-SchedulingService/internal/api/handlers/navigate_month"
	searchUnitsHandler "github.com/velalaser/VLL-SchedulingService/internal/api/handlers/search_units"
	selectDayHandler "github.com/velalaser/VLL-SchedulingService/internal/api/handlers/select_day"
	selectTimeHandler "github.com/velalaser/VLL-SchedulingService/internal/api/handlers/select_time"
	selectUnitHandler "github.com/velalaser/VLL-SchedulingService/internal/api/handlers/select_unit"
	submitScheduleHandler "github.com/velalaser/VLL-SchedulingService/internal/api/handlers/submit_schedule"
	"github.com/velalaser/VLL-SchedulingService/internal/api/middleware"
	"github.com/velalaser/VLL-SchedulingService/internal/config"
	"github.com/velalaser/VLL-SchedulingService/internal/infra/draftstore"
	"github.com/velalaser/VLL-SchedulingService/internal/infra/sessions"
	unitsRepo "github.com/velalaser/VLL-SchedulingService/internal/infra/storage/units"
	geoServiceClient "github.com/velalaser/VLL-SchedulingService/internal/integrations/geoservice"
	unoServiceClient "github.com/velalaser/VLL-SchedulingService/internal/integrations/unoservice"
	directoryService "github.com/velalaser/VLL-SchedulingService/internal/service/directory"
	wizardService "github.com/velalaser/VLL-SchedulingService/internal/service/wizard"
	createLeadUC "github.com/velalaser/VLL-SchedulingService/internal/usecase/create_lead"
	searchUnitsUC "github.com/velalaser/VLL-SchedulingService/internal/usecase/search_units"
	"github.com/velalaser/VLL-SchedulingService/pkg/dbmetrics"
	"github.com/velalaser/VLL-SchedulingService/pkg/logger"
	"github.com/velalaser/VLL-SchedulingService/pkg/metrics"
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

	log.Info("Starting VLL-SchedulingService...")
	log.Info("Configuration loaded from config.toml")

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

	// Инициализируем интеграционных клиентов
	geoClient := geoServiceClient.NewClient(
		cfg.GeoService.URL,
		time.Duration(cfg.GeoService.Timeout)*time.Second,
		log,
	)
	unoClient := unoServiceClient.NewClient(
		cfg.UnoService.URL,
		time.Duration(cfg.UnoService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (GeoService=%s timeout=%ds, UnoService=%s timeout=%ds)",
		cfg.GeoService.URL, cfg.GeoService.Timeout, cfg.UnoService.URL, cfg.UnoService.Timeout)

	// Инициализируем репозиторий юнитов (с метриками или без)
	var unitsRepository *unitsRepo.Repository
	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
		unitsRepository = unitsRepo.NewRepository(wrappedDB)
	} else {
		unitsRepository = unitsRepo.NewRepository(db)
	}

	// Каталог юнитов: загружается один раз на старте
	directorySvc := directoryService.NewService(unitsRepository, log)
	directorySvc.Load(context.Background())

	// In-memory инфраструктура мастера записи
	draftStore := draftstore.NewStore()
	sessionRegistry := sessions.NewRegistry(time.Duration(cfg.Sessions.TTLMinutes) * time.Minute)
	sessionRegistry.StartJanitor(
		time.Duration(cfg.Sessions.CleanupIntervalMinutes)*time.Minute,
		stopMetricsCh,
	)

	// Сервис мастера записи
	wizardSvc := wizardService.NewService(
		sessionRegistry,
		directorySvc,
		unoClient,
		draftStore,
		&wizardService.RealTimeProvider{},
		log,
	)

	// Инициализируем use cases
	searchUnitsUseCase := searchUnitsUC.NewUseCase(directorySvc, geoClient, log)
	createLeadUseCase := createLeadUC.NewUseCase(directorySvc, unoClient, draftStore, log)

	// Инициализируем handlers
	searchUnits := searchUnitsHandler.NewHandler(searchUnitsUseCase, log)
	liveSearchUnits := liveSearchUnitsHandler.NewHandler(searchUnitsUseCase, log)
	createLead := createLeadHandler.NewHandler(createLeadUseCase, log)
	createSession := createSessionHandler.NewHandler(wizardSvc, log)
	getSession := getSessionHandler.NewHandler(wizardSvc, log)
	selectUnit := selectUnitHandler.NewHandler(wizardSvc, log)
	navigateMonth := navigateMonthHandler.NewHandler(wizardSvc, log)
	selectDay := selectDayHandler.NewHandler(wizardSvc, log)
	selectTime := selectTimeHandler.NewHandler(wizardSvc, log)
	continueToCustomer := continueToCustomerHandler.NewHandler(wizardSvc, log)
	backStep := backStepHandler.NewHandler(wizardSvc, log)
	submitSchedule := submitScheduleHandler.NewHandler(wizardSvc, log)

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
	// PUBLIC ROUTES (без идентификации клиента)
	// ============================================================

	// Поиск юнитов: одноразовый REST запрос и живой WebSocket поток
	api.HandleFunc("/units", searchUnits.Handle).Methods(http.MethodGet)
	api.HandleFunc("/units/live", liveSearchUnits.Handle).Methods(http.MethodGet)

	// ============================================================
	// CLIENT ROUTES (требуют X-Client-ID header)
	// ============================================================

	client := api.PathPrefix("").Subrouter()
	client.Use(middleware.ClientID)

	// Лид с формы быстрого контакта
	client.HandleFunc("/leads", createLead.Handle).Methods(http.MethodPost)

	// --- Мастер записи ---
	// Создание сессии (потребляет черновик контактов клиента)
	client.HandleFunc("/sessions", createSession.Handle).Methods(http.MethodPost)

	// Текущее состояние сессии
	client.HandleFunc("/sessions/{sessionId}", getSession.Handle).Methods(http.MethodGet)

	// Шаг 1: выбор юнита
	client.HandleFunc("/sessions/{sessionId}/unit", selectUnit.Handle).Methods(http.MethodPut)

	// Шаг 2: календарь, дата и время
	client.HandleFunc("/sessions/{sessionId}/calendar/navigate", navigateMonth.Handle).Methods(http.MethodPost)
	client.HandleFunc("/sessions/{sessionId}/date", selectDay.Handle).Methods(http.MethodPut)
	client.HandleFunc("/sessions/{sessionId}/time", selectTime.Handle).Methods(http.MethodPut)

	// Переходы между шагами
	client.HandleFunc("/sessions/{sessionId}/continue", continueToCustomer.Handle).Methods(http.MethodPost)
	client.HandleFunc("/sessions/{sessionId}/back", backStep.Handle).Methods(http.MethodPost)

	// Шаг 3: отправка записи
	client.HandleFunc("/sessions/{sessionId}/submit", submitSchedule.Handle).Methods(http.MethodPost)

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

	// Останавливаем фоновые горутины (метрики пула и janitor сессий)
	close(stopMetricsCh)

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
