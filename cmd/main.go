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

	getAvailableSlotsHandler "github.com/shamal-freight/SFB-LeadService/internal/api/handlers/get_available_slots"
	getSessionHandler "github.com/shamal-freight/SFB-LeadService/internal/api/handlers/get_session"
	navigateSessionHandler "github.com/shamal-freight/SFB-LeadService/internal/api/handlers/navigate_session"
	selectDateHandler "github.com/shamal-freight/SFB-LeadService/internal/api/handlers/select_date"
	selectTimeHandler "github.com/shamal-freight/SFB-LeadService/internal/api/handlers/select_time"
	startSessionHandler "github.com/shamal-freight/SFB-LeadService/internal/api/handlers/start_session"
	submitBookingHandler "github.com/shamal-freight/SFB-LeadService/internal/api/handlers/submit_booking"
	updateAnswersHandler "github.com/shamal-freight/SFB-LeadService/internal/api/handlers/update_answers"
	"github.com/shamal-freight/SFB-LeadService/internal/api/middleware"
	"github.com/shamal-freight/SFB-LeadService/internal/brokertime"
	"github.com/shamal-freight/SFB-LeadService/internal/config"
	"github.com/shamal-freight/SFB-LeadService/internal/infra/sessionstore"
	schedulingClient "github.com/shamal-freight/SFB-LeadService/internal/integrations/schedulingapi"
	wizardService "github.com/shamal-freight/SFB-LeadService/internal/service/wizard"
	getAvailableSlotsUC "github.com/shamal-freight/SFB-LeadService/internal/usecase/get_available_slots"
	submitBookingUC "github.com/shamal-freight/SFB-LeadService/internal/usecase/submit_booking"
	"github.com/shamal-freight/SFB-LeadService/pkg/logger"
	"github.com/shamal-freight/SFB-LeadService/pkg/metrics"
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

	log.Info("Starting SFB-LeadService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Конвертер времени брокера: фиксированное смещение без DST
	converter := brokertime.NewConverter(cfg.Broker.UTCOffsetHours)
	log.Info("Broker timezone configured as UTC+%d", cfg.Broker.UTCOffsetHours)

	// Инициализируем клиент scheduling backend
	var clientMetrics schedulingClient.MetricsRecorder
	if metricsCollector != nil {
		clientMetrics = metricsCollector
	}
	scheduling := schedulingClient.NewClient(
		cfg.SchedulingAPI.URL,
		time.Duration(cfg.SchedulingAPI.Timeout)*time.Second,
		log,
		clientMetrics,
	)
	log.Info("Scheduling backend client initialized (url=%s timeout=%ds)",
		cfg.SchedulingAPI.URL, cfg.SchedulingAPI.Timeout)

	// Инициализируем хранилище сессий и фоновый janitor
	store := sessionstore.NewStore(time.Duration(cfg.Wizard.SessionTTLMinutes) * time.Minute)
	stopJanitorCh := make(chan struct{})
	go runSessionJanitor(store, metricsCollector, log,
		time.Duration(cfg.Wizard.CleanupIntervalMinutes)*time.Minute, stopJanitorCh)
	log.Info("Session store initialized (ttl=%dm cleanup=%dm)",
		cfg.Wizard.SessionTTLMinutes, cfg.Wizard.CleanupIntervalMinutes)

	// Инициализируем сервисы
	var wizardMetrics wizardService.Metrics
	if metricsCollector != nil {
		wizardMetrics = metricsCollector
	}
	wizardSvc := wizardService.NewService(store, wizardMetrics, log)

	// Инициализируем use cases
	var slotsMetrics getAvailableSlotsUC.Metrics
	var submitMetrics submitBookingUC.Metrics
	if metricsCollector != nil {
		slotsMetrics = metricsCollector
		submitMetrics = metricsCollector
	}
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(store, scheduling, converter, slotsMetrics, log)
	submitBookingUseCase := submitBookingUC.NewUseCase(store, scheduling, converter, submitMetrics, log)

	// Инициализируем handlers
	startSession := startSessionHandler.NewHandler(wizardSvc, log)
	getSession := getSessionHandler.NewHandler(wizardSvc, log)
	updateAnswers := updateAnswersHandler.NewHandler(wizardSvc, log)
	navigateSession := navigateSessionHandler.NewHandler(wizardSvc, log)
	selectDate := selectDateHandler.NewHandler(wizardSvc, log)
	selectTime := selectTimeHandler.NewHandler(wizardSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	submitBooking := submitBookingHandler.NewHandler(submitBookingUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Жизненный цикл сессии визарда ---
	// Создание сессии
	api.HandleFunc("/wizard/sessions", startSession.Handle).Methods(http.MethodPost)

	// Получение сессии по ID
	api.HandleFunc("/wizard/sessions/{sessionId}", getSession.Handle).Methods(http.MethodGet)

	// Запись полей анкеты текущего шага
	api.HandleFunc("/wizard/sessions/{sessionId}/answers", updateAnswers.Handle).Methods(http.MethodPatch)

	// Навигация по шагам (next/prev/goto)
	api.HandleFunc("/wizard/sessions/{sessionId}/navigation", navigateSession.Handle).Methods(http.MethodPost)

	// --- Бронирование консультации ---
	// Выбор даты
	api.HandleFunc("/wizard/sessions/{sessionId}/booking/date", selectDate.Handle).Methods(http.MethodPut)

	// Выбор времени
	api.HandleFunc("/wizard/sessions/{sessionId}/booking/time", selectTime.Handle).Methods(http.MethodPut)

	// Доступные слоты на выбранную дату
	api.HandleFunc("/wizard/sessions/{sessionId}/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Финальная отправка заявки
	api.HandleFunc("/wizard/sessions/{sessionId}/submit", submitBooking.Handle).Methods(http.MethodPost)

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

	// Останавливаем janitor
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

// runSessionJanitor периодически выметает истекшие сессии
// и обновляет gauge живых сессий
func runSessionJanitor(store *sessionstore.Store, m *metrics.Metrics, log *logger.Logger, interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			removed := store.Cleanup()
			if removed > 0 {
				log.Info("Session janitor: removed %d expired sessions", removed)
			}
			if m != nil {
				m.ActiveSessions.Set(float64(store.Count()))
			}
		case <-stopCh:
			return
		}
	}
}
