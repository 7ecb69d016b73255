package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/order-entry/internal/domain"
	healthcheck "github.com/vladislavdragonenkov/order-entry/internal/health"
	"github.com/vladislavdragonenkov/order-entry/internal/metrics"
	"github.com/vladislavdragonenkov/order-entry/internal/notify"
	httpsvc "github.com/vladislavdragonenkov/order-entry/internal/service/http"
	"github.com/vladislavdragonenkov/order-entry/internal/storage/memory"
	"github.com/vladislavdragonenkov/order-entry/internal/storage/postgres"
	"github.com/vladislavdragonenkov/order-entry/internal/version"
)

// Config описывает минимальные настройки запуска приложения.
type Config struct {
	HTTPAddr    string
	MetricsAddr string
	// PostgresDSN пустой — заказы хранятся в памяти процесса.
	PostgresDSN string
	// EmailDelay — имитируемая задержка доставки подтверждения.
	EmailDelay time.Duration
}

// DefaultConfig возвращает базовые адреса API и HTTP-метрик.
func DefaultConfig() Config {
	return Config{
		HTTPAddr:    ":8080",
		MetricsAddr: ":9090",
		EmailDelay:  250 * time.Millisecond,
	}
}

func Run(ctx context.Context, cfg Config) error {
	logger := log.WithField("component", "app")

	healthHandler := healthcheck.NewHandler(version.String())

	var repo domain.OrderRepository
	if cfg.PostgresDSN != "" {
		store, err := postgres.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			return err
		}
		defer func() {
			if err := store.Close(); err != nil {
				logger.WithError(err).Warn("failed to close postgres store")
			}
		}()
		if err := store.EnsureSchema(ctx); err != nil {
			return err
		}
		repo = postgres.NewOrderRepository(store)
		healthHandler.RegisterChecker("postgres", healthcheck.NewSimpleChecker("postgres", func() error {
			return store.Ping(context.Background())
		}))
		logger.Info("заказы хранятся в PostgreSQL")
	} else {
		repo = memory.NewOrderRepository()
		logger.Info("заказы хранятся в памяти процесса")
	}

	orderMetrics := metrics.NewOrderMetrics()
	sender := notify.NewSimulator(cfg.EmailDelay, logger.WithField("layer", "notify"))

	service := httpsvc.NewOrderService(
		repo,
		domain.DefaultCatalog(),
		domain.DefaultRates(),
		sender,
		orderMetrics,
		logger.WithField("layer", "http"),
	)

	apiSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: service.Router()}
	metricsSrv := startMetricsServer(ctx, cfg.MetricsAddr, logger, healthHandler)

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("HTTP API слушает %s", cfg.HTTPAddr)
		errCh <- apiSrv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("получен сигнал остановки, останавливаем HTTP сервер")
		shutdownHTTP(apiSrv, logger)
		shutdownHTTP(metricsSrv, logger)
		return ctx.Err()
	case err := <-errCh:
		shutdownHTTP(metricsSrv, logger)
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// startMetricsServer запускает HTTP-обработчики /metrics и health-проб.
func startMetricsServer(ctx context.Context, addr string, logger *log.Entry, healthHandler *healthcheck.Handler) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/healthz", healthHandler)
	mux.HandleFunc("/readyz", healthHandler.ReadinessHandler)
	mux.HandleFunc("/livez", healthcheck.LivenessHandler)

	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		logger.Infof("метрики доступны по адресу %s/metrics", addr)
		logger.Infof("health checks: %s/healthz, %s/livez", addr, addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Warn("metrics server failed")
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownHTTP(srv, logger)
	}()

	return srv
}

// shutdownHTTP аккуратно останавливает HTTP-сервер.
func shutdownHTTP(srv *http.Server, logger *log.Entry) {
	if srv == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.WithError(err).Warn("http shutdown with error")
	}
}
