package memberhub

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/time/rate"

	"github.com/magabrotheeeer/member-hub/internal/cache"
	"github.com/magabrotheeeer/member-hub/internal/config"
	"github.com/magabrotheeeer/member-hub/internal/lib/metrics"
	"github.com/magabrotheeeer/member-hub/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/member-hub/internal/lib/sl"
	"github.com/magabrotheeeer/member-hub/internal/services"
	"github.com/magabrotheeeer/member-hub/internal/storage"
)

// App — HTTP-сервер вместе с хранилищем и внешними подключениями.
type App struct {
	server  *http.Server
	logger  *slog.Logger
	storage *storage.Storage
	closers []io.Closer
}

// New собирает приложение. Redis и RabbitMQ подключаются, только если включены в конфиге.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "memberhub.New"

	st, err := storage.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	app := &App{
		logger:  logger,
		storage: st,
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	opts := []services.Option{services.WithMetrics(m)}

	if cfg.RedisEnabled {
		cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		app.closers = append(app.closers, cacheRedis)
		opts = append(opts, services.WithCache(cacheRedis, cfg.RedisTTL))
		logger.Info("redis cache enabled", slog.String("address", cfg.RedisAddress))
	}

	if cfg.RabbitEnabled {
		conn, err := rabbitmq.Connect(cfg.RabbitURL, cfg.RabbitRetries, cfg.RabbitRetryDelay)
		if err != nil {
			app.close()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		ch, err := rabbitmq.SetupChannel(conn, cfg.RabbitExchange, nil)
		if err != nil {
			_ = conn.Close()
			app.close()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		app.closers = append(app.closers, ch, conn)
		opts = append(opts, services.WithPublisher(rabbitmq.NewPublisher(ch, cfg.RabbitExchange)))
		logger.Info("event publishing enabled", slog.String("exchange", cfg.RabbitExchange))
	}

	service := services.New(services.FromStorage(st), logger, opts...)

	router := chi.NewRouter()
	RegisterRoutes(router, Deps{
		Logger:   logger,
		Service:  service,
		Stats:    st,
		Metrics:  m,
		Gatherer: registry,
		Limiter:  rate.NewLimiter(rate.Limit(cfg.RPS), cfg.Burst),
	})

	app.server = &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}
	return app, nil
}

// Handler возвращает корневой обработчик приложения.
func (a *App) Handler() http.Handler {
	return a.server.Handler
}

// Run запускает HTTP-сервер и останавливает его при отмене ctx.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		a.close()
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		stats := a.storage.Stats()
		a.logger.Info("storage state on shutdown",
			slog.Int("users", stats.Users),
			slog.Int("profiles", stats.Profiles),
			slog.Int("posts", stats.Posts),
		)
		a.close()
		return err
	}
}

func (a *App) close() {
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			a.logger.Warn("failed to close resource", sl.Err(err))
		}
	}
	a.closers = nil
}
