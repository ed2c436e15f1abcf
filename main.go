package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/net/netutil"

	"linkpulse/internal/cache"
	"linkpulse/internal/clicks"
	"linkpulse/internal/config"
	"linkpulse/internal/device"
	"linkpulse/internal/domain"
	"linkpulse/internal/events"
	"linkpulse/internal/geo"
	"linkpulse/internal/handler"
	"linkpulse/internal/metrics"
	custommiddleware "linkpulse/internal/middleware"
	"linkpulse/internal/scheduler"
	"linkpulse/internal/service"
	"linkpulse/internal/shortener"
	"linkpulse/internal/validation"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := run(ctx, logger); err != nil {
		logger.Error("application failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	clock := domain.RealClock{}

	st, err := openStores(ctx, cfg, clock, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	urlCache, err := newURLCache(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create url cache: %w", err)
	}
	defer urlCache.Close()

	var metricsDB metrics.CopyFromer
	if st.pool != nil {
		metricsDB = st.pool
	}
	recorder := metrics.NewRecorder(metricsDB, &cfg.Metrics, logger)
	recorder.Start(ctx)
	defer recorder.Close()

	deviceStore, err := cache.NewLocal(cfg.Cache.MaxSizePow2)
	if err != nil {
		return fmt.Errorf("failed to create device cache: %w", err)
	}
	defer deviceStore.Close()

	geoStore, err := cache.NewLocal(cfg.Geo.CacheSizePow2)
	if err != nil {
		return fmt.Errorf("failed to create geo cache: %w", err)
	}
	defer geoStore.Close()

	analyticsStore, err := cache.NewLocal(cfg.Analytics.CacheSizePow2)
	if err != nil {
		return fmt.Errorf("failed to create analytics cache: %w", err)
	}
	defer analyticsStore.Close()

	geoProvider, err := geo.NewProvider(&cfg.Geo)
	if err != nil {
		return fmt.Errorf("failed to create geo provider: %w", err)
	}
	if closer, ok := geoProvider.(io.Closer); ok {
		defer closer.Close()
	}
	logger.Info("geo provider selected", slog.String("provider", geoProvider.Name()))

	enricher := clicks.NewEnricher(
		device.NewCachedClassifier(deviceStore, cfg.Recorder.DeviceCacheTTL),
		geo.NewResolver(geoProvider, geoStore, &cfg.Geo, logger),
	)

	var publisher clicks.Publisher
	if len(cfg.Events.Brokers) > 0 {
		kafka := events.NewKafkaPublisher(&cfg.Events)
		defer kafka.Close()
		publisher = kafka
		logger.Info("publishing click events",
			slog.Any("brokers", cfg.Events.Brokers),
			slog.String("topic", cfg.Events.Topic))
	}

	clickRecorder := clicks.NewRecorder(enricher, st.clicks, publisher, &cfg.Recorder, logger)
	clickRecorder.Start()
	defer clickRecorder.Close()

	go collectInfraMetrics(ctx, recorder, st, urlCache, clickRecorder)

	short, err := shortener.New()
	if err != nil {
		return fmt.Errorf("failed to create shortener: %w", err)
	}

	redirects := service.NewRedirectService(st.links, st.owners, urlCache, clickRecorder, recorder, clock, cfg.Redis.TTL, logger)
	links := service.NewLinkService(st.links, st.owners, urlCache, short, recorder, clock, cfg.App.BaseURL, cfg.Redis.TTL, logger)
	analytics := service.NewAnalyticsService(st.links, st.owners, st.clicks, analyticsStore, clock, service.AnalyticsConfig{
		CacheTTL:      cfg.Analytics.CacheTTL,
		MaxPageSize:   cfg.Analytics.MaxPageSize,
		MaxTrendHours: cfg.Analytics.MaxTrendHours,
	}, logger)

	if cfg.Scheduler.Enabled {
		if err := scheduler.New(links, &cfg.Scheduler, logger).Start(ctx); err != nil {
			return fmt.Errorf("failed to start expiry sweeper: %w", err)
		}
	}

	validator := validation.NewLinkValidator(validation.Limits{
		MaxURLLength:         cfg.Validation.MaxURLLength,
		MaxBatchSize:         cfg.Validation.MaxBatchSize,
		MaxTitleLength:       cfg.Validation.MaxTitleLength,
		MaxDescriptionLength: cfg.Validation.MaxDescLength,
		AllowPrivateIPs:      cfg.Validation.AllowPrivateIPs,
	})

	h := handler.New(redirects, links, analytics, validator, clock, logger, recorder)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(cfg.Validation.MaxRequestBodySize))
	e.Use(custommiddleware.Metrics(recorder))
	e.Use(custommiddleware.RateLimit(&cfg.RateLimit, logger))

	h.Register(e)

	if cfg.Pprof.Enabled {
		pprofGroup := e.Group("/debug/pprof", custommiddleware.PprofAuth(cfg.Pprof.Secret))
		custommiddleware.RegisterPprof(pprofGroup)
		logger.Info("pprof endpoints enabled", slog.String("path", "/debug/pprof/*"))
	}

	httpAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting HTTP server",
		slog.String("addr", httpAddr),
		slog.Int("max_connections", cfg.Server.MaxConnections))

	httpListener, err := net.Listen("tcp", httpAddr)
	if err != nil {
		return fmt.Errorf("failed to create HTTP listener: %w", err)
	}
	if cfg.Server.MaxConnections > 0 {
		httpListener = netutil.LimitListener(httpListener, cfg.Server.MaxConnections)
	}

	httpServer := &http.Server{
		Handler:        e,
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    120 * time.Second,
		MaxHeaderBytes: 1 << 14, // 16KB
	}

	go func() {
		if err := httpServer.Serve(httpListener); err != nil && err != http.ErrServerClosed {
			logger.Error("http server error", slog.String("error", err.Error()))
		}
	}()

	var httpsServer *http.Server
	if cfg.TLS.Enabled {
		httpsAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.TLS.Port)
		logger.Info("starting HTTPS server",
			slog.String("addr", httpsAddr),
			slog.Int("max_connections", cfg.Server.MaxConnections))

		httpsListener, err := net.Listen("tcp", httpsAddr)
		if err != nil {
			return fmt.Errorf("failed to create HTTPS listener: %w", err)
		}
		if cfg.Server.MaxConnections > 0 {
			httpsListener = netutil.LimitListener(httpsListener, cfg.Server.MaxConnections)
		}

		cert, err := tls.LoadX509KeyPair(cfg.TLS.CertFile, cfg.TLS.KeyFile)
		if err != nil {
			return fmt.Errorf("failed to load TLS certificate: %w", err)
		}

		tlsListener := tls.NewListener(httpsListener, &tls.Config{
			MinVersion:             tls.VersionTLS13,
			Certificates:           []tls.Certificate{cert},
			CurvePreferences:       []tls.CurveID{tls.X25519},
			SessionTicketsDisabled: false,
		})

		httpsServer = &http.Server{
			Handler:        e,
			ReadTimeout:    5 * time.Second,
			WriteTimeout:   10 * time.Second,
			IdleTimeout:    120 * time.Second,
			MaxHeaderBytes: 1 << 14, // 16KB
		}

		go func() {
			if err := httpsServer.Serve(tlsListener); err != nil && err != http.ErrServerClosed {
				logger.Error("https server error", slog.String("error", err.Error()))
			}
		}()
	}

	<-ctx.Done()
	logger.Info("shutting down servers")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}

	if httpsServer != nil {
		if err := httpsServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("https server shutdown failed: %w", err)
		}
	}

	return nil
}

type urlCache interface {
	service.URLCache
	Stats() (hits, misses uint64, ratio float64)
	Close() error
}

// newURLCache uses redis when an address is configured and an in-process
// cache otherwise.
func newURLCache(ctx context.Context, cfg *config.Config, logger *slog.Logger) (urlCache, error) {
	if cfg.Redis.Addr != "" {
		return cache.ConnectRedis(ctx, &cfg.Redis, logger)
	}
	logger.Info("redis not configured, using in-process url cache")
	return cache.NewLocalURLCache(cfg.Cache.MaxSizePow2)
}

func collectInfraMetrics(ctx context.Context, recorder *metrics.Recorder, st *stores, urlCache urlCache, clickRecorder *clicks.Recorder) {
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cacheHits, cacheMisses, cacheRatio := urlCache.Stats()

			var memStats runtime.MemStats
			runtime.ReadMemStats(&memStats)

			m := metrics.InfraMetric{
				Time:            time.Now(),
				CacheHits:       int64(cacheHits),
				CacheMisses:     int64(cacheMisses),
				CacheHitRatio:   cacheRatio,
				Goroutines:      runtime.NumGoroutine(),
				HeapAllocMB:     float64(memStats.HeapAlloc) / 1024 / 1024,
				ClickQueueDepth: clickRecorder.QueueDepth(),
				ClicksDropped:   clickRecorder.Dropped(),
			}
			if st.pool != nil {
				poolStat := st.pool.Stat()
				m.PoolAcquired = int(poolStat.AcquiredConns())
				m.PoolIdle = int(poolStat.IdleConns())
				m.PoolTotal = int(poolStat.TotalConns())
				m.PoolMax = int(poolStat.MaxConns())
			}
			recorder.RecordInfra(m)
		}
	}
}
