package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/go-sql-driver/mysql"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/readyiolab/GDL-BACKEND/internal/api"
	"github.com/readyiolab/GDL-BACKEND/internal/config"
	"github.com/readyiolab/GDL-BACKEND/internal/events"
	"github.com/readyiolab/GDL-BACKEND/internal/geo"
	"github.com/readyiolab/GDL-BACKEND/internal/logger"
	"github.com/readyiolab/GDL-BACKEND/internal/metrics"
	"github.com/readyiolab/GDL-BACKEND/internal/middleware"
	"github.com/readyiolab/GDL-BACKEND/internal/repository"
	"github.com/readyiolab/GDL-BACKEND/internal/service"
	"github.com/readyiolab/GDL-BACKEND/internal/session"
	"github.com/readyiolab/GDL-BACKEND/migrations"
)

func connectDB(cfg config.DBConfig) (*sql.DB, error) {
	mc := mysql.NewConfig()
	mc.User = cfg.User
	mc.Passwd = cfg.Pass
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(cfg.Host, cfg.Port)
	mc.DBName = cfg.Name

	db, err := sql.Open("mysql", mc.FormatDSN())
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)

	for i := 0; i < cfg.ConnectRetries; i++ {
		if err = db.Ping(); err == nil {
			log.Info().Msgf("Connected to DB %s", cfg.Name)
			return db, nil
		}
		log.Warn().Err(err).Msgf("Retry %d: failed to connect to DB %s (%s)", i+1, cfg.Name, mc.Addr)
		time.Sleep(3 * time.Second)
	}
	db.Close()
	return nil, fmt.Errorf("failed to connect to DB %s at %s after retries: %w", cfg.Name, mc.Addr, err)
}

func newSessionStore(cfg *config.AppConfig) (session.Store, func()) {
	if cfg.Redis.Addr == "" {
		log.Warn().Msg("REDIS_ADDR not set, keeping sessions in memory")
		return session.NewMemoryStore(), func() {}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Warn().Err(err).Msgf("Redis at %s not reachable yet", cfg.Redis.Addr)
	}
	return session.NewRedisStore(rdb, cfg.Session.TTL), func() { rdb.Close() }
}

func newPublisher(cfg config.KafkaConfig) (events.Publisher, func()) {
	if len(cfg.Brokers) == 0 {
		return events.NopPublisher{}, func() {}
	}
	writer := config.NewKafkaWriter(cfg.Brokers, cfg.Topic)
	return events.NewKafkaPublisher(writer), func() { writer.Close() }
}

func corsConfig(allowed []string) echomiddleware.CORSConfig {
	origins := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		origins[o] = struct{}{}
	}
	return echomiddleware.CORSConfig{
		AllowOriginFunc: func(origin string) (bool, error) {
			if origin == "" {
				return true, nil
			}
			_, ok := origins[origin]
			return ok, nil
		},
		AllowCredentials: true,
	}
}

func rateLimiterConfig(cfg config.RateLimitConfig) echomiddleware.RateLimiterConfig {
	return echomiddleware.RateLimiterConfig{
		Skipper: func(c echo.Context) bool {
			return !cfg.Enabled || c.Path() == "/metrics"
		},
		Store: echomiddleware.NewRateLimiterMemoryStoreWithConfig(
			echomiddleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(cfg.Rate),
				Burst:     cfg.Burst,
				ExpiresIn: cfg.ExpiresIn,
			}),
		IdentifierExtractor: func(context echo.Context) (string, error) {
			return context.RealIP(), nil
		},
		ErrorHandler: func(context echo.Context, err error) error {
			return context.JSON(http.StatusForbidden, map[string]interface{}{"status": false, "message": "rate limiter error"})
		},
		DenyHandler: func(context echo.Context, identifier string, err error) error {
			return context.JSON(http.StatusTooManyRequests, map[string]interface{}{"status": false, "message": "rate limit exceeded"})
		},
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger.Init(cfg.IsProduction())

	db, err := connectDB(cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to DB")
	}
	defer db.Close()

	if cfg.AutoMigrate {
		if err := migrations.AutoMigrateCatalog(3, db); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate catalog tables")
		}
	}

	store, closeStore := newSessionStore(cfg)
	defer closeStore()

	publisher, closePublisher := newPublisher(cfg.Kafka)
	defer closePublisher()

	m := metrics.New(prometheus.DefaultRegisterer)

	sessionManager := session.NewManager(store, cfg.Session.Secret, session.CookieOptions{
		Name:     cfg.Session.CookieName,
		Domain:   cfg.CookieDomain(),
		Secure:   cfg.IsProduction(),
		SameSite: cfg.SameSite(),
		MaxAge:   cfg.Session.TTL,
	})

	geoClient := geo.NewClient(&http.Client{Timeout: cfg.Geo.Timeout}, cfg.Geo.BaseURL, cfg.Geo.LoopbackIP)
	detector := middleware.NewCountryDetector(geoClient, publisher, m)

	// Initialize catalog service
	catalogRepo := repository.NewCatalogRepository(db)
	catalogService := service.NewCatalogService(catalogRepo)
	catalogHandler := api.NewCatalogHandler(catalogService, cfg.HonorDetectedCountry)

	// Initialize echo
	e := echo.New()
	e.HideBanner = true
	if cfg.TrustProxy {
		e.IPExtractor = echo.ExtractIPFromXFFHeader()
	} else {
		e.IPExtractor = echo.ExtractIPDirect()
	}

	// Middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(m.Middleware())
	e.Use(echomiddleware.CORSWithConfig(corsConfig(cfg.AllowedOrigins)))
	e.Use(echomiddleware.RateLimiterWithConfig(rateLimiterConfig(cfg.RateLimit)))
	e.Use(middleware.Session(sessionManager))

	// Routes
	api.RegisterRoutes(e, catalogHandler, detector.Middleware())
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	go func() {
		log.Info().Msgf("Backend running on port %s", cfg.Port)
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error shutting down server")
	}
}
