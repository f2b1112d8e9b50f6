package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "healthtrack/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"healthtrack/internal/auth"
	"healthtrack/internal/cache"
	"healthtrack/internal/config"
	"healthtrack/internal/db"
	"healthtrack/internal/handler"
	"healthtrack/internal/logging"
	"healthtrack/internal/repository"
	"healthtrack/internal/router"
	"healthtrack/internal/service"
)

const shutdownTimeout = 10 * time.Second

// @title HealthTrack API
// @version 1.0
// @description Personal health tracking API: profile, symptoms, diagnostic tests, alerts and derived insights.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()
	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	tokens, err := auth.NewTokenService(cfg.JWTSecret)
	if err != nil {
		log.WithError(err).Fatal("token service init")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := db.Open(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("database init")
	}
	defer func() {
		if err := db.Close(gormDB); err != nil {
			log.WithError(err).Warn("close database")
		}
	}()

	// Drop tables if RESET_DB environment variable is set
	if cfg.ResetDB {
		log.Warn("RESET_DB=true detected, dropping all tables")
		if err := db.Reset(ctx, gormDB); err != nil {
			log.WithError(err).Fatal("reset database")
		}
	}

	if err := db.Migrate(ctx, gormDB, cfg.DBDriver); err != nil {
		log.WithError(err).Fatal("migrate")
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, log)
	defer cacheClient.Close()
	var cachePinger handler.Pinger
	if cacheClient != nil {
		cachePinger = cacheClient
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	symptomRepo := repository.NewSymptomRepository(gormDB)
	testRepo := repository.NewDiagnosticTestRepository(gormDB)
	alertRepo := repository.NewAlertRepository(gormDB)

	// Initialize services
	authService := service.NewAuthService(userRepo, tokens)
	profileService := service.NewProfileService(userRepo, cacheClient)
	symptomService := service.NewSymptomService(symptomRepo)
	testService := service.NewDiagnosticTestService(testRepo)
	alertService := service.NewAlertService(alertRepo)
	insightService := service.NewInsightService(symptomRepo, testRepo, alertRepo)

	e := echo.New()
	e.HideBanner = true

	router.Register(e, cfg, log, tokens, router.Handlers{
		Auth:       handler.NewAuthHandler(authService, log),
		Profile:    handler.NewProfileHandler(profileService, log),
		Symptom:    handler.NewSymptomHandler(symptomService, log),
		Diagnostic: handler.NewDiagnosticTestHandler(testService, log),
		Alert:      handler.NewAlertHandler(alertService, log),
		Insight:    handler.NewInsightHandler(insightService, log),
		Health:     handler.NewHealthHandler(db.Pinger{DB: gormDB}, cachePinger, log),
	})

	log.Infof("Swagger documentation available at: %s", swaggerURL(cfg))

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.WithField("addr", srv.Addr).Info("server listening")
		if err := e.StartServer(srv); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server start")
		}
	}()

	<-ctx.Done()
	shutdown(e, log)
}

func shutdown(e *echo.Echo, log *logrus.Logger) {
	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.WithError(err).Error("graceful shutdown")
	}
}

func swaggerURL(cfg *config.Config) string {
	host := cfg.SwaggerHost
	if host == "" {
		host = "localhost:" + cfg.ServerPort
	}
	// SwaggerHost may already include scheme (http:// or https://)
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "http://" + host
	}
	return strings.TrimRight(host, "/") + "/swagger/index.html"
}
