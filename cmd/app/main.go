package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sales/cmd"
	"sales/internal/adapters/out/postgres/orderrepo"

	gommonlog "github.com/labstack/gommon/log"
	log "github.com/sirupsen/logrus"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs, err := cmd.LoadConfig()
	if err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}

	logger := newLogger(configs.LogLevel)

	gormDB, err := openDatabase(configs)
	if err != nil {
		logger.WithError(err).Fatal("Failed to open database")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := cmd.NewCompositionRoot(ctx, configs, gormDB, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to build application")
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.WithError(err).Warn("Failed to release resources")
		}
	}()

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		logger.WithError(err).Fatal("Failed to start jobs")
	}
	defer jobManager.StopAll()

	startWebServer(ctx, app, configs.HTTPPort, logger)
}

func newLogger(level string) *log.Entry {
	logger := log.New()
	logger.SetFormatter(&log.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	lvl, err := log.ParseLevel(level)
	if err != nil {
		logger.WithField("level", level).Warn("Unknown log level, using info")
		lvl = log.InfoLevel
	}
	logger.SetLevel(lvl)

	return log.NewEntry(logger).WithField("service", "sales")
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	gormDB, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, err
	}

	if err := gormDB.AutoMigrate(&orderrepo.OrderDTO{}); err != nil {
		return nil, fmt.Errorf("migrate orders table: %w", err)
	}

	return gormDB, nil
}

// startWebServer serves until ctx is canceled, then drains in-flight requests.
func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string, logger *log.Entry) {
	e := app.CreateRouter()
	e.Logger.SetLevel(gommonlog.WARN)

	go func() {
		addr := fmt.Sprintf("0.0.0.0:%s", port)
		logger.WithField("addr", addr).Info("HTTP server started")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("HTTP server failed")
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("HTTP server shutdown failed")
	}
}
