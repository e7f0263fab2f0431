package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"barnmonitor-backend/cmd/config"
	migration "barnmonitor-backend/cmd/database/migrate"
	"barnmonitor-backend/internal/utils"
	"barnmonitor-backend/pkg/logger"

	"go.uber.org/zap"
)

// @title BarnMonitor API
// @version 1.0
// @description Farm records backend: farmers, animals and their health, feed, production and sales.
// @BasePath /
// @securityDefinitions.apikey SessionCookie
// @in header
// @name Authorization
// @description Bearer session token. Browsers send the barnmonitor_session cookie instead.
func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}

	if err := run(configPath); err != nil {
		log.Printf("BarnMonitor stopped: %v", err)
		os.Exit(1)
	}
}

// run serves until the listener stops. Every resource it opens is released
// before it returns.
func run(configPath string) error {
	cfg, err := utils.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = zlog.Sync() }()
	restore := zap.ReplaceGlobals(zlog)
	defer restore()

	db, err := config.ConnectDB(cfg, zlog)
	if err != nil {
		zlog.Error("database connection failed", zap.Error(err))
		return err
	}
	defer func() {
		if err := config.CloseDB(db); err != nil {
			zlog.Error("failed to close database", zap.Error(err))
		}
	}()

	if err := migration.Migrate(db); err != nil {
		zlog.Error("database migration failed", zap.Error(err))
		return err
	}
	zlog.Info("database migration complete")

	app, err := config.NewApp(db, cfg, zlog)
	if err != nil {
		zlog.Error("failed to build app", zap.Error(err))
		return err
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer func() {
		signal.Stop(quit)
		close(quit)
	}()
	go func() {
		if _, ok := <-quit; ok {
			zlog.Info("gracefully shutting down")
			_ = app.Shutdown()
		}
	}()

	zlog.Info("starting server", zap.String("port", cfg.AppPort))
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		zlog.Error("server stopped", zap.Error(err))
		return err
	}
	return nil
}
