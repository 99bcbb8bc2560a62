// cmd/fitstic-server/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Lorenzo-Biondi/FITSTIC-UI/internal/apps"
	"github.com/Lorenzo-Biondi/FITSTIC-UI/internal/apps/diabetes"
	"github.com/Lorenzo-Biondi/FITSTIC-UI/internal/apps/penguins"
	"github.com/Lorenzo-Biondi/FITSTIC-UI/internal/apps/titanic"
	"github.com/Lorenzo-Biondi/FITSTIC-UI/internal/common/config"
	"github.com/Lorenzo-Biondi/FITSTIC-UI/internal/common/logger"
	"github.com/Lorenzo-Biondi/FITSTIC-UI/internal/common/metrics"
	"github.com/Lorenzo-Biondi/FITSTIC-UI/internal/common/observability"
	"github.com/Lorenzo-Biondi/FITSTIC-UI/internal/model"
	"github.com/Lorenzo-Biondi/FITSTIC-UI/internal/server"
	"github.com/Lorenzo-Biondi/FITSTIC-UI/pkg/registry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootstrap := logger.New("info", "console")
		bootstrap.Fatal("config load failed", zap.Error(err))
	}

	var zapLog *zap.Logger
	if cfg.Logging.File.Path != "" {
		zapLog = logger.NewWithFile(cfg.Logging.Level, cfg.Logging.Format, logger.FileConfig{
			Path:       cfg.Logging.File.Path,
			MaxSizeMB:  cfg.Logging.File.MaxSizeMB,
			MaxAge:     cfg.Logging.File.MaxAge,
			MaxBackups: cfg.Logging.File.MaxBackups,
		})
	} else {
		zapLog = logger.New(cfg.Logging.Level, cfg.Logging.Format)
	}
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting prediction server...",
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	// --- Load models and register apps ---
	// A missing or corrupt artifact keeps its app registered in a degraded
	// state: the server still starts and the app answers 503 on predict.
	applications := []apps.App{}

	if cfg.ModelEnabled(penguins.AppID) {
		m := loadModel(cfg.ModelPath(penguins.AppID), penguins.AppID, zapLog)
		applications = append(applications, penguins.NewHandler(penguins.LoadConfig(), m, log))
	}

	if cfg.ModelEnabled(titanic.AppID) {
		m := loadModel(cfg.ModelPath(titanic.AppID), titanic.AppID, zapLog)
		applications = append(applications, titanic.NewHandler(titanic.LoadConfig(), m, log))
	}

	if cfg.ModelEnabled(diabetes.AppID) {
		m := loadModel(cfg.ModelPath(diabetes.AppID), diabetes.AppID, zapLog)
		applications = append(applications, diabetes.NewHandler(diabetes.LoadConfig(), m, log))
	}

	zapLog.Info("Applications registered", zap.Int("count", len(applications)))

	reg := registry.Build(cfg.App.Version, applications)

	// --- HTTP Server ---
	srv := server.New(cfg.HTTP, applications, reg, obs, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		zapLog.Info("Shutdown signal received, stopping server...", zap.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil {
			zapLog.Error("Server exited unexpectedly", zap.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		zapLog.Error("Error stopping server", zap.Error(err))
	}

	zapLog.Info("Prediction server stopped gracefully")
}

// loadModel reads one artifact from disk. Failures are logged and reported
// through the models_loaded gauge rather than aborting startup.
func loadModel(path, appID string, log *zap.Logger) model.Classifier {
	m, err := model.Load(path)
	if err != nil {
		log.Error("model load failed",
			zap.String("app", appID),
			zap.String("path", path),
			zap.Error(err),
		)
		metrics.ModelsLoaded.WithLabelValues(appID).Set(0)
		return nil
	}

	log.Info("model loaded",
		zap.String("app", appID),
		zap.String("path", path),
		zap.Strings("classes", m.Classes()),
	)
	metrics.ModelsLoaded.WithLabelValues(appID).Set(1)
	return m
}
