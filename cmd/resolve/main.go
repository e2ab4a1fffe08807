// Command resolve runs the evacuation-order county resolution batch: it
// loads the FIPS reference registry, reads the raw alert file, resolves
// every row to a county FIPS code, and writes the clean dataset plus the
// unresolved audit file.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sofiavega98/HHSS-health-impacts/internal/adapter/csvfile"
	"github.com/sofiavega98/HHSS-health-impacts/internal/adapter/httpadapter"
	kafkaadapter "github.com/sofiavega98/HHSS-health-impacts/internal/adapter/kafka"
	"github.com/sofiavega98/HHSS-health-impacts/internal/config"
	"github.com/sofiavega98/HHSS-health-impacts/internal/observability"
	"github.com/sofiavega98/HHSS-health-impacts/internal/pipeline"
	"github.com/sofiavega98/HHSS-health-impacts/internal/registry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Optional metrics endpoint for long runs.
	var srv *httpadapter.Server
	if cfg.MetricsAddr != "" {
		srv = httpadapter.NewServer(cfg.MetricsAddr, logger)
		go func() {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("http server error", "error", err)
			}
		}()
	}

	code := run(ctx, cfg, logger, metrics)

	if srv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("http server shutdown error", "error", err)
		}
	}
	os.Exit(code)
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics) int {
	// The registry is the one fatal dependency: without it no record can be
	// resolved, so the batch halts before touching any input.
	refFile, err := os.Open(cfg.ReferencePath)
	if err != nil {
		logger.Error("failed to open reference source", "path", cfg.ReferencePath, "error", err)
		return 1
	}
	reg, err := registry.Load(refFile)
	refFile.Close()
	if err != nil {
		logger.Error("failed to build reference registry", "path", cfg.ReferencePath, "error", err)
		return 1
	}
	logger.Info("reference registry loaded", "entries", reg.Len())

	inFile, err := os.Open(cfg.InputPath)
	if err != nil {
		logger.Error("failed to open alert file", "path", cfg.InputPath, "error", err)
		return 1
	}
	records, skipped, err := csvfile.ReadAlerts(inFile, csvfile.Options{
		Delimiter: cfg.InputDelimiter,
		Encoding:  cfg.InputEncoding,
	})
	inFile.Close()
	if err != nil {
		logger.Error("failed to read alert file", "path", cfg.InputPath, "error", err)
		return 1
	}
	if skipped > 0 {
		logger.Warn("skipped malformed input rows", "count", skipped)
	}

	result := pipeline.New(reg, logger, metrics).Run(records)

	if err := writeCSV(cfg.OutputPath, func(f *os.File) error {
		return csvfile.WriteResolved(f, result.Resolved)
	}); err != nil {
		logger.Error("failed to write clean dataset", "path", cfg.OutputPath, "error", err)
		return 1
	}
	if err := writeCSV(cfg.UnresolvedPath, func(f *os.File) error {
		return csvfile.WriteUnresolved(f, result.Unresolved)
	}); err != nil {
		logger.Error("failed to write unresolved audit", "path", cfg.UnresolvedPath, "error", err)
		return 1
	}
	logger.Info("datasets written",
		"clean", cfg.OutputPath,
		"clean_rows", len(result.Resolved),
		"audit", cfg.UnresolvedPath,
		"audit_rows", len(result.Unresolved),
	)

	if len(cfg.KafkaBrokers) > 0 {
		writer := kafkaadapter.NewWriter(cfg.KafkaBrokers, cfg.KafkaSinkTopic, logger)
		defer func() {
			if err := writer.Close(); err != nil {
				logger.Error("kafka writer close error", "error", err)
			}
		}()
		if err := writer.PublishBatch(ctx, result.Resolved); err != nil {
			logger.Error("failed to publish resolved records", "topic", cfg.KafkaSinkTopic, "error", err)
			return 1
		}
		logger.Info("resolved records published", "topic", cfg.KafkaSinkTopic, "count", len(result.Resolved))
	}

	return 0
}

func writeCSV(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
