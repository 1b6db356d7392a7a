// Package cli provides common CLI initialization utilities shared by
// cmd/mmexport and cmd/mmexport-sample.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"mmexport/internal/amqp"
	"mmexport/internal/config"
	"mmexport/internal/log"
	"mmexport/internal/services"
	"mmexport/internal/sheets"
	gsheet "mmexport/internal/sheets/google"
	"mmexport/internal/storage"
)

// SetupLogger initializes structured logging on stderr for the given number
// of -d flags and sets it as the default logger.
func SetupLogger(debug int) *log.Logger {
	cfg := log.DefaultConfig()
	cfg.Level = log.LevelForDebug(debug)
	logger := log.New(cfg)
	log.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// OpenStore opens the backup read-only.
func OpenStore(ctx context.Context, logger *log.Logger, path string) (*storage.Store, error) {
	store, err := storage.Open(ctx, path)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to open backup",
			log.FieldOperation, log.OpOpen,
			log.FieldSource, path,
			log.FieldError, err)
		return nil, err
	}
	logger.DebugContext(ctx, "Backup opened", log.FieldSource, path)
	return store, nil
}

// Publishers builds the report sinks enabled by cfg. The report always goes
// to out; the Google Sheet and AMQP sinks are added when configured. The
// returned cleanup releases broker connections and is never nil.
func Publishers(ctx context.Context, cfg *config.Config, logger *log.Logger, out io.Writer) ([]services.Publisher, func(), error) {
	pubs := []services.Publisher{services.WriterPublisher{W: out}}
	var closers []func() error
	cleanup := func() {
		for _, c := range closers {
			if err := c(); err != nil {
				logger.Warn("Failed to close publisher", log.FieldError, err)
			}
		}
	}

	if cfg.SheetsEnabled() {
		client, err := gsheet.New(ctx, cfg.GoogleSpreadsheetID, gsheet.Credentials{
			JSON: cfg.GoogleServiceAccountJSON,
			File: cfg.GoogleServiceAccountFile,
		})
		if err != nil {
			cleanup()
			return nil, func() {}, fmt.Errorf("google sheets: %w", err)
		}
		pubs = append(pubs, sheets.Publisher{Appender: client, SheetName: cfg.GoogleSheetName})
		logger.WithComponent(log.ComponentSheets).DebugContext(ctx, "Sheets export enabled",
			log.FieldSheet, cfg.GoogleSheetName)
	}

	if cfg.AMQPEnabled() {
		client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			cleanup()
			return nil, func() {}, fmt.Errorf("amqp: %w", err)
		}
		closers = append(closers, client.Close)
		pubs = append(pubs, client)
		logger.WithComponent(log.ComponentAMQP).DebugContext(ctx, "AMQP publishing enabled",
			log.FieldExchange, cfg.AMQPExchange)
	}

	return pubs, cleanup, nil
}

// SignalContext returns a context cancelled on SIGINT or SIGTERM.
func SignalContext(logger *log.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigChan:
			logger.Info("Shutdown signal received", "signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigChan)
	}()

	return ctx, cancel
}
