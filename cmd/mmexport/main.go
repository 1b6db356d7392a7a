package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mmexport/internal/cli"
	"mmexport/internal/config"
	"mmexport/internal/daterange"
	"mmexport/internal/log"
	"mmexport/internal/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// Load .env before reading the environment
	cli.LoadEnvFile()

	if err := newRootCmd(config.Load()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	var debug int

	cmd := &cobra.Command{
		Use:   "mmexport [flags] <backup-file>",
		Short: "Export Money Manager expenses as a semicolon separated report",
		Long: `mmexport reads the expenses of a Money Manager backup for a date range and
prints them as "fecha;categoría;comentario;importe;forma pago" lines followed
by their total.

Without dates the previous calendar month is exported. A month (number or
English/Spanish name) overrides explicit start and end dates.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				cfg.SourcePath = args[0]
			}
			if cmd.Flags().Changed("debug") {
				cfg.DebugLevel = debug
			}
			return run(cmd, cfg)
		},
	}

	cmd.Flags().StringVarP(&cfg.StartDate, "start", "s", cfg.StartDate, "first day to export (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&cfg.EndDate, "end", "e", cfg.EndDate, "last day to export (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&cfg.Month, "month", "m", cfg.Month, "month of the current year to export (1-12 or name)")
	cmd.Flags().CountVarP(&debug, "debug", "d", "increase diagnostics on stderr (-d, -dd)")

	return cmd
}

func run(cmd *cobra.Command, cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := cli.SetupLogger(cfg.DebugLevel)
	ctx, cancel := cli.SignalContext(logger)
	defer cancel()

	logger.DebugContext(ctx, "Starting mmexport", log.NewFields().
		WithOperation(log.OpStartup).
		WithRange(cfg.StartDate, cfg.EndDate).
		ToSlice()...)

	rng, err := daterange.New().Resolve(cfg.Query())
	if err != nil {
		return err
	}

	store, err := cli.OpenStore(ctx, logger, cfg.SourcePath)
	if err != nil {
		return err
	}

	pubs, cleanup, err := cli.Publishers(ctx, cfg, logger, cmd.OutOrStdout())
	if err != nil {
		store.Close()
		return err
	}
	defer cleanup()

	svc := services.NewExportService(store, logger, pubs...)
	defer svc.Close()

	if _, err := svc.Export(ctx, rng); err != nil {
		return err
	}
	return nil
}
