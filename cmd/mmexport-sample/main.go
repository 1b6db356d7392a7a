package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"mmexport/internal/cli"
	"mmexport/internal/core"
	"mmexport/internal/log"
	"mmexport/internal/storage"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mmexport-sample <backup-file>",
	Short: "Write a demo Money Manager backup",
	Long: `mmexport-sample creates a small Money Manager backup with expenses in the
previous and the current month, to try mmexport without a real backup.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := cli.SetupLogger(0)
		return writeSample(cmd.Context(), logger, args[0], time.Now())
	},
}

var assets = []struct{ uid, name string }{
	{"A-CASH", "Efectivo"},
	{"A-BANK", "Transferencia"},
	{"A-CC", "T. Crédito"},
	{"A-DC", "T. Débito"},
	{"A-TI", "Tickets"},
	{"A-PP", "PayPal"},
	{"A-OLD", "Hucha"},
}

var categories = []struct{ uid, name string }{
	{"C-FOOD", "Comida/Supermercado"},
	{"C-CINE", "Ocio/Cine"},
	{"C-RENT", "Casa/Alquiler"},
	{"C-TRAN", "Transporte"},
	{"C-SAL", "Nómina"},
}

func writeSample(ctx context.Context, logger *log.Logger, path string, now time.Time) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s already exists", core.ErrArgument, path)
	}

	f, err := storage.NewFixture(path)
	if err != nil {
		return err
	}
	defer f.Close()

	for _, a := range assets {
		if err := f.AddAsset(ctx, a.uid, a.name); err != nil {
			return err
		}
	}
	for _, c := range categories {
		if err := f.AddCategory(ctx, c.uid, c.name); err != nil {
			return err
		}
	}

	prev := now.AddDate(0, 0, -now.Day()+1).AddDate(0, -1, 0)
	cur := now
	day := func(t time.Time, d int) core.Date {
		return core.NewDate(t.Year(), t.Month(), d)
	}

	expenses := []storage.FixtureExpense{
		{UID: "E1", Date: day(prev, 1), Category: "C-RENT", Asset: "A-BANK", Comment: "Alquiler", Amount: 750},
		{UID: "E2", Date: day(prev, 3), Category: "C-FOOD", Asset: "A-CC", Comment: "Mercadona", Amount: 54.37},
		{UID: "E3", Date: day(prev, 9), Category: "C-CINE", Asset: "A-PP", Comment: "Estreno", Amount: 8.5},
		{UID: "E4", Date: day(prev, 14), Category: "C-TRAN", Asset: "A-DC", Comment: "Abono", Amount: 20},
		{UID: "E5", Date: day(prev, 20), Category: "C-FOOD", Asset: "A-TI", Comment: "Menú", Amount: 11.9},
		{UID: "E6", Date: day(prev, 22), Category: "C-FOOD", Asset: "A-CASH", Comment: "Pan", Amount: 1.2},
		{UID: "E7", Date: day(prev, 25), Category: "C-CINE", Asset: "A-OLD", Comment: "Palomitas", Amount: 4.75},
		{UID: "E8", Date: day(prev, 26), Category: "C-FOOD", Asset: "A-CC", Comment: "Borrado", Amount: 99, Deleted: true},
		{UID: "E9", Date: day(prev, 28), Category: "C-SAL", Asset: "A-BANK", Comment: "Nómina", Amount: 1800, Income: true},
		{UID: "E10", Date: day(cur, 1), Category: "C-RENT", Asset: "A-BANK", Comment: "Alquiler", Amount: 750},
	}
	for _, e := range expenses {
		if err := f.AddExpense(ctx, e); err != nil {
			return err
		}
	}

	logger.Info("Sample backup written",
		log.FieldSource, path,
		log.FieldRecords, len(expenses))
	return nil
}
