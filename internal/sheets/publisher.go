package sheets

import (
	"context"
	"fmt"
	"log/slog"

	"mmexport/internal/log"
	"mmexport/internal/report"
)

// Publisher appends reports to a yearly sheet through a RowAppender.
type Publisher struct {
	Appender  RowAppender
	SheetName string
}

func (p Publisher) Publish(ctx context.Context, rep *report.Report) error {
	sheet := YearSheetName(p.SheetName, rep.Range.Start.Year())
	ref, err := p.Appender.AppendRows(ctx, sheet, ReportRows(rep))
	if err != nil {
		return fmt.Errorf("append report to %s: %w", sheet, err)
	}
	slog.InfoContext(ctx, "Report appended to sheet",
		log.FieldSheet, sheet,
		log.FieldSheetsRef, ref,
		log.FieldRecords, rep.Len())
	return nil
}
