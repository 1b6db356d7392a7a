package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/davecgh/go-spew/spew"

	"mmexport/internal/core"
	"mmexport/internal/log"
	"mmexport/internal/report"
	"mmexport/internal/storage"
)

// Publisher delivers a finished report somewhere.
type Publisher interface {
	Publish(ctx context.Context, rep *report.Report) error
}

// WriterPublisher prints the report to an io.Writer, usually stdout.
type WriterPublisher struct {
	W io.Writer
}

func (p WriterPublisher) Publish(_ context.Context, rep *report.Report) error {
	if _, err := rep.WriteTo(p.W); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// ExportService turns the expenses of a date range into a report and hands
// it to its publishers.
type ExportService struct {
	store      *storage.Store
	logger     *log.Logger
	publishers []Publisher
}

func NewExportService(store *storage.Store, logger *log.Logger, publishers ...Publisher) *ExportService {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	return &ExportService{
		store:      store,
		logger:     logger.WithComponent(log.ComponentExport),
		publishers: publishers,
	}
}

// Build reads the expenses in r and transforms them, in store order, into a
// report.
func (s *ExportService) Build(ctx context.Context, r core.DateRange) (*report.Report, error) {
	s.logger.DebugContext(ctx, "Date range resolved",
		log.FieldOperation, log.OpResolve,
		log.FieldStart, r.Start.String(),
		log.FieldEnd, r.End.String())

	cursor, err := s.store.Expenses(ctx, r)
	if err != nil {
		return nil, err
	}
	defer cursor.Close()

	dumpRecords := s.logger.Enabled(ctx, slog.LevelDebug)

	rep := report.New(r)
	for raw, err := range cursor.All() {
		if err != nil {
			return nil, err
		}
		if dumpRecords {
			s.logger.DebugContext(ctx, "Raw expense", log.FieldRecord, spew.Sdump(raw))
		}

		rec, err := core.Transform(raw)
		if err != nil {
			return nil, fmt.Errorf("transform expense dated %q: %w", raw.TxDate, err)
		}
		s.logger.TraceContext(ctx, "Payment method",
			log.FieldPayment, raw.Payment,
			log.FieldCode, rec.Payment.Code())

		rep.Add(raw, rec)
	}

	s.logger.DebugContext(ctx, "Report built",
		log.FieldOperation, log.OpRender,
		log.FieldRecords, rep.Len(),
		log.FieldTotal, rep.TotalText())

	return rep, nil
}

// Export builds the report for r and publishes it to every publisher. A
// failing publisher does not stop the others; their errors are joined.
func (s *ExportService) Export(ctx context.Context, r core.DateRange) (*report.Report, error) {
	rep, err := s.Build(ctx, r)
	if err != nil {
		return nil, err
	}

	var errs []error
	for _, p := range s.publishers {
		if err := p.Publish(ctx, rep); err != nil {
			s.logger.ErrorContext(ctx, "Failed to publish report",
				log.FieldOperation, log.OpPublish,
				log.FieldSink, fmt.Sprintf("%T", p),
				log.FieldError, err)
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return rep, fmt.Errorf("publish report: %w", errors.Join(errs...))
	}

	return rep, nil
}

// Close closes the store
func (s *ExportService) Close() error {
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			return fmt.Errorf("close store: %w", err)
		}
	}
	return nil
}
