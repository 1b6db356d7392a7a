package services

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mmexport/internal/core"
	"mmexport/internal/daterange"
	"mmexport/internal/log"
	"mmexport/internal/report"
	"mmexport/internal/sheets"
	"mmexport/internal/sheets/memory"
	"mmexport/internal/storage"
)

const marchReport = "fecha;categoría;comentario;importe;forma pago\n" +
	"15/03/2024;Cine;Movie;8,50;P\n" +
	"Total: 8.5\n"

func newBackup(t *testing.T) string {
	t.Helper()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "backup.sqlite")

	f, err := storage.NewFixture(path)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, f.AddAsset(ctx, "a-paypal", "PayPal"))
	require.NoError(t, f.AddCategory(ctx, "c-cine", "Ocio/Cine"))
	require.NoError(t, f.AddExpense(ctx, storage.FixtureExpense{
		UID:      "e1",
		Date:     core.NewDate(2024, time.March, 15),
		Category: "c-cine",
		Asset:    "a-paypal",
		Comment:  "Movie",
		Amount:   8.5,
	}))
	return path
}

func newService(t *testing.T, logs *bytes.Buffer, pubs ...Publisher) *ExportService {
	t.Helper()
	store, err := storage.Open(context.Background(), newBackup(t))
	require.NoError(t, err)

	logger := log.New(log.Config{Level: log.LevelTrace, Output: logs})
	svc := NewExportService(store, logger, pubs...)
	t.Cleanup(func() { svc.Close() })
	return svc
}

func marchRange(t *testing.T) core.DateRange {
	t.Helper()
	now := func() time.Time { return time.Date(2024, time.June, 2, 0, 0, 0, 0, time.UTC) }
	return daterange.New(daterange.WithClock(now)).ResolveMonth("March")
}

func TestExportService_EndToEnd(t *testing.T) {
	var out, logs bytes.Buffer
	svc := newService(t, &logs, WriterPublisher{W: &out})

	rep, err := svc.Export(context.Background(), marchRange(t))
	require.NoError(t, err)

	assert.Equal(t, marchReport, out.String())
	assert.Equal(t, 1, rep.Len())
	assert.Equal(t, "8.5", rep.Total().String())

	// Diagnostics never reach the report writer
	assert.Contains(t, logs.String(), "Raw expense")
	assert.Contains(t, logs.String(), "level=TRACE")
	assert.NotContains(t, out.String(), "level=")
}

func TestExportService_Idempotent(t *testing.T) {
	var out bytes.Buffer
	svc := newService(t, &bytes.Buffer{}, WriterPublisher{W: &out})
	r := marchRange(t)

	_, err := svc.Export(context.Background(), r)
	require.NoError(t, err)
	first := out.String()
	out.Reset()

	_, err = svc.Export(context.Background(), r)
	require.NoError(t, err)
	assert.Equal(t, first, out.String())
}

func TestExportService_EmptyRange(t *testing.T) {
	var out bytes.Buffer
	svc := newService(t, &bytes.Buffer{}, WriterPublisher{W: &out})

	_, err := svc.Export(context.Background(), core.MonthRange(2023, time.January))
	require.NoError(t, err)
	assert.Equal(t, "fecha;categoría;comentario;importe;forma pago\nTotal: 0\n", out.String())
}

func TestExportService_QuietAtInfo(t *testing.T) {
	var logs bytes.Buffer
	store, err := storage.Open(context.Background(), newBackup(t))
	require.NoError(t, err)
	svc := NewExportService(store, log.New(log.Config{Level: log.LevelForDebug(0), Output: &logs}))
	defer svc.Close()

	_, err = svc.Build(context.Background(), marchRange(t))
	require.NoError(t, err)
	assert.Empty(t, logs.String())
}

func TestExportService_SheetSink(t *testing.T) {
	mem := memory.New()
	svc := newService(t, &bytes.Buffer{}, sheets.Publisher{Appender: mem, SheetName: "Gastos"})

	_, err := svc.Export(context.Background(), marchRange(t))
	require.NoError(t, err)

	rows := mem.Rows("2024 Gastos")
	require.Len(t, rows, 4)
	assert.Equal(t, []any{"15/03/2024", "Cine", "Movie", "8,50", "P"}, rows[2])
	assert.Equal(t, []any{"Total", "8.5"}, rows[3])
}

type failingPublisher struct{ err error }

func (p failingPublisher) Publish(context.Context, *report.Report) error { return p.err }

func TestExportService_PublisherErrorsAreJoined(t *testing.T) {
	var out bytes.Buffer
	errA := errors.New("sheet down")
	errB := errors.New("broker down")
	svc := newService(t, &bytes.Buffer{},
		failingPublisher{err: errA},
		WriterPublisher{W: &out},
		failingPublisher{err: errB})

	rep, err := svc.Export(context.Background(), marchRange(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)
	require.NotNil(t, rep)

	// A failing sink does not stop the others
	assert.Equal(t, marchReport, out.String())
}

func TestExportService_StoreClosed(t *testing.T) {
	svc := newService(t, &bytes.Buffer{})
	require.NoError(t, svc.Close())

	_, err := svc.Build(context.Background(), marchRange(t))
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrStoreAccess), "got %v", err)
	assert.False(t, strings.Contains(err.Error(), "Total"))
}
