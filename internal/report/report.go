// Package report aggregates normalized records into the semicolon
// separated export with its running total.
package report

import (
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"mmexport/internal/core"
)

// Header is the first line of every report.
const Header = "fecha;categoría;comentario;importe;forma pago"

const (
	separator   = ";"
	totalPrefix = "Total: "
)

// Report is the ordered list of records of one run. The total is the sum
// of the raw amounts, not of the formatted ones.
type Report struct {
	Range   core.DateRange
	Records []core.Record
	total   decimal.Decimal
}

func New(r core.DateRange) *Report {
	return &Report{Range: r}
}

// Add appends rec and accumulates the raw amount it was built from.
func (r *Report) Add(raw core.RawRecord, rec core.Record) {
	r.Records = append(r.Records, rec)
	r.total = r.total.Add(raw.Amount)
}

// Total returns the accumulated amount rounded to cents.
func (r *Report) Total() decimal.Decimal {
	return r.total.Round(2)
}

// TotalText renders the total. A whole total of a non-empty report keeps one
// decimal ("10.0"); an empty report prints "0".
func (r *Report) TotalText() string {
	total := r.Total()
	if len(r.Records) > 0 && total.IsInteger() {
		return total.StringFixed(1)
	}
	return total.String()
}

// Len returns the number of records.
func (r *Report) Len() int {
	return len(r.Records)
}

// Lines returns the header, one line per record and the total line.
func (r *Report) Lines() []string {
	lines := make([]string, 0, len(r.Records)+2)
	lines = append(lines, Header)
	for _, rec := range r.Records {
		lines = append(lines, strings.Join(rec.Fields(), separator))
	}
	lines = append(lines, totalPrefix+r.TotalText())
	return lines
}

// Rows returns the records as table rows, header first, without the total.
func (r *Report) Rows() [][]string {
	rows := make([][]string, 0, len(r.Records)+1)
	rows = append(rows, strings.Split(Header, separator))
	for _, rec := range r.Records {
		rows = append(rows, rec.Fields())
	}
	return rows
}

// String renders the report. There is no newline after the total line.
func (r *Report) String() string {
	return strings.Join(r.Lines(), "\n")
}

// WriteTo writes the rendered report followed by a newline.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, r.String()+"\n")
	return int64(n), err
}
