package sheets

import (
	"fmt"
	"strings"

	"mmexport/internal/report"
)

// ReportRows converts a report into spreadsheet rows: a title row naming the
// range, the header, one row per record and the total.
func ReportRows(rep *report.Report) [][]any {
	rows := make([][]any, 0, rep.Len()+3)
	rows = append(rows, []any{fmt.Sprintf("%s / %s", rep.Range.Start, rep.Range.End)})
	for _, fields := range rep.Rows() {
		row := make([]any, len(fields))
		for i, f := range fields {
			row[i] = f
		}
		rows = append(rows, row)
	}
	rows = append(rows, []any{"Total", rep.TotalText()})
	return rows
}

// YearSheetName prefixes the sheet base name with the report year, the way
// yearly expense sheets are named ("2024 Gastos"). Names that already start
// with a year are kept.
func YearSheetName(base string, year int) string {
	base = strings.TrimSpace(base)
	prefix := fmt.Sprintf("%d ", year)
	if strings.HasPrefix(base, prefix) {
		return base
	}
	return prefix + base
}
