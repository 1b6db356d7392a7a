package sheets

import (
	"context"
)

// Ports for outbound adapters.
type (
	// RowAppender appends rows at the bottom of a named sheet and returns the
	// range that was written.
	RowAppender interface {
		AppendRows(ctx context.Context, sheet string, rows [][]any) (rowRef string, err error)
	}
)
