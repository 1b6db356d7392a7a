package memory

import (
	"context"
	"fmt"
	"sync"

	ports "mmexport/internal/sheets"
)

var _ ports.RowAppender = (*Store)(nil)

// Store keeps appended rows per sheet in memory.
type Store struct {
	mu     sync.Mutex
	sheets map[string][][]any
}

func New() *Store {
	return &Store{sheets: map[string][][]any{}}
}

// AppendRows stores the rows and returns a synthetic range reference.
func (s *Store) AppendRows(_ context.Context, sheet string, rows [][]any) (string, error) {
	if sheet == "" {
		return "", fmt.Errorf("empty sheet name")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	first := len(s.sheets[sheet]) + 1
	for _, row := range rows {
		s.sheets[sheet] = append(s.sheets[sheet], append([]any(nil), row...))
	}
	return fmt.Sprintf("mem:%s!%d:%d", sheet, first, len(s.sheets[sheet])), nil
}

// Rows returns a copy of the rows of sheet.
func (s *Store) Rows(sheet string) [][]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([][]any, len(s.sheets[sheet]))
	for i, row := range s.sheets[sheet] {
		out[i] = append([]any(nil), row...)
	}
	return out
}
