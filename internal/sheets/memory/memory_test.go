package memory

import (
	"context"
	"testing"
)

func TestMemoryStoreAppendRows(t *testing.T) {
	s := New()
	ctx := context.Background()

	ref, err := s.AppendRows(ctx, "2024 Gastos", [][]any{{"a", "b"}, {"c"}})
	if err != nil || ref != "mem:2024 Gastos!1:2" {
		t.Fatalf("unexpected append: ref=%q err=%v", ref, err)
	}
	ref, err = s.AppendRows(ctx, "2024 Gastos", [][]any{{"d"}})
	if err != nil || ref != "mem:2024 Gastos!3:3" {
		t.Fatalf("unexpected append: ref=%q err=%v", ref, err)
	}

	rows := s.Rows("2024 Gastos")
	if len(rows) != 3 || rows[2][0] != "d" {
		t.Fatalf("unexpected rows: %v", rows)
	}

	// returned rows are copies
	rows[0][0] = "changed"
	if s.Rows("2024 Gastos")[0][0] != "a" {
		t.Fatal("Rows must return a copy")
	}
}

func TestMemoryStoreEmptySheet(t *testing.T) {
	if _, err := New().AppendRows(context.Background(), "", [][]any{{"x"}}); err == nil {
		t.Fatal("expected error for empty sheet name")
	}
}
