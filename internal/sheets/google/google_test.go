package google

import (
	"context"
	"strings"
	"testing"
)

func TestNew_MissingSpreadsheetID(t *testing.T) {
	_, err := New(context.Background(), "  ", Credentials{JSON: "{}"})
	if err == nil {
		t.Fatal("expected error for missing spreadsheet ID")
	}
	if err.Error() != "missing spreadsheet ID" {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestNew_MissingCredentials(t *testing.T) {
	_, err := New(context.Background(), "sheet-id", Credentials{})
	if err == nil {
		t.Fatal("expected error for missing credentials")
	}
	if !strings.Contains(err.Error(), "missing service account credentials") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestNew_UnreadableCredentialsFile(t *testing.T) {
	_, err := New(context.Background(), "sheet-id", Credentials{File: "/non/existent/sa.json"})
	if err == nil {
		t.Fatal("expected error for unreadable credentials file")
	}
	if !strings.Contains(err.Error(), "read service account file") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestClient_AppendRowsWithoutService(t *testing.T) {
	c := &Client{spreadsheetID: "test"} // svc is nil

	_, err := c.AppendRows(context.Background(), "2024 Gastos", [][]any{{"x"}})
	if err == nil {
		t.Fatal("expected error with nil service")
	}
}

func TestA1Range(t *testing.T) {
	tests := []struct {
		sheet string
		want  string
	}{
		{"Gastos", "'Gastos'!A1"},
		{"2024 Gastos", "'2024 Gastos'!A1"},
		{"Tom's", "'Tom''s'!A1"},
	}
	for _, tt := range tests {
		if got := a1Range(tt.sheet, "A1"); got != tt.want {
			t.Errorf("a1Range(%q) = %q, want %q", tt.sheet, got, tt.want)
		}
	}
}
