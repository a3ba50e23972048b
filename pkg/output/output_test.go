package output

import "testing"

func TestTableAddRow(t *testing.T) {
	table := NewTable([]string{"SLUG", "NAME"})
	if table == nil {
		t.Fatal("NewTable returned nil")
	}

	table.AddRow([]string{"web", "Web Frontend"})
	table.AddRow([]string{"api", "API"})

	if len(table.rows) != 2 {
		t.Errorf("expected 2 rows, got %d", len(table.rows))
	}
	if len(table.headers) != 2 {
		t.Errorf("expected 2 headers, got %d", len(table.headers))
	}
}
