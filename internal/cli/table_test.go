// Package cli provides command-line interface utilities.
package cli

import (
	"strings"
	"testing"
)

func TestNewTable(t *testing.T) {
	headers := []string{"STEP", "ROLE", "COLOUR"}
	table := NewTable(headers)

	if table == nil {
		t.Fatal("NewTable returned nil")
	}

	if len(table.headers) != 3 {
		t.Errorf("Expected 3 headers, got %d", len(table.headers))
	}

	if table.padding != 2 {
		t.Errorf("Expected padding of 2, got %d", table.padding)
	}
}

func TestTableAddRow(t *testing.T) {
	table := NewTable([]string{"STEP", "ROLE"})

	// Add matching row
	table.AddRow([]string{"200", "high"})
	if len(table.rows) != 1 {
		t.Errorf("Expected 1 row, got %d", len(table.rows))
	}

	// Add row with fewer columns (should be padded)
	table.AddRow([]string{"300"})
	if len(table.rows) != 2 {
		t.Errorf("Expected 2 rows, got %d", len(table.rows))
	}
	if len(table.rows[1]) != 2 {
		t.Errorf("Expected row to be padded to 2 columns, got %d", len(table.rows[1]))
	}
	if table.rows[1][1] != "" {
		t.Errorf("Expected empty string for padded column, got %q", table.rows[1][1])
	}
}

func TestTableRender(t *testing.T) {
	table := NewTable([]string{"STEP", "ROLE", "COLOUR"})
	table.AddRow([]string{"200", "high", "#050014"})
	table.AddRow([]string{"2500", "low", "rgba(5, 0, 20, 0.54)"})

	output := table.Render()
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")

	// Header + separator + 2 data rows.
	if len(lines) != 4 {
		t.Fatalf("Expected 4 lines, got %d:\n%s", len(lines), output)
	}

	if !strings.HasPrefix(lines[0], "STEP") {
		t.Errorf("Header line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "----") {
		t.Errorf("Separator line = %q", lines[1])
	}
	if !strings.Contains(lines[3], "rgba(5, 0, 20, 0.54)") {
		t.Errorf("Row line = %q", lines[3])
	}

	// Columns align: "ROLE" and the role cells start at the same offset.
	headerIdx := strings.Index(lines[0], "ROLE")
	rowIdx := strings.Index(lines[2], "high")
	if headerIdx != rowIdx {
		t.Errorf("Column misaligned: header at %d, cell at %d", headerIdx, rowIdx)
	}
}

func TestTableRenderEmpty(t *testing.T) {
	table := NewTable(nil)
	if output := table.Render(); output != "" {
		t.Errorf("Expected empty output, got %q", output)
	}
}
