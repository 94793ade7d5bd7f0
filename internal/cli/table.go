// Package cli provides command-line interface utilities.
package cli

import (
	"strings"
)

// Table represents a simple table formatter with dynamic column widths.
type Table struct {
	headers []string
	rows    [][]string
	padding int
}

// NewTable creates a new table with the given headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers: headers,
		rows:    make([][]string, 0),
		padding: 2, // 2 spaces between columns
	}
}

// AddRow adds a row to the table.
func (t *Table) AddRow(row []string) {
	if len(row) != len(t.headers) {
		// Pad or truncate to match header count.
		newRow := make([]string, len(t.headers))
		copy(newRow, row)
		t.rows = append(t.rows, newRow)
		return
	}
	t.rows = append(t.rows, row)
}

// Render formats and returns the table as a string.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	// Calculate column widths. The last column is excluded so trailing
	// cells with ANSI escapes do not distort the layout.
	colWidths := make([]int, len(t.headers))
	for i, h := range t.headers {
		colWidths[i] = len(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(colWidths)-1 && len(cell) > colWidths[i] {
				colWidths[i] = len(cell)
			}
		}
	}

	var result strings.Builder
	sep := strings.Repeat(" ", t.padding)

	// Format header.
	headerParts := make([]string, len(t.headers))
	for i, h := range t.headers {
		headerParts[i] = padRight(h, colWidths[i])
	}
	result.WriteString(strings.TrimRight(strings.Join(headerParts, sep), " "))
	result.WriteString("\n")

	// Format separator.
	sepParts := make([]string, len(t.headers))
	for i, w := range colWidths {
		sepParts[i] = strings.Repeat("-", w)
	}
	result.WriteString(strings.Join(sepParts, sep))
	result.WriteString("\n")

	// Format data rows.
	for _, row := range t.rows {
		rowParts := make([]string, len(row))
		for i, cell := range row {
			rowParts[i] = padRight(cell, colWidths[i])
		}
		result.WriteString(strings.TrimRight(strings.Join(rowParts, sep), " "))
		result.WriteString("\n")
	}

	return result.String()
}

// padRight pads a string with spaces on the right to reach the desired width.
// If the string is already longer than or equal to the width, it is returned
// unchanged.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
