// Package cli provides the command-line interface for Tonelab.
package cli

import (
	"fmt"
	"strconv"

	"github.com/tonelab/tonelab/internal/colour"
	"github.com/tonelab/tonelab/internal/scale"
)

// renderScalesTable formats generated scales as a table, one row per step
// and role. roleFilter limits rows to a single role when non-empty; preview
// appends ANSI swatch blocks for terminals.
func renderScalesTable(scales map[scale.Step]*scale.StepScales, roleFilter string, preview bool) string {
	headers := []string{"STEP", "ROLE", "COLOUR", "BLENDED", "ALPHA", "RATIO", "AA", "AAA"}
	if preview {
		headers = append(headers, "")
	}

	table := NewTable(headers)
	for _, step := range scale.Steps() {
		stepScales, ok := scales[step]
		if !ok {
			continue
		}
		if stepScales == nil {
			row := []string{strconv.Itoa(int(step)), "-", "(undefined)", "", "", "", "", ""}
			if preview {
				row = append(row, "")
			}
			table.AddRow(row)
			continue
		}

		for _, name := range scale.RoleNames {
			if roleFilter != "" && name != roleFilter {
				continue
			}
			result, _ := stepScales.Role(name)
			table.AddRow(resultRow(step, name, result, preview))
		}
	}
	return table.Render()
}

// resultRow formats one role result as a table row.
func resultRow(step scale.Step, role string, r scale.Result, preview bool) []string {
	alpha := "-"
	if r.Alpha > 0 {
		alpha = strconv.FormatFloat(r.Alpha, 'f', 2, 64)
	}

	row := []string{
		strconv.Itoa(int(step)),
		role,
		r.Hex,
		r.BlendedHex,
		alpha,
		fmt.Sprintf("%.2f", r.ContrastRatio),
		passFail(r.WCAG.NormalText.AA),
		passFail(r.WCAG.NormalText.AAA),
	}
	if preview {
		row = append(row, previewBlock(r))
	}
	return row
}

// previewBlock renders an ANSI swatch for the result's effective colour.
func previewBlock(r scale.Result) string {
	hex := r.BlendedHex
	if hex == "" {
		hex = r.Hex
	}
	c, err := colour.ParseHex(hex)
	if err != nil {
		return ""
	}
	return colour.Preview(c, 4)
}

func passFail(ok bool) string {
	if ok {
		return "pass"
	}
	return "FAIL"
}
