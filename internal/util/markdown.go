package util

import (
	"fmt"
	"strings"
)

// MarkdownTable renders headers and rows as a GitHub-style markdown table.
// aligns takes one of "l", "c", "r" per column; nil means all centered.
func MarkdownTable(headers []string, rows [][]string, aligns []string) (string, error) {
	if len(rows) == 0 && len(headers) == 0 {
		return "", nil
	}
	if len(headers) == 0 {
		headers, rows = rows[0], rows[1:]
	}

	n := len(headers)
	if aligns == nil {
		aligns = make([]string, n)
		for i := range aligns {
			aligns[i] = "c"
		}
	}
	if len(aligns) != n {
		return "", fmt.Errorf("markdown table: %d aligns for %d columns", len(aligns), n)
	}

	sep := make([]string, n)
	for i, a := range aligns {
		switch a {
		case "l":
			sep[i] = ":---"
		case "r":
			sep[i] = "---:"
		case "c":
			sep[i] = ":---:"
		default:
			return "", fmt.Errorf("markdown table: unknown align %q", a)
		}
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		b.WriteString("| ")
		b.WriteString(strings.Join(cells, " | "))
		b.WriteString(" |\n")
	}
	writeRow(headers)
	writeRow(sep)
	for _, row := range rows {
		writeRow(row)
	}
	return strings.TrimRight(b.String(), "\n"), nil
}
