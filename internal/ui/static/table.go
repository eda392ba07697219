// Package static provides non-interactive terminal output components.
package static

import (
	"io"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/mattn/go-isatty"
)

// RenderTable creates a formatted table with proper column alignment.
// On a terminal, headers and rows are rendered with lipgloss/table, which
// calculates column widths from content; no borders are drawn. When out is
// not a terminal (piped or redirected), rows are emitted tab-separated
// without styling so the output stays script-friendly.
func RenderTable(out io.Writer, headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	if !writerIsTerminal(out) {
		return renderPlain(headers, rows)
	}

	var output strings.Builder

	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).PaddingRight(2)
			}
			return lipgloss.NewStyle().PaddingRight(2)
		})

	output.WriteString(t.String())
	output.WriteString("\n")

	return output.String()
}

func renderPlain(headers []string, rows [][]string) string {
	var output strings.Builder
	output.WriteString(strings.Join(headers, "\t"))
	output.WriteString("\n")
	for _, row := range rows {
		output.WriteString(strings.Join(row, "\t"))
		output.WriteString("\n")
	}
	return output.String()
}

func writerIsTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
