package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/opencode-ai/stylecfg/internal/color"
	"github.com/opencode-ai/stylecfg/internal/tui/styles"
)

const tablePadding = 2

// writeTable aligns rows under headers. Color swatches belong in the last
// column, since their escape sequences count towards the cell width.
func writeTable(out io.Writer, headers []string, rows [][]string) error {
	writer := tabwriter.NewWriter(out, 0, 0, tablePadding, ' ', 0)
	if len(headers) > 0 {
		fmt.Fprintln(writer, strings.Join(headers, "\t"))
	}
	for _, row := range rows {
		fmt.Fprintln(writer, strings.Join(row, "\t"))
	}
	return writer.Flush()
}

// colorCell renders a color as hex, with a swatch in front when swatches
// are enabled. A nil color is an empty cell.
func colorCell(c *color.Color, swatches bool) string {
	if c == nil {
		return ""
	}
	if swatches {
		return styles.Swatch(*c) + " " + c.Hex()
	}
	return c.Hex()
}

// listCell joins variant names, or "-" when there are none.
func listCell(names []string) string {
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ", ")
}

func formatYesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
