package display

import (
	"bufio"
	"io"
	"strings"

	"github.com/crillab/gopherlogic/truth"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

// Text renders truth tables as aligned text columns.
type Text struct {
	Glyphs bool // Use logical symbols in the header
	Color  bool // Color true and false cells
}

// center pads s with spaces so that it is width columns wide,
// the extra space, if any, going to the right.
func center(s string, width int) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

// Render writes the table on w:
// a header line, a separator line, then one line of T and F per row.
func (r Text) Render(w io.Writer, t *truth.Table) error {
	trueColor := color.New(color.FgGreen, color.Bold)
	falseColor := color.New(color.FgRed)
	if r.Color {
		trueColor.EnableColor()
		falseColor.EnableColor()
	} else {
		trueColor.DisableColor()
		falseColor.DisableColor()
	}
	bw := bufio.NewWriter(w)
	widths := make([]int, len(t.Header))
	labels := make([]string, len(t.Header))
	seps := make([]string, len(t.Header))
	for j, label := range t.Header {
		if r.Glyphs {
			label = Symbolize(label)
		}
		widths[j] = runewidth.StringWidth(label) + 2
		labels[j] = center(label, widths[j])
		seps[j] = strings.Repeat("-", widths[j])
	}
	bw.WriteString(strings.Join(labels, "|") + "\n")
	bw.WriteString(strings.Join(seps, "+") + "\n")
	cells := make([]string, len(t.Header))
	for _, row := range t.Rows {
		for j, b := range row {
			if b {
				cells[j] = trueColor.Sprint(center("T", widths[j]))
			} else {
				cells[j] = falseColor.Sprint(center("F", widths[j]))
			}
		}
		bw.WriteString(strings.Join(cells, "|") + "\n")
	}
	return bw.Flush()
}
