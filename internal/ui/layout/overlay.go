package layout

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const resetSGR = "\x1b[0m"

// splice paints block onto lines with its top-left corner at column x and
// row y. Anything outside the width-by-len(lines) area is clipped, so blocks
// may sit partly or wholly off-canvas.
func splice(lines []string, block string, x, y, width int) {
	styled := strings.Contains(block, "\x1b")
	for i, row := range strings.Split(block, "\n") {
		r := y + i
		if r < 0 || r >= len(lines) {
			continue
		}

		start := x
		if start < 0 {
			row = ansi.TruncateLeft(row, -start, "")
			start = 0
		}
		if start >= width {
			continue
		}
		row = ansi.Truncate(row, width-start, "")
		rowWidth := ansi.StringWidth(row)
		if rowWidth == 0 {
			continue
		}

		line := lines[r]
		prefix := ansi.Truncate(line, start, "")
		if pw := ansi.StringWidth(prefix); pw < start {
			prefix += strings.Repeat(" ", start-pw)
		}
		suffix := ansi.TruncateLeft(line, start+rowWidth, "")

		var b strings.Builder
		b.WriteString(prefix)
		if styled {
			b.WriteString(resetSGR)
		}
		b.WriteString(row)
		if styled {
			b.WriteString(resetSGR)
		}
		b.WriteString(suffix)
		lines[r] = b.String()
	}
}
