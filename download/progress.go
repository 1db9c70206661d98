package download

import (
	"fmt"
	"os"
	"strings"

	"github.com/lectern-cli/lectern/util"
)

// Glyphs of the terminal progress bar.
const (
	barFilled = "█"
	barEmpty  = "░"
)

// Bar returns a Progress that renders an in-place terminal bar prefixed by
// title. Rendering is write-only and never blocks the transfer loop.
// Call the returned done func to finish the line.
func Bar(title string) (progress Progress, done func()) {
	width := 28
	if w, _, err := util.TerminalSize(); err == nil {
		width = barWidth(w, title)
	}

	render := func(written, total int64) {
		var bar string
		if total > 0 {
			filled := int(written * int64(width) / total)
			filled = util.Min(filled, width)
			bar = fmt.Sprintf("%s%s %3d%%",
				strings.Repeat(barFilled, filled),
				strings.Repeat(barEmpty, width-filled),
				written*100/total,
			)
		} else {
			// Unknown length: byte counter only.
			bar = util.Bytes(written)
		}
		fmt.Fprintf(os.Stdout, "\r%s %s %s", title, bar, util.Bytes(written))
	}

	return render, func() { fmt.Fprintln(os.Stdout) }
}

// barWidth sizes the bar to the terminal, leaving room for the title and
// the byte counter. A long title must never drive the width negative.
func barWidth(terminal int, title string) int {
	if terminal <= 50 {
		return 28
	}
	return util.Max(util.Min(terminal-len(title)-30, 48), 10)
}
