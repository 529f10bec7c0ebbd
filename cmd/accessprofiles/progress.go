package main

import (
	"fmt"
	"io"
	"strings"
)

// progressBar renders a single-line text progress bar, rewritten in place
// with carriage returns and finished with a newline.
type progressBar struct {
	w     io.Writer
	width int
}

func newProgressBar(w io.Writer, width int) *progressBar {
	return &progressBar{w: w, width: width}
}

// renderProgress steps a bar once per profile name. Used when no CSV is
// written, so every run reports per-profile progress.
func renderProgress(w io.Writer, names []string) {
	bar := newProgressBar(w, 40)
	for i, name := range names {
		bar.update(i+1, len(names), name)
	}
}

func (p *progressBar) update(current, total int, label string) {
	if total <= 0 {
		return
	}
	frac := float64(current) / float64(total)
	filled := int(float64(p.width) * frac)
	if filled > p.width {
		filled = p.width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("-", p.width-filled)
	fmt.Fprintf(p.w, "\r|%s| %6.2f%% (%d/%d) %s", bar, frac*100, current, total, label)
	if current >= total {
		fmt.Fprintln(p.w)
	}
}
