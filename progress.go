package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"scrambler/internal/kdf"
)

const barSize = 40

// progressBar draws key derivation progress on a single terminal line.
type progressBar struct {
	w     io.Writer
	style style
}

func (p *progressBar) Update(st kdf.Status) {
	filled := st.Percent * barSize / 100
	if filled > barSize {
		filled = barSize
	}
	fmt.Fprintf(p.w, "\r%s[%s%s]%s %3d%%  elapsed %s  remaining %s ",
		p.style.cyan,
		strings.Repeat("#", filled), strings.Repeat(".", barSize-filled),
		p.style.zero,
		st.Percent, formatDuration(st.Elapsed), formatDuration(st.Remaining))
	if st.Round >= st.Rounds {
		fmt.Fprintln(p.w)
	}
}

func formatDuration(d time.Duration) string {
	return d.Round(time.Second).String()
}
