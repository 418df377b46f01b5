package main

import (
	"io"
	"os"

	"github.com/schollz/progressbar/v3"

	"avtool/engine"
)

// progressRenderer draws a terminal progress bar from the engine's
// progress stream. A new bar starts with each encode (the first update
// after the previous bar finished) and clears itself on completion.
type progressRenderer struct {
	writer io.Writer
	bar    *progressbar.ProgressBar
}

// newProgressRenderer returns nil unless w is a terminal; without one
// the engine runs silently.
func newProgressRenderer(w *os.File) *progressRenderer {
	if !shouldColorize(w) {
		return nil
	}
	return &progressRenderer{writer: w}
}

// update consumes one engine progress event. Positions are tracked in
// centiseconds so fractional seconds still move the bar.
func (r *progressRenderer) update(p engine.Progress) {
	if p.Total <= 0 {
		return
	}

	if r.bar == nil {
		r.bar = progressbar.NewOptions64(int64(p.Total*100),
			progressbar.OptionSetDescription("Encoding"),
			progressbar.OptionSetWriter(r.writer),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: "░",
				BarStart:      "▐",
				BarEnd:        "▌",
			}),
			progressbar.OptionSetWidth(50),
			progressbar.OptionSetRenderBlankState(true),
			progressbar.OptionClearOnFinish(),
		)
	}

	r.bar.Set64(int64(p.Seconds * 100))
	if p.Seconds >= p.Total {
		r.bar.Finish()
		r.bar = nil
	}
}
