package cli

import (
	"io"
	"math"

	"github.com/gobeaver/filelike"
	"github.com/gobeaver/filelike/internal/logger"
	"github.com/pterm/pterm"
)

// transferProgress turns SendFile progress callbacks into a pterm progress
// bar when the total is known, or into debug log lines when it is not.
type transferProgress struct {
	label string
	w     io.Writer
	bar   *pterm.ProgressbarPrinter
	last  int64
}

func newTransferProgress(label string, w io.Writer) *transferProgress {
	return &transferProgress{label: label, w: w}
}

// Func returns the callback to pass to filelike.WithProgress
func (p *transferProgress) Func() filelike.ProgressFunc {
	return func(transferred, total int64) {
		delta := transferred - p.last
		p.last = transferred

		if total < 0 {
			logger.Trace("transfer progress", logger.Fields{
				logger.FieldSource: p.label,
				logger.FieldBytes:  transferred,
			})
			return
		}

		if p.bar == nil {
			bar, err := pterm.DefaultProgressbar.
				WithWriter(p.w).
				WithTitle(p.label).
				WithTotal(clampToInt(total)).
				WithShowCount(false).
				WithRemoveWhenDone(true).
				Start()
			if err != nil {
				return
			}
			p.bar = bar
		}
		p.bar.Add(clampToInt(delta))
	}
}

// Stop removes the bar, if one was started
func (p *transferProgress) Stop() {
	if p.bar != nil {
		_, _ = p.bar.Stop()
		p.bar = nil
	}
}

func clampToInt(v int64) int {
	if v <= 0 {
		return 0
	}
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(v)
}
