// Package progress reports transfer progress on an interactive terminal.
// Reports are time-gated and rewrite a single status line in place; when the
// output is not a terminal, or the terminal type is unknown, reporting is
// silent, so engines can tick unconditionally without branching on terminal
// state.
package progress

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2/terminfo"
	_ "github.com/gdamore/tcell/v2/terminfo/base"
	"golang.org/x/term"
)

// updateFrequency is the minimum interval between two reports.
const updateFrequency = 60 * time.Second

// Reporter receives the running byte count from an engine loop. Tick is cheap
// when no report is due, so engines call it on every iteration.
type Reporter interface {
	Tick(transferred uint64)
}

// Nop returns a Reporter that never prints.
func Nop() Reporter { return nopReporter{} }

type nopReporter struct{}

func (nopReporter) Tick(uint64) {}

// ForTerminal returns a line-rewriting Reporter when f is an interactive
// terminal with a known $TERM, and a no-op Reporter otherwise. verb labels
// the report lines ("Written", "Read"); total is the expected final byte
// count, used for the completion fraction.
func ForTerminal(f *os.File, verb string, total uint64) Reporter {
	if !term.IsTerminal(int(f.Fd())) {
		return Nop()
	}
	ti, err := terminfo.LookupTerminfo(os.Getenv("TERM"))
	if err != nil {
		return Nop()
	}
	return newLineReporter(f, ti, verb, total, updateFrequency, time.Now)
}

// lineReporter prints at most one report per interval, overwriting its own
// previous line via the terminal's cursor-up capability.
type lineReporter struct {
	out   io.Writer
	ti    *terminfo.Terminfo
	verb  string
	total uint64
	every time.Duration
	now   func() time.Time

	last     time.Time
	lastN    uint64
	reported bool
}

func newLineReporter(out io.Writer, ti *terminfo.Terminfo, verb string, total uint64, every time.Duration, now func() time.Time) *lineReporter {
	return &lineReporter{
		out:   out,
		ti:    ti,
		verb:  verb,
		total: total,
		every: every,
		now:   now,
		last:  now(),
	}
}

// Tick emits a report when more than the update interval has elapsed since
// the previous one. The rate covers only the bytes since the last report.
func (r *lineReporter) Tick(transferred uint64) {
	now := r.now()
	elapsed := now.Sub(r.last)
	if elapsed <= r.every {
		return
	}
	rate := float64(transferred-r.lastN) / elapsed.Seconds()
	completion := 0.0
	if r.total > 0 {
		completion = float64(transferred) / float64(r.total)
	}
	if r.reported {
		r.ti.TPuts(r.out, r.ti.CursorUp1)
	}
	fmt.Fprintf(r.out, "\r%s %d bytes total. %.0f bytes/second. %.4f complete.\n", r.verb, transferred, rate, completion)
	r.last = now
	r.lastN = transferred
	r.reported = true
}
