package progress

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2/terminfo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func newTestReporter(total uint64) (*lineReporter, *bytes.Buffer, *fakeClock) {
	out := &bytes.Buffer{}
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	ti := &terminfo.Terminfo{CursorUp1: "[UP]"}
	return newLineReporter(out, ti, "Written", total, time.Minute, clock.now), out, clock
}

func TestTickBelowIntervalStaysSilent(t *testing.T) {
	r, out, clock := newTestReporter(1000)

	r.Tick(0)
	clock.advance(30 * time.Second)
	r.Tick(100)
	clock.advance(30 * time.Second)
	r.Tick(200)

	assert.Empty(t, out.String())
}

func TestTickEmitsAfterInterval(t *testing.T) {
	r, out, clock := newTestReporter(12200)

	clock.advance(61 * time.Second)
	r.Tick(6100)

	require.Equal(t, "\rWritten 6100 bytes total. 100 bytes/second. 0.5000 complete.\n", out.String())
	assert.False(t, strings.Contains(out.String(), "[UP]"), "first report must not move the cursor")
}

func TestSecondReportRewritesPreviousLine(t *testing.T) {
	r, out, clock := newTestReporter(12200)

	clock.advance(61 * time.Second)
	r.Tick(6100)
	out.Reset()

	clock.advance(61 * time.Second)
	r.Tick(12200)

	assert.Equal(t, "[UP]\rWritten 12200 bytes total. 100 bytes/second. 1.0000 complete.\n", out.String())
}

func TestTickResetsIntervalAfterReport(t *testing.T) {
	r, out, clock := newTestReporter(1000)

	clock.advance(61 * time.Second)
	r.Tick(500)
	out.Reset()

	r.Tick(600)
	clock.advance(59 * time.Second)
	r.Tick(700)

	assert.Empty(t, out.String())
}

func TestZeroTotalReportsZeroCompletion(t *testing.T) {
	r, out, clock := newTestReporter(0)

	clock.advance(61 * time.Second)
	r.Tick(6100)

	assert.Contains(t, out.String(), "0.0000 complete.")
}

func TestNopReporterIsSilent(t *testing.T) {
	Nop().Tick(1 << 40)
}
