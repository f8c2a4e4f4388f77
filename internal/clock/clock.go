// Package clock formats wall-clock time and renders it as large segment
// digits for the terminal.
package clock

import (
	"time"
)

// Options control the textual form of the clock.
type Options struct {
	TwelveHour bool // 03:04:05 instead of 15:04:05
	SecondHand bool // include the seconds field
}

// Format renders t as a zero-padded clock string.
func Format(t time.Time, opts Options) string {
	layout := "15:04:05"
	if opts.TwelveHour {
		layout = "03:04:05"
	}
	if !opts.SecondHand {
		layout = layout[:5]
	}
	return t.Format(layout)
}

// NextTick returns the duration until the next whole-second boundary, so
// that each refresh lands on the wall-clock second it displays.
func NextTick(now time.Time) time.Duration {
	return now.Truncate(time.Second).Add(time.Second).Sub(now)
}
