// Package timefmt formats a millisecond-resolution duration as reported by
// the outer solve loop into a human-readable breakdown.
package timefmt

import "math"

// Breakdown is the decomposition of a nonnegative duration in milliseconds
// into whole hours, minutes, seconds, and a fractional-seconds remainder.
type Breakdown struct {
	Hours      int
	Minutes    int
	Seconds    int
	MillisFrac float64 // (t mod 1000) / 1000, the fractional part of the current second
}

// Millis converts a nonnegative duration in milliseconds into hours, minutes,
// whole seconds, and a fractional-seconds remainder. No rounding is
// performed; every integer part is a floor, so up to 999ms remain in
// MillisFrac rather than rolling into Seconds.
func Millis(tMs float64) Breakdown {
	if tMs < 0 {
		tMs = 0
	}
	totalSeconds := math.Floor(tMs / 1000)
	hours := math.Floor(totalSeconds / 3600)
	minutes := math.Floor((totalSeconds - hours*3600) / 60)
	seconds := totalSeconds - hours*3600 - minutes*60
	frac := math.Mod(tMs, 1000) / 1000

	return Breakdown{
		Hours:      int(hours),
		Minutes:    int(minutes),
		Seconds:    int(seconds),
		MillisFrac: frac,
	}
}
