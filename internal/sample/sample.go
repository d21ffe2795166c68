package sample

import (
	"fmt"
	"time"
)

// Sample is one timestamped scalar reading from the feed. Immutable once
// created.
type Sample struct {
	Time  time.Time
	Value float64
}

// FromWire converts a decoded wire point (x = seconds since the epoch,
// y = scalar value) into a Sample. x is scaled to millisecond precision.
func FromWire(x, y float64) Sample {
	return Sample{
		Time:  time.UnixMilli(int64(x * 1000)),
		Value: y,
	}
}

// Readout returns the display string for s: the value sign-prefixed with two
// decimals and the local wall-clock time. Shown in the readout line and
// mirrored into the terminal title.
func (s Sample) Readout() string {
	return fmt.Sprintf("%+.2f at %s", s.Value, s.Time.Local().Format("15:04:05"))
}
