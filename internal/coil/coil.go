// Package coil implements the feed's coil image: epoch time as the 64-bit
// pattern of a float64 and the scalar value as the 32-bit pattern of a
// float32, most significant bit first.
package coil

import (
	"math"
	"time"
)

const (
	// TimeBits is the number of coils holding the float64 time image.
	TimeBits = 64
	// ValueBits is the number of coils holding the float32 value image.
	ValueBits = 32
	// TotalBits is the full coil image size.
	TotalBits = TimeBits + ValueBits
)

// EncodeTime returns the coil image of t as float64 seconds since the epoch.
func EncodeTime(t time.Time) [TimeBits]bool {
	u := math.Float64bits(epochSeconds(t))
	var bits [TimeBits]bool
	for i := 0; i < TimeBits; i++ {
		bits[i] = u&(1<<(TimeBits-1-i)) != 0
	}
	return bits
}

// DecodeTime converts a time coil image back to epoch seconds.
func DecodeTime(bits [TimeBits]bool) float64 {
	var u uint64
	for _, b := range bits {
		u <<= 1
		if b {
			u |= 1
		}
	}
	return math.Float64frombits(u)
}

// EncodeValue returns the coil image of v narrowed to float32.
func EncodeValue(v float64) [ValueBits]bool {
	u := math.Float32bits(float32(v))
	var bits [ValueBits]bool
	for i := 0; i < ValueBits; i++ {
		bits[i] = u&(1<<(ValueBits-1-i)) != 0
	}
	return bits
}

// DecodeValue converts a value coil image back to a float64.
func DecodeValue(bits [ValueBits]bool) float64 {
	var u uint32
	for _, b := range bits {
		u <<= 1
		if b {
			u |= 1
		}
	}
	return float64(math.Float32frombits(u))
}

func epochSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / 1e9
}
