package coil

import (
	"context"
	"math"
	"sync"
	"time"
)

// DefaultTickInterval is how often the feeder rewrites the coil image.
const DefaultTickInterval = 100 * time.Millisecond

// Store holds the coil image the bridge reads. The feeder goroutine
// overwrites it on a fixed cadence with the current time and sin(t).
type Store struct {
	mu     sync.RWMutex
	time   [TimeBits]bool
	value  [ValueBits]bool
	primed bool
}

// NewStore returns an unprimed Store; Read reports not-ok until the first
// Tick.
func NewStore() *Store {
	return &Store{}
}

// Tick writes the coil images for now and sin(now).
func (s *Store) Tick(now time.Time) {
	x := epochSeconds(now)
	timeBits := EncodeTime(now)
	valueBits := EncodeValue(math.Sin(x))

	s.mu.Lock()
	defer s.mu.Unlock()
	s.time = timeBits
	s.value = valueBits
	s.primed = true
}

// Read decodes the current coil image. ok is false until the first Tick.
func (s *Store) Read() (x, y float64, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.primed {
		return 0, 0, false
	}
	return DecodeTime(s.time), DecodeValue(s.value), true
}

// Run ticks the store every interval until ctx is done. The first tick fires
// immediately so the bridge never serves an unprimed image for a full period.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	s.Tick(time.Now())

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case t := <-ticker.C:
			s.Tick(t)
		case <-ctx.Done():
			return
		}
	}
}
