// Package poller runs the polling loop off the UI goroutine. The UI drives it
// with control messages; decoded samples flow back over a channel. No mutable
// state is shared across that boundary.
package poller

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/McClunatic/modbus-d3/internal/sample"
)

// Fetcher produces one sample per poll tick.
type Fetcher interface {
	Fetch(ctx context.Context) (sample.Sample, error)
}

// control is the UI → worker message: whether ticks should do work, plus the
// period used when the ticker is first created.
type control struct {
	running  bool
	interval time.Duration
}

// result carries a fetched sample back to the worker loop tagged with the
// activation it belongs to.
type result struct {
	gen uint64
	s   sample.Sample
}

// Poller owns one worker goroutine and one lazily-created ticker. The ticker
// starts on the first activation and keeps its period for the poller's
// lifetime; stopping only gates whether a tick performs a fetch. Each
// activation bumps a generation counter so responses that land after a stop
// (or after a later restart) are discarded instead of delivered.
type Poller struct {
	fetcher  Fetcher
	interval time.Duration
	timeout  time.Duration

	ctrl    chan control
	samples chan sample.Sample
	quit    chan struct{}
	once    sync.Once
}

// New starts a Poller in the stopped state. timeout bounds each fetch; a
// non-positive timeout falls back to the poll interval.
func New(f Fetcher, interval, timeout time.Duration) *Poller {
	if timeout <= 0 {
		timeout = interval
	}
	p := &Poller{
		fetcher:  f,
		interval: interval,
		timeout:  timeout,
		ctrl:     make(chan control),
		samples:  make(chan sample.Sample),
		quit:     make(chan struct{}),
	}
	go p.run()
	return p
}

// Samples returns the worker → UI channel. It is closed when the poller
// closes.
func (p *Poller) Samples() <-chan sample.Sample {
	return p.samples
}

// SetRunning toggles whether ticks perform fetches. Starting while started and
// stopping while stopped are no-ops.
func (p *Poller) SetRunning(on bool) {
	select {
	case p.ctrl <- control{running: on, interval: p.interval}:
	case <-p.quit:
	}
}

// Close ends the worker goroutine and closes the sample channel.
func (p *Poller) Close() {
	p.once.Do(func() { close(p.quit) })
}

func (p *Poller) run() {
	defer close(p.samples)

	var (
		running bool
		ticker  *time.Ticker
		ticks   <-chan time.Time
		gen     uint64
	)
	results := make(chan result)

	defer func() {
		if ticker != nil {
			ticker.Stop()
		}
	}()

	for {
		select {
		case <-p.quit:
			return

		case msg := <-p.ctrl:
			// The ticker is created once and never replaced; later control
			// messages cannot change its period.
			if msg.running && ticker == nil {
				ticker = time.NewTicker(msg.interval)
				ticks = ticker.C
			}
			if msg.running != running {
				running = msg.running
				if running {
					gen++
				}
			}

		case <-ticks:
			if !running {
				continue
			}
			go p.fetch(gen, results)

		case r := <-results:
			if !running || r.gen != gen {
				// Response from before a stop or restart; drop it.
				continue
			}
			select {
			case p.samples <- r.s:
			case <-p.quit:
				return
			}
		}
	}
}

func (p *Poller) fetch(gen uint64, results chan<- result) {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	s, err := p.fetcher.Fetch(ctx)
	if err != nil {
		// A failed tick produces no sample; the chart simply does not advance.
		log.Printf("poll: %v", err)
		return
	}
	select {
	case results <- result{gen: gen, s: s}:
	case <-p.quit:
	}
}
