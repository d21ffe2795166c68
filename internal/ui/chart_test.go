package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/McClunatic/modbus-d3/internal/sample"
)

func TestValueTickLabels(t *testing.T) {
	got := valueTickLabels(-1, 1, 5)
	want := []string{"1.00", "0.50", "0.00", "-0.50", "-1.00"}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("label %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTimeTickLabels(t *testing.T) {
	first := time.Date(2021, 5, 6, 10, 0, 0, 0, time.Local)
	last := first.Add(40 * time.Second)

	got := timeTickLabels(first, last, 5)
	want := []string{"10:00:00", "10:00:10", "10:00:20", "10:00:30", "10:00:40"}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("label %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTimeTickLabelsDegenerateSpan(t *testing.T) {
	at := time.Date(2021, 5, 6, 10, 0, 0, 0, time.Local)
	got := timeTickLabels(at, at, 5)
	if len(got) != 1 || got[0] != "10:00:00" {
		t.Errorf("labels = %v, want [10:00:00]", got)
	}
}

func TestSpreadLabels(t *testing.T) {
	tests := []struct {
		name   string
		labels []string
		width  int
		want   string
	}{
		{name: "two ends", labels: []string{"ab", "cd"}, width: 10, want: "ab      cd"},
		{name: "single", labels: []string{"ab"}, width: 10, want: "ab"},
		{name: "collision dropped", labels: []string{"aaaa", "bbbb"}, width: 5, want: "aaaa"},
		{name: "too wide dropped", labels: []string{"abcdef"}, width: 3, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := spreadLabels(tt.labels, tt.width); got != tt.want {
				t.Errorf("spreadLabels(%v, %d) = %q, want %q", tt.labels, tt.width, got, tt.want)
			}
		})
	}
}

func TestClampToDomain(t *testing.T) {
	tests := []struct {
		v, want float64
	}{
		{v: 0.5, want: 0.5},
		{v: -1, want: -1},
		{v: 1, want: 1},
		{v: 2.5, want: 1},
		{v: -7, want: -1},
	}
	for _, tt := range tests {
		if got := clampToDomain(tt.v, -1, 1); got != tt.want {
			t.Errorf("clampToDomain(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestChartRendersEmptyFrame(t *testing.T) {
	c := newChart(-1, 1, "Time", "sin(t)")
	c.resize(40, 10)

	out := c.render(nil)
	if out == "" {
		t.Fatal("empty render")
	}
	for _, want := range []string{"1.00", "-1.00", "sin(t)", "Time"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
}

func TestChartRendersSampleLine(t *testing.T) {
	c := newChart(-1, 1, "Time", "sin(t)")
	c.resize(40, 10)

	base := time.Date(2021, 5, 6, 10, 0, 0, 0, time.Local)
	var samples []sample.Sample
	for i := 0; i <= 40; i += 10 {
		samples = append(samples, sample.Sample{
			Time:  base.Add(time.Duration(i) * time.Second),
			Value: 0.5,
		})
	}

	out := c.render(samples)
	if out == "" {
		t.Fatal("empty render")
	}
	if !strings.Contains(out, "10:00:00") || !strings.Contains(out, "10:00:40") {
		t.Errorf("render missing time ticks:\n%s", out)
	}
}

func TestChartSingleSample(t *testing.T) {
	c := newChart(-1, 1, "Time", "sin(t)")
	c.resize(20, 6)

	out := c.render([]sample.Sample{{Time: time.Now(), Value: 0.25}})
	if out == "" {
		t.Error("empty render for a single sample")
	}
}

func TestChartResizeFloor(t *testing.T) {
	c := newChart(-1, 1, "Time", "sin(t)")
	c.resize(0, 0)
	if c.width != 2 || c.height != 2 {
		t.Errorf("size = %dx%d, want the 2x2 floor", c.width, c.height)
	}
	if out := c.render(nil); out == "" {
		t.Error("floor-size chart does not render")
	}
}
