package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	plot "github.com/chriskim06/drawille-go"

	"github.com/McClunatic/modbus-d3/internal/sample"
)

// chartTicks is the tick density on both axes.
const chartTicks = 5

// chart draws the scrolling line chart on a braille canvas. The value domain
// is fixed; the time axis follows the window contents, so the line slides
// left as old samples age out.
type chart struct {
	canvas *plot.Canvas
	width  int // canvas cells
	height int

	yMin, yMax float64
	xLabel     string
	yLabel     string
}

func newChart(yMin, yMax float64, xLabel, yLabel string) *chart {
	return &chart{
		yMin:   yMin,
		yMax:   yMax,
		xLabel: xLabel,
		yLabel: yLabel,
	}
}

// resize rebuilds the canvas for a new cell size.
func (c *chart) resize(width, height int) {
	if width < 2 {
		width = 2
	}
	if height < 2 {
		height = 2
	}
	p := plot.NewCanvas(width, height)
	p.ShowAxis = false
	p.LineColors = make([]plot.Color, 3)
	c.canvas = &p
	c.width = width
	c.height = height
}

// render draws the full chart block: value gutter, plot, and time axis.
// A nil or empty snapshot renders the empty frame.
func (c *chart) render(samples []sample.Sample) string {
	if c.canvas == nil {
		return ""
	}

	gutter := c.valueGutter()
	body := lipgloss.JoinHorizontal(lipgloss.Top, gutter, c.plotString(samples))
	axis := c.timeAxis(samples)

	label := styleAxisLabel.Render(c.yLabel)
	return lipgloss.JoinVertical(lipgloss.Left, label, body, axis)
}

// plotString rasterizes the sample line. Two constant rail series pin the
// canvas scale to the configured value domain, so the data line keeps a fixed
// vertical scale as the window scrolls; they double as top and bottom frame
// lines.
func (c *chart) plotString(samples []sample.Sample) string {
	points := len(samples)
	if points < 2 {
		points = 2
	}
	c.canvas.NumDataPoints = points

	bottom := make([]float64, points)
	top := make([]float64, points)
	for i := range bottom {
		bottom[i] = c.yMin
		top[i] = c.yMax
	}

	var highlight, dim plot.Color
	if lipgloss.DefaultRenderer().HasDarkBackground() {
		highlight, dim = plot.Red, plot.DimGray
	} else {
		highlight, dim = plot.Black, plot.LightGray
	}
	c.canvas.LineColors[0] = dim
	c.canvas.LineColors[1] = dim
	c.canvas.LineColors[2] = highlight

	data := [][]float64{bottom, top}
	if len(samples) > 0 {
		series := make([]float64, points)
		for i := range series {
			// A single sample is stretched into a flat line.
			src := samples[min(i, len(samples)-1)]
			series[i] = clampToDomain(src.Value, c.yMin, c.yMax)
		}
		data = append(data, series)
	}

	c.canvas.Fill(data)
	return c.canvas.String()
}

// valueGutter renders the left column of value tick labels, aligned with the
// canvas rows, max at top.
func (c *chart) valueGutter() string {
	labels := valueTickLabels(c.yMin, c.yMax, chartTicks)
	width := 0
	for _, l := range labels {
		if len(l) > width {
			width = len(l)
		}
	}

	rows := make([]string, c.height)
	for i := range rows {
		rows[i] = strings.Repeat(" ", width+1)
	}
	for i, l := range labels {
		row := 0
		if chartTicks > 1 {
			row = i * (c.height - 1) / (chartTicks - 1)
		}
		rows[row] = fmt.Sprintf("%*s ", width, l)
	}
	return styleAxis.Render(strings.Join(rows, "\n"))
}

// timeAxis renders the tick label line plus the centered axis label.
func (c *chart) timeAxis(samples []sample.Sample) string {
	gutterPad := strings.Repeat(" ", c.gutterWidth())

	ticks := ""
	if len(samples) > 0 {
		labels := timeTickLabels(samples[0].Time, samples[len(samples)-1].Time, chartTicks)
		ticks = spreadLabels(labels, c.width)
	}

	pad := (c.width - len(c.xLabel)) / 2
	if pad < 0 {
		pad = 0
	}
	label := strings.Repeat(" ", pad) + c.xLabel

	return gutterPad + styleAxis.Render(ticks) + "\n" +
		gutterPad + styleAxisLabel.Render(label)
}

func (c *chart) gutterWidth() int {
	labels := valueTickLabels(c.yMin, c.yMax, chartTicks)
	width := 0
	for _, l := range labels {
		if len(l) > width {
			width = len(l)
		}
	}
	return width + 1
}

// clampToDomain pins v into [lo, hi] so out-of-domain samples stay on the
// chart edge instead of rescaling it.
func clampToDomain(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// valueTickLabels returns count tick labels from max down to min.
func valueTickLabels(min, max float64, count int) []string {
	if count < 2 {
		return []string{fmt.Sprintf("%.2f", max)}
	}
	labels := make([]string, count)
	step := (max - min) / float64(count-1)
	for i := 0; i < count; i++ {
		labels[i] = fmt.Sprintf("%.2f", max-float64(i)*step)
	}
	return labels
}

// timeTickLabels returns count evenly spaced wall-clock labels spanning
// [first, last].
func timeTickLabels(first, last time.Time, count int) []string {
	if count < 2 || !last.After(first) {
		return []string{first.Local().Format("15:04:05")}
	}
	labels := make([]string, count)
	span := last.Sub(first)
	for i := 0; i < count; i++ {
		t := first.Add(span * time.Duration(i) / time.Duration(count-1))
		labels[i] = t.Local().Format("15:04:05")
	}
	return labels
}

// spreadLabels lays labels across width characters: first flush left, last
// flush right, the rest at proportional positions. Labels that would collide
// are dropped rather than overlapped.
func spreadLabels(labels []string, width int) string {
	row := make([]byte, width)
	for i := range row {
		row[i] = ' '
	}
	n := len(labels)
	for i, l := range labels {
		pos := 0
		if n > 1 {
			pos = i * (width - len(l)) / (n - 1)
		}
		if pos < 0 || pos+len(l) > width {
			continue
		}
		clear := true
		for j := pos; j < pos+len(l); j++ {
			if row[j] != ' ' {
				clear = false
				break
			}
		}
		if !clear {
			continue
		}
		copy(row[pos:], l)
	}
	return strings.TrimRight(string(row), " ")
}
