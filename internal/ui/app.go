// Package ui is the terminal front end: a scrolling line chart of the polled
// samples, a latest-value readout, and start/stop/reset controls.
package ui

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/McClunatic/modbus-d3/internal/sample"
)

const appTitle = "modbus-d3"

// resetTimeout bounds the fire-and-forget reset request.
const resetTimeout = 5 * time.Second

// Controller is the subset of the poller the UI drives.
type Controller interface {
	SetRunning(bool)
	Samples() <-chan sample.Sample
}

// Resetter triggers the feed-side log rotation.
type Resetter interface {
	Reset(ctx context.Context) error
}

// SampleMsg delivers a new sample to the UI.
type SampleMsg sample.Sample

// Model is the root bubbletea model.
type Model struct {
	width  int
	height int

	window   *sample.Window
	chart    *chart
	readout  string
	running  bool
	interval time.Duration

	controller Controller
	resetter   Resetter
	samples    <-chan sample.Sample

	help     help.Model
	showHelp bool
}

// New creates a new UI model around the polling controller and reset client.
func New(ctrl Controller, resetter Resetter, windowLen int, interval time.Duration,
	yMin, yMax float64, xLabel, yLabel string) Model {

	return Model{
		window:     sample.NewWindow(windowLen),
		chart:      newChart(yMin, yMax, xLabel, yLabel),
		interval:   interval,
		controller: ctrl,
		resetter:   resetter,
		samples:    ctrl.Samples(),
		help:       help.New(),
	}
}

// WaitForSample returns a tea.Cmd that waits for the next polled sample.
// Returns tea.Quit if the channel is closed (poller shut down).
func WaitForSample(ch <-chan sample.Sample) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-ch
		if !ok {
			return tea.Quit()
		}
		return SampleMsg(s)
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		WaitForSample(m.samples),
		tea.SetWindowTitle(appTitle),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeChart()
		return m, nil

	case SampleMsg:
		s := sample.Sample(msg)
		m.window.Append(s)
		m.readout = s.Readout()
		return m, tea.Batch(
			WaitForSample(m.samples),
			tea.SetWindowTitle(m.readout),
		)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Help overlay: any key closes it.
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Start):
		m.running = true
		m.controller.SetRunning(true)
		return m, nil

	case key.Matches(msg, keys.Stop):
		m.running = false
		m.controller.SetRunning(false)
		return m, nil

	case key.Matches(msg, keys.Reset):
		m.window.Reset()
		m.readout = ""
		return m, tea.Batch(
			resetFeed(m.resetter),
			tea.SetWindowTitle(appTitle),
		)

	case key.Matches(msg, keys.Help):
		m.showHelp = true
		return m, nil
	}

	return m, nil
}

// resetFeed fires the reset endpoint. Failures are logged, never surfaced.
func resetFeed(r Resetter) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), resetTimeout)
		defer cancel()
		if err := r.Reset(ctx); err != nil {
			log.Printf("reset: %v", err)
		}
		return nil
	}
}

// resizeChart fits the canvas into whatever the header, axis rows, and footer
// leave over.
func (m *Model) resizeChart() {
	const (
		headerHeight = 2
		footerHeight = 1
		axisHeight   = 3 // y label, tick row, x label
	)
	w := m.width - m.chart.gutterWidth()
	h := m.height - headerHeight - footerHeight - axisHeight
	m.chart.resize(w, h)
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	header := m.renderHeader()
	content := m.chart.render(m.window.Snapshot())
	footer := m.renderFooter()

	// Pad so the footer stays on the bottom row.
	used := strings.Count(header, "\n") + 1 +
		strings.Count(content, "\n") + 1 +
		strings.Count(footer, "\n") + 1
	if used < m.height {
		content += strings.Repeat("\n", m.height-used)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (m Model) renderHeader() string {
	status := styleStopped.Render("STOPPED")
	if m.running {
		status = styleRunning.Render("RUNNING")
	}

	readout := m.readout
	if readout == "" {
		readout = "waiting for data"
	}

	line1 := fmt.Sprintf("%s  %s  %s",
		styleTitle.Render(appTitle),
		status,
		styleFooter.Render(fmt.Sprintf("every %s", m.interval)))
	line2 := fmt.Sprintf("latest: %s  %s",
		styleReadout.Render(readout),
		styleFooter.Render(fmt.Sprintf("(%d/%d samples)", m.window.Len(), m.window.Cap())))
	return line1 + "\n" + line2
}

func (m Model) renderFooter() string {
	return "  " + m.help.View(keys)
}

func (m Model) renderHelp() string {
	rows := []string{
		styleTitle.Render("  " + appTitle + " keys  "),
		"",
		"  s      start polling",
		"  x      stop polling",
		"  r      clear the chart and rotate the feed log",
		"  ?      toggle this help",
		"  q      quit",
		"",
		styleFooter.Render("  press any key to close  "),
	}
	box := styleChartFrame.Render(strings.Join(rows, "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
