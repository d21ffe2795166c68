package ui

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/McClunatic/modbus-d3/internal/sample"
)

type fakeController struct {
	ch   chan sample.Sample
	mu   sync.Mutex
	sets []bool
}

func (f *fakeController) SetRunning(on bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sets = append(f.sets, on)
}

func (f *fakeController) Samples() <-chan sample.Sample { return f.ch }

func (f *fakeController) calls() []bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]bool(nil), f.sets...)
}

type fakeResetter struct{ called bool }

func (f *fakeResetter) Reset(ctx context.Context) error {
	f.called = true
	return nil
}

func newTestModel() (Model, *fakeController, *fakeResetter) {
	ctrl := &fakeController{ch: make(chan sample.Sample, 1)}
	resetter := &fakeResetter{}
	m := New(ctrl, resetter, 50, time.Second, -1, 1, "Time", "sin(t)")
	return m, ctrl, resetter
}

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	got, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return got, cmd
}

func TestSampleMsgAppendsToWindow(t *testing.T) {
	m, _, _ := newTestModel()
	at := time.Date(2021, 3, 4, 13, 5, 9, 0, time.Local)

	m, cmd := update(t, m, SampleMsg(sample.Sample{Time: at, Value: 0.5}))

	if m.window.Len() != 1 {
		t.Errorf("window Len = %d, want 1", m.window.Len())
	}
	if !strings.Contains(m.readout, "+0.50") {
		t.Errorf("readout = %q, want it to contain +0.50", m.readout)
	}
	if cmd == nil {
		t.Error("no follow-up command; the sample wait was not re-armed")
	}
}

func TestStartStopKeys(t *testing.T) {
	m, ctrl, _ := newTestModel()

	m, _ = update(t, m, keyMsg('s'))
	if !m.running {
		t.Error("not running after start key")
	}
	m, _ = update(t, m, keyMsg('x'))
	if m.running {
		t.Error("still running after stop key")
	}

	got := ctrl.calls()
	if len(got) != 2 || !got[0] || got[1] {
		t.Errorf("SetRunning calls = %v, want [true false]", got)
	}
}

func TestResetKeyClearsWindow(t *testing.T) {
	m, _, _ := newTestModel()
	m, _ = update(t, m, SampleMsg(sample.Sample{Time: time.Now(), Value: 0.5}))

	m, cmd := update(t, m, keyMsg('r'))

	if m.window.Len() != 0 {
		t.Errorf("window Len = %d after reset, want 0", m.window.Len())
	}
	if m.readout != "" {
		t.Errorf("readout = %q after reset, want empty", m.readout)
	}
	if cmd == nil {
		t.Error("reset returned no command")
	}
}

func TestResetFeedCallsResetter(t *testing.T) {
	r := &fakeResetter{}
	if msg := resetFeed(r)(); msg != nil {
		t.Errorf("resetFeed produced %v, want nil", msg)
	}
	if !r.called {
		t.Error("resetter was not called")
	}
}

func TestQuitKey(t *testing.T) {
	m, _, _ := newTestModel()
	_, cmd := update(t, m, keyMsg('q'))
	if cmd == nil {
		t.Fatal("quit key returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit key did not produce tea.QuitMsg")
	}
}

func TestViewBeforeFirstResize(t *testing.T) {
	m, _, _ := newTestModel()
	if got := m.View(); got != "Initializing..." {
		t.Errorf("View() = %q, want Initializing...", got)
	}
}

func TestViewShowsStatus(t *testing.T) {
	m, _, _ := newTestModel()
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	if out := m.View(); !strings.Contains(out, "STOPPED") {
		t.Error("stopped view does not show STOPPED")
	}
	m, _ = update(t, m, keyMsg('s'))
	if out := m.View(); !strings.Contains(out, "RUNNING") {
		t.Error("running view does not show RUNNING")
	}
}

func TestHelpOverlay(t *testing.T) {
	m, _, _ := newTestModel()
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	m, _ = update(t, m, keyMsg('?'))
	if !strings.Contains(m.View(), "press any key") {
		t.Error("help overlay not shown")
	}

	m, _ = update(t, m, keyMsg('s'))
	if m.showHelp {
		t.Error("help overlay did not close")
	}
	if m.running {
		t.Error("the key that closed the help overlay also started polling")
	}
}

func TestWaitForSample(t *testing.T) {
	ch := make(chan sample.Sample, 1)
	want := sample.Sample{Time: time.Unix(42, 0), Value: -0.3}
	ch <- want

	msg := WaitForSample(ch)()
	got, ok := msg.(SampleMsg)
	if !ok {
		t.Fatalf("msg = %T, want SampleMsg", msg)
	}
	if sample.Sample(got) != want {
		t.Errorf("sample = %+v, want %+v", got, want)
	}

	close(ch)
	if _, ok := WaitForSample(ch)().(tea.QuitMsg); !ok {
		t.Error("closed channel did not produce tea.QuitMsg")
	}
}
