package progress

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/ghcontext-cli/internal/core/ports/driven"
)

// Ensure Bars implements the port and the shutdown contract.
var (
	_ driven.ProgressReporter = (*Bars)(nil)
	_ Stopper                 = (*Bars)(nil)
)

const barWidth = 30

var labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Width(8)

// Bars renders one progress bar per label through a bubbletea program.
type Bars struct {
	prog *tea.Program
	done chan struct{}
}

// NewBars starts the render loop writing to w.
func NewBars(w io.Writer) *Bars {
	b := &Bars{done: make(chan struct{})}
	b.prog = tea.NewProgram(
		newBarsModel(),
		tea.WithOutput(w),
		tea.WithInput(nil),
	)
	go func() {
		defer close(b.done)
		_, _ = b.prog.Run() //nolint:errcheck // Display-only loop
	}()
	return b
}

// Start announces a labelled round. Totals accumulate across announcements.
func (b *Bars) Start(label string, total int) {
	b.prog.Send(startMsg{label: label, total: total})
}

// Increment records one completed item for a label.
func (b *Bars) Increment(label string) {
	b.prog.Send(incrementMsg{label: label})
}

// Done marks a labelled round finished.
func (b *Bars) Done(label string) {
	b.prog.Send(doneMsg{label: label})
}

// Stop shuts the render loop down and waits for the final frame.
func (b *Bars) Stop() {
	b.prog.Quit()
	<-b.done
}

type startMsg struct {
	label string
	total int
}

type incrementMsg struct {
	label string
}

type doneMsg struct {
	label string
}

// track is one label's bar state.
type track struct {
	bar      progress.Model
	done     int
	total    int
	finished bool
}

type barsModel struct {
	order  []string
	tracks map[string]*track
}

func newBarsModel() barsModel {
	return barsModel{tracks: make(map[string]*track)}
}

func (m barsModel) Init() tea.Cmd {
	return nil
}

func (m barsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case startMsg:
		t, ok := m.tracks[msg.label]
		if !ok {
			t = &track{bar: progress.New(
				progress.WithDefaultGradient(),
				progress.WithWidth(barWidth),
			)}
			m.tracks[msg.label] = t
			m.order = append(m.order, msg.label)
		}
		t.total += msg.total
	case incrementMsg:
		if t, ok := m.tracks[msg.label]; ok {
			t.done++
		}
	case doneMsg:
		if t, ok := m.tracks[msg.label]; ok {
			t.finished = true
		}
	}
	return m, nil
}

func (m barsModel) View() string {
	var out string
	for _, label := range m.order {
		t := m.tracks[label]
		out += fmt.Sprintf("%s %s %d/%d\n",
			labelStyle.Render(label),
			t.bar.ViewAs(t.fraction()),
			t.done, t.total)
	}
	return out
}

func (t *track) fraction() float64 {
	if t.total == 0 {
		if t.finished {
			return 1
		}
		return 0
	}
	return float64(t.done) / float64(t.total)
}
