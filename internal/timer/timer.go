// Package timer provides an elapsed-seconds counter driven by Bubble Tea ticks.
//
// A Timer counts while it is running and forgets everything once it is stopped:
// a caller that wants the count to restart simply replaces it with New().
package timer

import (
	"strconv"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var lastID int64

func nextID() int { return int(atomic.AddInt64(&lastID, 1)) }

// TickMsg is delivered once per interval to the Timer with the matching ID.
type TickMsg struct {
	ID  int
	tag int
}

type Model struct {
	id      int
	tag     int
	running bool
	elapsed int

	Interval time.Duration
	Style    lipgloss.Style
}

func New() Model { return NewWithInterval(time.Second) }

func NewWithInterval(interval time.Duration) Model {
	return Model{
		id:       nextID(),
		Interval: interval,
		Style: lipgloss.NewStyle().
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			Padding(0, 3),
	}
}

func (m Model) ID() int { return m.id }

// Elapsed is the number of ticks counted since the Timer was created.
func (m Model) Elapsed() int { return m.elapsed }

func (m Model) Running() bool { return m.running }

// Start begins counting and schedules the first tick.
func (m *Model) Start() tea.Cmd {
	if m.running {
		return nil
	}
	m.running = true
	m.tag++
	return m.tick()
}

// Stop halts counting. A tick already in flight is dropped when it arrives.
func (m *Model) Stop() {
	m.running = false
	m.tag++
}

// Pending is the tick the currently scheduled command will deliver.
func (m Model) Pending() TickMsg { return TickMsg{ID: m.id, tag: m.tag} }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	t, ok := msg.(TickMsg)
	if !ok || t.ID != m.id || !m.running || t.tag != m.tag {
		return m, nil
	}
	m.elapsed++
	m.tag++
	return m, m.tick()
}

func (m Model) View() string {
	return m.Style.Render(strconv.Itoa(m.elapsed))
}

func (m Model) tick() tea.Cmd {
	id, tag := m.id, m.tag
	return tea.Tick(m.Interval, func(time.Time) tea.Msg {
		return TickMsg{ID: id, tag: tag}
	})
}
