package timer

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestTimer_CountsEachTickOnce(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 5, 60} {
		m := New()
		if cmd := m.Start(); cmd == nil {
			t.Fatalf("expected Start to schedule a tick")
		}
		for i := 0; i < n; i++ {
			var cmd tea.Cmd
			m, cmd = m.Update(m.Pending())
			if cmd == nil {
				t.Fatalf("expected next tick to be scheduled")
			}
		}
		if m.Elapsed() != n {
			t.Fatalf("after %d ticks: elapsed=%d", n, m.Elapsed())
		}
	}
}

func TestTimer_DuplicateTickIgnored(t *testing.T) {
	t.Parallel()
	m := New()
	m.Start()
	tick := m.Pending()
	m, _ = m.Update(tick)
	m, cmd := m.Update(tick)
	if m.Elapsed() != 1 {
		t.Fatalf("expected duplicate tick dropped, elapsed=%d", m.Elapsed())
	}
	if cmd != nil {
		t.Fatalf("expected no reschedule for a dropped tick")
	}
}

func TestTimer_StopDropsInFlightTick(t *testing.T) {
	t.Parallel()
	m := New()
	m.Start()
	m, _ = m.Update(m.Pending())
	inFlight := m.Pending()
	m.Stop()

	m, cmd := m.Update(inFlight)
	if m.Elapsed() != 1 || cmd != nil {
		t.Fatalf("expected stopped timer to ignore tick: elapsed=%d cmd=%v", m.Elapsed(), cmd != nil)
	}
	if m.Running() {
		t.Fatalf("expected timer stopped")
	}
}

func TestTimer_NewInstanceStartsAtZeroAndIgnoresOldTicks(t *testing.T) {
	t.Parallel()
	old := New()
	old.Start()
	for i := 0; i < 3; i++ {
		old, _ = old.Update(old.Pending())
	}
	stale := old.Pending()
	old.Stop()

	fresh := New()
	fresh.Start()
	if fresh.Elapsed() != 0 {
		t.Fatalf("expected fresh timer at 0, got %d", fresh.Elapsed())
	}
	if fresh.ID() == old.ID() {
		t.Fatalf("expected distinct ids")
	}
	fresh, _ = fresh.Update(stale)
	if fresh.Elapsed() != 0 {
		t.Fatalf("expected stale tick ignored, got %d", fresh.Elapsed())
	}
}

func TestTimer_ViewShowsCount(t *testing.T) {
	t.Parallel()
	m := New()
	m.Start()
	m, _ = m.Update(m.Pending())
	m, _ = m.Update(m.Pending())
	if !strings.Contains(m.View(), "2") {
		t.Fatalf("expected view to include 2, got %q", m.View())
	}
}
