package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestDialog(closes *int) Dialog {
	return Dialog{
		Title: "Test",
		Width: 30,
		OnClose: func() tea.Msg {
			*closes++
			return closeDialogMsg{}
		},
	}
}

func TestDialog_ClosedRendersNothingAndHoldsNoListener(t *testing.T) {
	t.Parallel()
	closes := 0
	d := newTestDialog(&closes)
	l := newKeyListeners()

	d.SetOpen(false, l)
	if d.IsOpen() || l.Len() != 0 {
		t.Fatalf("expected closed dialog without listeners")
	}
	if msg := d.Click(0, 0, dialogLayout{}); msg != nil || closes != 0 {
		t.Fatalf("expected clicks ignored while closed")
	}
}

func TestDialog_EscapeSubscriptionFollowsOpenState(t *testing.T) {
	t.Parallel()
	closes := 0
	d := newTestDialog(&closes)
	l := newKeyListeners()

	d.SetOpen(true, l)
	d.SetOpen(true, l)
	if l.Len() != 1 {
		t.Fatalf("expected single subscription, got %d", l.Len())
	}
	out := l.Dispatch(tea.KeyMsg{Type: tea.KeyEsc})
	if closes != 1 || len(out) != 1 {
		t.Fatalf("expected one close per escape, got closes=%d msgs=%d", closes, len(out))
	}
	if _, ok := out[0].(closeDialogMsg); !ok {
		t.Fatalf("expected closeDialogMsg, got %T", out[0])
	}

	d.SetOpen(false, l)
	d.SetOpen(false, l)
	if l.Len() != 0 {
		t.Fatalf("expected subscription released, got %d", l.Len())
	}
	_ = l.Dispatch(tea.KeyMsg{Type: tea.KeyEsc})
	if closes != 1 {
		t.Fatalf("expected no close after release, got %d", closes)
	}
}

func TestDialog_ClickContainment(t *testing.T) {
	t.Parallel()
	closes := 0
	d := newTestDialog(&closes)
	d.SetOpen(true, newKeyListeners())
	lay := d.Layout(80, 24, "body")

	for y := lay.box.y; y < lay.box.y+lay.box.h; y++ {
		for x := lay.box.x; x < lay.box.x+lay.box.w; x++ {
			if lay.close.contains(x, y) {
				continue
			}
			if msg := d.Click(x, y, lay); msg != nil {
				t.Fatalf("click inside box at (%d,%d) closed the dialog", x, y)
			}
		}
	}
	if closes != 0 {
		t.Fatalf("expected no closes from inside clicks, got %d", closes)
	}

	outside := [][2]int{{0, 0}, {79, 23}, {lay.box.x - 1, lay.box.y}, {lay.box.x, lay.box.y + lay.box.h}}
	for _, p := range outside {
		if msg := d.Click(p[0], p[1], lay); msg == nil {
			t.Fatalf("click outside at %v did not close", p)
		}
	}
	if msg := d.Click(lay.close.x, lay.close.y, lay); msg == nil {
		t.Fatalf("close control did not close")
	}
	if closes != len(outside)+1 {
		t.Fatalf("expected %d closes, got %d", len(outside)+1, closes)
	}
}

func TestDialog_RenderOverlaysBoxOnPage(t *testing.T) {
	t.Parallel()
	d := newTestDialog(new(int))
	d.SetOpen(true, newKeyListeners())
	lay := d.Layout(60, 20, "inside")
	out := d.Render("background text", 60, 20, lay)

	lines := strings.Split(out, "\n")
	if len(lines) != 20 {
		t.Fatalf("expected full-height screen, got %d lines", len(lines))
	}
	if !strings.Contains(out, "background text") || !strings.Contains(out, "inside") || !strings.Contains(out, closeGlyph) {
		t.Fatalf("expected background, content and close control in %q", out)
	}
}
