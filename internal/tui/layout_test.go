package tui

import (
	"strings"
	"testing"

	xansi "github.com/charmbracelet/x/ansi"
)

func TestNormalizePane_PadsAndTruncates(t *testing.T) {
	t.Parallel()
	out := normalizePane("short\nthis line is far too long", 10, 3)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	for i, ln := range lines {
		if w := xansi.StringWidth(ln); w != 10 {
			t.Fatalf("line %d: width %d, want 10 (%q)", i, w, ln)
		}
	}
}

func TestLocate_FindsEveryOccurrence(t *testing.T) {
	t.Parallel()
	block := "a [ Delete ]\n\x1b[1mbb\x1b[0m [ Delete ]"
	hits := locate(block, deleteLabel)
	if len(hits) != 2 {
		t.Fatalf("expected 2 hits, got %d", len(hits))
	}
	if hits[0] != (rect{x: 2, y: 0, w: 10, h: 1}) || hits[1] != (rect{x: 3, y: 1, w: 10, h: 1}) {
		t.Fatalf("unexpected hits %#v", hits)
	}
}

func TestOverlayAt_ReplacesCells(t *testing.T) {
	t.Parallel()
	bg := normalizePane("..........\n..........", 10, 2)
	out := overlayAt(bg, "XY", 3, 1, 10)
	lines := strings.Split(out, "\n")
	if got := xansi.Strip(lines[1]); got != "...XY....." {
		t.Fatalf("unexpected overlay row %q", got)
	}
	if got := xansi.Strip(lines[0]); got != ".........." {
		t.Fatalf("expected untouched row, got %q", got)
	}
}

func TestHitZone_PrefersTopmost(t *testing.T) {
	t.Parallel()
	zones := []zone{
		{kind: zoneOpenDialog, rect: rect{x: 0, y: 0, w: 10, h: 10}},
		{kind: zoneAddTask, rect: rect{x: 2, y: 2, w: 2, h: 1}},
	}
	if z, ok := hitZone(zones, 2, 2); !ok || z.kind != zoneAddTask {
		t.Fatalf("expected topmost zone, got %+v ok=%v", z, ok)
	}
	if _, ok := hitZone(zones, 10, 0); ok {
		t.Fatalf("expected miss past the exclusive edge")
	}
}
