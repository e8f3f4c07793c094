package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// rect is a screen region in terminal cells. Max bounds are exclusive.
type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

type zoneKind int

const (
	zoneOpenDialog zoneKind = iota
	zoneDraftInput
	zoneAddTask
	zoneDeleteTask
	zoneToggleTimer
	zoneCloseDialog
)

// zone is a clickable region produced while rendering.
type zone struct {
	kind  zoneKind
	rect  rect
	index int
}

func hitZone(zones []zone, x, y int) (zone, bool) {
	// Later zones are drawn on top.
	for i := len(zones) - 1; i >= 0; i-- {
		if zones[i].rect.contains(x, y) {
			return zones[i], true
		}
	}
	return zone{}, false
}

// normalizePane forces s to be exactly width columns wide (ANSI-aware) and height lines tall.
func normalizePane(s string, width, height int) string {
	if width < 0 {
		width = 0
	}
	lines := strings.Split(s, "\n")
	if height > 0 {
		if len(lines) > height {
			lines = lines[:height]
		}
		for len(lines) < height {
			lines = append(lines, "")
		}
	}
	for i, ln := range lines {
		w := xansi.StringWidth(ln)
		if w > width {
			ln = xansi.Truncate(ln, width, "")
			w = xansi.StringWidth(ln)
		}
		if w < width {
			ln += strings.Repeat(" ", width-w)
		}
		lines[i] = ln
	}
	return strings.Join(lines, "\n")
}

// dimBackground strips styling from the page and renders it muted, so the dialog reads
// as the only interactive surface.
func dimBackground(s string) string {
	st := styleMuted()
	lines := strings.Split(s, "\n")
	for i, ln := range lines {
		lines[i] = st.Render(xansi.Strip(ln))
	}
	return strings.Join(lines, "\n")
}

// centeredRect is where lipgloss.Place(lipgloss.Center, lipgloss.Center) puts a block of
// fw x fh cells inside a width x height screen.
func centeredRect(width, height, fw, fh int) rect {
	x := (width - fw) / 2
	y := (height - fh) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return rect{x: x, y: y, w: fw, h: fh}
}

// overlayAt draws fg over bg with its top-left corner at (x, y).
// bg must already be normalized to width x height.
func overlayAt(bg, fg string, x, y, width int) string {
	bgLines := strings.Split(bg, "\n")
	fgLines := strings.Split(fg, "\n")
	for i, fl := range fgLines {
		row := y + i
		if row < 0 || row >= len(bgLines) {
			continue
		}
		bl := bgLines[row]
		fw := lipgloss.Width(fl)
		left := xansi.Cut(bl, 0, x)
		right := xansi.Cut(bl, x+fw, width)
		bgLines[row] = left + "\x1b[0m" + fl + "\x1b[0m" + right
	}
	return strings.Join(bgLines, "\n")
}

// locate finds every occurrence of needle in a rendered block, ignoring styling.
func locate(block, needle string) []rect {
	if needle == "" {
		return nil
	}
	nw := xansi.StringWidth(needle)
	var out []rect
	for y, ln := range strings.Split(block, "\n") {
		plain := xansi.Strip(ln)
		off := 0
		for {
			i := strings.Index(plain[off:], needle)
			if i < 0 {
				break
			}
			x := xansi.StringWidth(plain[:off+i])
			out = append(out, rect{x: x, y: y, w: nw, h: 1})
			off += i + len(needle)
		}
	}
	return out
}
