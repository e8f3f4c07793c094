package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const closeGlyph = "×"

// Dialog renders child content in a centered box over the dimmed page.
// It never changes its own open state: every dismissal goes through OnClose.
type Dialog struct {
	Title   string
	Width   int
	OnClose func() tea.Msg

	open      bool
	cancelEsc func()
}

type dialogLayout struct {
	view  string
	box   rect
	close rect
}

func (d Dialog) IsOpen() bool { return d.open }

// SetOpen mounts or unmounts the dialog. While mounted, Escape is subscribed in listeners.
// Calling it with the current state does nothing.
func (d *Dialog) SetOpen(open bool, listeners *keyListeners) {
	if open == d.open {
		return
	}
	d.open = open
	if !open {
		d.release()
		return
	}
	onClose := d.OnClose
	d.cancelEsc = listeners.Subscribe(
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		func() tea.Msg {
			if onClose == nil {
				return nil
			}
			return onClose()
		},
	)
}

// release drops the Escape subscription. It also runs on program teardown.
func (d *Dialog) release() {
	if d.cancelEsc != nil {
		d.cancelEsc()
		d.cancelEsc = nil
	}
}

func (d Dialog) boxWidth() int {
	if d.Width < 20 {
		return 20
	}
	return d.Width
}

// Layout renders the box for content and places it at the center of a width x height screen.
func (d Dialog) Layout(width, height int, content string) dialogLayout {
	inner := d.boxWidth()
	title := styleHeading().Render(d.Title)
	closeBtn := lipgloss.NewStyle().Foreground(colorDanger).Bold(true).Render(closeGlyph)
	gap := inner - lipgloss.Width(title) - lipgloss.Width(closeBtn)
	if gap < 1 {
		gap = 1
	}
	header := title + strings.Repeat(" ", gap) + closeBtn

	body := lipgloss.NewStyle().Width(inner).Render(content)
	view := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Padding(1, 2).
		Render(header + "\n\n" + body)

	box := centeredRect(width, height, lipgloss.Width(view), lipgloss.Height(view))
	lay := dialogLayout{view: view, box: box}
	if hits := locate(view, closeGlyph); len(hits) > 0 {
		c := hits[0]
		lay.close = rect{x: box.x + c.x, y: box.y + c.y, w: c.w, h: c.h}
	}
	return lay
}

// Click applies containment: the close control or anything outside the box closes,
// anything else inside the box is swallowed.
func (d Dialog) Click(x, y int, lay dialogLayout) tea.Msg {
	if !d.open || d.OnClose == nil {
		return nil
	}
	if lay.close.contains(x, y) {
		return d.OnClose()
	}
	if lay.box.contains(x, y) {
		return nil
	}
	return d.OnClose()
}

// Render composites the box over the dimmed background.
func (d Dialog) Render(background string, width, height int, lay dialogLayout) string {
	bg := normalizePane(dimBackground(background), width, height)
	return overlayAt(bg, lay.view, lay.box.x, lay.box.y, width)
}
