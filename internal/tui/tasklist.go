package tui

import (
	"context"
	"strings"
	"unicode"

	"taskdeck/internal/tasks"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	addLabel    = "[ Add ]"
	deleteLabel = "[ Delete ]"
)

// taskListWidget is the draft input plus one row per task.
// The draft text is mirrored into the list on every keystroke.
type taskListWidget struct {
	list   *tasks.List
	input  textinput.Model
	cursor int
	focus  focusState
}

func newTaskListWidget(l *tasks.List) taskListWidget {
	in := textinput.New()
	in.Placeholder = "Enter task..."
	in.Prompt = "> "
	in.CharLimit = 0
	in.Width = 40
	in.SetValue(l.Draft())
	w := taskListWidget{list: l, input: in, focus: focusInput}
	w.input.Focus()
	return w
}

func (w *taskListWidget) focusInput() tea.Cmd {
	w.focus = focusInput
	return w.input.Focus()
}

func (w *taskListWidget) focusList() {
	w.focus = focusList
	w.input.Blur()
	w.clampCursor()
}

func (w *taskListWidget) clampCursor() {
	if w.cursor >= w.list.Len() {
		w.cursor = w.list.Len() - 1
	}
	if w.cursor < 0 {
		w.cursor = 0
	}
}

func (w *taskListWidget) add(ctx context.Context) error {
	w.list.SetDraft(w.input.Value())
	added, err := w.list.Add(ctx)
	if added {
		w.input.SetValue(w.list.Draft())
	}
	return err
}

func (w *taskListWidget) deleteAt(ctx context.Context, index int) error {
	_, err := w.list.Delete(ctx, index)
	w.clampCursor()
	return err
}

func (w taskListWidget) update(ctx context.Context, msg tea.KeyMsg, keys keyMap) (taskListWidget, tea.Cmd, error) {
	if key.Matches(msg, keys.SwitchFocus) {
		if w.focus == focusInput {
			w.focusList()
			return w, nil, nil
		}
		return w, w.focusInput(), nil
	}

	if w.focus == focusList {
		switch {
		case key.Matches(msg, keys.Up):
			w.cursor--
			w.clampCursor()
		case key.Matches(msg, keys.Down):
			w.cursor++
			w.clampCursor()
		case key.Matches(msg, keys.DeleteTask):
			return w, nil, w.deleteAt(ctx, w.cursor)
		}
		return w, nil, nil
	}

	if key.Matches(msg, keys.AddTask) {
		return w, nil, w.add(ctx)
	}
	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	w.list.SetDraft(w.input.Value())
	return w, cmd, nil
}

// render draws the widget and reports its clickable zones relative to its top-left corner.
func (w taskListWidget) render(width int) (string, []zone) {
	var zones []zone
	var lines []string

	inputView := lipgloss.NewStyle().Background(colorInputBg).Render(strings.ReplaceAll(w.input.View(), "\n", " "))
	inputW := lipgloss.Width(inputView)
	zones = append(zones, zone{kind: zoneDraftInput, rect: rect{x: 0, y: 0, w: inputW, h: 1}})
	zones = append(zones, zone{kind: zoneAddTask, rect: rect{x: inputW + 2, y: 0, w: lipgloss.Width(addLabel), h: 1}})
	lines = append(lines, inputView+"  "+styleButton().Render(addLabel), "")

	items := w.list.Tasks()
	if len(items) == 0 {
		lines = append(lines, styleMuted().Render("No tasks yet."))
		return strings.Join(lines, "\n"), zones
	}

	labelW := width - lipgloss.Width(deleteLabel) - 4
	if labelW < 10 {
		labelW = 10
	}
	for i, label := range items {
		marker := "  "
		rowStyle := lipgloss.NewStyle().Background(colorRowBg).Foreground(colorSurfaceFg)
		if w.focus == focusList && i == w.cursor {
			marker = "› "
			rowStyle = rowStyle.Background(colorSelectBg).Bold(true)
		}
		text := displayLabel(label)
		if lipgloss.Width(text) > labelW {
			text = truncateLabel(text, labelW)
		}
		prefix := marker + text + strings.Repeat(" ", labelW-lipgloss.Width(text)) + "  "
		y := len(lines)
		zones = append(zones, zone{
			kind:  zoneDeleteTask,
			index: i,
			rect:  rect{x: lipgloss.Width(prefix), y: y, w: lipgloss.Width(deleteLabel), h: 1},
		})
		lines = append(lines, rowStyle.Render(prefix)+styleDangerButton().Render(deleteLabel))
	}
	return strings.Join(lines, "\n"), zones
}

// displayLabel flattens a stored label onto one row. Stored labels stay verbatim;
// only what is drawn changes, so every row is exactly one line tall.
func displayLabel(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
}

func truncateLabel(s string, w int) string {
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r))+1 > w {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}
