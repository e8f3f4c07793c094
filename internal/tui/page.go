package tui

import (
	"context"
	"strings"

	"taskdeck/internal/tasks"
	"taskdeck/internal/timer"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hashicorp/go-hclog"
)

const (
	pageMarginX   = 2
	pageMarginY   = 1
	defaultWidth  = 80
	defaultHeight = 24
	dialogWidth   = 36

	openDialogLabel = "[ Open Modal ]"
)

type (
	openDialogMsg  struct{}
	closeDialogMsg struct{}
	toggleTimerMsg struct{}
)

// pageModel owns the two page-level flags and composes the dialog, timer and task list.
type pageModel struct {
	ctx       context.Context
	log       hclog.Logger
	keys      keyMap
	help      help.Model
	listeners *keyListeners

	dialogOpen   bool
	timerVisible bool

	dialog       Dialog
	timer        timer.Model
	timerMounted bool

	tasks taskListWidget

	width    int
	height   int
	status   string
	quitting bool
}

func newPageModel(ctx context.Context, l *tasks.List, log hclog.Logger) pageModel {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	m := pageModel{
		ctx:          ctx,
		log:          log,
		keys:         defaultKeys(),
		help:         help.New(),
		listeners:    newKeyListeners(),
		timerVisible: true,
		tasks:        newTaskListWidget(l),
	}
	m.dialog = Dialog{
		Title:   "Timer",
		Width:   dialogWidth,
		OnClose: func() tea.Msg { return closeDialogMsg{} },
	}
	m.keys.setFocus(focusInput)
	return m
}

func (m pageModel) Init() tea.Cmd { return textinput.Blink }

func (m *pageModel) openDialog()  { m.dialogOpen = true }
func (m *pageModel) closeDialog() { m.dialogOpen = false }
func (m *pageModel) toggleTimer() { m.timerVisible = !m.timerVisible }

func (m pageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := m.update(msg)
	mount := m.reconcile()
	return m, tea.Batch(cmd, mount)
}

func (m pageModel) update(msg tea.Msg) (pageModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case openDialogMsg:
		m.openDialog()
		return m, nil
	case closeDialogMsg:
		m.closeDialog()
		return m, nil
	case toggleTimerMsg:
		m.toggleTimer()
		return m, nil

	case timer.TickMsg:
		if !m.timerMounted {
			return m, nil
		}
		var cmd tea.Cmd
		m.timer, cmd = m.timer.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.MouseMsg:
		return m.updateMouse(msg)
	}

	var cmd tea.Cmd
	m.tasks.input, cmd = m.tasks.input.Update(msg)
	return m, cmd
}

func (m pageModel) updateKey(msg tea.KeyMsg) (pageModel, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.teardown()
		return m, tea.Quit
	}

	if fired := m.listeners.Dispatch(msg); len(fired) > 0 {
		var cmds []tea.Cmd
		for _, f := range fired {
			var cmd tea.Cmd
			m, cmd = m.update(f)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	// The open dialog captures the keyboard.
	if m.dialogOpen {
		if key.Matches(msg, m.keys.ToggleTimer) {
			m.toggleTimer()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.OpenDialog):
		m.openDialog()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	var (
		cmd tea.Cmd
		err error
	)
	m.tasks, cmd, err = m.tasks.update(m.ctx, msg, m.keys)
	m.setErr(err)
	return m, cmd
}

func (m pageModel) updateMouse(msg tea.MouseMsg) (pageModel, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	_, zones, lay := m.render()

	if m.dialogOpen {
		if z, ok := hitZone(zones, msg.X, msg.Y); ok && z.kind == zoneToggleTimer {
			m.toggleTimer()
			return m, nil
		}
		if out := m.dialog.Click(msg.X, msg.Y, lay); out != nil {
			return m.update(out)
		}
		return m, nil
	}

	z, ok := hitZone(zones, msg.X, msg.Y)
	if !ok {
		return m, nil
	}
	switch z.kind {
	case zoneOpenDialog:
		m.openDialog()
	case zoneDraftInput:
		return m, m.tasks.focusInput()
	case zoneAddTask:
		m.setErr(m.tasks.add(m.ctx))
	case zoneDeleteTask:
		m.setErr(m.tasks.deleteAt(m.ctx, z.index))
	}
	return m, nil
}

// reconcile mounts and unmounts children to match the page flags.
// The timer lives exactly while the dialog is open and the timer is visible.
func (m *pageModel) reconcile() tea.Cmd {
	if m.quitting {
		return nil
	}
	m.dialog.SetOpen(m.dialogOpen, m.listeners)

	var cmd tea.Cmd
	want := m.dialogOpen && m.timerVisible
	switch {
	case want && !m.timerMounted:
		m.timer = timer.New()
		m.timer.Style = m.timer.Style.
			BorderForeground(colorAccent).
			Foreground(colorAccent)
		cmd = m.timer.Start()
		m.timerMounted = true
		m.log.Debug("timer mounted", "id", m.timer.ID())
	case !want && m.timerMounted:
		m.timer.Stop()
		m.timerMounted = false
		m.log.Debug("timer unmounted", "id", m.timer.ID(), "elapsed", m.timer.Elapsed())
	}

	if m.dialogOpen {
		m.keys.setFocus(focusDialog)
	} else {
		m.keys.setFocus(m.tasks.focus)
	}
	return cmd
}

func (m *pageModel) teardown() {
	m.quitting = true
	m.dialog.release()
	if m.timerMounted {
		m.timer.Stop()
		m.timerMounted = false
	}
}

func (m *pageModel) setErr(err error) {
	if err == nil {
		m.status = ""
		return
	}
	m.log.Error("task list", "error", err)
	m.status = err.Error()
}

func (m pageModel) size() (int, int) {
	w, h := m.width, m.height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return w, h
}

func (m pageModel) toggleLabel() string {
	if m.timerVisible {
		return "[ Stop ]"
	}
	return "[ Start ]"
}

func (m pageModel) dialogContent() string {
	center := lipgloss.NewStyle().Width(dialogWidth).Align(lipgloss.Center)
	parts := []string{center.Render(styleButton().Render(m.toggleLabel()))}
	if m.timerMounted {
		parts = append(parts, "", center.Render(m.timer.View()))
	}
	return strings.Join(parts, "\n")
}

// render draws the whole screen and the zones a click can land on.
// While the dialog is open only the dialog's zones are returned.
func (m pageModel) render() (string, []zone, dialogLayout) {
	width, height := m.size()
	var zones []zone
	var lines []string

	lines = append(lines, styleButton().Render(openDialogLabel), "")
	zones = append(zones, zone{kind: zoneOpenDialog, rect: rect{x: 0, y: 0, w: lipgloss.Width(openDialogLabel), h: 1}})

	lines = append(lines, styleHeading().Render("ToDo List"), "")

	contentW := width - 2*pageMarginX
	body, bodyZones := m.tasks.render(contentW)
	top := len(lines)
	for _, z := range bodyZones {
		z.rect.y += top
		zones = append(zones, z)
	}
	lines = append(lines, body)

	if m.status != "" {
		lines = append(lines, "", styleStatusError().Render(m.status))
	}
	lines = append(lines, "", m.help.View(m.keys))

	page := lipgloss.NewStyle().Padding(pageMarginY, pageMarginX).Render(strings.Join(lines, "\n"))
	for i := range zones {
		zones[i].rect.x += pageMarginX
		zones[i].rect.y += pageMarginY
	}

	if !m.dialogOpen {
		return normalizePane(page, width, height), zones, dialogLayout{}
	}

	lay := m.dialog.Layout(width, height, m.dialogContent())
	var dzones []zone
	for _, r := range locate(lay.view, m.toggleLabel()) {
		dzones = append(dzones, zone{kind: zoneToggleTimer, rect: rect{x: lay.box.x + r.x, y: lay.box.y + r.y, w: r.w, h: r.h}})
	}
	dzones = append(dzones, zone{kind: zoneCloseDialog, rect: lay.close})
	return m.dialog.Render(page, width, height, lay), dzones, lay
}

func (m pageModel) View() string {
	s, _, _ := m.render()
	return s
}
