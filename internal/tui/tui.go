package tui

import (
	"context"

	"taskdeck/internal/tasks"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hashicorp/go-hclog"
)

type Options struct {
	Tasks  *tasks.List
	Logger hclog.Logger
	Theme  string
	Mouse  bool
}

// Run starts the interactive page and blocks until the user quits or ctx is done.
func Run(ctx context.Context, opts Options) error {
	applyColorProfilePreference()
	applyThemePreference(opts.Theme)

	m := newPageModel(ctx, opts.Tasks, opts.Logger)
	progOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if opts.Mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}
	final, err := tea.NewProgram(m, progOpts...).Run()
	if pm, ok := final.(pageModel); ok {
		pm.teardown()
	}
	return err
}
