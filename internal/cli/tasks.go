package cli

import (
	"fmt"
	"strconv"
	"strings"

	"taskdeck/internal/tasks"

	"github.com/spf13/cobra"
)

func newTasksCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "List, add and delete persisted tasks",
	}

	cmd.AddCommand(newTasksListCmd(app))
	cmd.AddCommand(newTasksAddCmd(app))
	cmd.AddCommand(newTasksDeleteCmd(app))

	return cmd
}

// withTasks opens the configured storage, loads the list and hands it to fn.
func withTasks(cmd *cobra.Command, app *App, fn func(l *tasks.List) error) error {
	ctx := cmd.Context()
	kv, err := openStore(ctx, app)
	if err != nil {
		return writeErr(cmd, err)
	}
	defer kv.Close()

	l, err := loadTasks(ctx, kv, app.log)
	if err != nil {
		return writeErr(cmd, err)
	}
	return fn(l)
}

func tasksPayload(l *tasks.List) map[string]any {
	return map[string]any{"data": map[string]any{"tasks": l.Tasks()}}
}

func newTasksListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Print the task list",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTasks(cmd, app, func(l *tasks.List) error {
				return writeOut(cmd, app, tasksPayload(l))
			})
		},
	}
}

func newTasksAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text...>",
		Short: "Append a task (arguments are joined with spaces)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if strings.TrimSpace(text) == "" {
				return writeErr(cmd, emptyTaskError{})
			}
			return withTasks(cmd, app, func(l *tasks.List) error {
				l.SetDraft(text)
				if _, err := l.Add(cmd.Context()); err != nil {
					return writeErr(cmd, err)
				}
				app.log.Debug("task added", "count", l.Len())
				return writeOut(cmd, app, tasksPayload(l))
			})
		},
	}
}

func newTasksDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <index>",
		Aliases: []string{"rm"},
		Short:   "Delete the task at a 0-based index",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := strconv.Atoi(strings.TrimSpace(args[0]))
			if err != nil {
				return writeErr(cmd, fmt.Errorf("invalid task index %q: %w", args[0], err))
			}
			return withTasks(cmd, app, func(l *tasks.List) error {
				ok, err := l.Delete(cmd.Context(), idx)
				if err != nil {
					return writeErr(cmd, err)
				}
				if !ok {
					return writeErr(cmd, indexRangeError{index: idx, len: l.Len()})
				}
				app.log.Debug("task deleted", "index", idx, "count", l.Len())
				return writeOut(cmd, app, tasksPayload(l))
			})
		},
	}
}
