package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"taskdeck/internal/format"
	"taskdeck/internal/store"
	"taskdeck/internal/tasks"
	"taskdeck/internal/tui"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

type App struct {
	Dir        string
	Backend    string
	PrettyJSON bool
	Format     string
	LogLevel   string

	cfg *store.Config
	log hclog.Logger
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "taskdeck",
		Short:        "Timer, modal and persisted task list in your terminal",
		SilenceUsage: true,
		// Commands report through writeErr; main prints whatever was not reported.
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Start the interactive page
  taskdeck

  # Scriptable commands
  taskdeck tasks add "Buy milk"
  taskdeck tasks list --pretty
  taskdeck tasks delete 0

  # Keep tasks in SQLite instead of storage.json
  taskdeck --backend sqlite
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive page.
			if len(args) == 0 {
				return runTUI(cmd.Context(), app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := store.LoadConfig()
		if err != nil {
			return writeErr(cmd, err)
		}
		app.cfg = cfg
		app.log = newCLILogger(cmd.ErrOrStderr(), firstNonEmpty(app.LogLevel, cfg.Debug.LogLevel))
		return nil
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", envOr("TASKDECK_DIR", ""), "Data directory (default: ~/.taskdeck/data or storage.dir from config)")
	cmd.PersistentFlags().StringVar(&app.Backend, "backend", envOr("TASKDECK_BACKEND", ""), "Storage backend (file|sqlite|memory)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("TASKDECK_FORMAT", "json"), "Output format (json|edn)")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", envOr("TASKDECK_LOG_LEVEL", ""), "Log level (trace|debug|info|warn|error)")

	cmd.AddCommand(newTasksCmd(app))
	cmd.AddCommand(newDocsCmd(app))
	cmd.AddCommand(newConfigCmd(app))

	return cmd
}

// openStore resolves backend and directory with flag > env > config > default precedence.
// Flags already carry the env defaults.
func openStore(ctx context.Context, app *App) (store.KV, error) {
	backend, err := store.ParseBackend(firstNonEmpty(app.Backend, app.cfg.Storage.Backend))
	if err != nil {
		return nil, err
	}
	dir := strings.TrimSpace(app.Dir)
	if dir == "" {
		if dir, err = app.cfg.DataDir(); err != nil {
			return nil, err
		}
	}
	app.log.Debug("opening storage", "backend", backend, "dir", dir)
	kv, err := store.Open(ctx, backend, dir)
	if err != nil {
		return nil, fmt.Errorf("open %s storage: %w", backend, err)
	}
	return kv, nil
}

func loadTasks(ctx context.Context, kv store.KV, log hclog.Logger) (*tasks.List, error) {
	return tasks.Load(ctx, kv, tasks.WithLogger(log.Named("tasks")))
}

func runTUI(ctx context.Context, app *App) error {
	kv, err := openStore(ctx, app)
	if err != nil {
		return err
	}
	defer kv.Close()

	log, closeLog, err := newTUILogger(firstNonEmpty(os.Getenv("TASKDECK_TUI_DEBUG_LOG"), app.cfg.Debug.LogPath), firstNonEmpty(app.LogLevel, app.cfg.Debug.LogLevel))
	if err != nil {
		return err
	}
	defer closeLog()

	// A read failure still yields an empty list; the page starts anyway.
	l, err := loadTasks(ctx, kv, log)
	if err != nil {
		log.Warn("starting with empty task list", "error", err)
	}
	return tui.Run(ctx, tui.Options{
		Tasks:  l,
		Logger: log,
		Theme:  app.cfg.TUI.Theme,
		Mouse:  app.cfg.MouseEnabled(),
	})
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return reportedError{err: err}
}
