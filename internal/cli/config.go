package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"taskdeck/internal/store"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and edit ~/.taskdeck/config.yaml",
	}
	cmd.AddCommand(newConfigShowCmd(app))
	cmd.AddCommand(newConfigSetCmd(app))
	return cmd
}

func newConfigShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the configuration file contents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := store.ConfigPath()
			if err != nil {
				return writeErr(cmd, err)
			}
			dataDir, err := app.cfg.DataDir()
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"path":    path,
				"dataDir": dataDir,
				"config":  app.cfg,
			}})
		},
	}
}

// configSetters maps a dotted key to the function that validates and applies a value.
var configSetters = map[string]func(cfg *store.Config, v string) error{
	"storage.backend": func(cfg *store.Config, v string) error {
		b, err := store.ParseBackend(v)
		if err != nil {
			return err
		}
		cfg.Storage.Backend = string(b)
		return nil
	},
	"storage.dir": func(cfg *store.Config, v string) error {
		cfg.Storage.Dir = v
		return nil
	},
	"tui.theme": func(cfg *store.Config, v string) error {
		switch v = strings.ToLower(v); v {
		case "", "auto", "light", "dark":
			cfg.TUI.Theme = v
			return nil
		}
		return fmt.Errorf("invalid theme %q (want light|dark|auto)", v)
	},
	"tui.mouse": func(cfg *store.Config, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid tui.mouse %q: %w", v, err)
		}
		cfg.TUI.Mouse = &b
		return nil
	},
	"debug.log_path": func(cfg *store.Config, v string) error {
		cfg.Debug.LogPath = v
		return nil
	},
	"debug.log_level": func(cfg *store.Config, v string) error {
		if v != "" && hclog.LevelFromString(v) == hclog.NoLevel {
			return fmt.Errorf("invalid log level %q", v)
		}
		cfg.Debug.LogLevel = strings.ToLower(v)
		return nil
	},
}

func configKeys() []string {
	keys := make([]string, 0, len(configSetters))
	for k := range configSetters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func newConfigSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set one configuration value",
		Long:  "Keys: " + strings.Join(configKeys(), ", "),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := strings.ToLower(strings.TrimSpace(args[0]))
			set, ok := configSetters[key]
			if !ok {
				return writeErr(cmd, fmt.Errorf("unknown config key %q (want one of: %s)", args[0], strings.Join(configKeys(), ", ")))
			}
			if err := set(app.cfg, strings.TrimSpace(args[1])); err != nil {
				return writeErr(cmd, err)
			}
			if err := store.SaveConfig(app.cfg); err != nil {
				return writeErr(cmd, err)
			}
			app.log.Info("config updated", "key", key)
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"config": app.cfg}})
		},
	}
}
