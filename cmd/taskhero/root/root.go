package root

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"taskhero/internal/config"
	"taskhero/internal/ui"
)

const Version = "0.2.0"

// app carries what every subcommand needs once the environment is loaded.
type app struct {
	cfg      *config.Config
	dbPath   string
	logLevel *slog.LevelVar
	logger   *slog.Logger
}

func newRootCmd(stderr io.Writer) *cobra.Command {
	level := new(slog.LevelVar)
	a := &app{
		logLevel: level,
		logger:   slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})),
	}

	cmd := &cobra.Command{
		Use:           "taskhero",
		Short:         "TaskHero: a task list that keeps score",
		Long:          "TaskHero tracks your tasks and rewards completions with points, challenge tiers, daily rewards and a weekly streak.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			a.cfg = cfg
			if a.dbPath == "" {
				a.dbPath = cfg.DBPath
			}
			if cfg.Debug() {
				a.logLevel.Set(slog.LevelDebug)
			}
			a.logger.Debug("config loaded", "db", a.dbPath, "timezone", cfg.Timezone, "refresh", cfg.RefreshInterval)
			return nil
		},
	}
	cmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	cmd.PersistentFlags().StringVar(&a.dbPath, "db", "", "Database path (overrides TASKHERO_DB_PATH)")

	cmd.AddCommand(
		newAddCmd(a),
		newListCmd(a),
		newDoCmd(a),
		newUndoCmd(a),
		newEditCmd(a),
		newClearCmd(a),
		newStatusCmd(a),
		newGoalsCmd(a),
		newExportCmd(a),
		newBoardCmd(a),
	)
	return cmd
}

func Execute() {
	if err := newRootCmd(os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
