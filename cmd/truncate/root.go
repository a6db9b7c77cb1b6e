package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/RobbieVerdurme/truncate.js/config"
	"github.com/RobbieVerdurme/truncate.js/internal/logging"
)

// app holds state shared by all commands.
type app struct {
	configPath string
	logLevel   string
	logger     *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: logging.NewNop()}

	root := &cobra.Command{
		Use:   "truncate",
		Short: "Truncate HTML content to a height budget",
		Long: `truncate shortens HTML so that it fits within a number of lines or an
explicit height, keeping the markup intact and inserting an ellipsis at the
cut. The start, the middle or the end of the content can be removed.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logging.ParseLevel(a.logLevel)
			if err != nil {
				return err
			}
			a.logger = logging.NewWriter(cmd.ErrOrStderr(), level)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "options file (.yaml, .toml or .json)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(
		newRunCmd(a),
		newWatchCmd(a),
		newServeCmd(a),
		newSchemaCmd(),
		newOraclesCmd(),
	)
	return root
}

// baseOptions returns defaults, then the config file, then the environment.
func (a *app) baseOptions() (config.Options, error) {
	opts := config.Default()
	if a.configPath != "" {
		fileOpts, err := config.LoadFile(a.configPath)
		if err != nil {
			return config.Options{}, err
		}
		opts = fileOpts
	}
	opts.LoadFromEnv()
	return opts, nil
}
