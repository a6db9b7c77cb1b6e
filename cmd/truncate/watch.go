package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/RobbieVerdurme/truncate.js/watch"
)

func newWatchCmd(a *app) *cobra.Command {
	var (
		flags    truncateFlags
		debounce time.Duration
		poll     time.Duration
		perMin   int
	)

	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-truncate a file every time it changes",
		Long: `Prints the truncated content of a file, then prints it again after every
change until interrupted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			c, err := a.newCoordinator(cmd, &flags, string(data))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, c.HTML())

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			opts := []watch.Option{
				watch.WithDebounce(debounce),
				watch.WithRateLimit(perMin),
				watch.WithLogger(a.logger),
			}
			if poll > 0 {
				opts = append(opts, watch.WithPolling(poll))
			}
			for r := range watch.New(path, c, opts...).Watch(ctx) {
				if r.Err != nil {
					a.logger.Error("reload failed", slog.String("path", path), slog.Any("error", r.Err))
					continue
				}
				fmt.Fprintln(out, r.HTML)
			}
			return ignoreCanceled(ctx)
		},
	}

	flags.register(cmd)
	cmd.Flags().DurationVar(&debounce, "debounce", watch.DefaultDebounce, "quiet period before a change is read")
	cmd.Flags().DurationVar(&poll, "poll", 0, "poll at this interval instead of using file system events")
	cmd.Flags().IntVar(&perMin, "rate", 0, "maximum re-truncations per minute (0 means unlimited)")
	return cmd
}

// ignoreCanceled treats an interrupted context as a clean exit.
func ignoreCanceled(ctx context.Context) error {
	if err := ctx.Err(); err != nil && err != context.Canceled {
		return err
	}
	return nil
}
