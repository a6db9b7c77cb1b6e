package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/RobbieVerdurme/truncate.js/coordinator"
	"github.com/RobbieVerdurme/truncate.js/markup"
)

// Output formats.
const (
	formatHTML     = "html"
	formatText     = "text"
	formatMarkdown = "markdown"
	formatTerminal = "terminal"
)

func newRunCmd(a *app) *cobra.Command {
	var (
		flags     truncateFlags
		format    string
		expand    bool
		termStyle string
	)

	cmd := &cobra.Command{
		Use:   "run [file|-]",
		Short: "Truncate content once and print it",
		Long: `Reads HTML from a file, or from stdin when the file is "-" or omitted,
truncates it and prints the result.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			content, err := readInput(cmd, path)
			if err != nil {
				return err
			}

			c, err := a.newCoordinator(cmd, &flags, content)
			if err != nil {
				return err
			}
			if expand {
				c.Expand()
			}
			a.logger.Info("truncated",
				slog.Bool("truncated", c.IsTruncated()),
				slog.String("state", c.State().String()),
				slog.Float64("height", c.Height()),
				slog.Float64("max_height", c.MaxHeight()))

			if format == "" {
				format = defaultFormat(cmd.OutOrStdout())
			}
			out, err := formatOutput(c, format, termStyle, flags.width)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: html, text, markdown or terminal (default terminal on a TTY, html otherwise)")
	cmd.Flags().BoolVar(&expand, "expand", false, "print the expanded content")
	cmd.Flags().StringVar(&termStyle, "term-style", "auto", "glamour style for the terminal format")
	return cmd
}

// newCoordinator builds a coordinator for content from the layered options.
func (a *app) newCoordinator(cmd *cobra.Command, flags *truncateFlags, content string) (*coordinator.Coordinator, error) {
	base, err := a.baseOptions()
	if err != nil {
		return nil, err
	}
	opts, err := flags.apply(cmd, base)
	if err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if flags.sanitize {
		content = markup.Sanitize(content)
		opts.ShowMore = markup.Sanitize(opts.ShowMore)
		opts.ShowLess = markup.Sanitize(opts.ShowLess)
	}

	oracle, err := flags.newOracle(opts.LineHeight)
	if err != nil {
		return nil, err
	}

	root := markup.NewElement("div")
	if err := markup.ParseInto(root, content); err != nil {
		return nil, err
	}
	return coordinator.New(root, oracle, opts, coordinator.WithLogger(a.logger))
}

func readInput(cmd *cobra.Command, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

// defaultFormat picks terminal output for an interactive terminal and html
// for pipes, files, NO_COLOR and dumb terminals.
func defaultFormat(w io.Writer) string {
	f, ok := w.(*os.File)
	if !ok || os.Getenv("NO_COLOR") != "" {
		return formatHTML
	}
	if t := os.Getenv("TERM"); t == "" || t == "dumb" {
		return formatHTML
	}
	if !term.IsTerminal(int(f.Fd())) {
		return formatHTML
	}
	return formatTerminal
}

func formatOutput(c *coordinator.Coordinator, format, style string, width int) (string, error) {
	switch format {
	case formatHTML:
		return c.HTML(), nil
	case formatText:
		return markup.PlainText(c.Root()), nil
	case formatMarkdown:
		return markup.ToMarkdown(c.HTML())
	case formatTerminal:
		md, err := markup.ToMarkdown(c.HTML())
		if err != nil {
			return "", err
		}
		r, err := glamour.NewTermRenderer(
			glamour.WithStylePath(style),
			glamour.WithWordWrap(width),
			glamour.WithColorProfile(termenv.EnvColorProfile()),
		)
		if err != nil {
			return "", fmt.Errorf("create renderer: %w", err)
		}
		out, err := r.Render(md)
		if err != nil {
			return "", fmt.Errorf("render: %w", err)
		}
		return strings.TrimRight(out, "\n"), nil
	default:
		return "", fmt.Errorf("unknown format %q", format)
	}
}
