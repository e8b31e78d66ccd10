// Package cli implements the uniq command line.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bitfield/uniq"
	"github.com/bitfield/uniq/internal/buildinfo"
	"github.com/bitfield/uniq/internal/logger"
)

// App is one invocation of the command, with its standard streams and
// terminal check supplied by the caller.
type App struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// Interactive reports whether standard input is a terminal.
	Interactive func() bool
}

// Main runs the command against the process's arguments and standard
// streams, and returns the exit status.
func Main() int {
	app := App{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Interactive: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd()))
		},
	}
	return app.Run(os.Args[1:])
}

// Run executes the command with args and returns the exit status: 1 if the
// arguments could not be parsed or the input could not be read, 0 otherwise.
func (a App) Run(args []string) int {
	cmd := a.newRootCmd()
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func (a App) newRootCmd() *cobra.Command {
	var (
		opts  uniq.Options
		debug bool
	)

	cmd := &cobra.Command{
		Use:   "uniq [flags] [filepath]",
		Short: "Collapse duplicate lines, wherever they occur in the input",
		Long: `uniq reads a file, or standard input if no file is given, and prints
each distinct line once, in the order it first appeared. Unlike uniq(1),
duplicate lines need not be adjacent.`,
		Version: buildinfo.Version,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			cleanup := logger.Setup(logger.Config{Debug: debug, Out: a.Stderr})
			defer cleanup()

			return a.run(cmd, args, opts)
		},
	}

	cmd.SetIn(a.Stdin)
	cmd.SetOut(a.Stdout)
	cmd.SetErr(a.Stderr)
	cmd.SetVersionTemplate(buildinfo.String() + "\n")

	f := cmd.Flags()
	f.BoolVarP(&opts.Count, "count", "c", false, "prefix lines by the number of occurrences")
	f.BoolVarP(&opts.Duplicates, "repeated", "d", false, "only print duplicate lines")
	f.BoolVarP(&opts.Unique, "unique", "u", false, "only print unique lines")
	f.BoolVarP(&opts.Verbose, "verbose", "v", false, "show a header naming the input")
	f.BoolVar(&opts.Color, "color", false, "enable colored output")
	f.BoolVar(&debug, "debug", false, "log debug information to standard error")
	return cmd
}

func (a App) run(cmd *cobra.Command, args []string, opts uniq.Options) error {
	log := logger.L()

	src := uniq.ResolveSource(args, a.Interactive)
	log.Debug("input.resolved", "kind", src.Kind, "label", src.Label())

	var p *uniq.Pipe
	switch src.Kind {
	case uniq.SourceUsage:
		return cmd.Usage()
	case uniq.SourceFile:
		if !uniq.IsRegularFile(src.Path) {
			log.Debug("input.missing", "path", src.Path)
			fmt.Fprintf(cmd.OutOrStdout(), "Error: File '%s' not found.\n", src.Path)
			return nil
		}
		p = uniq.File(src.Path)
	case uniq.SourceStdin:
		p = uniq.NewPipe().WithReader(cmd.InOrStdin())
	}

	opts.Label = src.Label()
	log.Debug("output.start",
		"count", opts.Count,
		"duplicates", opts.Duplicates,
		"unique", opts.Unique,
		"verbose", opts.Verbose,
		"color", opts.Color,
	)
	n, err := p.WithStdout(cmd.OutOrStdout()).Uniq(opts).Stdout()
	if err != nil {
		return fmt.Errorf("reading %s: %w", src.Label(), err)
	}
	log.Debug("output.done", "bytes", n)
	return nil
}
