package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// Output formats accepted by --output.
const (
	formatYAML = "yaml"
	formatJSON = "json"
)

// app carries the resolved persistent flags and the logger into every subcommand.
type app struct {
	input   string
	output  string
	verbose bool
	noColor bool
	log     *slog.Logger
}

// Execute runs arrkit against the process arguments and stdio.
// The error, if any, has already been reported on stderr.
func Execute() error {
	root, a := newRoot()

	return a.execute(root)
}

// execute runs root and reports a failure on its error stream.
func (a *app) execute(root *cobra.Command) error {
	err := root.Execute()
	if err != nil {
		a.reportError(root.ErrOrStderr(), err)
	}

	return err
}

// reportError prints err in bold red, unless colour is off for this run:
// --no-color, NO_COLOR in the environment, or w is not a terminal.
// The colour decision is local to the call and never touches color.NoColor.
func (a *app) reportError(w io.Writer, err error) {
	c := color.New(color.FgRed, color.Bold)
	if a.noColor || os.Getenv("NO_COLOR") != "" || !isTerminal(w) {
		c.DisableColor()
	} else {
		c.EnableColor()
	}
	c.Fprintf(w, "error: %v\n", err)
}

// isTerminal reports whether w is a file attached to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// NewRootCmd builds a fresh command tree. Tests redirect its streams with
// SetIn / SetOut / SetErr.
func NewRootCmd() *cobra.Command {
	root, _ := newRoot()

	return root
}

// newRoot builds the command tree together with the app state its flags bind to.
func newRoot() (*cobra.Command, *app) {
	a := &app{log: slog.New(slog.NewTextHandler(os.Stderr, nil))}
	root := &cobra.Command{
		Use:           "arrkit",
		Short:         "Slice and array operations over YAML/JSON input",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.output != formatYAML && a.output != formatJSON {
				return fmt.Errorf("unknown --output %q (want %s or %s)", a.output, formatYAML, formatJSON)
			}
			level := slog.LevelInfo
			if a.verbose {
				level = slog.LevelDebug
			}
			a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			return nil
		},
	}

	root.PersistentFlags().StringVarP(&a.input, "input", "i", "", "read the document from this file instead of stdin")
	root.PersistentFlags().StringVarP(&a.output, "output", "o", formatYAML, "result format: yaml or json")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug details to stderr")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable coloured error output")

	root.AddCommand(a.seqCmds()...)
	root.AddCommand(a.aggCmds()...)
	root.AddCommand(a.findCmds()...)
	root.AddCommand(a.strsCmds()...)
	root.AddCommand(a.truthyCmds()...)
	root.AddCommand(a.nestedCmds()...)

	return root, a
}
