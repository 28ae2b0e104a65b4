package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// genCmd builds a subcommand that takes no input document.
func (a *app) genCmd(use, short string, fn func() (any, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, fn)
		},
	}
}

// inputCmd builds a subcommand that decodes the input document and passes it to fn.
func (a *app) inputCmd(use, short string, fn func(in any) (any, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := a.readInput(cmd)
			if err != nil {
				return err
			}
			return a.run(cmd, func() (any, error) { return fn(in) })
		},
	}
}

// run evaluates fn and writes its result in the selected format.
func (a *app) run(cmd *cobra.Command, fn func() (any, error)) error {
	start := time.Now()
	res, err := fn()
	if err != nil {
		a.log.Debug("operation failed", "op", cmd.Name(), "err", err)
		return fmt.Errorf("%s: %w", cmd.Name(), err)
	}
	a.log.Debug("operation done", "op", cmd.Name(), "elapsed", time.Since(start))

	return a.write(cmd.OutOrStdout(), res)
}

// readInput decodes the document named by --input, or stdin when unset.
// YAML is a superset of JSON, so one decoder serves both.
func (a *app) readInput(cmd *cobra.Command) (any, error) {
	var (
		data []byte
		err  error
	)
	if a.input != "" {
		data, err = os.ReadFile(a.input)
	} else {
		data, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode input: %w", err)
	}
	a.log.Debug("decoded input", "bytes", len(data), "type", fmt.Sprintf("%T", doc))

	return doc, nil
}

// write encodes v to w as YAML or JSON.
func (a *app) write(w io.Writer, v any) error {
	if a.output == formatJSON {
		return json.NewEncoder(w).Encode(v)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}

// parseValue decodes a flag value with YAML scalar rules: "3" is an int,
// "true" a bool, "x" a string.
func parseValue(s string) (any, error) {
	var v any
	if err := yaml.Unmarshal([]byte(s), &v); err != nil {
		return nil, fmt.Errorf("parse %q: %w", s, err)
	}

	return v, nil
}
