package commands

import (
	"fmt"
	"reflect"

	"github.com/expr-lang/expr"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/arrkit/internal/coerce"
	"github.com/katalvlaran/arrkit/seq"
)

func (a *app) seqCmds() []*cobra.Command {
	return []*cobra.Command{
		a.intervalCmd(), a.oddsCmd(), a.identityCmd(),
		a.headCmd(), a.tailCmd(), a.doubleCmd(), a.insertCmd(),
		a.shiftCmd(), a.swapCmd(), a.chunksCmd(), a.propagateCmd(),
		a.selectManyCmd(),
	}
}

func (a *app) intervalCmd() *cobra.Command {
	var start, end int
	cmd := a.genCmd("interval", "Integers from --start to --end inclusive", func() (any, error) {
		return seq.Interval(start, end)
	})
	cmd.Flags().IntVar(&start, "start", 0, "first value")
	cmd.Flags().IntVar(&end, "end", 0, "last value")

	return cmd
}

func (a *app) oddsCmd() *cobra.Command {
	var n int
	cmd := a.genCmd("odds", "The first --n odd numbers", func() (any, error) {
		return seq.Odds(n)
	})
	cmd.Flags().IntVarP(&n, "n", "n", 0, "how many")

	return cmd
}

func (a *app) identityCmd() *cobra.Command {
	var n int
	cmd := a.genCmd("identity", "The --n by --n identity matrix", func() (any, error) {
		return seq.Identity(n)
	})
	cmd.Flags().IntVarP(&n, "n", "n", 0, "matrix order")

	return cmd
}

func (a *app) headCmd() *cobra.Command {
	var n int
	cmd := a.inputCmd("head", "First --n items of a list", func(in any) (any, error) {
		s, err := coerce.List(in)
		if err != nil {
			return nil, err
		}
		return seq.Head(s, n)
	})
	cmd.Flags().IntVarP(&n, "n", "n", 0, "how many")

	return cmd
}

func (a *app) tailCmd() *cobra.Command {
	var n int
	cmd := a.inputCmd("tail", "Last --n items of a list", func(in any) (any, error) {
		s, err := coerce.List(in)
		if err != nil {
			return nil, err
		}
		return seq.Tail(s, n)
	})
	cmd.Flags().IntVarP(&n, "n", "n", 0, "how many")

	return cmd
}

func (a *app) doubleCmd() *cobra.Command {
	return a.inputCmd("double", "Repeat a list twice", func(in any) (any, error) {
		s, err := coerce.List(in)
		if err != nil {
			return nil, err
		}
		return seq.Double(s), nil
	})
}

func (a *app) insertCmd() *cobra.Command {
	var (
		item  string
		index int
	)
	cmd := a.inputCmd("insert", "Insert --item at --index", func(in any) (any, error) {
		s, err := coerce.List(in)
		if err != nil {
			return nil, err
		}
		v, err := parseValue(item)
		if err != nil {
			return nil, err
		}
		return seq.Insert(s, v, index)
	})
	cmd.Flags().StringVar(&item, "item", "", "value to insert (YAML scalar syntax)")
	cmd.Flags().IntVar(&index, "index", 0, "insertion position")

	return cmd
}

func (a *app) shiftCmd() *cobra.Command {
	var n int
	cmd := a.inputCmd("shift", "Rotate a list right by --n (negative rotates left)", func(in any) (any, error) {
		s, err := coerce.List(in)
		if err != nil {
			return nil, err
		}
		return seq.Shift(s, n), nil
	})
	cmd.Flags().IntVarP(&n, "n", "n", 0, "positions")

	return cmd
}

func (a *app) swapCmd() *cobra.Command {
	return a.inputCmd("swap-head-tail", "Exchange the first and last halves of a list", func(in any) (any, error) {
		s, err := coerce.List(in)
		if err != nil {
			return nil, err
		}
		return seq.SwapHeadAndTail(s), nil
	})
}

func (a *app) chunksCmd() *cobra.Command {
	var size int
	cmd := a.inputCmd("chunks", "Split a list into pieces of --size", func(in any) (any, error) {
		s, err := coerce.List(in)
		if err != nil {
			return nil, err
		}
		return seq.Chunks(s, size)
	})
	cmd.Flags().IntVar(&size, "size", 1, "items per chunk")

	return cmd
}

func (a *app) propagateCmd() *cobra.Command {
	return a.inputCmd("propagate", "Repeat each item as many times as its position", func(in any) (any, error) {
		s, err := coerce.List(in)
		if err != nil {
			return nil, err
		}
		return seq.PropagateByPosition(s), nil
	})
}

// selectEnv is the expression environment seen by select-many.
type selectEnv struct {
	Item any `expr:"item"`
}

func (a *app) selectManyCmd() *cobra.Command {
	var src string
	cmd := a.inputCmd("select-many", "Project each item with --expr and concatenate the results", func(in any) (any, error) {
		s, err := coerce.List(in)
		if err != nil {
			return nil, err
		}
		prg, err := expr.Compile(src, expr.Env(selectEnv{}))
		if err != nil {
			return nil, fmt.Errorf("compile --expr: %w", err)
		}

		var runErr error
		out, err := seq.SelectMany(s, func(item any) []any {
			if runErr != nil {
				return nil
			}
			res, err := expr.Run(prg, selectEnv{Item: item})
			if err != nil {
				runErr = err
				return nil
			}
			// a non-list projection contributes itself
			if res == nil || reflect.TypeOf(res).Kind() != reflect.Slice {
				return []any{res}
			}
			items, err := coerce.List(res)
			if err != nil {
				runErr = err
				return nil
			}
			return items
		})
		if err != nil {
			return nil, err
		}
		if runErr != nil {
			return nil, fmt.Errorf("evaluate --expr: %w", runErr)
		}
		return out, nil
	})
	cmd.Flags().StringVarP(&src, "expr", "e", "item", "projection over `item`")

	return cmd
}
