package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/arrkit/agg"
	"github.com/katalvlaran/arrkit/internal/coerce"
)

func (a *app) aggCmds() []*cobra.Command {
	return []*cobra.Command{
		a.sumPairwiseCmd(), a.averageCmd(), a.balanceCmd(),
		a.maxItemsCmd(), a.longestRunCmd(),
	}
}

func (a *app) sumPairwiseCmd() *cobra.Command {
	return a.inputCmd("sum-pairwise", "Element-wise sum of lists {a: [...], b: [...]}", func(in any) (any, error) {
		xs, ys, err := numberPair(in)
		if err != nil {
			return nil, err
		}
		return agg.SumPairwise(xs, ys), nil
	})
}

// numberPair reads the numeric lists stored under "a" and "b".
func numberPair(in any) ([]float64, []float64, error) {
	var lists [2][]float64
	for i, key := range []string{"a", "b"} {
		v, err := coerce.Field(in, key)
		if err != nil {
			return nil, nil, err
		}
		if lists[i], err = coerce.Floats(v); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", key, err)
		}
	}

	return lists[0], lists[1], nil
}

func (a *app) averageCmd() *cobra.Command {
	var precision int
	cmd := a.inputCmd("average", "Mean of a list of numbers", func(in any) (any, error) {
		if precision < 0 || precision > agg.MaxPrecision {
			return nil, fmt.Errorf("--precision must be in [0, %d], got %d", agg.MaxPrecision, precision)
		}
		s, err := coerce.Floats(in)
		if err != nil {
			return nil, err
		}
		return agg.Average(s, agg.WithPrecision(precision)), nil
	})
	cmd.Flags().IntVar(&precision, "precision", agg.DefaultPrecision, "decimals to round to")

	return cmd
}

func (a *app) balanceCmd() *cobra.Command {
	return a.inputCmd("balance", "Final balance of [[income, expense], ...]", func(in any) (any, error) {
		entries, err := coerce.Entries(in)
		if err != nil {
			return nil, err
		}
		return agg.Balance(entries), nil
	})
}

func (a *app) maxItemsCmd() *cobra.Command {
	var n int
	cmd := a.inputCmd("max-items", "The --n largest numbers, descending", func(in any) (any, error) {
		s, err := coerce.Floats(in)
		if err != nil {
			return nil, err
		}
		return agg.MaxItems(s, n)
	})
	cmd.Flags().IntVarP(&n, "n", "n", 1, "how many")

	return cmd
}

func (a *app) longestRunCmd() *cobra.Command {
	return a.inputCmd("longest-run", "Length of the longest strictly increasing run", func(in any) (any, error) {
		s, err := coerce.Floats(in)
		if err != nil {
			return nil, err
		}
		return agg.LongestIncreasingRun(s), nil
	})
}
