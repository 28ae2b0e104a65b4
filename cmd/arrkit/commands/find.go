package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/arrkit/find"
	"github.com/katalvlaran/arrkit/internal/coerce"
)

func (a *app) findCmds() []*cobra.Command {
	return []*cobra.Command{
		a.indexOfCmd(), a.countCmd(), a.distinctCmd(), a.commonCmd(),
		a.oddIndicesCmd(), a.valueAtIndexCmd(),
	}
}

// scalarsAndValue decodes the input list and the --value flag together,
// normalising numbers on both sides so 1 finds 1.0.
func scalarsAndValue(in any, raw string) ([]any, any, error) {
	s, err := coerce.Scalars(in)
	if err != nil {
		return nil, nil, err
	}
	v, err := parseValue(raw)
	if err != nil {
		return nil, nil, err
	}

	return s, coerce.Scalar(v), nil
}

func (a *app) indexOfCmd() *cobra.Command {
	var value string
	cmd := a.inputCmd("index-of", "Index of the first --value, or -1", func(in any) (any, error) {
		s, v, err := scalarsAndValue(in, value)
		if err != nil {
			return nil, err
		}
		return find.IndexOf(s, v), nil
	})
	cmd.Flags().StringVar(&value, "value", "", "value to look for (YAML scalar syntax)")

	return cmd
}

func (a *app) countCmd() *cobra.Command {
	var value string
	cmd := a.inputCmd("count", "Number of occurrences of --value", func(in any) (any, error) {
		s, v, err := scalarsAndValue(in, value)
		if err != nil {
			return nil, err
		}
		return find.Count(s, v), nil
	})
	cmd.Flags().StringVar(&value, "value", "", "value to count (YAML scalar syntax)")

	return cmd
}

func (a *app) distinctCmd() *cobra.Command {
	return a.inputCmd("distinct", "Unique values in first-seen order", func(in any) (any, error) {
		s, err := coerce.Scalars(in)
		if err != nil {
			return nil, err
		}
		return find.Distinct(s), nil
	})
}

func (a *app) commonCmd() *cobra.Command {
	return a.inputCmd("common", "Items of a that also occur in b, from {a: [...], b: [...]}", func(in any) (any, error) {
		var lists [2][]any
		for i, key := range []string{"a", "b"} {
			v, err := coerce.Field(in, key)
			if err != nil {
				return nil, err
			}
			if lists[i], err = coerce.Scalars(v); err != nil {
				return nil, err
			}
		}
		return find.Common(lists[0], lists[1]), nil
	})
}

func (a *app) oddIndicesCmd() *cobra.Command {
	return a.inputCmd("odd-indices", "Positions holding odd integers", func(in any) (any, error) {
		s, err := coerce.Ints(in)
		if err != nil {
			return nil, err
		}
		return find.IndicesOfOdd(s), nil
	})
}

func (a *app) valueAtIndexCmd() *cobra.Command {
	return a.inputCmd("value-at-index", "Whether some item equals its own index", func(in any) (any, error) {
		s, err := coerce.Ints(in)
		if err != nil {
			return nil, err
		}
		return find.HasValueAtOwnIndex(s), nil
	})
}
