package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/arrkit/internal/coerce"
	"github.com/katalvlaran/arrkit/strs"
)

func (a *app) strsCmds() []*cobra.Command {
	return []*cobra.Command{
		a.lengthsCmd(), a.sameLengthCmd(), a.joinCmd(), a.hexRGBCmd(), a.sortDigitsCmd(),
	}
}

func (a *app) lengthsCmd() *cobra.Command {
	return a.inputCmd("lengths", "Character count of each string", func(in any) (any, error) {
		s, err := coerce.Strings(in)
		if err != nil {
			return nil, err
		}
		return strs.Lengths(s), nil
	})
}

func (a *app) sameLengthCmd() *cobra.Command {
	return a.inputCmd("same-length", "Whether all strings have equal length", func(in any) (any, error) {
		s, err := coerce.Strings(in)
		if err != nil {
			return nil, err
		}
		return strs.SameLength(s), nil
	})
}

func (a *app) joinCmd() *cobra.Command {
	var sep string
	cmd := a.inputCmd("join", "Render a list as one delimited string", func(in any) (any, error) {
		s, err := coerce.List(in)
		if err != nil {
			return nil, err
		}
		return strs.JoinWith(s, sep), nil
	})
	cmd.Flags().StringVar(&sep, "sep", strs.DefaultSeparator, "separator")

	return cmd
}

func (a *app) hexRGBCmd() *cobra.Command {
	return a.inputCmd("hex-rgb", "24-bit integers as #RRGGBB codes", func(in any) (any, error) {
		s, err := coerce.Ints(in)
		if err != nil {
			return nil, err
		}
		return strs.HexRGB(s)
	})
}

func (a *app) sortDigitsCmd() *cobra.Command {
	return a.inputCmd("sort-digits", "Sort digit names (zero..nine) numerically", func(in any) (any, error) {
		s, err := coerce.Strings(in)
		if err != nil {
			return nil, err
		}
		return strs.SortDigitNames(s)
	})
}
