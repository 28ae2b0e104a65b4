package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/arrkit/internal/coerce"
	"github.com/katalvlaran/arrkit/truthy"
)

func (a *app) truthyCmds() []*cobra.Command {
	return []*cobra.Command{
		a.inputCmd("compact", "Drop falsy values (null, false, 0, \"\", NaN)", func(in any) (any, error) {
			s, err := coerce.List(in)
			if err != nil {
				return nil, err
			}
			return truthy.Compact(s), nil
		}),
		a.inputCmd("count-falsy", "Number of falsy values", func(in any) (any, error) {
			s, err := coerce.List(in)
			if err != nil {
				return nil, err
			}
			return truthy.CountFalsy(s), nil
		}),
	}
}
