package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/arrkit/internal/coerce"
	"github.com/katalvlaran/arrkit/nested"
)

func (a *app) nestedCmds() []*cobra.Command {
	return []*cobra.Command{a.zerosCmd(), a.flattenCmd(), a.atCmd()}
}

func (a *app) zerosCmd() *cobra.Command {
	var dims, size int
	cmd := a.genCmd("zeros", "A --dims dimensional structure of --size zeros per level", func() (any, error) {
		return nested.Zeros(dims, size)
	})
	cmd.Flags().IntVar(&dims, "dims", 1, "number of dimensions")
	cmd.Flags().IntVar(&size, "size", 0, "elements per dimension")

	return cmd
}

func (a *app) flattenCmd() *cobra.Command {
	return a.inputCmd("flatten", "Collapse nested lists into one level", func(in any) (any, error) {
		s, err := coerce.List(in)
		if err != nil {
			return nil, err
		}
		return nested.Flatten(s), nil
	})
}

func (a *app) atCmd() *cobra.Command {
	var path []int
	cmd := a.inputCmd("at", "Element at the index --path, e.g. --path 1,0,2", func(in any) (any, error) {
		return nested.At(in, path...)
	})
	cmd.Flags().IntSliceVar(&path, "path", nil, "comma-separated indices")

	return cmd
}
