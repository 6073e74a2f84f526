package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tidwall/btree"

	"github.com/hashedone/typed/ast"
	"github.com/hashedone/typed/internal/arena"
	"github.com/hashedone/typed/internal/surface"
)

func newVarsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vars [file]",
		Short: "Build a program and dump its variable table in id order",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var src []byte
			var err error
			if len(args) == 1 {
				src, err = os.ReadFile(args[0])
			} else {
				src, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return err
			}

			root, err := surface.Parse(string(src))
			if err != nil {
				return err
			}
			result, err := ast.BuildRoot(root)
			if err != nil {
				return err
			}

			var table btree.Map[uint64, string]
			result.Arena.Variables(func(v ast.Variable, hint string) bool {
				table.Set(uint64(arena.Untyped(v)), result.Arena.VariableName(v))
				return true
			})

			table.Scan(func(id uint64, name string) bool {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", id, name)
				return true
			})
			return nil
		},
	}
}
