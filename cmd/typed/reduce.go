package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/petermattis/goid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/hashedone/typed/ast"
	"github.com/hashedone/typed/internal/surface"
	"github.com/hashedone/typed/reporter"
)

func newReduceCmd() *cobra.Command {
	var debugParse bool

	cmd := &cobra.Command{
		Use:   "reduce [file-or-glob ...]",
		Short: "Build and β-reduce one or more Typed programs",
		Long: "Build and β-reduce one or more Typed programs. With no arguments, " +
			"reads a single program from stdin. Each argument may be a literal " +
			"path or a glob pattern (e.g. **/*.typed); matched files are " +
			"reduced concurrently.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFrom(cmd.Context())

			if len(args) == 0 {
				src, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				return reduceOne(cmd, cfg.Color, "<stdin>", string(src), debugParse)
			}

			files, err := expandGlobs(args)
			if err != nil {
				return err
			}

			limit := cfg.BatchConcurrency
			if limit <= 0 {
				limit = runtime.NumCPU()
			}

			g := new(errgroup.Group)
			g.SetLimit(limit)
			for _, f := range files {
				f := f
				g.Go(func() error {
					log.WithField("goroutine", goid.Get()).Debugf("reducing %s", f)
					src, err := os.ReadFile(f)
					if err != nil {
						return err
					}
					return reduceOne(cmd, cfg.Color, f, string(src), debugParse)
				})
			}
			return g.Wait()
		},
	}

	cmd.Flags().BoolVarP(&debugParse, "debug-parse", "d", false, "print the parsed tree before reducing")
	return cmd
}

// expandGlobs resolves each argument as a doublestar glob pattern against
// the current directory, falling back to treating it as a literal path
// whenever it matches nothing (a glob that matches no file is therefore
// reported later as a file that cannot be read).
func expandGlobs(patterns []string) ([]string, error) {
	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.Glob(os.DirFS("."), pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid glob %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			matches = []string{pattern}
		}
		files = append(files, matches...)
	}
	return files, nil
}

func reduceOne(cmd *cobra.Command, colorMode, name, src string, debugParse bool) error {
	root, err := surface.Parse(src)
	if err != nil {
		renderDiagnostic(cmd.ErrOrStderr(), colorMode, src, reporter.Error("parse "+name, err))
		return reporter.ErrInvalidSource
	}

	if debugParse {
		if err := root.DebugTree(cmd.OutOrStdout()); err != nil {
			return err
		}
	}

	log.Debugf("build %s", name)
	result, err := ast.BuildRoot(root)
	if err != nil {
		renderDiagnostic(cmd.ErrOrStderr(), colorMode, src, reporter.Error("build "+name, err))
		return reporter.ErrInvalidSource
	}

	log.Debugf("reduce %s", name)
	fmt.Fprintln(cmd.OutOrStdout(), result.String())
	return nil
}
