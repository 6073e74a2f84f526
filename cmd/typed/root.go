package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hashedone/typed/config"
)

// version is overridden at build time via -ldflags "-X main.version=...".
var version = "dev"

var log = logrus.New()

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "typed",
		Short:         "Build and reduce Typed programs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().String("log_level", "info", "log level: debug, info, warn, error")
	root.PersistentFlags().String("color", "auto", "colored diagnostics: always, never, auto")
	root.PersistentFlags().Int("batch_concurrency", 0, "max files reduced concurrently in batch mode (0 = one per logical CPU)")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath, cmd.Flags())
		if err != nil {
			return err
		}
		level, err := logrus.ParseLevel(cfg.LogLevel)
		if err != nil {
			return err
		}
		log.SetLevel(level)
		cmd.SetContext(withConfig(cmd.Context(), cfg))
		return nil
	}

	root.AddCommand(newReduceCmd())
	root.AddCommand(newVarsCmd())
	root.AddCommand(newVersionCmd())
	root.AddCommand(newConfigCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the typed binary version",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Println(version)
			return nil
		},
	}
}

// newConfigCmd dumps the fully resolved configuration (defaults, config
// file, environment, flags merged) back out as YAML, so a user can see
// exactly what a run would use without reading all four layers by hand.
func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := configFrom(cmd.Context()).Dump()
			if err != nil {
				return err
			}
			cmd.Print(out)
			return nil
		},
	}
}
