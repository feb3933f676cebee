package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the textval config file",
	}
	cmd.AddCommand(newConfigInitCmd(a))
	return cmd
}

func newConfigInitCmd(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the effective configuration to a YAML file",
		Long: `Write the configuration in effect for this invocation to a YAML file.

Values come from the file named by --config, environment variables and
persistence flags, so this can turn a set of flags into a config file:
  textval config init --file ./history.json textval.yaml

The path defaults to --config. An existing file is kept unless --force is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.flags.ConfigPath
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				return ExitWithCode(ExitInvalidArgument, errors.New("no path given and --config is not set"))
			}

			if !force {
				if _, err := os.Stat(path); err == nil {
					return ExitWithCode(ExitInvalidArgument, fmt.Errorf("%s already exists, use --force to overwrite", path))
				}
			}

			if err := a.cfg.Save(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}
