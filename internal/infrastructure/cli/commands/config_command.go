package commands

import (
	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/doeshing/calc-go/internal/app"
	configinfra "github.com/doeshing/calc-go/internal/infrastructure/config"
)

// NewConfigCommand creates the config command with all subcommands.
func NewConfigCommand(container *app.Container) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect calculator configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfiguration(cmd, container)
		},
	}

	configCmd.AddCommand(
		newConfigShowCommand(container),
		newConfigPathCommand(),
		newConfigDiffCommand(container),
	)

	return configCmd
}

// newConfigShowCommand creates the 'config show' subcommand.
func newConfigShowCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfiguration(cmd, container)
		},
	}
}

// newConfigPathCommand creates the 'config path' subcommand.
func newConfigPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file location",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Println(configinfra.NewFileLoader("").Path())
			return nil
		},
	}
}

// newConfigDiffCommand creates the 'config diff' subcommand.
func newConfigDiffCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "diff",
		Short: "Show differences from the default configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Diff against the hydrated defaults so an untouched setup is clean.
			diff := cmp.Diff(configinfra.HydratedDefaultConfig(), container.Config)
			if diff == "" {
				cmd.Println("No differences from default configuration.")
				return nil
			}
			cmd.Println(diff)
			return nil
		},
	}
}

func showConfiguration(cmd *cobra.Command, container *app.Container) error {
	raw, err := yaml.Marshal(container.Config)
	if err != nil {
		return err
	}
	cmd.Print(string(raw))
	return nil
}
