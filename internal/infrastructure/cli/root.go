// Package cli wires the cobra command tree and the interactive REPL. It is a
// thin caller of the calculator service: parsing and presentation only.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/doeshing/calc-go/internal/app"
	"github.com/doeshing/calc-go/internal/infrastructure/cli/commands"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command. Bare `calc` starts the REPL;
// `calc <operation> <a> <b>` runs a single calculation.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, opts.Verbose)
	if err != nil {
		return nil, err
	}

	root := &cobra.Command{
		Use:   "calc [operation a b]",
		Short: "calc - interactive command-line calculator",
		Long: "calc runs ten binary arithmetic operations with bounded history,\n" +
			"undo/redo, and history persistence. Started without arguments it\n" +
			"drops into an interactive prompt.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer container.Close()
			if len(args) == 0 {
				return RunREPL(container, cmd.InOrStdin(), cmd.OutOrStdout())
			}
			return runOnce(cmd, container, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(commands.NewOpsCommand())
	root.AddCommand(commands.NewHistoryCommand(container))
	root.AddCommand(commands.NewConfigCommand(container))
	return root, nil
}

// runOnce performs a single calculation from command-line arguments.
func runOnce(cmd *cobra.Command, container *app.Container, args []string) error {
	if len(args) != 3 {
		return cmd.Help()
	}
	result, err := Calculate(container.Calculator, args[0], args[1], args[2])
	if err != nil {
		return err
	}
	cmd.Println("Result: " + result)
	return nil
}
