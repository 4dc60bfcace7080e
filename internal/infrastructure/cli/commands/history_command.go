package commands

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/doeshing/calc-go/internal/app"
)

// NewHistoryCommand creates the history command with all subcommands.
func NewHistoryCommand(container *app.Container) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect persisted calculation history",
	}

	historyCmd.AddCommand(
		newHistoryListCommand(container),
		newHistoryClearCommand(container),
		newHistorySaveCommand(container),
		newHistoryLoadCommand(container),
		newHistoryPathCommand(container),
	)

	return historyCmd
}

// newHistoryListCommand creates the 'history list' subcommand.
func newHistoryListCommand(container *app.Container) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List persisted calculations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listHistory(cmd.OutOrStdout(), container, limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Max entries to show (0 for all)")
	return cmd
}

// newHistoryClearCommand creates the 'history clear' subcommand.
func newHistoryClearCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear the session history and undo state",
		RunE: func(cmd *cobra.Command, args []string) error {
			container.Calculator.ClearHistory()
			cmd.Println("History cleared")
			return nil
		},
	}
}

// newHistorySaveCommand creates the 'history save' subcommand.
func newHistorySaveCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "save [file]",
		Short: "Save the session history to a file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := optionalPath(args, container)
			if err := container.Calculator.SaveHistory(path); err != nil {
				return err
			}
			cmd.Println("History saved to " + path)
			return nil
		},
	}
}

// newHistoryLoadCommand creates the 'history load' subcommand.
func newHistoryLoadCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "load [file]",
		Short: "Load history from a file into the session",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := optionalPath(args, container)
			if err := container.Calculator.LoadHistory(path); err != nil {
				return err
			}
			cmd.Printf("Loaded %d calculations from %s\n", container.Calculator.History.Count(), path)
			return nil
		},
	}
}

// newHistoryPathCommand creates the 'history path' subcommand.
func newHistoryPathCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the history file location",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Println(container.Config.HistoryFile)
			return nil
		},
	}
}

func optionalPath(args []string, container *app.Container) string {
	if len(args) > 0 {
		return args[0]
	}
	return container.Config.HistoryFile
}

func listHistory(out io.Writer, container *app.Container, limit int) error {
	records, err := container.HistoryStore.Load(container.Config.HistoryFile)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(out, "No calculations recorded yet.")
		return nil
	}
	if limit > 0 && len(records) > limit {
		records = records[len(records)-limit:]
	}
	for i, rec := range records {
		fmt.Fprintf(out, "%d. %s  (%s)\n", i+1, rec, humanize.Time(rec.Timestamp))
	}
	return nil
}
