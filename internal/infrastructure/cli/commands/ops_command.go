package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/doeshing/calc-go/internal/domain"
)

// NewOpsCommand creates the 'ops' command listing the operation registry.
func NewOpsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List available operations",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, kind := range domain.OpKinds() {
				cmd.Println(fmt.Sprintf("%-12s %s", kind, kind.Symbol()))
			}
			return nil
		},
	}
}
