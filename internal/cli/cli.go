package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// New returns the root labelselector command.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "labelselector",
		Short: "labelselector parses Kubernetes-style label selector expressions",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
			os.Exit(1)
		},
	}
	cmd.AddCommand(NewCmdParse())
	return cmd
}
