package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	domaintypes "scaffolding/internal/domain/types"
	"scaffolding/internal/ui/home"
)

func releasesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "releases",
		Short: "Print the release list",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, r := range domaintypes.AndroidReleases() {
				fmt.Fprintln(cmd.OutOrStdout(), home.FormatRecord(r))
			}
			return nil
		},
	}
}
