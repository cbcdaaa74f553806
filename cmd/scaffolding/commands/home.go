package commands

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"scaffolding/internal/metrics"
	"scaffolding/internal/ui/home"
)

func homeCmd() *cobra.Command {
	var plain, dumpMetrics bool

	cmd := &cobra.Command{
		Use:   "home",
		Short: "Show the home screen",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			vm := wire.NewHome(ctx)

			interactive := !plain && isatty.IsTerminal(os.Stdout.Fd())
			if interactive {
				m, closeModel := home.NewModel(vm)
				defer closeModel()
				if _, err := tea.NewProgram(m, tea.WithContext(ctx)).Run(); err != nil {
					return fmt.Errorf("home screen: %w", err)
				}
			} else {
				cancel := home.WatchErrors(vm, func(msg string) {
					fmt.Fprintf(cmd.ErrOrStderr(), "! %s\n", msg)
				})
				defer cancel()
				select {
				case <-vm.Done():
				case <-ctx.Done():
					return ctx.Err()
				}
				fmt.Fprint(cmd.OutOrStdout(), home.Render(vm.State()))
			}

			if dumpMetrics {
				return metrics.WriteText(cmd.ErrOrStderr(), wire.Registry)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "print the settled screen instead of the interactive view")
	cmd.Flags().BoolVar(&dumpMetrics, "metrics", false, "dump prometheus metrics to stderr on exit")
	return cmd
}
