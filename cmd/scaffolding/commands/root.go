package commands

import (
	"github.com/spf13/cobra"

	"scaffolding/internal/app"
)

var (
	configPath string
	logLevel   string
	launch     string
	producers  string
	wire       *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:          "scaffolding",
		Short:        "Home screen scaffold with loading, success and error states",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Log.Level = logLevel
			}
			if cmd.Flags().Changed("launch") {
				cfg.Home.Launch = launch
			}
			if cmd.Flags().Changed("producers") {
				cfg.Home.Producers = producers
			}
			w, err := app.NewWire(cfg)
			if err != nil {
				return err
			}
			wire = w
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")
	root.PersistentFlags().StringVar(&launch, "launch", "sequential", "producer launch: sequential or parallel")
	root.PersistentFlags().StringVar(&producers, "producers", app.ProducersFailing, "mock producers: failing or delayed")

	root.AddCommand(homeCmd(), releasesCmd(), userCmd())
	return root.Execute()
}
