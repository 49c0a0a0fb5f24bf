package cli

import (
	"github.com/spf13/cobra"

	"github.com/copyforge/copyforge/internal/config"
	"github.com/copyforge/copyforge/internal/tui"
)

func newWizardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wizard",
		Short: "Open the campaign wizard",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if v, _ := cmd.Root().PersistentFlags().GetString("api"); v != "" {
				cfg.APIBase = v
			}
			if v, _ := cmd.Root().PersistentFlags().GetString("lang"); v != "" {
				cfg.Lang = v
			}
			return tui.Run(cfg)
		},
	}
}
