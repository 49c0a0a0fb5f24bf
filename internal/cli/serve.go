package cli

import (
	"github.com/spf13/cobra"

	"github.com/copyforge/copyforge/internal/config"
	"github.com/copyforge/copyforge/internal/server"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the companion service (uploads, schedule preview, generator pass-through)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if v, _ := cmd.Flags().GetString("port"); v != "" {
				cfg.Port = v
			}
			return server.New(cfg).Start()
		},
	}
	cmd.Flags().String("port", "", "Listen port (overrides PORT)")
	return cmd
}
