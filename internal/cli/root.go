package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func Execute() error {
	root := &cobra.Command{
		Use:   "copyforge",
		Short: "Guided wizard for a week of Instagram posts",
		Long:  "Copyforge: collect a brand profile and campaign setup, upload images, and generate a scheduled week of posts.",
	}

	root.PersistentFlags().String("api", "", "Base URL of the companion service (overrides COPYFORGE_API)")
	root.PersistentFlags().String("lang", "", "UI language, it or en (overrides COPYFORGE_LANG)")

	root.AddCommand(newWizardCmd())
	root.AddCommand(newServeCmd())

	if err := root.Execute(); err != nil {
		return fmt.Errorf("execute: %w", err)
	}
	return nil
}
