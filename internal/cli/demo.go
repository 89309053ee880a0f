package cli

import (
	"github.com/spf13/cobra"

	"github.com/mrlokans/catalog/internal/config"
	"github.com/mrlokans/catalog/internal/entrypoint"
)

func newDemoCommand(info BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Seed sample authors, categories and books and run the query script",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewConfigWithFlags(cmd.Flags())
			if err != nil {
				return err
			}
			return entrypoint.Run(cfg, info.Version, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}
