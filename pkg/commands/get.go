package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/nongtrai/farmcal/pkg/commands/options"
	"github.com/nongtrai/farmcal/pkg/runner/get"
	"github.com/nongtrai/farmcal/pkg/store"
)

func addGet(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	cmd := &cobra.Command{
		Use:   "get",
		Short: "list farm activities",
		Example: `
farmcal get
farmcal get --status IN_PROGRESS
farmcal get --month 2024-01 --summary
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return oo.HandleError(err)
			}
			g := get.Get{
				ShowID:      fo.ShowID,
				Status:      fo.Status,
				Month:       fo.Month,
				Summary:     fo.Summary,
				Persistence: p,
			}
			return oo.HandleError(g.Do(context.Background()))
		},
	}
	options.AddFilterArgs(cmd, fo)

	topLevel.AddCommand(cmd)
}
