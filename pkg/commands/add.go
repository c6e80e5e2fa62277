package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/nongtrai/farmcal/pkg/commands/options"
	"github.com/nongtrai/farmcal/pkg/runner/add"
	"github.com/nongtrai/farmcal/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	ao := &options.ActivityOptions{}
	cmd := &cobra.Command{
		Use:   "add <activity-type>",
		Short: "add a farm activity",
		Example: `
farmcal add TUOI_TIEU --start 2024-01-15 --end 2024-01-16
farmcal add LAM_DAT --status IN_PROGRESS
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires exactly one activity type argument")
			}
			p, err := store.Load(nil)
			if err != nil {
				return oo.HandleError(err)
			}
			a := add.Add{
				ActivityType: args[0],
				StartDate:    ao.StartDate,
				EndDate:      ao.EndDate,
				Status:       ao.Status,
				Note:         ao.Note,
				Persistence:  p,
			}
			return oo.HandleError(a.Do(context.Background()))
		},
	}
	options.AddActivityArgs(cmd, ao)

	topLevel.AddCommand(cmd)
}
