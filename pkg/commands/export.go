package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/nongtrai/farmcal/pkg/runner/export"
	"github.com/nongtrai/farmcal/pkg/store"
)

func addExport(topLevel *cobra.Command) {
	out := ""
	cmd := &cobra.Command{
		Use:   "export",
		Short: "export activities to an iCalendar file",
		Example: `
farmcal export -o lich-nong-trai.ics
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return oo.HandleError(err)
			}
			e := export.Export{
				Out:         out,
				Persistence: p,
			}
			return oo.HandleError(e.Do(context.Background()))
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "farmcal.ics", "Output file path.")

	topLevel.AddCommand(cmd)
}
