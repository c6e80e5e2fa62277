package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/nongtrai/farmcal/pkg/runner/ui"
	"github.com/nongtrai/farmcal/pkg/store"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the calendar terminal interface",
		Example: `
farmcal ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			i := ui.UI{Persistence: p}
			return i.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
