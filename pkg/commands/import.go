package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/nongtrai/farmcal/pkg/runner/importer"
	"github.com/nongtrai/farmcal/pkg/store"
)

func addImport(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "import <file.json>",
		Short: "import activities from a JSON export",
		Example: `
farmcal import hoat-dong.json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires exactly one file argument")
			}
			p, err := store.Load(nil)
			if err != nil {
				return oo.HandleError(err)
			}
			i := importer.Importer{
				Path:        args[0],
				Persistence: p,
			}
			return oo.HandleError(i.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}
