package commands

import (
	"context"
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nongtrai/farmcal/pkg/runner/remove"
	"github.com/nongtrai/farmcal/pkg/store"
)

func addDelete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "delete a farm activity by id",
		Example: `
farmcal get --id
farmcal delete 1705276800000000000
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires exactly one id argument")
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return errors.New("id must be an integer, see farmcal get --id")
			}
			p, err := store.Load(nil)
			if err != nil {
				return oo.HandleError(err)
			}
			r := remove.Remove{
				ID:          id,
				Persistence: p,
			}
			return oo.HandleError(r.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}
