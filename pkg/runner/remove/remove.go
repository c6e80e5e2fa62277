package remove

import (
	"context"
	"errors"
	"fmt"

	"github.com/nongtrai/farmcal/pkg/activity"
	"github.com/nongtrai/farmcal/pkg/store"
)

// Remove deletes a stored activity by ID.
type Remove struct {
	ID          int64
	Persistence store.Persistence
}

// Do removes the activity and prints what was deleted.
func (n *Remove) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not delete, no persistence")
	}
	a, err := n.Persistence.Get(ctx, n.ID)
	if err != nil {
		return err
	}
	if err := n.Persistence.Delete(n.ID); err != nil {
		return err
	}
	fmt.Printf("đã xóa %s (%d)\n", activity.TypeLabel(a.ActivityType), a.ID)
	return nil
}
