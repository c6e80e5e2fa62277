package importer

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/nongtrai/farmcal/pkg/store"
)

// Importer loads a backend activity dump (JSON array, legacy "M/D/YYYY"
// dates allowed) into the local store.
type Importer struct {
	Path        string
	Persistence store.Persistence
}

// Do reads the dump file and reports how many records were imported.
func (n *Importer) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not import, no persistence")
	}
	if n.Path == "" {
		return errors.New("import: file path required")
	}
	f, err := os.Open(n.Path)
	if err != nil {
		return fmt.Errorf("import: open %s: %w", n.Path, err)
	}
	defer f.Close()

	count, err := n.Persistence.ImportJSON(f)
	if err != nil {
		return err
	}
	fmt.Printf("imported %d activities from %s\n", count, n.Path)
	return nil
}
