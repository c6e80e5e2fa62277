// Package store persists farm activities on disk. The layout mirrors what
// the backend would serve: flat JSON records, one per activity.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/peterbourgon/diskv/v3"

	"github.com/nongtrai/farmcal/pkg/activity"
	"github.com/nongtrai/farmcal/pkg/dateutil"
)

// Persistence defines the persistence contract for activities.
type Persistence interface {
	List(ctx context.Context) ([]activity.Activity, error)
	Get(ctx context.Context, id int64) (activity.Activity, error)
	Store(a activity.Activity) (activity.Activity, error)
	Delete(id int64) error
	ImportJSON(r io.Reader) (int, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

const activitiesBucket = "activities"

func (p *persistence) read(key string) (activity.Activity, error) {
	val, err := p.d.Read(key)
	if err != nil {
		return activity.Activity{}, err
	}
	var a activity.Activity
	if err := json.Unmarshal(val, &a); err != nil {
		return activity.Activity{}, err
	}
	return a, nil
}

func (p *persistence) List(ctx context.Context) ([]activity.Activity, error) {
	all := make([]activity.Activity, 0)
	for key := range p.d.Keys(ctx.Done()) {
		a, err := p.read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, a)
	}
	sortActivities(all)
	return all, nil
}

func (p *persistence) Get(ctx context.Context, id int64) (activity.Activity, error) {
	for key := range p.d.Keys(ctx.Done()) {
		a, err := p.read(key)
		if err != nil {
			continue
		}
		if a.ID == id {
			return a, nil
		}
	}
	return activity.Activity{}, fmt.Errorf("store: activity %d not found", id)
}

// Store writes an activity, assigning an ID when missing, and returns the
// stored record.
func (p *persistence) Store(a activity.Activity) (activity.Activity, error) {
	if strings.TrimSpace(a.ActivityType) == "" {
		return a, errors.New("store: activity type required")
	}
	if a.ID == 0 {
		a.ID = time.Now().UnixNano()
	}
	data, err := json.Marshal(a)
	if err != nil {
		return a, err
	}
	if err := p.d.Write(toKey(a), data); err != nil {
		return a, err
	}
	return a, nil
}

func (p *persistence) Delete(id int64) error {
	for key := range p.d.Keys(nil) {
		a, err := p.read(key)
		if err != nil {
			continue
		}
		if a.ID == id {
			return p.d.Erase(key)
		}
	}
	return fmt.Errorf("store: activity %d not found", id)
}

// ImportJSON loads a backend dump: a JSON array of activities whose dates may
// use the legacy "M/D/YYYY" form. Records are stored as-is; date parsing
// stays a render-time concern. Returns the number imported.
func (p *persistence) ImportJSON(r io.Reader) (int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("store: read import: %w", err)
	}
	var list []activity.Activity
	if err := json.Unmarshal(data, &list); err != nil {
		return 0, fmt.Errorf("store: decode import: %w", err)
	}
	count := 0
	for _, a := range list {
		if _, err := p.Store(a); err != nil {
			fmt.Fprintf(os.Stderr, "import %d: %s\n", a.ID, err)
			continue
		}
		count++
	}
	return count, nil
}

func sortActivities(all []activity.Activity) {
	sort.SliceStable(all, func(i, j int) bool {
		li, okI := dateutil.Parse(all[i].StartDate)
		lj, okJ := dateutil.Parse(all[j].StartDate)
		switch {
		case !okI && !okJ:
			return all[i].ID < all[j].ID
		case !okI:
			return true
		case !okJ:
			return false
		default:
			if li.Equal(lj) {
				return all[i].ID < all[j].ID
			}
			return li.Before(lj)
		}
	})
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}

// toKey makes `activities-<start day>-<id>`; unparseable start dates land in
// a literal "none" day directory.
func toKey(a activity.Activity) string {
	day := "none"
	if t, ok := dateutil.Parse(a.StartDate); ok {
		day = t.Format("2006.01.02")
	}
	return fmt.Sprintf("%s-%s-%d", activitiesBucket, day, a.ID)
}
