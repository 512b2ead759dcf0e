// Package seed ships the demo records every dashboard resource starts with.
package seed

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/noah-isme/sma-dashboard-api/internal/models"
)

//go:embed data/*.json
var files embed.FS

type envelope struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// Resources lists the resource slugs that have seed data, sorted.
func Resources() ([]string, error) {
	entries, err := files.ReadDir("data")
	if err != nil {
		return nil, fmt.Errorf("read seed dir: %w", err)
	}
	slugs := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".json" {
			continue
		}
		slugs = append(slugs, strings.TrimSuffix(entry.Name(), ".json"))
	}
	sort.Strings(slugs)
	return slugs, nil
}

// Rows decodes the seed file of a resource into storage rows. The file order
// becomes the row position.
func Rows(resource string, now time.Time) ([]models.RecordRow, error) {
	data, err := files.ReadFile(path.Join("data", resource+".json"))
	if err != nil {
		return nil, fmt.Errorf("read seed %s: %w", resource, err)
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode seed %s: %w", resource, err)
	}

	rows := make([]models.RecordRow, 0, len(raw))
	for i, item := range raw {
		var env envelope
		if err := json.Unmarshal(item, &env); err != nil {
			return nil, fmt.Errorf("decode seed %s[%d]: %w", resource, i, err)
		}
		if env.ID == "" {
			return nil, fmt.Errorf("seed %s[%d]: missing id", resource, i)
		}
		rows = append(rows, models.RecordRow{
			ID:        env.ID,
			Resource:  resource,
			Position:  i,
			Status:    env.Status,
			Payload:   append([]byte(nil), item...),
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return rows, nil
}

// All returns the rows of every seeded resource keyed by slug.
func All(now time.Time) (map[string][]models.RecordRow, error) {
	slugs, err := Resources()
	if err != nil {
		return nil, err
	}
	out := make(map[string][]models.RecordRow, len(slugs))
	for _, slug := range slugs {
		rows, err := Rows(slug, now)
		if err != nil {
			return nil, err
		}
		out[slug] = rows
	}
	return out, nil
}

// Store is the subset of a record repository the seeder writes through.
type Store interface {
	List(ctx context.Context, resource string) ([]models.RecordRow, error)
	Upsert(ctx context.Context, rows []models.RecordRow) error
}

// Apply writes the seed rows of every resource into store and returns the
// number of rows written per resource. Unless overwrite is set, resources that
// already hold records are left alone so restarts keep applied transitions.
func Apply(ctx context.Context, store Store, now time.Time, overwrite bool) (map[string]int, error) {
	all, err := All(now)
	if err != nil {
		return nil, err
	}
	written := make(map[string]int, len(all))
	for slug, rows := range all {
		if !overwrite {
			existing, err := store.List(ctx, slug)
			if err != nil {
				return nil, fmt.Errorf("seed %s: %w", slug, err)
			}
			if len(existing) > 0 {
				written[slug] = 0
				continue
			}
		}
		if err := store.Upsert(ctx, rows); err != nil {
			return nil, fmt.Errorf("seed %s: %w", slug, err)
		}
		written[slug] = len(rows)
	}
	return written, nil
}
