package seed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sma-dashboard-api/internal/models"
)

func TestResourcesListsEverySeedFile(t *testing.T) {
	slugs, err := Resources()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"assets", "assignments", "attendance", "candidates", "documents",
		"expenses", "leave-requests", "payroll", "performance-reviews", "users",
	}, slugs)
}

func TestRowsKeepFileOrderAndUniqueIDs(t *testing.T) {
	now := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	all, err := All(now)
	require.NoError(t, err)

	for slug, rows := range all {
		require.NotEmpty(t, rows, slug)
		seen := make(map[string]struct{}, len(rows))
		for i, row := range rows {
			assert.Equal(t, i, row.Position, slug)
			assert.Equal(t, slug, row.Resource)
			assert.NotEmpty(t, row.Status, "%s %s", slug, row.ID)
			assert.Equal(t, now, row.CreatedAt)
			_, dup := seen[row.ID]
			assert.False(t, dup, "%s duplicates %s", slug, row.ID)
			seen[row.ID] = struct{}{}
		}
	}
}

func TestRowsUnknownResource(t *testing.T) {
	_, err := Rows("grades", time.Now())
	require.Error(t, err)
}

type fakeStore struct {
	rows    map[string][]models.RecordRow
	upserts int
}

func (f *fakeStore) List(_ context.Context, resource string) ([]models.RecordRow, error) {
	return f.rows[resource], nil
}

func (f *fakeStore) Upsert(_ context.Context, rows []models.RecordRow) error {
	f.upserts++
	for _, row := range rows {
		f.rows[row.Resource] = append(f.rows[row.Resource], row)
	}
	return nil
}

func TestApplySkipsPopulatedResources(t *testing.T) {
	store := &fakeStore{rows: map[string][]models.RecordRow{
		"payroll": {{ID: "PAY-001", Resource: "payroll", Status: "paid"}},
	}}
	now := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	written, err := Apply(context.Background(), store, now, false)
	require.NoError(t, err)
	assert.Equal(t, 0, written["payroll"])
	assert.Equal(t, 12, written["assets"])
	assert.Equal(t, 9, store.upserts)
	assert.Len(t, store.rows["payroll"], 1)

	written, err = Apply(context.Background(), store, now, true)
	require.NoError(t, err)
	assert.Equal(t, 12, written["payroll"])
	assert.Equal(t, 19, store.upserts)
}
