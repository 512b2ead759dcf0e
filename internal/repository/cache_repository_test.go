package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/sma-dashboard-api/pkg/errors"
)

func TestCacheRepositoryWithoutClient(t *testing.T) {
	repo := NewCacheRepository(nil, nil)
	ctx := context.Background()

	var dest map[string]string
	require.ErrorIs(t, repo.Get(ctx, "list:assets:abc", &dest), appErrors.ErrCacheMiss)
	require.NoError(t, repo.Set(ctx, "list:assets:abc", map[string]string{"a": "b"}, 0))
	require.NoError(t, repo.DeleteByPattern(ctx, "list:assets:*"))
	require.Error(t, repo.Ping(ctx))
	require.NoError(t, repo.Close())
}
