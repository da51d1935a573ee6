//go:build integration

package roster_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dnderr "github.com/KirkDiggler/wilran/internal/errors"
	"github.com/KirkDiggler/wilran/internal/repositories/roster"
	"github.com/KirkDiggler/wilran/internal/testutils"
)

func TestRedisRepository_Integration(t *testing.T) {
	client := testutils.CreateTestRedisClientOrSkip(t)
	repo := roster.NewRedis(client)
	ctx := context.Background()

	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, testRecord("a", base)))
	require.NoError(t, repo.Create(ctx, testRecord("b", base.Add(time.Second))))
	assert.True(t, dnderr.IsAlreadyExists(repo.Create(ctx, testRecord("a", base))))

	enc, err := repo.Get(ctx, "a")
	require.NoError(t, err)
	enc.TakeDamage(5)
	require.NoError(t, repo.Update(ctx, enc))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 13, list[0].CurrentHP)

	require.NoError(t, repo.Delete(ctx, "a"))
	list, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "b", list[0].ID)
}
