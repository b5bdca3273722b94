package repository

import (
	"context"
	"testing"
	"time"

	"backoffice/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func check(status string, at time.Time) *model.HealthCheck {
	return &model.HealthCheck{Status: status, CheckedAt: at}
}

func TestMemoryHealthCheckRepository_Empty(t *testing.T) {
	repo := NewMemoryHealthCheckRepository(3)

	latest, err := repo.Latest(context.Background())
	require.NoError(t, err)
	assert.Nil(t, latest)

	list, err := repo.List(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestMemoryHealthCheckRepository_KeepsNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryHealthCheckRepository(3)
	base := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		c := check(model.HealthUp, base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, repo.Save(ctx, c))
		assert.NotEqual(t, uuid.Nil, c.ID)
	}

	latest, err := repo.Latest(ctx)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, base.Add(4*time.Minute), latest.CheckedAt)

	list, err := repo.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, base.Add(4*time.Minute), list[0].CheckedAt)
	assert.Equal(t, base.Add(2*time.Minute), list[2].CheckedAt)

	two, err := repo.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, two, 2)
}

func TestMemoryHealthCheckRepository_KeepsGivenID(t *testing.T) {
	repo := NewMemoryHealthCheckRepository(1)
	id := uuid.New()
	c := &model.HealthCheck{ID: id, Status: model.HealthDown}

	require.NoError(t, repo.Save(context.Background(), c))

	latest, err := repo.Latest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, id, latest.ID)
	assert.Equal(t, model.HealthDown, latest.Status)
}
