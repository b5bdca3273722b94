package service

import (
	"context"
	"testing"
	"time"

	"backoffice/internal/gateway"
	"backoffice/internal/model"
	"backoffice/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHealthService(gw *fakeGateway) (*healthService, repository.HealthCheckRepository) {
	repo := repository.NewMemoryHealthCheckRepository(10)
	svc := &healthService{
		prober: gw,
		repo:   repo,
		now:    func() time.Time { return time.Date(2025, 11, 10, 9, 0, 0, 0, time.UTC) },
	}
	return svc, repo
}

func TestHealthService_LatestBeforeAnyCheck(t *testing.T) {
	svc, _ := newTestHealthService(&fakeGateway{})

	latest, err := svc.Latest(context.Background())

	require.NoError(t, err)
	assert.Equal(t, model.HealthUnknown, latest.Status)
	assert.Nil(t, latest.ResponseTimeMs)
}

func TestHealthService_CheckUp(t *testing.T) {
	svc, _ := newTestHealthService(&fakeGateway{ping: gateway.PingResult{StatusCode: 200, Elapsed: 42 * time.Millisecond}})

	check, err := svc.Check(context.Background())

	require.NoError(t, err)
	assert.Equal(t, model.HealthUp, check.Status)
	require.NotNil(t, check.ResponseTimeMs)
	assert.Equal(t, int64(42), *check.ResponseTimeMs)
	assert.Empty(t, check.ErrorMessage)

	latest, err := svc.Latest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, check.ID, latest.ID)
}

func TestHealthService_CheckBadStatus(t *testing.T) {
	svc, _ := newTestHealthService(&fakeGateway{ping: gateway.PingResult{StatusCode: 503, Elapsed: 10 * time.Millisecond}})

	check, err := svc.Check(context.Background())

	require.NoError(t, err)
	assert.Equal(t, model.HealthDown, check.Status)
	assert.Equal(t, "status code: 503", check.ErrorMessage)
	assert.NotNil(t, check.ResponseTimeMs)
}

func TestHealthService_CheckUnreachable(t *testing.T) {
	svc, _ := newTestHealthService(&fakeGateway{pingErr: gateway.ErrTransport})

	check, err := svc.Check(context.Background())

	require.NoError(t, err)
	assert.Equal(t, model.HealthDown, check.Status)
	assert.Nil(t, check.ResponseTimeMs)
	assert.Equal(t, connectFailedMessage, check.ErrorMessage)
	assert.Equal(t, time.Date(2025, 11, 10, 9, 0, 0, 0, time.UTC), check.CheckedAt)
}

func TestHealthService_CheckInterruptedIsNotRecorded(t *testing.T) {
	svc, repo := newTestHealthService(&fakeGateway{pingErr: gateway.ErrTransport})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Check(ctx)

	require.ErrorIs(t, err, context.Canceled)
	list, err := repo.List(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestHealthService_History(t *testing.T) {
	svc, _ := newTestHealthService(&fakeGateway{ping: gateway.PingResult{StatusCode: 200}})
	for i := 0; i < 3; i++ {
		_, err := svc.Check(context.Background())
		require.NoError(t, err)
	}

	all, err := svc.History(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	one, err := svc.History(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, one, 1)
}

func TestHealthService_PollStopsWithContext(t *testing.T) {
	svc, repo := newTestHealthService(&fakeGateway{ping: gateway.PingResult{StatusCode: 200}})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		svc.Poll(ctx, 5*time.Millisecond)
		close(done)
	}()

	require.Eventually(t, func() bool {
		list, _ := repo.List(context.Background(), 10)
		return len(list) >= 2
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poller did not stop")
	}
}

func TestHealthService_PollDisabled(t *testing.T) {
	svc, repo := newTestHealthService(&fakeGateway{})

	svc.Poll(context.Background(), 0)

	list, err := repo.List(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, list)
}
