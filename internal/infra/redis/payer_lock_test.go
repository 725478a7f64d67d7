package redis

import (
	"context"
	"testing"

	"github.com/RichardVsc/project/internal/domain"
	"github.com/alicebob/miniredis/v2"
	goredislib "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLock(t *testing.T) *PayerLock {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredislib.NewClient(&goredislib.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewPayerLock(client)
}

func TestPayerLock_AcquireAndRelease(t *testing.T) {
	lock := newTestLock(t)
	ctx := context.Background()

	release, err := lock.Acquire(ctx, 1)
	require.NoError(t, err)
	release()

	// Depois do release o mesmo pagador pode travar de novo
	release, err = lock.Acquire(ctx, 1)
	require.NoError(t, err)
	release()
}

func TestPayerLock_ContentionFailsFast(t *testing.T) {
	lock := newTestLock(t)
	ctx := context.Background()

	release, err := lock.Acquire(ctx, 1)
	require.NoError(t, err)
	defer release()

	// Segunda aquisição do mesmo pagador esgota as tentativas e falha
	_, err = lock.Acquire(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrTransferInProgress)
}

func TestPayerLock_DistinctPayersDoNotContend(t *testing.T) {
	lock := newTestLock(t)
	ctx := context.Background()

	releaseA, err := lock.Acquire(ctx, 1)
	require.NoError(t, err)
	defer releaseA()

	releaseB, err := lock.Acquire(ctx, 2)
	require.NoError(t, err)
	defer releaseB()
}
