package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"qr-scanner/internal/domain/entity"
)

func TestMemorySubscriberRepository_GetCreates(t *testing.T) {
	repo := NewMemorySubscriberRepository()
	ctx := context.Background()

	s, err := repo.Get(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.StateUnsubscribed, s.State)

	again, err := repo.Get(ctx, 1, 10)
	require.NoError(t, err)
	require.Same(t, s, again)
}

func TestMemorySubscriberRepository_List(t *testing.T) {
	repo := NewMemorySubscriberRepository()
	ctx := context.Background()

	for _, id := range []int64{3, 1, 2} {
		s, err := repo.Get(ctx, id, id*10)
		require.NoError(t, err)
		if id != 2 {
			s.SetState(entity.StateSubscribed)
			require.NoError(t, repo.Save(ctx, s))
		}
	}

	subs, err := repo.List(ctx, entity.StateSubscribed)
	require.NoError(t, err)
	require.Len(t, subs, 2)
	require.Equal(t, int64(1), subs[0].ID)
	require.Equal(t, int64(3), subs[1].ID)
}
