package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"qr-scanner/internal/domain/entity"
	"qr-scanner/internal/infrastructure/storage"
)

func TestSubscriberService_SubscribeAndUnsubscribe(t *testing.T) {
	repo := storage.NewMemorySubscriberRepository()
	svc := NewSubscriberService(repo)
	ctx := context.Background()

	sub, err := svc.Subscribe(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.StateSubscribed, sub.State)

	subs, err := svc.Subscribed(ctx)
	require.NoError(t, err)
	require.Len(t, subs, 1)

	sub, err = svc.Unsubscribe(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.StateUnsubscribed, sub.State)

	subs, err = svc.Subscribed(ctx)
	require.NoError(t, err)
	require.Empty(t, subs)
}

func TestSubscriberService_Get(t *testing.T) {
	repo := storage.NewMemorySubscriberRepository()
	svc := NewSubscriberService(repo)

	sub, err := svc.Get(context.Background(), 2, 20)
	require.NoError(t, err)
	require.Equal(t, int64(20), sub.ChatID)
	require.Equal(t, entity.StateUnsubscribed, sub.State)
}
