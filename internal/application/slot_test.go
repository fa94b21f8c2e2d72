package app

import (
	"testing"

	"github.com/stretchr/testify/require"

	"qr-scanner/internal/domain/entity"
)

func TestResultSlot_OverwriteAndTake(t *testing.T) {
	var s resultSlot
	require.Nil(t, s.Take())

	first := &entity.DecodeResult{Payload: "a"}
	second := &entity.DecodeResult{Payload: "b"}
	s.Put(first)
	s.Put(second)

	require.Equal(t, uint64(1), s.Drops())
	require.Same(t, second, s.Take())
	require.Nil(t, s.Peek())
	require.Nil(t, s.Take())
}
