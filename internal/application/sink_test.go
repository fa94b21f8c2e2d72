package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"qr-scanner/internal/domain/entity"
	"qr-scanner/internal/domain/port"
)

func TestOpenURLSink_GuardsUntilAbsent(t *testing.T) {
	var opened []string
	sink := NewOpenURLSink(func(u string) error {
		opened = append(opened, u)
		return nil
	})
	ctx := context.Background()
	res := &entity.DecodeResult{Payload: "https://example.com/a"}

	require.NoError(t, sink.OnScan(ctx, res))
	require.NoError(t, sink.OnScan(ctx, res))
	require.NoError(t, sink.OnScan(ctx, res))
	require.Equal(t, []string{"https://example.com/a"}, opened)

	require.NoError(t, sink.OnScan(ctx, nil))
	require.NoError(t, sink.OnScan(ctx, res))
	require.Len(t, opened, 2)
}

func TestOpenURLSink_SkipsNonURL(t *testing.T) {
	called := false
	sink := NewOpenURLSink(func(string) error {
		called = true
		return nil
	})

	require.NoError(t, sink.OnScan(context.Background(), &entity.DecodeResult{Payload: "WIFI:S:home;T:WPA;P:secret;;"}))
	require.False(t, called)
}

func TestParseLink(t *testing.T) {
	link, ok := ParseLink("https://example.com/path?q=1")
	require.True(t, ok)
	require.Equal(t, "https://example.com/path?q=1", link)

	for _, bad := range []string{"", "example.com", "javascript:alert(1)", "file:///etc/passwd", "http://"} {
		_, ok := ParseLink(bad)
		require.False(t, ok, bad)
	}
}

func TestFanout(t *testing.T) {
	boom := errors.New("boom")
	var got []*entity.DecodeResult
	ok := port.ResultSinkFunc(func(ctx context.Context, r *entity.DecodeResult) error {
		got = append(got, r)
		return nil
	})
	failing := port.ResultSinkFunc(func(context.Context, *entity.DecodeResult) error { return boom })

	res := &entity.DecodeResult{Payload: "x"}
	fan := NewFanout(failing)
	fan.Add(ok)
	err := fan.OnScan(context.Background(), res)
	require.ErrorIs(t, err, boom)
	require.Equal(t, []*entity.DecodeResult{res}, got)
}
