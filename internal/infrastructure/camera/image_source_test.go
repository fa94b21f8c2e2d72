package camera

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"qr-scanner/internal/domain/entity"
)

func TestImageSource_Frames(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.SetRGBA(1, 1, color.RGBA{R: 200, A: 255})

	src := NewImageSource(img)
	src.WarmupFrames = 1

	stream, err := src.Acquire(context.Background(), entity.FacingUser)
	require.NoError(t, err)

	frame, err := stream.Frame()
	require.NoError(t, err)
	require.False(t, frame.Ready)

	frame, err = stream.Frame()
	require.NoError(t, err)
	require.True(t, frame.Ready)
	require.Equal(t, 4, frame.Width)
	require.Equal(t, 3, frame.Height)
	require.Equal(t, color.RGBA{R: 200, A: 255}, frame.Image.RGBAAt(1, 1))

	stream.Release()
	stream.Release()
	_, err = stream.Frame()
	require.ErrorIs(t, err, errStreamReleased)
}

func TestImageSource_RejectsUnknownMode(t *testing.T) {
	src := NewImageSource(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	_, err := src.Acquire(context.Background(), entity.FacingMode("side"))
	require.ErrorIs(t, err, entity.ErrDevice)
}

func TestLoadImageSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, 8, 6))))
	require.NoError(t, f.Close())

	src, err := LoadImageSource(path)
	require.NoError(t, err)

	stream, err := src.Acquire(context.Background(), entity.FacingEnvironment)
	require.NoError(t, err)
	frame, err := stream.Frame()
	require.NoError(t, err)
	require.Equal(t, 8, frame.Width)

	_, err = LoadImageSource(filepath.Join(t.TempDir(), "missing.png"))
	require.ErrorIs(t, err, entity.ErrDevice)
}
