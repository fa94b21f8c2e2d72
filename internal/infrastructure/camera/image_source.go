package camera

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"sync"

	"qr-scanner/internal/domain/entity"
	"qr-scanner/internal/domain/port"
)

// ImageSource отдаёт неподвижное изображение как видеопоток.
// Используется без камеры и в тестах.
type ImageSource struct {
	img *image.RGBA

	// WarmupFrames число первых кадров, которые отдаются как неготовые
	WarmupFrames int
}

// NewImageSource создаёт источник из готового изображения
func NewImageSource(img image.Image) *ImageSource {
	rgba := image.NewRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return &ImageSource{img: rgba}
}

// LoadImageSource читает PNG или JPEG с диска
func LoadImageSource(path string) (*ImageSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open image: %v", entity.ErrDevice, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: decode image: %v", entity.ErrDevice, err)
	}

	return NewImageSource(img), nil
}

// Acquire открывает новый поток; сторона камеры не влияет на изображение
func (s *ImageSource) Acquire(ctx context.Context, mode entity.FacingMode) (port.Stream, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: unknown facing mode %q", entity.ErrDevice, mode)
	}
	return &imageStream{img: s.img, warmup: s.WarmupFrames}, nil
}

type imageStream struct {
	mu       sync.Mutex
	img      *image.RGBA
	warmup   int
	released bool
}

func (s *imageStream) Frame() (entity.Frame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.released {
		return entity.Frame{}, errStreamReleased
	}
	if s.warmup > 0 {
		s.warmup--
		return entity.Frame{}, nil
	}

	// Копия, чтобы потребитель не испортил исходник
	frame := image.NewRGBA(s.img.Bounds())
	copy(frame.Pix, s.img.Pix)

	return entity.Frame{
		Image:  frame,
		Width:  frame.Bounds().Dx(),
		Height: frame.Bounds().Dy(),
		Ready:  true,
	}, nil
}

func (s *imageStream) Release() {
	s.mu.Lock()
	s.released = true
	s.mu.Unlock()
}

// Проверка реализации интерфейса
var _ port.CaptureSource = (*ImageSource)(nil)
