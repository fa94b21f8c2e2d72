//go:build gocv
// +build gocv

package camera

import (
	"context"
	"fmt"
	"image"
	"sync"

	"gocv.io/x/gocv"

	"qr-scanner/internal/domain/entity"
	"qr-scanner/internal/domain/port"
)

// GoCVSource источник кадров с веб-камеры через OpenCV
type GoCVSource struct {
	Devices     map[entity.FacingMode]int // индекс устройства для каждой стороны
	IdealHeight int                       // желаемая высота кадра, 0: по умолчанию
}

// NewGoCVSource создаёт источник с привязкой сторон к устройствам
func NewGoCVSource(userDevice, environmentDevice, idealHeight int) *GoCVSource {
	return &GoCVSource{
		Devices: map[entity.FacingMode]int{
			entity.FacingUser:        userDevice,
			entity.FacingEnvironment: environmentDevice,
		},
		IdealHeight: idealHeight,
	}
}

// Acquire открывает устройство для нужной стороны
func (s *GoCVSource) Acquire(ctx context.Context, mode entity.FacingMode) (port.Stream, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	device, ok := s.Devices[mode]
	if !ok {
		return nil, fmt.Errorf("%w: no device for facing mode %q", entity.ErrDevice, mode)
	}

	cam, err := gocv.OpenVideoCapture(device)
	if err != nil {
		return nil, classifyOpenError(device, err)
	}
	if !cam.IsOpened() {
		cam.Close()
		return nil, fmt.Errorf("%w: device %d is not opened", entity.ErrDevice, device)
	}

	if s.IdealHeight > 0 {
		cam.Set(gocv.VideoCaptureFrameHeight, float64(s.IdealHeight))
	}

	return &gocvStream{cam: cam, raw: gocv.NewMat(), rgba: gocv.NewMat()}, nil
}

type gocvStream struct {
	mu       sync.Mutex
	cam      *gocv.VideoCapture
	raw      gocv.Mat // переиспользуемые матрицы, чтобы не аллоцировать на каждый кадр
	rgba     gocv.Mat
	released bool
}

func (s *gocvStream) Frame() (entity.Frame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.released {
		return entity.Frame{}, errStreamReleased
	}

	// Камера ещё прогревается, кадра нет, это не ошибка
	if ok := s.cam.Read(&s.raw); !ok || s.raw.Empty() {
		return entity.Frame{}, nil
	}

	gocv.CvtColor(s.raw, &s.rgba, gocv.ColorBGRToRGBA)

	w, h := s.rgba.Cols(), s.rgba.Rows()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	copy(img.Pix, s.rgba.ToBytes())

	return entity.Frame{Image: img, Width: w, Height: h, Ready: true}, nil
}

func (s *gocvStream) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.released {
		return
	}
	s.released = true
	s.cam.Close()
	s.raw.Close()
	s.rgba.Close()
}

// Проверка реализации интерфейса
var _ port.CaptureSource = (*GoCVSource)(nil)
