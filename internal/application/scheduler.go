package app

import (
	"context"
	"fmt"
	"image"
	"log"
	"sync/atomic"
	"time"

	"golang.org/x/image/draw"

	"qr-scanner/internal/domain/entity"
	"qr-scanner/internal/domain/port"
)

const (
	DefaultDelay         = 500 * time.Millisecond
	DefaultFrameInterval = 16 * time.Millisecond
)

// SchedulerConfig параметры цикла сканирования
type SchedulerConfig struct {
	Container      entity.Size
	ViewportHeight int
	Delay          time.Duration // период передачи результата
	FrameInterval  time.Duration // период отрисовки кадра
	Reverse        bool
}

// Scheduler гоняет два цикла на одной горутине: покадровую отрисовку с
// распознаванием и периодическую передачу последнего результата.
// Оба цикла обслуживает один select, поэтому слот результата меняется
// последовательно.
type Scheduler struct {
	stream    port.Stream
	decoder   *DecoderAdapter
	surface   port.Surface
	presenter port.Presenter
	results   port.ResultSink
	errs      port.ErrorSink
	cfg       SchedulerConfig

	slot    resultSlot
	stopped atomic.Bool
	reverse atomic.Bool
	delays  chan time.Duration

	scaled *image.RGBA
}

// NewScheduler создаёт планировщик для открытого потока
func NewScheduler(
	stream port.Stream,
	decoder *DecoderAdapter,
	surface port.Surface,
	presenter port.Presenter,
	results port.ResultSink,
	errs port.ErrorSink,
	cfg SchedulerConfig,
) *Scheduler {
	if cfg.Delay <= 0 {
		cfg.Delay = DefaultDelay
	}
	if cfg.FrameInterval <= 0 {
		cfg.FrameInterval = DefaultFrameInterval
	}

	s := &Scheduler{
		stream:    stream,
		decoder:   decoder,
		surface:   surface,
		presenter: presenter,
		results:   results,
		errs:      errs,
		cfg:       cfg,
		delays:    make(chan time.Duration, 1),
	}
	s.reverse.Store(cfg.Reverse)
	return s
}

// SetStopped включает паузу: результаты перестают уходить в sink
func (s *Scheduler) SetStopped(stopped bool) {
	s.stopped.Store(stopped)
}

// SetReverse включает зеркальную отрисовку
func (s *Scheduler) SetReverse(reverse bool) {
	s.reverse.Store(reverse)
}

// SetDelay меняет период передачи результата на лету
func (s *Scheduler) SetDelay(d time.Duration) {
	if d <= 0 {
		return
	}
	// Канал на одно значение: старое непрочитанное заменяем новым
	select {
	case <-s.delays:
	default:
	}
	s.delays <- d
}

// Run крутит оба цикла до отмены ctx или до первой ошибки отрисовки.
// Ошибка отрисовки один раз уходит в ErrorSink и возвращается как *entity.RenderError.
func (s *Scheduler) Run(ctx context.Context) error {
	frames := time.NewTicker(s.cfg.FrameInterval)
	defer frames.Stop()

	commits := time.NewTicker(s.cfg.Delay)
	defer commits.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case d := <-s.delays:
			commits.Reset(d)

		case <-frames.C:
			if err := s.Tick(ctx); err != nil {
				renderErr := &entity.RenderError{Err: err}
				if s.errs != nil {
					s.errs.OnError(renderErr)
				}
				return renderErr
			}

		case <-commits.C:
			s.Commit(ctx)
		}
	}
}

// Tick отрисовывает один кадр и распознаёт код в окне сканирования.
// Если камера ещё не готова, ничего не делает.
func (s *Scheduler) Tick(ctx context.Context) error {
	frame, err := s.stream.Frame()
	if err != nil {
		return fmt.Errorf("read frame: %w", err)
	}
	if !frame.Ready || frame.Image == nil {
		return nil
	}

	window, size, err := SelectRegion(
		entity.Size{Width: frame.Width, Height: frame.Height},
		s.cfg.Container,
		s.cfg.ViewportHeight,
	)
	if err != nil {
		return err
	}

	scaled := s.scale(frame.Image, size)

	// Декодер видит только окно сканирования, а не весь кадр
	result, err := s.decoder.Decode(cropRGBA(scaled, window.Rect()))
	if err != nil {
		return err
	}

	RenderOverlay(s.surface, Overlay{
		Frame:   scaled,
		Size:    size,
		Window:  window,
		Result:  result,
		Reverse: s.reverse.Load(),
	})

	if result != nil {
		s.slot.Put(result)
	}

	if s.presenter != nil {
		if err := s.presenter.Present(s.surface.Image()); err != nil {
			return fmt.Errorf("present: %w", err)
		}
	}

	return nil
}

// Commit отдаёт содержимое слота в sink (если не на паузе) и очищает слот.
func (s *Scheduler) Commit(ctx context.Context) {
	result := s.slot.Take()

	if s.stopped.Load() || ctx.Err() != nil {
		return
	}

	if err := s.results.OnScan(ctx, result); err != nil {
		log.Printf("Result sink error: %v", err)
	}
}

// scale приводит кадр к размеру отрисовки, переиспользуя буфер
func (s *Scheduler) scale(src *image.RGBA, size entity.Size) *image.RGBA {
	if src.Bounds().Dx() == size.Width && src.Bounds().Dy() == size.Height && src.Bounds().Min == (image.Point{}) {
		return src
	}

	r := image.Rect(0, 0, size.Width, size.Height)
	if s.scaled == nil || s.scaled.Bounds() != r {
		s.scaled = image.NewRGBA(r)
	}
	draw.ApproxBiLinear.Scale(s.scaled, r, src, src.Bounds(), draw.Src, nil)
	return s.scaled
}
