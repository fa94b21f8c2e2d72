package app

import (
	"context"
	"errors"
	"image"
	"image/color"
	"sync"

	"qr-scanner/internal/domain/entity"
	"qr-scanner/internal/domain/port"
)

type surfaceOp struct {
	Name  string
	Rect  image.Rectangle
	From  entity.Point
	To    entity.Point
	Color color.Color
}

// recordingSurface запоминает вызовы отрисовки
type recordingSurface struct {
	mu  sync.Mutex
	ops []surfaceOp
}

func (s *recordingSurface) add(op surfaceOp) {
	s.mu.Lock()
	s.ops = append(s.ops, op)
	s.mu.Unlock()
}

func (s *recordingSurface) Resize(size entity.Size) {
	s.add(surfaceOp{Name: "resize", Rect: image.Rect(0, 0, size.Width, size.Height)})
}

func (s *recordingSurface) DrawImage(img image.Image, dst image.Rectangle) {
	s.add(surfaceOp{Name: "draw", Rect: dst})
}

func (s *recordingSurface) FillRect(r image.Rectangle, c color.Color) {
	s.add(surfaceOp{Name: "fill", Rect: r, Color: c})
}

func (s *recordingSurface) ClearRect(r image.Rectangle) {
	s.add(surfaceOp{Name: "clear", Rect: r})
}

func (s *recordingSurface) StrokeRect(r image.Rectangle, c color.Color, width, dash int) {
	s.add(surfaceOp{Name: "stroke", Rect: r, Color: c})
}

func (s *recordingSurface) Line(from, to entity.Point, c color.Color, width, dash int) {
	s.add(surfaceOp{Name: "line", From: from, To: to, Color: c})
}

func (s *recordingSurface) FlipHorizontal() {
	s.add(surfaceOp{Name: "flip"})
}

func (s *recordingSurface) Image() image.Image {
	return image.NewRGBA(image.Rect(0, 0, 1, 1))
}

func (s *recordingSurface) names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.ops))
	for i, op := range s.ops {
		out[i] = op.Name
	}
	return out
}

func (s *recordingSurface) lines() []surfaceOp {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []surfaceOp
	for _, op := range s.ops {
		if op.Name == "line" {
			out = append(out, op)
		}
	}
	return out
}

func (s *recordingSurface) reset() {
	s.mu.Lock()
	s.ops = nil
	s.mu.Unlock()
}

var errReleased = errors.New("frame requested after release")

// fakeStream отдаёт кадры фиксированного размера и считает освобождения
type fakeStream struct {
	mu         sync.Mutex
	mode       entity.FacingMode
	width      int
	height     int
	notReady   int
	frameErr   error
	frames     int
	releases   int
	lateFrames int
}

func (s *fakeStream) Frame() (entity.Frame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.releases > 0 {
		s.lateFrames++
		return entity.Frame{}, errReleased
	}
	if s.frameErr != nil {
		return entity.Frame{}, s.frameErr
	}
	s.frames++
	if s.notReady > 0 {
		s.notReady--
		return entity.Frame{}, nil
	}
	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	return entity.Frame{Image: img, Width: s.width, Height: s.height, Ready: true}, nil
}

func (s *fakeStream) Release() {
	s.mu.Lock()
	s.releases++
	s.mu.Unlock()
}

func (s *fakeStream) stats() (frames, releases, late int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frames, s.releases, s.lateFrames
}

// fakeSource выдаёт fakeStream; gate, если задан, задерживает выдачу потока
type fakeSource struct {
	mu      sync.Mutex
	streams []*fakeStream
	entered int
	err     error
	gate    chan struct{}
	width   int
	height  int
}

func newFakeSource() *fakeSource {
	return &fakeSource{width: 640, height: 480}
}

func (s *fakeSource) Acquire(ctx context.Context, mode entity.FacingMode) (port.Stream, error) {
	s.mu.Lock()
	s.entered++
	s.mu.Unlock()

	if s.gate != nil {
		<-s.gate
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return nil, s.err
	}
	st := &fakeStream{mode: mode, width: s.width, height: s.height}
	s.streams = append(s.streams, st)
	return st, nil
}

func (s *fakeSource) acquiring() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entered
}

func (s *fakeSource) all() []*fakeStream {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*fakeStream(nil), s.streams...)
}

// recordingSink собирает результаты коммитов
type recordingSink struct {
	mu      sync.Mutex
	results []*entity.DecodeResult
}

func (s *recordingSink) OnScan(ctx context.Context, result *entity.DecodeResult) error {
	s.mu.Lock()
	s.results = append(s.results, result)
	s.mu.Unlock()
	return nil
}

func (s *recordingSink) snapshot() []*entity.DecodeResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*entity.DecodeResult(nil), s.results...)
}

// recordingErrors собирает ошибки сессии
type recordingErrors struct {
	mu   sync.Mutex
	errs []error
}

func (s *recordingErrors) OnError(err error) {
	s.mu.Lock()
	s.errs = append(s.errs, err)
	s.mu.Unlock()
}

func (s *recordingErrors) snapshot() []error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]error(nil), s.errs...)
}

// syncDecoder потокобезопасная обёртка над fakeDecoder
type syncDecoder struct {
	mu sync.Mutex
	d  *fakeDecoder
}

func (s *syncDecoder) Decode(pixels []byte, width, height int, opts entity.DecodeOptions) (*entity.DecodeResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.d.Decode(pixels, width, height, opts)
}

func (s *syncDecoder) calls() []entity.Size {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.Size(nil), s.d.calls...)
}
