package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"qr-scanner/internal/domain/entity"
	"qr-scanner/internal/domain/port"
)

// ErrSessionClosed сессия уже закрыта
var ErrSessionClosed = errors.New("scan session is closed")

// SessionConfig настройки сессии сканирования
type SessionConfig struct {
	Mode           entity.FacingMode
	Reverse        bool
	Stop           bool
	Delay          time.Duration
	FrameInterval  time.Duration
	Container      entity.Size
	ViewportHeight int
}

// Session конечный автомат сессии: idle → acquiring → streaming → stopped/failed.
// Каждая смена конфигурации освобождает предыдущий поток до открытия следующего.
// Поток освобождает та горутина, которая его получила, ровно один раз.
type Session struct {
	id        string
	source    port.CaptureSource
	decoder   *DecoderAdapter
	surface   port.Surface
	presenter port.Presenter
	results   port.ResultSink
	errs      port.ErrorSink

	mu      sync.Mutex
	cfg     SessionConfig
	state   entity.SessionState
	gen     uint64
	baseCtx context.Context
	cancel  context.CancelFunc
	done    chan struct{} // закрывается, когда горутина текущего поколения освободила поток
	sched   *Scheduler
	closed  bool
	wg      sync.WaitGroup
}

// NewSession создаёт сессию в состоянии idle
func NewSession(
	source port.CaptureSource,
	decoder *DecoderAdapter,
	surface port.Surface,
	presenter port.Presenter,
	results port.ResultSink,
	errs port.ErrorSink,
	cfg SessionConfig,
) *Session {
	if errs == nil {
		errs = port.ErrorSinkFunc(func(error) {})
	}
	return &Session{
		id:        uuid.NewString(),
		source:    source,
		decoder:   decoder,
		surface:   surface,
		presenter: presenter,
		results:   results,
		errs:      errs,
		cfg:       cfg,
		state:     entity.SessionIdle,
	}
}

// ID идентификатор сессии для логов
func (s *Session) ID() string {
	return s.id
}

// State текущее состояние
func (s *Session) State() entity.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Config текущая конфигурация
func (s *Session) Config() SessionConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

// Start запускает захват. Если в конфигурации stop=true, сессия сразу переходит в stopped.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSessionClosed
	}
	if !s.cfg.Mode.Valid() {
		return fmt.Errorf("invalid facing mode %q", s.cfg.Mode)
	}
	s.baseCtx = ctx

	if s.activeLocked() {
		return nil
	}
	if s.cfg.Stop {
		s.state = entity.SessionStopped
		return nil
	}

	s.activateLocked()
	return nil
}

// SetMode переключает камеру; активная сессия закрывает старый поток и открывает новый
func (s *Session) SetMode(mode entity.FacingMode) error {
	if !mode.Valid() {
		return fmt.Errorf("invalid facing mode %q", mode)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSessionClosed
	}
	if s.cfg.Mode == mode {
		return nil
	}
	s.cfg.Mode = mode

	if s.activeLocked() {
		log.Printf("Session %s: switching camera to %s", s.id, mode)
		s.deactivateLocked(entity.SessionAcquiring)
		s.activateLocked()
	}
	return nil
}

// SetStop ставит сессию на паузу (камера освобождается) или снимает с паузы
func (s *Session) SetStop(stop bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSessionClosed
	}
	s.cfg.Stop = stop

	switch {
	case stop && s.activeLocked():
		log.Printf("Session %s: stopped", s.id)
		s.deactivateLocked(entity.SessionStopped)
	case stop && s.state == entity.SessionIdle:
		// Ещё не запускалась: Start увидит stop=true
	case !stop && s.state == entity.SessionStopped && s.baseCtx != nil:
		log.Printf("Session %s: resumed", s.id)
		s.activateLocked()
	}
	return nil
}

// SetDelay меняет период передачи результата без переоткрытия камеры
func (s *Session) SetDelay(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("delay must be positive, got %v", d)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cfg.Delay = d
	if s.sched != nil {
		s.sched.SetDelay(d)
	}
	return nil
}

// SetReverse включает зеркальную отрисовку
func (s *Session) SetReverse(reverse bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cfg.Reverse = reverse
	if s.sched != nil {
		s.sched.SetReverse(reverse)
	}
}

// Close останавливает циклы, освобождает камеру и ждёт завершения горутин
func (s *Session) Close() {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		if s.activeLocked() {
			s.deactivateLocked(entity.SessionStopped)
		} else if s.cancel != nil {
			s.cancel()
			s.cancel = nil
		}
	}
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *Session) activeLocked() bool {
	return s.state == entity.SessionAcquiring || s.state == entity.SessionStreaming
}

// activateLocked начинает новое поколение: ждёт освобождения прошлого потока и открывает новый
func (s *Session) activateLocked() {
	if s.cancel != nil {
		s.cancel()
	}

	s.gen++
	gen := s.gen
	ctx, cancel := context.WithCancel(s.baseCtx)
	s.cancel = cancel

	prev := s.done
	done := make(chan struct{})
	s.done = done

	s.state = entity.SessionAcquiring
	cfg := s.cfg

	s.wg.Add(1)
	go s.run(ctx, gen, cfg, prev, done)
}

// deactivateLocked отменяет текущее поколение; поток освободит его горутина
func (s *Session) deactivateLocked(next entity.SessionState) {
	if s.sched != nil {
		s.sched.SetStopped(true)
		s.sched = nil
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.gen++
	s.state = next
}

func (s *Session) run(ctx context.Context, gen uint64, cfg SessionConfig, prev <-chan struct{}, done chan<- struct{}) {
	defer s.wg.Done()
	defer close(done)

	if prev != nil {
		<-prev
	}
	if ctx.Err() != nil {
		return
	}

	log.Printf("Session %s: acquiring %s camera", s.id, cfg.Mode)
	stream, err := s.source.Acquire(ctx, cfg.Mode)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		if s.fail(gen) {
			log.Printf("Session %s: camera error: %v", s.id, err)
			s.errs.OnError(err)
		}
		return
	}
	defer stream.Release()

	s.mu.Lock()
	if gen != s.gen {
		// Поток пришёл после остановки или смены камеры, сразу освобождаем
		s.mu.Unlock()
		log.Printf("Session %s: stream arrived after reconfiguration, releasing", s.id)
		return
	}
	sched := NewScheduler(stream, s.decoder, s.surface, s.presenter, s.results, s.errs, SchedulerConfig{
		Container:      cfg.Container,
		ViewportHeight: cfg.ViewportHeight,
		Delay:          cfg.Delay,
		FrameInterval:  cfg.FrameInterval,
		Reverse:        cfg.Reverse,
	})
	s.sched = sched
	s.state = entity.SessionStreaming
	s.mu.Unlock()

	log.Printf("Session %s: streaming", s.id)
	if err := sched.Run(ctx); err != nil {
		log.Printf("Session %s: scan loop failed: %v", s.id, err)
		s.fail(gen)
		return
	}

	// Отменили снаружи, а не через SetStop/SetMode
	s.mu.Lock()
	if gen == s.gen {
		s.sched = nil
		s.state = entity.SessionStopped
	}
	s.mu.Unlock()
}

// fail переводит сессию в failed, если поколение всё ещё текущее
func (s *Session) fail(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		return false
	}
	s.sched = nil
	s.state = entity.SessionFailed
	return true
}
