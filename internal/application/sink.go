package app

import (
	"context"
	"errors"
	"log"
	"net/url"
	"sync"

	"qr-scanner/internal/domain/entity"
	"qr-scanner/internal/domain/port"
)

// PayloadGuard не даёт повторно обработать код, который держат перед камерой.
// После выдачи payload новые результаты игнорируются, пока коммит не придёт пустым.
type PayloadGuard struct {
	mu     sync.Mutex
	locked bool
}

// Admit возвращает payload, если его нужно обработать
func (g *PayloadGuard) Admit(result *entity.DecodeResult) (string, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if result == nil || result.Payload == "" {
		g.locked = false
		return "", false
	}
	if g.locked {
		return "", false
	}
	g.locked = true
	return result.Payload, true
}

// URLOpener открывает ссылку (браузер, обработчик ОС)
type URLOpener func(rawURL string) error

// OpenURLSink открывает распознанные http(s)-ссылки
type OpenURLSink struct {
	open  URLOpener
	guard PayloadGuard
}

// NewOpenURLSink создаёт sink, открывающий ссылки через open
func NewOpenURLSink(open URLOpener) *OpenURLSink {
	return &OpenURLSink{open: open}
}

// OnScan открывает ссылку из результата; прочие payload только логируются
func (s *OpenURLSink) OnScan(ctx context.Context, result *entity.DecodeResult) error {
	payload, ok := s.guard.Admit(result)
	if !ok {
		return nil
	}

	link, ok := ParseLink(payload)
	if !ok {
		log.Printf("Scanned non-URL payload: %q", payload)
		return nil
	}

	log.Printf("Opening %s", link)
	return s.open(link)
}

// ParseLink проверяет, что payload является абсолютной http(s)-ссылкой
func ParseLink(payload string) (string, bool) {
	u, err := url.Parse(payload)
	if err != nil || u.Host == "" {
		return "", false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", false
	}
	return u.String(), true
}

// Fanout раздаёт результат нескольким получателям.
// Получателей можно добавлять после создания сессии.
type Fanout struct {
	mu    sync.RWMutex
	sinks []port.ResultSink
}

// NewFanout создаёт раздатчик с начальным набором получателей
func NewFanout(sinks ...port.ResultSink) *Fanout {
	return &Fanout{sinks: sinks}
}

// Add добавляет получателя
func (f *Fanout) Add(sink port.ResultSink) {
	f.mu.Lock()
	f.sinks = append(f.sinks, sink)
	f.mu.Unlock()
}

func (f *Fanout) OnScan(ctx context.Context, result *entity.DecodeResult) error {
	f.mu.RLock()
	sinks := append([]port.ResultSink(nil), f.sinks...)
	f.mu.RUnlock()

	var errs []error
	for _, sink := range sinks {
		if err := sink.OnScan(ctx, result); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// LogErrors пишет ошибки сессии в лог
var LogErrors = port.ErrorSinkFunc(func(err error) {
	log.Printf("Scanner error: %v", err)
})

var (
	_ port.ResultSink = (*OpenURLSink)(nil)
	_ port.ResultSink = (*Fanout)(nil)
)
