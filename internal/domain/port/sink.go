package port

import (
	"context"

	"qr-scanner/internal/domain/entity"
)

// ResultSink получатель результатов сканирования.
// result == nil означает, что за интервал код не найден.
type ResultSink interface {
	OnScan(ctx context.Context, result *entity.DecodeResult) error
}

// ErrorSink получатель ошибок сессии
type ErrorSink interface {
	OnError(err error)
}

// ResultSinkFunc адаптер функции к ResultSink
type ResultSinkFunc func(ctx context.Context, result *entity.DecodeResult) error

func (f ResultSinkFunc) OnScan(ctx context.Context, result *entity.DecodeResult) error {
	return f(ctx, result)
}

// ErrorSinkFunc адаптер функции к ErrorSink
type ErrorSinkFunc func(err error)

func (f ErrorSinkFunc) OnError(err error) {
	f(err)
}
