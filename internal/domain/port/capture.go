package port

import (
	"context"

	"qr-scanner/internal/domain/entity"
)

// CaptureSource интерфейс источника видеопотока
type CaptureSource interface {
	// Acquire открывает поток с камеры нужной стороны.
	// Ошибки: entity.ErrPermission, entity.ErrDevice.
	Acquire(ctx context.Context, mode entity.FacingMode) (Stream, error)
}

// Stream открытый видеопоток
type Stream interface {
	// Frame возвращает текущий кадр; Ready=false, если данных ещё нет
	Frame() (entity.Frame, error)

	// Release останавливает поток и освобождает устройство; повторный вызов безопасен
	Release()
}
