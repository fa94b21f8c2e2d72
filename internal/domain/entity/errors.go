package entity

import (
	"errors"
	"fmt"
)

var (
	// ErrPermission доступ к камере запрещён
	ErrPermission = errors.New("camera permission denied")
	// ErrDevice камера отсутствует или не открылась
	ErrDevice = errors.New("camera device unavailable")
	// ErrInvalidDimensions размеры кадра или контейнера не заданы
	ErrInvalidDimensions = errors.New("invalid frame or container dimensions")
)

// RenderError ошибка отрисовки или декодирования, завершает сессию
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render: %v", e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
