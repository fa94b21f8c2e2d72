package qr

import (
	"fmt"

	"qr-scanner/internal/domain/port"
)

// New возвращает декодер по имени из конфигурации
func New(name string) (port.Decoder, error) {
	switch name {
	case "", "zxing":
		return NewZXingDecoder(), nil
	case "gocv":
		return NewGoCVDecoder(), nil
	default:
		return nil, fmt.Errorf("unknown decoder %q", name)
	}
}
