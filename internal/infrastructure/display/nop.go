package display

import (
	"image"

	"qr-scanner/internal/domain/port"
)

// Nop отбрасывает кадры, когда окно не нужно
type Nop struct{}

func (Nop) Present(image.Image) error { return nil }

var _ port.Presenter = Nop{}
