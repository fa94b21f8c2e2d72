package port

import "qr-scanner/internal/domain/entity"

// Decoder интерфейс внешнего декодера QR-кодов
type Decoder interface {
	// Decode распознаёт код в RGBA-буфере width x height.
	// Возвращает nil, nil, если кода нет.
	Decode(pixels []byte, width, height int, opts entity.DecodeOptions) (*entity.DecodeResult, error)
}
