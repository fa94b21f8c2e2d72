package app

import (
	"fmt"
	"image"
	"image/draw"

	"qr-scanner/internal/domain/entity"
	"qr-scanner/internal/domain/port"
)

// DecoderAdapter вызывает внешний декодер только на вырезанном окне
type DecoderAdapter struct {
	decoder port.Decoder
	options entity.DecodeOptions
}

// NewDecoderAdapter создаёт адаптер с опциями декодирования
func NewDecoderAdapter(decoder port.Decoder, options entity.DecodeOptions) *DecoderAdapter {
	return &DecoderAdapter{decoder: decoder, options: options}
}

// Decode распознаёт код в crop. Пустой payload считается отсутствием кода.
func (a *DecoderAdapter) Decode(crop *image.RGBA) (*entity.DecodeResult, error) {
	b := crop.Bounds()
	result, err := a.decoder.Decode(crop.Pix, b.Dx(), b.Dy(), a.options)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if result == nil || result.Payload == "" {
		return nil, nil
	}
	return result, nil
}

// cropRGBA копирует прямоугольник r из src в плотно упакованный буфер с началом в (0,0)
func cropRGBA(src *image.RGBA, r image.Rectangle) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(out, out.Bounds(), src, r.Min, draw.Src)
	return out
}
