//go:build !gocv
// +build !gocv

package qr

import (
	"errors"

	"qr-scanner/internal/domain/entity"
)

// GoCVDecoder декодер-заглушка (без OpenCV)
type GoCVDecoder struct{}

// NewGoCVDecoder создаёт декодер-заглушку
func NewGoCVDecoder() *GoCVDecoder {
	return &GoCVDecoder{}
}

// Decode возвращает ошибку, если сборка без тега gocv.
func (d *GoCVDecoder) Decode(pixels []byte, width, height int, opts entity.DecodeOptions) (*entity.DecodeResult, error) {
	_ = pixels
	_ = opts
	return nil, errors.New("gocv build tag is not enabled")
}
