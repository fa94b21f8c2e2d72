//go:build !gocv
// +build !gocv

package display

import (
	"errors"
	"image"
)

// Window окно-заглушка (без OpenCV)
type Window struct{}

// NewWindow возвращает ошибку, если сборка без тега gocv.
func NewWindow(title string) (*Window, error) {
	_ = title
	return nil, errors.New("gocv build tag is not enabled")
}

// Present ничего не делает
func (w *Window) Present(img image.Image) error {
	_ = img
	return nil
}

// Close ничего не делает
func (w *Window) Close() error {
	return nil
}
