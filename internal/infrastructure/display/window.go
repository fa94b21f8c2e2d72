//go:build gocv
// +build gocv

package display

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"qr-scanner/internal/domain/port"
)

// Window показывает кадры в окне OpenCV
type Window struct {
	window *gocv.Window
}

// NewWindow открывает окно с заголовком title
func NewWindow(title string) (*Window, error) {
	return &Window{window: gocv.NewWindow(title)}, nil
}

// Present выводит кадр в окно
func (w *Window) Present(img image.Image) error {
	rgba, err := gocv.ImageToMatRGBA(img)
	if err != nil {
		return fmt.Errorf("image to mat: %w", err)
	}
	defer rgba.Close()

	bgr := gocv.NewMat()
	defer bgr.Close()
	gocv.CvtColor(rgba, &bgr, gocv.ColorRGBAToBGR)

	w.window.IMShow(bgr)
	w.window.WaitKey(1)
	return nil
}

// Close закрывает окно
func (w *Window) Close() error {
	return w.window.Close()
}

// Проверка реализации интерфейса
var _ port.Presenter = (*Window)(nil)
