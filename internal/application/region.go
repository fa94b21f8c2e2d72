package app

import (
	"fmt"

	"qr-scanner/internal/domain/entity"
)

// ScanWindowRatio во сколько раз сторона окна сканирования меньше высоты кадра
const ScanWindowRatio = 1.8

// SelectRegion вычисляет размер отрисованного кадра и квадратное окно сканирования по центру.
// Высота кадра: min(высота контейнера, высота вьюпорта), пропорции кадра сохраняются.
// Нулевая высота контейнера означает «не задана» и заменяется высотой вьюпорта.
func SelectRegion(frame, container entity.Size, viewportHeight int) (entity.ScanWindow, entity.Size, error) {
	if frame.Width <= 0 || frame.Height <= 0 {
		return entity.ScanWindow{}, entity.Size{}, fmt.Errorf("%w: frame %dx%d", entity.ErrInvalidDimensions, frame.Width, frame.Height)
	}

	renderH := container.Height
	if renderH <= 0 || (viewportHeight > 0 && viewportHeight < renderH) {
		renderH = viewportHeight
	}
	if renderH <= 0 {
		return entity.ScanWindow{}, entity.Size{}, fmt.Errorf("%w: container height %d, viewport height %d",
			entity.ErrInvalidDimensions, container.Height, viewportHeight)
	}

	renderW := int(float64(renderH) * float64(frame.Width) / float64(frame.Height))
	if renderW <= 0 {
		renderW = 1
	}

	side := int(float64(renderH) / ScanWindowRatio)
	// Очень узкий портретный кадр: окно не должно вылезать за ширину
	if side > renderW {
		side = renderW
	}

	window := entity.ScanWindow{
		X:    (renderW - side) / 2,
		Y:    (renderH - side) / 2,
		Size: side,
	}

	return window, entity.Size{Width: renderW, Height: renderH}, nil
}
