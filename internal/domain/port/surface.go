package port

import (
	"image"
	"image/color"

	"qr-scanner/internal/domain/entity"
)

// Surface поверхность для 2D-отрисовки
type Surface interface {
	// Resize задаёт размер поверхности и очищает её
	Resize(size entity.Size)

	// DrawImage рисует изображение, масштабируя его в dst
	DrawImage(img image.Image, dst image.Rectangle)

	// FillRect заливает прямоугольник цветом с альфа-смешиванием
	FillRect(r image.Rectangle, c color.Color)

	// ClearRect возвращает в прямоугольнике исходные пиксели кадра
	ClearRect(r image.Rectangle)

	// StrokeRect рисует рамку; dash=0 даёт сплошную линия
	StrokeRect(r image.Rectangle, c color.Color, width, dash int)

	// Line рисует отрезок
	Line(from, to entity.Point, c color.Color, width, dash int)

	// FlipHorizontal отражает поверхность по горизонтали
	FlipHorizontal()

	// Image возвращает текущее содержимое поверхности
	Image() image.Image
}

// Presenter показывает отрисованный кадр
type Presenter interface {
	Present(img image.Image) error
}
