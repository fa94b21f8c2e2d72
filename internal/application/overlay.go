package app

import (
	"image"
	"image/color"

	"qr-scanner/internal/domain/entity"
	"qr-scanner/internal/domain/port"
)

var (
	dimColor       = color.NRGBA{A: 0x99}
	windowColor    = color.RGBA{R: 0x00, G: 0x89, B: 0x7b, A: 0xff}
	highlightColor = color.RGBA{R: 0xff, G: 0x3b, B: 0x58, A: 0xff}
)

const (
	windowLineWidth    = 6
	highlightLineWidth = 4
	lineDash           = 5
)

// Overlay всё, что нужно для отрисовки одного кадра
type Overlay struct {
	Frame   image.Image          // кадр, уже масштабированный до Size
	Size    entity.Size          // размер отрисованного кадра
	Window  entity.ScanWindow    // окно сканирования
	Result  *entity.DecodeResult // nil, если код не найден
	Reverse bool                 // зеркалить по горизонтали
}

// RenderOverlay рисует кадр: затемнение, окно без затемнения, пунктирную рамку
// и, если код найден, четырёхугольник по его углам.
func RenderOverlay(surface port.Surface, o Overlay) {
	full := image.Rect(0, 0, o.Size.Width, o.Size.Height)
	window := o.Window.Rect()

	surface.Resize(o.Size)
	surface.DrawImage(o.Frame, full)
	surface.FillRect(full, dimColor)
	surface.ClearRect(window)
	surface.StrokeRect(window, windowColor, windowLineWidth, lineDash)

	if o.Result != nil {
		c := o.Result.Corners
		for i := range c {
			from := c[i].Translate(o.Window.X, o.Window.Y)
			to := c[(i+1)%len(c)].Translate(o.Window.X, o.Window.Y)
			surface.Line(from, to, highlightColor, highlightLineWidth, lineDash)
		}
	}

	if o.Reverse {
		surface.FlipHorizontal()
	}
}
