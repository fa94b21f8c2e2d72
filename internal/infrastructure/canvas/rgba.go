package canvas

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"

	"qr-scanner/internal/domain/entity"
	"qr-scanner/internal/domain/port"
)

// RGBA поверхность отрисовки в памяти.
// Помимо текущего изображения хранит неизменённые пиксели кадра,
// чтобы ClearRect мог вернуть вырез без затемнения.
type RGBA struct {
	img  *image.RGBA
	base *image.RGBA
}

// New создаёт пустую поверхность
func New() *RGBA {
	return &RGBA{
		img:  image.NewRGBA(image.Rect(0, 0, 0, 0)),
		base: image.NewRGBA(image.Rect(0, 0, 0, 0)),
	}
}

// Resize задаёт размер и очищает поверхность
func (c *RGBA) Resize(size entity.Size) {
	r := image.Rect(0, 0, size.Width, size.Height)
	if c.img.Bounds() == r {
		clear(c.img.Pix)
		clear(c.base.Pix)
		return
	}
	c.img = image.NewRGBA(r)
	c.base = image.NewRGBA(r)
}

// DrawImage масштабирует img в прямоугольник dst
func (c *RGBA) DrawImage(img image.Image, dst image.Rectangle) {
	dst = dst.Intersect(c.img.Bounds())
	if dst.Empty() {
		return
	}
	if img.Bounds().Size() == dst.Size() {
		draw.Draw(c.img, dst, img, img.Bounds().Min, draw.Src)
	} else {
		draw.ApproxBiLinear.Scale(c.img, dst, img, img.Bounds(), draw.Src, nil)
	}
	draw.Draw(c.base, dst, c.img, dst.Min, draw.Src)
}

// FillRect заливает прямоугольник с альфа-смешиванием
func (c *RGBA) FillRect(r image.Rectangle, col color.Color) {
	r = r.Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(c.img, r, image.NewUniform(col), image.Point{}, draw.Over)
}

// ClearRect возвращает исходные пиксели кадра
func (c *RGBA) ClearRect(r image.Rectangle) {
	r = r.Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(c.img, r, c.base, r.Min, draw.Src)
}

// StrokeRect рисует рамку по краю прямоугольника
func (c *RGBA) StrokeRect(r image.Rectangle, col color.Color, width, dash int) {
	tl := entity.Point{X: float64(r.Min.X), Y: float64(r.Min.Y)}
	tr := entity.Point{X: float64(r.Max.X), Y: float64(r.Min.Y)}
	br := entity.Point{X: float64(r.Max.X), Y: float64(r.Max.Y)}
	bl := entity.Point{X: float64(r.Min.X), Y: float64(r.Max.Y)}

	c.Line(tl, tr, col, width, dash)
	c.Line(tr, br, col, width, dash)
	c.Line(br, bl, col, width, dash)
	c.Line(bl, tl, col, width, dash)
}

// Line рисует отрезок толщиной width; при dash > 0 штрихи и пропуски одной длины
func (c *RGBA) Line(from, to entity.Point, col color.Color, width, dash int) {
	if width < 1 {
		width = 1
	}
	src := image.NewUniform(col)

	length := math.Hypot(to.X-from.X, to.Y-from.Y)
	steps := int(math.Ceil(length))
	if steps == 0 {
		steps = 1
	}

	half := width / 2
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		if dash > 0 && int(t*length)/dash%2 == 1 {
			continue
		}
		x := int(math.Round(from.X + (to.X-from.X)*t))
		y := int(math.Round(from.Y + (to.Y-from.Y)*t))
		dot := image.Rect(x-half, y-half, x-half+width, y-half+width).Intersect(c.img.Bounds())
		if dot.Empty() {
			continue
		}
		draw.Draw(c.img, dot, src, image.Point{}, draw.Over)
	}
}

// FlipHorizontal зеркально отражает поверхность
func (c *RGBA) FlipHorizontal() {
	mirror(c.img)
	mirror(c.base)
}

// Image возвращает текущее изображение поверхности
func (c *RGBA) Image() image.Image {
	return c.img
}

func mirror(img *image.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):img.PixOffset(b.Min.X, y)+4*b.Dx()]
		for l, r := 0, len(row)-4; l < r; l, r = l+4, r-4 {
			for k := 0; k < 4; k++ {
				row[l+k], row[r+k] = row[r+k], row[l+k]
			}
		}
	}
}

// Проверка реализации интерфейса
var _ port.Surface = (*RGBA)(nil)
