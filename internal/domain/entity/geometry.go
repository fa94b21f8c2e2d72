package entity

import "image"

// Point точка в координатах области сканирования
type Point struct {
	X float64
	Y float64
}

// Translate сдвигает точку на начало координат окна
func (p Point) Translate(dx, dy int) Point {
	return Point{X: p.X + float64(dx), Y: p.Y + float64(dy)}
}

// Size размер отрисованного кадра
type Size struct {
	Width  int
	Height int
}

// ScanWindow квадратное окно сканирования внутри отрисованного кадра
type ScanWindow struct {
	X    int // координата X левого верхнего угла
	Y    int // координата Y левого верхнего угла
	Size int // длина стороны в пикселях
}

// Rect возвращает окно как image.Rectangle
func (w ScanWindow) Rect() image.Rectangle {
	return image.Rect(w.X, w.Y, w.X+w.Size, w.Y+w.Size)
}

// Center возвращает координаты центра окна
func (w ScanWindow) Center() (x, y int) {
	return w.X + w.Size/2, w.Y + w.Size/2
}
