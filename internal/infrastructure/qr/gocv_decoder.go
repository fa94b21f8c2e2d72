//go:build gocv
// +build gocv

package qr

import (
	"fmt"

	"gocv.io/x/gocv"

	"qr-scanner/internal/domain/entity"
	"qr-scanner/internal/domain/port"
)

// GoCVDecoder декодер на основе cv::QRCodeDetector
type GoCVDecoder struct{}

// NewGoCVDecoder создаёт декодер OpenCV
func NewGoCVDecoder() *GoCVDecoder {
	return &GoCVDecoder{}
}

// Decode распознаёт QR-код в RGBA-буфере.
func (d *GoCVDecoder) Decode(pixels []byte, width, height int, opts entity.DecodeOptions) (*entity.DecodeResult, error) {
	if _, err := wrapRGBA(pixels, width, height); err != nil {
		return nil, err
	}

	rgba, err := gocv.NewMatFromBytes(height, width, gocv.MatTypeCV8UC4, pixels[:4*width*height])
	if err != nil {
		return nil, fmt.Errorf("wrap pixels: %w", err)
	}
	defer rgba.Close()

	bgr := gocv.NewMat()
	defer bgr.Close()
	gocv.CvtColor(rgba, &bgr, gocv.ColorRGBAToBGR)

	detector := gocv.NewQRCodeDetector()
	defer detector.Close()

	for _, inverted := range opts.Attempts() {
		input := bgr
		if inverted {
			inv := gocv.NewMat()
			defer inv.Close()
			gocv.BitwiseNot(bgr, &inv)
			input = inv
		}

		points := gocv.NewMat()
		straight := gocv.NewMat()
		text := detector.DetectAndDecode(input, &points, &straight)
		corners := matCorners(points)
		points.Close()
		straight.Close()

		if text != "" {
			return &entity.DecodeResult{Payload: text, Corners: corners}, nil
		}
	}

	return nil, nil
}

// matCorners читает четыре угла из матрицы CV_32FC2 (1x4 или 4x1).
func matCorners(points gocv.Mat) [4]entity.Point {
	var corners [4]entity.Point
	if points.Empty() || points.Total() < 4 {
		return corners
	}
	for i := 0; i < 4; i++ {
		var v gocv.Vecf
		if points.Rows() == 1 {
			v = points.GetVecfAt(0, i)
		} else {
			v = points.GetVecfAt(i, 0)
		}
		if len(v) >= 2 {
			corners[i] = entity.Point{X: float64(v[0]), Y: float64(v[1])}
		}
	}
	return corners
}

// Проверка реализации интерфейса
var _ port.Decoder = (*GoCVDecoder)(nil)
