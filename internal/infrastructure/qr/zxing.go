package qr

import (
	"errors"
	"fmt"
	"image"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"

	"qr-scanner/internal/domain/entity"
	"qr-scanner/internal/domain/port"
)

// ZXingDecoder декодер на основе gozxing (чистый Go, без OpenCV)
type ZXingDecoder struct {
	TryHarder bool
}

// NewZXingDecoder создаёт декодер gozxing
func NewZXingDecoder() *ZXingDecoder {
	return &ZXingDecoder{}
}

// Decode распознаёт QR-код в RGBA-буфере.
// Исключения ридера (код не найден, повреждён, не сошлась контрольная сумма)
// считаются отсутствием кода.
func (d *ZXingDecoder) Decode(pixels []byte, width, height int, opts entity.DecodeOptions) (*entity.DecodeResult, error) {
	img, err := wrapRGBA(pixels, width, height)
	if err != nil {
		return nil, err
	}

	var hints map[gozxing.DecodeHintType]interface{}
	if d.TryHarder {
		hints = map[gozxing.DecodeHintType]interface{}{
			gozxing.DecodeHintType_TRY_HARDER: true,
		}
	}

	source := gozxing.NewLuminanceSourceFromImage(img)
	reader := qrcode.NewQRCodeReader()

	for _, inverted := range opts.Attempts() {
		src := source
		if inverted {
			src = source.Invert()
		}

		bmp, err := gozxing.NewBinaryBitmap(gozxing.NewHybridBinarizer(src))
		if err != nil {
			return nil, fmt.Errorf("binarize: %w", err)
		}

		result, err := reader.Decode(bmp, hints)
		if err != nil {
			var readerErr gozxing.ReaderException
			if errors.As(err, &readerErr) {
				reader.Reset()
				continue
			}
			return nil, fmt.Errorf("zxing decode: %w", err)
		}

		return &entity.DecodeResult{
			Payload: result.GetText(),
			Corners: cornersFromFinders(result.GetResultPoints()),
		}, nil
	}

	return nil, nil
}

// cornersFromFinders достраивает четвёртый угол по трём центрам поисковых узоров.
// gozxing возвращает точки в порядке: нижний левый, верхний левый, верхний правый.
func cornersFromFinders(points []gozxing.ResultPoint) [4]entity.Point {
	var corners [4]entity.Point
	if len(points) < 3 {
		return corners
	}

	bl := entity.Point{X: points[0].GetX(), Y: points[0].GetY()}
	tl := entity.Point{X: points[1].GetX(), Y: points[1].GetY()}
	tr := entity.Point{X: points[2].GetX(), Y: points[2].GetY()}
	br := entity.Point{X: tr.X + bl.X - tl.X, Y: tr.Y + bl.Y - tl.Y}

	return [4]entity.Point{tl, tr, br, bl}
}

// wrapRGBA оборачивает буфер в image.RGBA без копирования
func wrapRGBA(pixels []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid buffer size %dx%d", width, height)
	}
	if len(pixels) < 4*width*height {
		return nil, fmt.Errorf("buffer too short: %d bytes for %dx%d", len(pixels), width, height)
	}
	return &image.RGBA{
		Pix:    pixels,
		Stride: 4 * width,
		Rect:   image.Rect(0, 0, width, height),
	}, nil
}

// Проверка реализации интерфейса
var _ port.Decoder = (*ZXingDecoder)(nil)
