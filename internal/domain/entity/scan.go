package entity

import "image"

// Frame кадр с камеры, живёт один тик
type Frame struct {
	Image  *image.RGBA
	Width  int
	Height int
	Ready  bool // false, пока камера не отдала данные
}

// DecodeResult распознанный QR-код.
// Углы идут по порядку: верхний левый, верхний правый, нижний правый, нижний левый.
type DecodeResult struct {
	Payload string
	Corners [4]Point
}

// InversionMode режим инверсии яркости при распознавании
type InversionMode string

const (
	DontInvert  InversionMode = "dontInvert"
	OnlyInvert  InversionMode = "onlyInvert"
	AttemptBoth InversionMode = "attemptBoth"
	InvertFirst InversionMode = "invertFirst"
)

// DecodeOptions параметры вызова декодера
type DecodeOptions struct {
	Inversion InversionMode
}

// Attempts возвращает порядок попыток: false для исходного изображения, true для инвертированного.
func (o DecodeOptions) Attempts() []bool {
	switch o.Inversion {
	case OnlyInvert:
		return []bool{true}
	case AttemptBoth:
		return []bool{false, true}
	case InvertFirst:
		return []bool{true, false}
	default:
		return []bool{false}
	}
}

// FacingMode какая камера используется
type FacingMode string

const (
	FacingUser        FacingMode = "user"
	FacingEnvironment FacingMode = "environment"
)

// Valid проверяет, что режим известен
func (m FacingMode) Valid() bool {
	return m == FacingUser || m == FacingEnvironment
}

// Toggle переключает фронтальную и основную камеру
func (m FacingMode) Toggle() FacingMode {
	if m == FacingUser {
		return FacingEnvironment
	}
	return FacingUser
}
