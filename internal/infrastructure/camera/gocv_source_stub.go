//go:build !gocv
// +build !gocv

package camera

import (
	"context"
	"fmt"

	"qr-scanner/internal/domain/entity"
	"qr-scanner/internal/domain/port"
)

// GoCVSource источник-заглушка (без OpenCV)
type GoCVSource struct {
	Devices     map[entity.FacingMode]int
	IdealHeight int
}

// NewGoCVSource создаёт источник-заглушку
func NewGoCVSource(userDevice, environmentDevice, idealHeight int) *GoCVSource {
	return &GoCVSource{
		Devices: map[entity.FacingMode]int{
			entity.FacingUser:        userDevice,
			entity.FacingEnvironment: environmentDevice,
		},
		IdealHeight: idealHeight,
	}
}

// Acquire возвращает ошибку, если сборка без тега gocv.
func (s *GoCVSource) Acquire(ctx context.Context, mode entity.FacingMode) (port.Stream, error) {
	_ = ctx
	_ = mode
	return nil, fmt.Errorf("%w: gocv build tag is not enabled", entity.ErrDevice)
}
