package camera

import (
	"errors"
	"fmt"
	"strings"

	"qr-scanner/internal/domain/entity"
)

var errStreamReleased = errors.New("stream is released")

// classifyOpenError сводит ошибку открытия устройства к ErrPermission или ErrDevice
func classifyOpenError(device int, err error) error {
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "permission") || strings.Contains(msg, "not authorized") || strings.Contains(msg, "access denied") {
		return fmt.Errorf("%w: open device %d: %v", entity.ErrPermission, device, err)
	}
	return fmt.Errorf("%w: open device %d: %v", entity.ErrDevice, device, err)
}
