package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"qr-scanner/internal/domain/entity"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, entity.FacingUser, cfg.Camera.Mode)
	require.Equal(t, 500*time.Millisecond, cfg.Scan.Delay)
	require.Equal(t, "zxing", cfg.Scan.Decoder)
	require.True(t, cfg.OpenURLs)
}

func TestLoad_EnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CAMERA_MODE", "environment")
	t.Setenv("SCAN_DELAY_MS", "1000")
	t.Setenv("SCAN_REVERSE", "true")
	t.Setenv("VIEWPORT_HEIGHT", "720")
	t.Setenv("QR_INVERSION", "attemptBoth")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, entity.FacingEnvironment, cfg.Camera.Mode)
	require.Equal(t, time.Second, cfg.Scan.Delay)
	require.True(t, cfg.Scan.Reverse)
	require.Equal(t, 720, cfg.Display.ViewportHeight)
	require.Equal(t, entity.AttemptBoth, cfg.Scan.Inversion)
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	path := filepath.Join(dir, "scanner.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
camera:
  mode: environment
  image: ${SCAN_IMAGE_DIR}/code.png
scan:
  delay: 250ms
  stop: true
display:
  container_height: 600
`), 0o600))

	t.Setenv("SCANNER_CONFIG", path)
	t.Setenv("SCAN_IMAGE_DIR", "/tmp/frames")
	t.Setenv("SCAN_STOP", "false")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, entity.FacingEnvironment, cfg.Camera.Mode)
	require.Equal(t, "/tmp/frames/code.png", cfg.Camera.Image)
	require.Equal(t, 250*time.Millisecond, cfg.Scan.Delay)
	require.False(t, cfg.Scan.Stop)
	require.Equal(t, 600, cfg.Display.ContainerHeight)
	require.Equal(t, 480, cfg.Display.ViewportHeight)
}

func TestLoad_Invalid(t *testing.T) {
	chdir(t, t.TempDir())

	t.Setenv("SCAN_DELAY_MS", "0")
	_, err := Load()
	require.Error(t, err)

	t.Setenv("SCAN_DELAY_MS", "abc")
	_, err = Load()
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.Camera.Mode = "front"
	cfg.Scan.Inversion = "sometimes"
	err := cfg.Validate()
	require.ErrorContains(t, err, "camera mode")
	require.ErrorContains(t, err, "inversion")
}

// chdir меняет рабочую директорию на время теста (аналог t.Chdir из Go 1.24)
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
