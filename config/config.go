package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"qr-scanner/internal/domain/entity"
)

type Config struct {
	Camera   CameraConfig   `yaml:"camera"`
	Scan     ScanConfig     `yaml:"scan"`
	Display  DisplayConfig  `yaml:"display"`
	Telegram TelegramConfig `yaml:"telegram"`
	OpenURLs bool           `yaml:"open_urls"`
}

// CameraConfig источник кадров
type CameraConfig struct {
	Mode              entity.FacingMode `yaml:"mode"`               // user, environment
	UserDevice        int               `yaml:"user_device"`        // индекс фронтальной камеры
	EnvironmentDevice int               `yaml:"environment_device"` // индекс основной камеры
	Image             string            `yaml:"image"`              // путь к картинке вместо камеры
}

// ScanConfig цикл сканирования
type ScanConfig struct {
	Delay         time.Duration        `yaml:"delay"`          // период передачи результата
	FrameInterval time.Duration        `yaml:"frame_interval"` // период отрисовки
	Reverse       bool                 `yaml:"reverse"`
	Stop          bool                 `yaml:"stop"`
	Decoder       string               `yaml:"decoder"` // zxing, gocv
	Inversion     entity.InversionMode `yaml:"inversion"`
}

// DisplayConfig размеры области отрисовки
type DisplayConfig struct {
	ContainerWidth  int  `yaml:"container_width"`
	ContainerHeight int  `yaml:"container_height"`
	ViewportHeight  int  `yaml:"viewport_height"`
	ShowWindow      bool `yaml:"show_window"`
}

type TelegramConfig struct {
	Token string `yaml:"token"`
}

// Default возвращает настройки по умолчанию
func Default() *Config {
	return &Config{
		Camera: CameraConfig{
			Mode:              entity.FacingUser,
			UserDevice:        0,
			EnvironmentDevice: 1,
		},
		Scan: ScanConfig{
			Delay:         500 * time.Millisecond,
			FrameInterval: 16 * time.Millisecond,
			Decoder:       "zxing",
			Inversion:     entity.DontInvert,
		},
		Display: DisplayConfig{
			ContainerWidth:  640,
			ContainerHeight: 480,
			ViewportHeight:  480,
		},
		OpenURLs: true,
	}
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := Default()

	if path := os.Getenv("SCANNER_CONFIG"); path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFile читает YAML поверх значений по умолчанию
func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	// Подставляем переменные окружения
	data = []byte(os.ExpandEnv(string(data)))

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

// applyEnv переопределяет настройки переменными окружения
func applyEnv(cfg *Config) error {
	if v := os.Getenv("CAMERA_MODE"); v != "" {
		cfg.Camera.Mode = entity.FacingMode(v)
	}
	if v := os.Getenv("CAMERA_IMAGE"); v != "" {
		cfg.Camera.Image = v
	}
	if v := os.Getenv("QR_DECODER"); v != "" {
		cfg.Scan.Decoder = v
	}
	if v := os.Getenv("QR_INVERSION"); v != "" {
		cfg.Scan.Inversion = entity.InversionMode(v)
	}
	if v := os.Getenv("TELEGRAM_TOKEN"); v != "" {
		cfg.Telegram.Token = v
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"CAMERA_USER_DEVICE", &cfg.Camera.UserDevice},
		{"CAMERA_ENVIRONMENT_DEVICE", &cfg.Camera.EnvironmentDevice},
		{"CONTAINER_WIDTH", &cfg.Display.ContainerWidth},
		{"CONTAINER_HEIGHT", &cfg.Display.ContainerHeight},
		{"VIEWPORT_HEIGHT", &cfg.Display.ViewportHeight},
	}
	for _, it := range ints {
		if err := envInt(it.key, it.dst); err != nil {
			return err
		}
	}

	millis := []struct {
		key string
		dst *time.Duration
	}{
		{"SCAN_DELAY_MS", &cfg.Scan.Delay},
		{"FRAME_INTERVAL_MS", &cfg.Scan.FrameInterval},
	}
	for _, it := range millis {
		var ms int
		ok, err := lookupInt(it.key, &ms)
		if err != nil {
			return err
		}
		if ok {
			*it.dst = time.Duration(ms) * time.Millisecond
		}
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{"SCAN_REVERSE", &cfg.Scan.Reverse},
		{"SCAN_STOP", &cfg.Scan.Stop},
		{"SHOW_WINDOW", &cfg.Display.ShowWindow},
		{"OPEN_URLS", &cfg.OpenURLs},
	}
	for _, it := range bools {
		v := os.Getenv(it.key)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", it.key, err)
		}
		*it.dst = b
	}

	return nil
}

func envInt(key string, dst *int) error {
	_, err := lookupInt(key, dst)
	return err
}

func lookupInt(key string, dst *int) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return false, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return true, nil
}

// Validate проверяет допустимость значений
func (c *Config) Validate() error {
	var errs []error

	if !c.Camera.Mode.Valid() {
		errs = append(errs, fmt.Errorf("camera mode must be user or environment, got %q", c.Camera.Mode))
	}
	if c.Scan.Delay <= 0 {
		errs = append(errs, fmt.Errorf("scan delay must be positive, got %v", c.Scan.Delay))
	}
	if c.Scan.FrameInterval <= 0 {
		errs = append(errs, fmt.Errorf("frame interval must be positive, got %v", c.Scan.FrameInterval))
	}
	switch c.Scan.Inversion {
	case entity.DontInvert, entity.OnlyInvert, entity.AttemptBoth, entity.InvertFirst:
	default:
		errs = append(errs, fmt.Errorf("unknown inversion mode %q", c.Scan.Inversion))
	}
	if c.Display.ViewportHeight <= 0 {
		errs = append(errs, fmt.Errorf("viewport height must be positive, got %d", c.Display.ViewportHeight))
	}
	if c.Display.ContainerHeight < 0 || c.Display.ContainerWidth < 0 {
		errs = append(errs, errors.New("container size must not be negative"))
	}

	return errors.Join(errs...)
}
