package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/browser"

	"qr-scanner/config"
	telegram "qr-scanner/internal/api"
	app "qr-scanner/internal/application"
	"qr-scanner/internal/container"
	"qr-scanner/internal/domain/entity"
	"qr-scanner/internal/domain/port"
	"qr-scanner/internal/infrastructure/camera"
	"qr-scanner/internal/infrastructure/canvas"
	"qr-scanner/internal/infrastructure/display"
	"qr-scanner/internal/infrastructure/qr"
	"qr-scanner/internal/infrastructure/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	source, err := newSource(cfg)
	if err != nil {
		log.Fatalf("Failed to open frame source: %v", err)
	}

	decoder, err := qr.New(cfg.Scan.Decoder)
	if err != nil {
		log.Fatalf("Failed to create decoder: %v", err)
	}

	var presenter port.Presenter = display.Nop{}
	if cfg.Display.ShowWindow {
		window, err := display.NewWindow("QR Scanner")
		if err != nil {
			log.Fatalf("Failed to open window: %v", err)
		}
		defer window.Close()
		presenter = window
	}

	var sinks []port.ResultSink
	if cfg.OpenURLs {
		sinks = append(sinks, app.NewOpenURLSink(browser.OpenURL))
	}

	// Без бота сбой камеры некому перезапустить, выходим
	errorSink := port.ErrorSinkFunc(func(err error) {
		app.LogErrors.OnError(err)
		if cfg.Telegram.Token == "" {
			stop()
		}
	})

	// Собираем сервисы приложения
	appContainer := container.New(container.Deps{
		Subscribers: storage.NewMemorySubscriberRepository(),
		Source:      source,
		Decoder:     app.NewDecoderAdapter(decoder, entity.DecodeOptions{Inversion: cfg.Scan.Inversion}),
		Surface:     canvas.New(),
		Presenter:   presenter,
		Errors:      errorSink,
	}, app.SessionConfig{
		Mode:           cfg.Camera.Mode,
		Reverse:        cfg.Scan.Reverse,
		Stop:           cfg.Scan.Stop,
		Delay:          cfg.Scan.Delay,
		FrameInterval:  cfg.Scan.FrameInterval,
		Container:      entity.Size{Width: cfg.Display.ContainerWidth, Height: cfg.Display.ContainerHeight},
		ViewportHeight: cfg.Display.ViewportHeight,
	}, sinks...)

	if cfg.Telegram.Token != "" {
		bot, err := telegram.NewBot(cfg.Telegram.Token, appContainer)
		if err != nil {
			log.Fatalf("Failed to create bot: %v", err)
		}
		appContainer.Results.Add(bot)

		go func() {
			if err := bot.Run(ctx); err != nil {
				log.Printf("Bot error: %v", err)
			}
		}()
	}

	if err := appContainer.Session.Start(ctx); err != nil {
		log.Fatalf("Failed to start scanner: %v", err)
	}
	log.Printf("Scanner is running (session %s, camera %s)...", appContainer.Session.ID(), cfg.Camera.Mode)

	<-ctx.Done()
	appContainer.Session.Close()
	log.Println("Scanner stopped")
}

// newSource выбирает источник кадров: картинка с диска или камера
func newSource(cfg *config.Config) (port.CaptureSource, error) {
	if cfg.Camera.Image != "" {
		return camera.LoadImageSource(cfg.Camera.Image)
	}
	return camera.NewGoCVSource(cfg.Camera.UserDevice, cfg.Camera.EnvironmentDevice, cfg.Display.ViewportHeight), nil
}
