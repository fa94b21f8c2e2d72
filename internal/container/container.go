package container

import (
	app "qr-scanner/internal/application"
	"qr-scanner/internal/domain/port"
)

type Container struct {
	SubscriberService *app.SubscriberService
	Session           *app.Session
	Results           *app.Fanout
}

// Deps внешние зависимости сессии сканирования
type Deps struct {
	Subscribers port.SubscriberRepository
	Source      port.CaptureSource
	Decoder     *app.DecoderAdapter
	Surface     port.Surface
	Presenter   port.Presenter
	Errors      port.ErrorSink
}

func New(deps Deps, cfg app.SessionConfig, sinks ...port.ResultSink) *Container {
	subscriberService := app.NewSubscriberService(deps.Subscribers)
	results := app.NewFanout(sinks...)
	session := app.NewSession(deps.Source, deps.Decoder, deps.Surface, deps.Presenter, results, deps.Errors, cfg)

	return &Container{
		SubscriberService: subscriberService,
		Session:           session,
		Results:           results,
	}
}
