package telegram

import (
	"context"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	app "qr-scanner/internal/application"
	"qr-scanner/internal/container"
	"qr-scanner/internal/domain/entity"
	"qr-scanner/internal/domain/port"
)

const (
	msgStart = `👋 Привет! Я присылаю ссылки из QR-кодов, которые видит камера сканера.

📋 Команды:
/start — получать результаты сканирования
/stop — больше не присылать результаты
/pause — остановить камеру
/resume — снова включить камеру
/camera — переключить фронтальную/основную камеру
/help — справка`

	msgHelp = `ℹ️ Как пользоваться ботом:

1️⃣ Отправьте /start, чтобы подписаться
2️⃣ Поднесите QR-код к камере так, чтобы он попал в рамку
3️⃣ Бот пришлёт содержимое кода

💡 Рекомендации:
• Держите код в рамке неподвижно
• Избегайте бликов на экране или бумаге

📋 Команды:
/pause — остановить камеру
/resume — включить камеру
/camera — переключить камеру`

	msgSubscribed     = "✅ Подписка оформлена. Результаты сканирования будут приходить сюда."
	msgUnsubscribed   = "❌ Подписка отменена. Отправьте /start, чтобы подписаться снова."
	msgPaused         = "⏸ Камера остановлена."
	msgResumed        = "▶️ Камера снова работает."
	msgUnknownCommand = "❓ Неизвестная команда. Используйте /help для справки."
	msgSendCommand    = "📷 Я понимаю только команды. Используйте /help для справки."
	msgScanFailed     = "⚠️ Не удалось выполнить команду. Попробуйте ещё раз."
)

// sender часть tgbotapi.BotAPI, которой пользуется бот
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Bot представляет Telegram-бота: управляет сессией и рассылает результаты подписчикам
type Bot struct {
	api         sender
	updates     func() tgbotapi.UpdatesChannel
	subscribers *app.SubscriberService
	session     *app.Session
	guard       app.PayloadGuard
}

// NewBot создаёт нового бота
func NewBot(token string, c *container.Container) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log.Printf("Authorized on account %s", api.Self.UserName)

	b := newBot(api, c)
	b.updates = func() tgbotapi.UpdatesChannel {
		u := tgbotapi.NewUpdate(0)
		u.Timeout = 60
		return api.GetUpdatesChan(u)
	}
	return b, nil
}

func newBot(api sender, c *container.Container) *Bot {
	return &Bot{
		api:         api,
		subscribers: c.SubscriberService,
		session:     c.Session,
	}
}

// Run запускает основной цикл обработки сообщений до отмены ctx
func (b *Bot) Run(ctx context.Context) error {
	updates := b.updates()

	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			b.handleMessage(ctx, update.Message)
		}
	}
}

// OnScan рассылает новый payload подписанным чатам
func (b *Bot) OnScan(ctx context.Context, result *entity.DecodeResult) error {
	payload, ok := b.guard.Admit(result)
	if !ok {
		return nil
	}

	subs, err := b.subscribers.Subscribed(ctx)
	if err != nil {
		return fmt.Errorf("list subscribers: %w", err)
	}

	text := "🔗 " + payload
	if _, isLink := app.ParseLink(payload); !isLink {
		text = "📄 " + payload
	}
	for _, sub := range subs {
		b.sendMessage(sub.ChatID, text)
	}
	return nil
}

// handleMessage обрабатывает входящее сообщение
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil || msg.Chat == nil {
		return
	}

	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}

	b.sendMessage(msg.Chat.ID, msgSendCommand)
}

// handleCommand обрабатывает команды бота
func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	switch msg.Command() {
	case "start":
		if _, err := b.subscribers.Subscribe(ctx, msg.From.ID, chatID); err != nil {
			log.Printf("Error subscribing chat %d: %v", chatID, err)
			b.sendMessage(chatID, msgScanFailed)
			return
		}
		b.sendMessage(chatID, msgStart+"\n\n"+msgSubscribed)

	case "stop":
		if _, err := b.subscribers.Unsubscribe(ctx, msg.From.ID, chatID); err != nil {
			log.Printf("Error unsubscribing chat %d: %v", chatID, err)
			b.sendMessage(chatID, msgScanFailed)
			return
		}
		b.sendMessage(chatID, msgUnsubscribed)

	case "help":
		b.sendMessage(chatID, msgHelp)

	case "pause":
		b.reply(chatID, b.session.SetStop(true), msgPaused)

	case "resume":
		b.reply(chatID, b.session.SetStop(false), msgResumed)

	case "camera":
		mode := b.session.Config().Mode.Toggle()
		b.reply(chatID, b.session.SetMode(mode), fmt.Sprintf("🔄 Камера: %s", mode))

	default:
		b.sendMessage(chatID, msgUnknownCommand)
	}
}

// reply отвечает текстом ok или сообщением об ошибке
func (b *Bot) reply(chatID int64, err error, ok string) {
	if err != nil {
		log.Printf("Error handling command in chat %d: %v", chatID, err)
		b.sendMessage(chatID, msgScanFailed)
		return
	}
	b.sendMessage(chatID, ok)
}

// sendMessage отправляет текстовое сообщение
func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Error sending message: %v", err)
	}
}

// Проверка реализации интерфейса
var _ port.ResultSink = (*Bot)(nil)
