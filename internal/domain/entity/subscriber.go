package entity

// SubscriberState состояние подписки чата на результаты сканирования
type SubscriberState string

const (
	StateUnsubscribed SubscriberState = "unsubscribed" // Результаты не присылаются
	StateSubscribed   SubscriberState = "subscribed"   // Чат получает распознанные ссылки
)

// Subscriber представляет чат, получающий результаты сканирования
type Subscriber struct {
	ID     int64           // Telegram User ID
	ChatID int64           // Telegram Chat ID
	State  SubscriberState // Текущее состояние подписки
}

// NewSubscriber создаёт подписчика с начальным состоянием
func NewSubscriber(userID, chatID int64) *Subscriber {
	return &Subscriber{
		ID:     userID,
		ChatID: chatID,
		State:  StateUnsubscribed,
	}
}

// SetState обновляет состояние подписки
func (s *Subscriber) SetState(state SubscriberState) {
	s.State = state
}

// Subscribed сообщает, нужно ли слать результаты в чат
func (s *Subscriber) Subscribed() bool {
	return s.State == StateSubscribed
}
