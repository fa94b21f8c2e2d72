package port

import (
	"context"

	"qr-scanner/internal/domain/entity"
)

// SubscriberRepository интерфейс хранилища подписчиков
type SubscriberRepository interface {
	// Get возвращает подписчика по ID, создаёт нового если не найден
	Get(ctx context.Context, userID, chatID int64) (*entity.Subscriber, error)

	// Save сохраняет состояние подписчика
	Save(ctx context.Context, subscriber *entity.Subscriber) error

	// List возвращает всех подписчиков в указанном состоянии
	List(ctx context.Context, state entity.SubscriberState) ([]*entity.Subscriber, error)
}
