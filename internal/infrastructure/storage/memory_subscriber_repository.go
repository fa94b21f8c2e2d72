package storage

import (
	"context"
	"sort"
	"sync"

	"qr-scanner/internal/domain/entity"
	"qr-scanner/internal/domain/port"
)

// MemorySubscriberRepository in-memory хранилище подписчиков
type MemorySubscriberRepository struct {
	mu          sync.RWMutex
	subscribers map[int64]*entity.Subscriber
}

// NewMemorySubscriberRepository создаёт новое in-memory хранилище
func NewMemorySubscriberRepository() *MemorySubscriberRepository {
	return &MemorySubscriberRepository{
		subscribers: make(map[int64]*entity.Subscriber),
	}
}

// Get возвращает подписчика по ID, создаёт нового если не найден
func (r *MemorySubscriberRepository) Get(ctx context.Context, userID, chatID int64) (*entity.Subscriber, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, exists := r.subscribers[userID]; exists {
		return s, nil
	}

	s := entity.NewSubscriber(userID, chatID)
	r.subscribers[userID] = s
	return s, nil
}

// Save сохраняет состояние подписчика
func (r *MemorySubscriberRepository) Save(ctx context.Context, subscriber *entity.Subscriber) error {
	r.mu.Lock()
	r.subscribers[subscriber.ID] = subscriber
	r.mu.Unlock()

	return nil
}

// List возвращает подписчиков в состоянии state, отсортированных по ID
func (r *MemorySubscriberRepository) List(ctx context.Context, state entity.SubscriberState) ([]*entity.Subscriber, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Subscriber, 0, len(r.subscribers))
	for _, s := range r.subscribers {
		if s.State == state {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// Проверка реализации интерфейса
var _ port.SubscriberRepository = (*MemorySubscriberRepository)(nil)
