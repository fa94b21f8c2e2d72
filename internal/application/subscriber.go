package app

import (
	"context"

	"qr-scanner/internal/domain/entity"
	"qr-scanner/internal/domain/port"
)

type SubscriberService struct {
	repo port.SubscriberRepository
}

func NewSubscriberService(repo port.SubscriberRepository) *SubscriberService {
	return &SubscriberService{repo: repo}
}

func (s *SubscriberService) Get(ctx context.Context, userID, chatID int64) (*entity.Subscriber, error) {
	return s.repo.Get(ctx, userID, chatID)
}

func (s *SubscriberService) SetState(ctx context.Context, userID, chatID int64, state entity.SubscriberState) (*entity.Subscriber, error) {
	sub, err := s.repo.Get(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}

	sub.SetState(state)
	if err := s.repo.Save(ctx, sub); err != nil {
		return nil, err
	}

	return sub, nil
}

func (s *SubscriberService) Subscribe(ctx context.Context, userID, chatID int64) (*entity.Subscriber, error) {
	return s.SetState(ctx, userID, chatID, entity.StateSubscribed)
}

func (s *SubscriberService) Unsubscribe(ctx context.Context, userID, chatID int64) (*entity.Subscriber, error) {
	return s.SetState(ctx, userID, chatID, entity.StateUnsubscribed)
}

// Subscribed возвращает чаты, которым нужно слать результаты
func (s *SubscriberService) Subscribed(ctx context.Context) ([]*entity.Subscriber, error) {
	return s.repo.List(ctx, entity.StateSubscribed)
}
