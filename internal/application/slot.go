package app

import (
	"sync"

	"qr-scanner/internal/domain/entity"
)

// resultSlot одноместный почтовый ящик последнего результата.
// Put перезаписывает непрочитанное значение, Take забирает и очищает.
type resultSlot struct {
	mu     sync.Mutex
	result *entity.DecodeResult
	drops  uint64 // перезаписанные без доставки результаты
}

func (s *resultSlot) Put(result *entity.DecodeResult) {
	s.mu.Lock()
	if s.result != nil {
		s.drops++
	}
	s.result = result
	s.mu.Unlock()
}

func (s *resultSlot) Take() *entity.DecodeResult {
	s.mu.Lock()
	result := s.result
	s.result = nil
	s.mu.Unlock()
	return result
}

func (s *resultSlot) Peek() *entity.DecodeResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

func (s *resultSlot) Drops() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drops
}
