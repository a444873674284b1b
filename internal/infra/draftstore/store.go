// Package draftstore implements the single-slot, read-once carrier for
// partially entered contact info. A draft written on one page survives
// until the booking wizard consumes it; the second read returns nothing.
package draftstore

import (
	"sync"

	"github.com/velalaser/VLL-SchedulingService/internal/domain"
)

// Store хранит не более одного черновика на клиента.
// Set перезаписывает, Take читает и атомарно очищает слот.
// Без таймера истечения: черновик живёт, пока жив процесс.
type Store struct {
	mu     sync.Mutex
	drafts map[string]*domain.LeadDraft
}

// NewStore создает пустое хранилище черновиков
func NewStore() *Store {
	return &Store{drafts: make(map[string]*domain.LeadDraft)}
}

// Set сохраняет черновик клиента, перезаписывая предыдущий
func (s *Store) Set(clientID string, draft *domain.LeadDraft) {
	if draft == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[clientID] = draft
}

// Take возвращает черновик клиента и очищает слот.
// Повторный вызов вернёт nil (семантика одноразового чтения).
func (s *Store) Take(clientID string) *domain.LeadDraft {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, ok := s.drafts[clientID]
	if !ok {
		return nil
	}
	delete(s.drafts, clientID)
	return draft
}

// Clear удаляет черновик клиента, если он есть
func (s *Store) Clear(clientID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, clientID)
}
