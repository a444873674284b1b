package sessions

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/velalaser/VLL-SchedulingService/internal/domain"
)

// entry хранит сессию вместе с её мьютексом и временем последнего обращения
type entry struct {
	mu        sync.Mutex
	session   *domain.WizardSession
	touchedAt time.Time
}

// Registry потокобезопасный in-memory реестр сессий мастера записи.
// Каждая сессия мутируется только под собственным мьютексом, что
// позволяет отпускать блокировку на время внешних HTTP вызовов.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*entry
	ttl     time.Duration
	nowFn   func() time.Time
}

// NewRegistry создает реестр с заданным TTL сессий
func NewRegistry(ttl time.Duration) *Registry {
	return &Registry{
		entries: make(map[string]*entry),
		ttl:     ttl,
		nowFn:   time.Now,
	}
}

// Create регистрирует новую сессию и возвращает её
func (r *Registry) Create() *domain.WizardSession {
	now := r.nowFn()
	session := &domain.WizardSession{
		ID:        uuid.NewString(),
		Step:      domain.StepPickUnit,
		CreatedAt: now,
	}

	r.mu.Lock()
	r.entries[session.ID] = &entry{session: session, touchedAt: now}
	r.mu.Unlock()

	return session
}

// WithSession выполняет fn под мьютексом сессии.
// Возвращает ErrSessionNotFound, если сессия не существует или истекла.
func (r *Registry) WithSession(id string, fn func(s *domain.WizardSession) error) error {
	r.mu.RLock()
	e, ok := r.entries[id]
	r.mu.RUnlock()

	if !ok {
		return ErrSessionNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.touchedAt = r.nowFn()
	return fn(e.session)
}

// Len возвращает количество живых сессий
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// StartJanitor запускает фоновую очистку истекших сессий.
// Останавливается при закрытии stopCh.
func (r *Registry) StartJanitor(interval time.Duration, stopCh <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-stopCh:
				return
			case <-ticker.C:
				r.evictExpired()
			}
		}
	}()
}

func (r *Registry) evictExpired() {
	deadline := r.nowFn().Add(-r.ttl)

	r.mu.Lock()
	defer r.mu.Unlock()

	for id, e := range r.entries {
		if e.touchedAt.Before(deadline) {
			delete(r.entries, id)
		}
	}
}
