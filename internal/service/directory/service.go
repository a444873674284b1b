package directory

import (
	"context"
	"sync"

	"github.com/velalaser/VLL-SchedulingService/internal/domain"
)

// Service каталог юнитов сети на время жизни процесса.
// Список загружается из репозитория ровно один раз: при неудаче
// каталог остаётся пустым и помечается недоступным, автоматических
// повторов нет.
type Service struct {
	repo   UnitsRepository
	logger Logger

	mu          sync.RWMutex
	loaded      bool
	unavailable bool
	units       []*domain.Unit
}

// NewService создает новый экземпляр каталога
func NewService(repo UnitsRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Load загружает каталог, если он ещё не загружался.
// Повторные вызовы после первой попытки (удачной или нет) - no-op.
func (s *Service) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return
	}
	s.loaded = true

	units, err := s.repo.List(ctx, true)
	if err != nil {
		s.logger.Error("Load: failed to load unit directory: %v", err)
		s.unavailable = true
		s.units = nil
		return
	}

	s.units = units
	s.logger.Info("Load: unit directory loaded, %d units", len(units))
}

// All возвращает полный список юнитов.
// ErrUnavailable сигнализирует потребителю показать пустое состояние.
func (s *Service) All(ctx context.Context) ([]*domain.Unit, error) {
	s.ensureLoaded(ctx)

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.unavailable {
		return nil, ErrUnavailable
	}
	return s.snapshot(), nil
}

// FilterByText возвращает юниты, подходящие под нормализованный
// текстовый запрос (подстрока по имени, городу, штату, CEP, улице, номеру)
func (s *Service) FilterByText(ctx context.Context, normalizedQuery string) ([]*domain.Unit, error) {
	s.ensureLoaded(ctx)

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.unavailable {
		return nil, ErrUnavailable
	}

	matched := make([]*domain.Unit, 0)
	for _, u := range s.units {
		if u.MatchesText(normalizedQuery) {
			matched = append(matched, u)
		}
	}
	return matched, nil
}

// GetByID возвращает юнит по внутреннему ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Unit, error) {
	s.ensureLoaded(ctx)

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.units {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, ErrUnitNotFound
}

// GetByExternalID возвращает юнит по ID внешней системы бронирования
func (s *Service) GetByExternalID(ctx context.Context, externalID string) (*domain.Unit, error) {
	s.ensureLoaded(ctx)

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.units {
		if u.ExternalID != "" && u.ExternalID == externalID {
			return u, nil
		}
	}
	return nil, ErrUnitNotFound
}

func (s *Service) ensureLoaded(ctx context.Context) {
	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()

	if !loaded {
		s.Load(ctx)
	}
}

// snapshot копирует срез, чтобы вызывающие не могли изменить порядок
// внутреннего списка (ранжирование сортирует свою копию)
func (s *Service) snapshot() []*domain.Unit {
	out := make([]*domain.Unit, len(s.units))
	copy(out, s.units)
	return out
}
