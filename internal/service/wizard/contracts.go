package wizard

import (
	"context"
	"time"

	"github.com/velalaser/VLL-SchedulingService/internal/domain"
	"github.com/velalaser/VLL-SchedulingService/internal/integrations/unoservice"
)

// SessionRegistry интерфейс реестра сессий мастера записи
type SessionRegistry interface {
	Create() *domain.WizardSession
	WithSession(id string, fn func(s *domain.WizardSession) error) error
}

// Directory интерфейс каталога юнитов
type Directory interface {
	GetByID(ctx context.Context, id int64) (*domain.Unit, error)
	GetByExternalID(ctx context.Context, externalID string) (*domain.Unit, error)
}

// UnoClient интерфейс клиента внешней системы бронирования
type UnoClient interface {
	GetAvailableHours(ctx context.Context, externalID string, dateBR string) (*domain.Availability, error)
	CreateSchedule(ctx context.Context, externalID string, payload *unoservice.CreateScheduleRequest) (*unoservice.CreateScheduleResult, error)
}

// DraftStore интерфейс хранилища черновиков (читающая сторона)
type DraftStore interface {
	Take(clientID string) *domain.LeadDraft
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
