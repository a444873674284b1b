package create_lead

import (
	"context"

	"github.com/velalaser/VLL-SchedulingService/internal/domain"
	"github.com/velalaser/VLL-SchedulingService/internal/integrations/unoservice"
)

// Directory интерфейс каталога юнитов
type Directory interface {
	GetByID(ctx context.Context, id int64) (*domain.Unit, error)
}

// UnoClient интерфейс клиента внешней системы бронирования
type UnoClient interface {
	CreateLead(ctx context.Context, payload *unoservice.CreateLeadRequest) (*unoservice.CreateLeadResult, error)
}

// DraftStore интерфейс хранилища черновиков
type DraftStore interface {
	Set(clientID string, draft *domain.LeadDraft)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
