package navigate_month

import (
	"context"

	"github.com/velalaser/VLL-SchedulingService/internal/domain"
)

type WizardService interface {
	NavigateMonth(ctx context.Context, sessionID string, delta int) (*domain.WizardSession, error)
	Calendar(ctx context.Context, sessionID string) (*domain.CalendarGrid, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
