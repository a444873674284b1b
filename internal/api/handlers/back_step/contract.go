package back_step

import (
	"context"

	"github.com/velalaser/VLL-SchedulingService/internal/domain"
)

type WizardService interface {
	BackStep(ctx context.Context, sessionID string) (*domain.WizardSession, error)
	Calendar(ctx context.Context, sessionID string) (*domain.CalendarGrid, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
