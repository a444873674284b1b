package continue_to_customer

import (
	"context"

	"github.com/velalaser/VLL-SchedulingService/internal/domain"
)

type WizardService interface {
	ContinueToCustomer(ctx context.Context, sessionID string) (*domain.WizardSession, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
