package directory

import (
	"context"

	"github.com/velalaser/VLL-SchedulingService/internal/domain"
)

// UnitsRepository интерфейс репозитория каталога юнитов
type UnitsRepository interface {
	List(ctx context.Context, onlyBookable bool) ([]*domain.Unit, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
