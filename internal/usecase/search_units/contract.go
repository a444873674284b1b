package search_units

import (
	"context"

	"github.com/velalaser/VLL-SchedulingService/internal/domain"
)

// Directory интерфейс каталога юнитов
type Directory interface {
	All(ctx context.Context) ([]*domain.Unit, error)
	FilterByText(ctx context.Context, normalizedQuery string) ([]*domain.Unit, error)
}

// GeocodeClient интерфейс клиента геокодирования.
// (nil, nil) означает "индекс не распознан" - штатный исход, не ошибка.
type GeocodeClient interface {
	ResolvePostalCode(ctx context.Context, digits string) (*domain.Coordinate, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
