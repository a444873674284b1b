package search_units

import (
	"context"

	searchUnits "github.com/velalaser/VLL-SchedulingService/internal/usecase/search_units"
)

type SearchUnitsUseCase interface {
	Execute(ctx context.Context, req *searchUnits.Request) (*searchUnits.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
