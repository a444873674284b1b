package wizard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/velalaser/VLL-SchedulingService/internal/domain"
)

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("wizard: session not found")

	// ErrUnitNotFound возвращается, когда юнит не найден в каталоге
	ErrUnitNotFound = errors.New("wizard: unit not found")

	// ErrUnitNotBookable возвращается для юнита без внешнего ID бронирования
	ErrUnitNotBookable = errors.New("wizard: unit is not bookable")

	// ErrSessionTerminal возвращается при операции над завершённой сессией:
	// после успешной отправки нужна новая сессия
	ErrSessionTerminal = errors.New("wizard: session already submitted")

	// ErrWrongStep возвращается, когда операция недопустима на текущем шаге
	ErrWrongStep = errors.New("wizard: operation not allowed at current step")

	// ErrTimeNotAvailable возвращается при выборе времени вне загруженного списка
	ErrTimeNotAvailable = errors.New("wizard: time is not among available options")

	// ErrSubmitInFlight возвращается при повторной отправке, пока идёт текущая
	ErrSubmitInFlight = errors.New("wizard: submission already in progress")

	// ErrInvalidDate возвращается при неразборчивой дате
	ErrInvalidDate = errors.New("wizard: invalid date")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("wizard: internal error")
)

// ValidationError блокирует переход шага: поля помечаются как
// тронутые, сообщения показываются пользователю, состояние не меняется
type ValidationError struct {
	Fields []domain.FieldError
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "wizard: validation failed: " + strings.Join(parts, "; ")
}
