package wizard

import (
	"github.com/velalaser/VLL-SchedulingService/internal/domain"
)

// validateSchedule проверяет выполнение охраны перехода
// PickSchedule -> EnterContact: юнит, дата и время выбраны
func validateSchedule(s *domain.WizardSession) *ValidationError {
	fields := make([]domain.FieldError, 0)

	if !s.HasUnit() {
		fields = append(fields, domain.FieldError{Field: "unit", Message: "Selecione uma unidade."})
	}
	if s.SelectedDate == nil {
		fields = append(fields, domain.FieldError{Field: "date", Message: "Selecione uma data."})
	}
	if s.SelectedTime.IsZero() {
		fields = append(fields, domain.FieldError{Field: "time", Message: "Selecione um horário."})
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// validateContact проверяет контактную под-форму шага EnterContact
func validateContact(name, phone string) *ValidationError {
	if fields := domain.ValidateContact(name, phone); len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
