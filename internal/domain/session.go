package domain

import (
	"time"

	"github.com/velalaser/VLL-SchedulingService/pkg/types"
)

// NoticeKind separates normal empty-result warnings from failures.
type NoticeKind string

const (
	NoticeWarning NoticeKind = "warning"
	NoticeError   NoticeKind = "error"
)

// Notice is a user-visible, dismissable message attached to the session.
type Notice struct {
	Kind    NoticeKind
	Message string
}

// WizardSession accumulates the selections of one booking-wizard run.
// The session is owned by the session registry and mutated only through
// the wizard service operations.
type WizardSession struct {
	ID   string
	Step WizardStep

	// Шаг 1: юнит
	UnitID         *int64
	UnitExternalID string

	// Шаг 2: дата и время
	ViewedMonth  time.Time  // первое число отображаемого месяца
	SelectedDate *time.Time // только дата, время обнулено
	SelectedTime types.TimeString
	RoomID       *int64
	ServiceID    *int64

	// Загруженные варианты времени для (юнит, дата)
	Times        []TimeSlot
	TimeEnabled  bool
	LoadingTimes bool

	// Шаг 3: контактные данные
	Name  string
	Phone string

	Submitting bool
	BookingID  *int64 // ID созданной брони после успешной отправки

	// AvailSeq растёт при каждой смене юнита/даты; ответ на запрос
	// доступности применяется только при совпадении номера
	AvailSeq uint64

	Notice *Notice

	CreatedAt time.Time
}

// HasUnit returns true once a unit has been selected
func (s *WizardSession) HasUnit() bool {
	return s.UnitID != nil
}

// HasSchedule returns true once unit, date and time are all chosen
func (s *WizardSession) HasSchedule() bool {
	return s.HasUnit() && s.SelectedDate != nil && !s.SelectedTime.IsZero()
}

// IsTerminal returns true after a successful submission
func (s *WizardSession) IsTerminal() bool {
	return s.Step == StepSubmitted
}

// ClearSchedule drops the date/time selections and the loaded time
// options. Called when the selected unit changes: the schedule must be
// re-derived for the new unit.
func (s *WizardSession) ClearSchedule() {
	s.SelectedDate = nil
	s.ClearTimes()
}

// ClearTimes drops the chosen time and the loaded time options.
// Called when the selected date changes.
func (s *WizardSession) ClearTimes() {
	s.SelectedTime = ""
	s.RoomID = nil
	s.ServiceID = nil
	s.Times = nil
	s.TimeEnabled = false
}

// FindSlot returns the loaded slot with the given hour, or nil
func (s *WizardSession) FindSlot(hour types.TimeString) *TimeSlot {
	for i := range s.Times {
		if s.Times[i].Hour == hour {
			return &s.Times[i]
		}
	}
	return nil
}
