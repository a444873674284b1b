package handlers

import (
	"github.com/velalaser/VLL-SchedulingService/internal/domain"
)

// SessionView HTTP представление состояния сессии мастера записи.
// Все handlers мастера возвращают одно и то же представление: клиент
// всегда рендерит актуальное состояние целиком.
type SessionView struct {
	ID   string `json:"id"`
	Step int    `json:"step"`

	UnitID         *int64 `json:"unitId,omitempty"`
	UnitExternalID string `json:"unitExternalId,omitempty"`

	ViewedMonth  string     `json:"viewedMonth,omitempty"` // YYYY-MM
	SelectedDate *string    `json:"selectedDate,omitempty"`
	SelectedTime string     `json:"selectedTime,omitempty"`
	Times        []SlotView `json:"times"`
	TimeEnabled  bool       `json:"timeEnabled"`
	LoadingTimes bool       `json:"loadingTimes"`

	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`

	Submitting bool   `json:"submitting"`
	BookingID  *int64 `json:"bookingId,omitempty"`

	Notice *NoticeView `json:"notice,omitempty"`

	Calendar *CalendarView `json:"calendar,omitempty"`
}

// SlotView один доступный вариант времени
type SlotView struct {
	Hour   string `json:"hour"`
	RoomID int64  `json:"roomId"`
}

// NoticeView уведомление пользователю
type NoticeView struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// CalendarView сетка календаря отображаемого месяца
type CalendarView struct {
	ViewedMonth      string          `json:"viewedMonth"` // YYYY-MM
	Weeks            [][]DayCellView `json:"weeks"`
	DisablePrevMonth bool            `json:"disablePrevMonth"`
	DisableNextMonth bool            `json:"disableNextMonth"`
}

// DayCellView одна ячейка календарной сетки
type DayCellView struct {
	Date            string `json:"date"` // YYYY-MM-DD
	Day             int    `json:"day"`
	InCurrentMonth  bool   `json:"inCurrentMonth"`
	IsToday         bool   `json:"isToday"`
	IsSelected      bool   `json:"isSelected"`
	IsPast          bool   `json:"isPast"`
	IsBeyondHorizon bool   `json:"isBeyondHorizon"`
}

const monthLayout = "2006-01"

// FromSession строит представление сессии, опционально с календарём
func FromSession(s *domain.WizardSession, grid *domain.CalendarGrid) *SessionView {
	view := &SessionView{
		ID:             s.ID,
		Step:           int(s.Step),
		UnitID:         s.UnitID,
		UnitExternalID: s.UnitExternalID,
		SelectedTime:   s.SelectedTime.String(),
		Times:          make([]SlotView, 0, len(s.Times)),
		TimeEnabled:    s.TimeEnabled,
		LoadingTimes:   s.LoadingTimes,
		Name:           s.Name,
		Phone:          s.Phone,
		Submitting:     s.Submitting,
		BookingID:      s.BookingID,
	}

	if !s.ViewedMonth.IsZero() {
		view.ViewedMonth = s.ViewedMonth.Format(monthLayout)
	}
	if s.SelectedDate != nil {
		iso := s.SelectedDate.Format(domain.DateFormat)
		view.SelectedDate = &iso
	}
	for _, slot := range s.Times {
		view.Times = append(view.Times, SlotView{Hour: slot.Hour.String(), RoomID: slot.RoomID})
	}
	if s.Notice != nil {
		view.Notice = &NoticeView{Kind: string(s.Notice.Kind), Message: s.Notice.Message}
	}
	if grid != nil {
		view.Calendar = fromCalendar(grid)
	}

	return view
}

func fromCalendar(grid *domain.CalendarGrid) *CalendarView {
	weeks := make([][]DayCellView, 0, len(grid.Weeks))
	for _, week := range grid.Weeks {
		row := make([]DayCellView, 0, len(week))
		for _, cell := range week {
			row = append(row, DayCellView{
				Date:            cell.ISO,
				Day:             cell.Date.Day(),
				InCurrentMonth:  cell.InCurrentMonth,
				IsToday:         cell.IsToday,
				IsSelected:      cell.IsSelected,
				IsPast:          cell.IsPast,
				IsBeyondHorizon: cell.IsBeyondHorizon,
			})
		}
		weeks = append(weeks, row)
	}

	return &CalendarView{
		ViewedMonth:      grid.ViewedMonth.Format(monthLayout),
		Weeks:            weeks,
		DisablePrevMonth: grid.DisablePrevMonth,
		DisableNextMonth: grid.DisableNextMonth,
	}
}
