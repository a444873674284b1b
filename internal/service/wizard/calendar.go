package wizard

import (
	"time"

	"github.com/velalaser/VLL-SchedulingService/internal/domain"
)

// dateOnly обнуляет время, сравниваем только календарные дни
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// monthStart первое число месяца даты t
func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// horizonEnd последняя доступная для записи дата:
// сегодня + HorizonMonths календарных месяцев, то же число
func horizonEnd(today time.Time) time.Time {
	return dateOnly(today.AddDate(0, domain.HorizonMonths, 0))
}

// buildCalendar строит сетку 6x7 для отображаемого месяца.
// Первая ячейка - понедельник в день или до первого числа месяца
// (ISO неделя, понедельник = колонка 0), поэтому сетка всегда
// содержит полные недели.
func buildCalendar(viewedMonth time.Time, selected *time.Time, now time.Time) domain.CalendarGrid {
	today := dateOnly(now)
	maxDate := horizonEnd(today)

	start := monthStart(viewedMonth)
	// смещение до понедельника: воскресенье (Weekday 0) даёт 6
	startWeekday := (int(start.Weekday()) + 6) % 7
	gridStart := start.AddDate(0, 0, -startWeekday)

	todayISO := today.Format(domain.DateFormat)
	selectedISO := ""
	if selected != nil {
		selectedISO = dateOnly(*selected).Format(domain.DateFormat)
	}

	weeks := make([][]domain.DayCell, 0, domain.CalendarWeeks)
	for w := 0; w < domain.CalendarWeeks; w++ {
		row := make([]domain.DayCell, 0, domain.CalendarDays)
		for d := 0; d < domain.CalendarDays; d++ {
			cellDate := gridStart.AddDate(0, 0, w*domain.CalendarDays+d)
			iso := cellDate.Format(domain.DateFormat)

			row = append(row, domain.DayCell{
				Date:            cellDate,
				ISO:             iso,
				InCurrentMonth:  cellDate.Month() == start.Month(),
				IsToday:         iso == todayISO,
				IsSelected:      selectedISO != "" && iso == selectedISO,
				IsPast:          cellDate.Before(today),
				IsBeyondHorizon: cellDate.After(maxDate),
			})
		}
		weeks = append(weeks, row)
	}

	return domain.CalendarGrid{
		ViewedMonth:      start,
		Weeks:            weeks,
		DisablePrevMonth: !canNavigatePrev(start, today),
		DisableNextMonth: !canNavigateNext(start, today),
	}
}

// canNavigatePrev запрещает листать назад, когда отображаемый месяц
// уже совпадает с месяцем начала горизонта (текущим) или раньше него
func canNavigatePrev(viewedMonth time.Time, today time.Time) bool {
	return monthStart(viewedMonth).After(monthStart(today))
}

// canNavigateNext запрещает листать вперёд за месяц конца горизонта
func canNavigateNext(viewedMonth time.Time, today time.Time) bool {
	next := monthStart(viewedMonth).AddDate(0, 1, 0)
	return !next.After(monthStart(horizonEnd(today)))
}

// cellFor строит флаги одной даты без полной сетки -
// нужно при выборе дня, чтобы проверить isPast/isBeyondHorizon
func cellFor(date time.Time, now time.Time) domain.DayCell {
	today := dateOnly(now)
	d := dateOnly(date)
	return domain.DayCell{
		Date:            d,
		ISO:             d.Format(domain.DateFormat),
		IsToday:         d.Equal(today),
		IsPast:          d.Before(today),
		IsBeyondHorizon: d.After(horizonEnd(today)),
	}
}
