package domain

import "time"

// DayCell is a single cell of the 6x7 scheduling calendar grid.
// Cells are rebuilt from scratch whenever the viewed month or the
// selected date changes; the ISO key is their only identity.
type DayCell struct {
	Date            time.Time
	ISO             string // YYYY-MM-DD
	InCurrentMonth  bool
	IsToday         bool
	IsSelected      bool
	IsPast          bool
	IsBeyondHorizon bool
}

// Selectable returns true if the cell may be chosen by the user
func (c *DayCell) Selectable() bool {
	return !c.IsPast && !c.IsBeyondHorizon
}

// CalendarGrid is the full 6-week view of one month.
type CalendarGrid struct {
	ViewedMonth      time.Time // первое число отображаемого месяца
	Weeks            [][]DayCell
	DisablePrevMonth bool
	DisableNextMonth bool
}
