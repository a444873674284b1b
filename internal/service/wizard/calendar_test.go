package wizard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velalaser/VLL-SchedulingService/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildCalendar_GridShape(t *testing.T) {
	now := date(2026, time.September, 1)
	grid := buildCalendar(date(2026, time.September, 1), nil, now)

	require.Len(t, grid.Weeks, domain.CalendarWeeks)
	for _, week := range grid.Weeks {
		require.Len(t, week, domain.CalendarDays)
	}

	// Сентябрь 2026 начинается во вторник: первая ячейка -
	// понедельник 31 августа
	assert.Equal(t, "2026-08-31", grid.Weeks[0][0].ISO)
	assert.False(t, grid.Weeks[0][0].InCurrentMonth)
	assert.Equal(t, "2026-09-01", grid.Weeks[0][1].ISO)
	assert.True(t, grid.Weeks[0][1].InCurrentMonth)
}

func TestBuildCalendar_MonthStartingOnMonday(t *testing.T) {
	// Июнь 2026 начинается в понедельник: сетка стартует с 1 июня
	now := date(2026, time.June, 1)
	grid := buildCalendar(date(2026, time.June, 1), nil, now)

	assert.Equal(t, "2026-06-01", grid.Weeks[0][0].ISO)
	assert.True(t, grid.Weeks[0][0].InCurrentMonth)
}

func TestBuildCalendar_InMonthDayCount(t *testing.T) {
	now := date(2026, time.September, 1)
	grid := buildCalendar(date(2026, time.September, 1), nil, now)

	inMonth := 0
	for _, week := range grid.Weeks {
		for _, cell := range week {
			if cell.InCurrentMonth {
				inMonth++
			}
		}
	}
	assert.Equal(t, 30, inMonth)
}

func TestBuildCalendar_TodayAndSelectedFlags(t *testing.T) {
	now := date(2026, time.September, 10)
	selected := date(2026, time.September, 15)
	grid := buildCalendar(date(2026, time.September, 1), &selected, now)

	var todayCount, selectedCount int
	for _, week := range grid.Weeks {
		for _, cell := range week {
			if cell.IsToday {
				todayCount++
				assert.Equal(t, "2026-09-10", cell.ISO)
			}
			if cell.IsSelected {
				selectedCount++
				assert.Equal(t, "2026-09-15", cell.ISO)
			}
		}
	}
	assert.Equal(t, 1, todayCount)
	assert.Equal(t, 1, selectedCount)
}

func TestBuildCalendar_PastDaysNotSelectable(t *testing.T) {
	now := date(2026, time.September, 10)
	grid := buildCalendar(date(2026, time.September, 1), nil, now)

	for _, week := range grid.Weeks {
		for _, cell := range week {
			if cell.ISO < "2026-09-10" {
				assert.True(t, cell.IsPast, "cell %s", cell.ISO)
				assert.False(t, cell.Selectable(), "cell %s", cell.ISO)
			} else {
				assert.False(t, cell.IsPast, "cell %s", cell.ISO)
			}
		}
	}
}

func TestBuildCalendar_NavigationBounds(t *testing.T) {
	now := date(2026, time.September, 10)

	// Текущий месяц: назад нельзя, вперёд можно
	grid := buildCalendar(date(2026, time.September, 1), nil, now)
	assert.True(t, grid.DisablePrevMonth)
	assert.False(t, grid.DisableNextMonth)

	// Месяц конца горизонта (сентябрь + 6 = март 2027): вперёд нельзя
	grid = buildCalendar(date(2027, time.March, 1), nil, now)
	assert.False(t, grid.DisablePrevMonth)
	assert.True(t, grid.DisableNextMonth)

	// Посередине: можно в обе стороны
	grid = buildCalendar(date(2026, time.December, 1), nil, now)
	assert.False(t, grid.DisablePrevMonth)
	assert.False(t, grid.DisableNextMonth)
}

func TestBuildCalendar_HorizonFlag(t *testing.T) {
	now := date(2026, time.September, 10)
	// Горизонт: 10 марта 2027
	grid := buildCalendar(date(2027, time.March, 1), nil, now)

	for _, week := range grid.Weeks {
		for _, cell := range week {
			if cell.ISO > "2027-03-10" {
				assert.True(t, cell.IsBeyondHorizon, "cell %s", cell.ISO)
				assert.False(t, cell.Selectable(), "cell %s", cell.ISO)
			} else {
				assert.False(t, cell.IsBeyondHorizon, "cell %s", cell.ISO)
			}
		}
	}
}

func TestCellFor(t *testing.T) {
	now := date(2026, time.September, 10)

	today := cellFor(date(2026, time.September, 10), now)
	assert.True(t, today.IsToday)
	assert.True(t, today.Selectable())

	past := cellFor(date(2026, time.September, 9), now)
	assert.True(t, past.IsPast)
	assert.False(t, past.Selectable())

	beyond := cellFor(date(2027, time.March, 11), now)
	assert.True(t, beyond.IsBeyondHorizon)
	assert.False(t, beyond.Selectable())

	edge := cellFor(date(2027, time.March, 10), now)
	assert.True(t, edge.Selectable())
}
