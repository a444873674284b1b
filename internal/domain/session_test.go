package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/velalaser/VLL-SchedulingService/pkg/ptr"
)

func TestWizardSession_ClearSchedule(t *testing.T) {
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	s := &WizardSession{
		UnitID:       ptr.Ptr(int64(1)),
		SelectedDate: &date,
		SelectedTime: "10:00",
		RoomID:       ptr.Ptr(int64(5)),
		ServiceID:    ptr.Ptr(int64(7)),
		Times:        []TimeSlot{{Hour: "10:00", RoomID: 5}},
		TimeEnabled:  true,
	}

	s.ClearSchedule()

	assert.Nil(t, s.SelectedDate)
	assert.True(t, s.SelectedTime.IsZero())
	assert.Nil(t, s.RoomID)
	assert.Nil(t, s.ServiceID)
	assert.Nil(t, s.Times)
	assert.False(t, s.TimeEnabled)
	// Юнит остаётся выбранным
	assert.True(t, s.HasUnit())
}

func TestWizardSession_ClearTimes_KeepsDate(t *testing.T) {
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	s := &WizardSession{
		SelectedDate: &date,
		SelectedTime: "10:00",
		RoomID:       ptr.Ptr(int64(5)),
		Times:        []TimeSlot{{Hour: "10:00", RoomID: 5}},
		TimeEnabled:  true,
	}

	s.ClearTimes()

	assert.NotNil(t, s.SelectedDate)
	assert.True(t, s.SelectedTime.IsZero())
	assert.Nil(t, s.RoomID)
	assert.False(t, s.TimeEnabled)
}

func TestWizardSession_HasSchedule(t *testing.T) {
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	s := &WizardSession{}
	assert.False(t, s.HasSchedule())

	s.UnitID = ptr.Ptr(int64(1))
	assert.False(t, s.HasSchedule())

	s.SelectedDate = &date
	assert.False(t, s.HasSchedule())

	s.SelectedTime = "10:00"
	assert.True(t, s.HasSchedule())
}

func TestWizardSession_FindSlot(t *testing.T) {
	s := &WizardSession{
		Times: []TimeSlot{
			{Hour: "09:00", RoomID: 1},
			{Hour: "10:30", RoomID: 2},
		},
	}

	slot := s.FindSlot("10:30")
	assert.NotNil(t, slot)
	assert.Equal(t, int64(2), slot.RoomID)

	assert.Nil(t, s.FindSlot("11:00"))
}
