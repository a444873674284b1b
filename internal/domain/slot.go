package domain

import "github.com/velalaser/VLL-SchedulingService/pkg/types"

// TimeSlot is one bookable time option for a (unit, date) pair.
// The RoomID is bound to the hour by the availability backend and the
// pairing must never be decoupled: a submission always carries the
// room of the chosen hour.
type TimeSlot struct {
	Hour   types.TimeString // "HH:mm"
	RoomID int64
}

// Availability is the result of one availability query.
// The slot list replaces the previous one wholesale, it is never merged.
type Availability struct {
	ServiceID *int64 // dealActivityId внешней системы, нужен при отправке брони
	Slots     []TimeSlot
}

// HasSlots returns true if at least one time option is available
func (a *Availability) HasSlots() bool {
	return len(a.Slots) > 0
}
