package schedule

import (
	"errors"
	"time"
)

// MinAppointmentDuration is the shortest bookable appointment.
const MinAppointmentDuration = time.Hour

// Draft validation errors.
var (
	ErrDraftNoCustomer = errors.New("draft has no customer selected")
	ErrDraftNoService  = errors.New("draft has no service selected")
)

// Draft is a pending, unconfirmed appointment captured from a clicked free
// slot. The day and times are fixed at capture and held immutably; customer
// and service are combined with them only at confirmation. Discarding a
// draft has no side effects.
type Draft struct {
	Date     time.Time // calendar day of the clicked slot
	StartMin int
	EndMin   int
}

// NewDraft captures a free slot on the given day as a pending appointment.
func NewDraft(day time.Time, s Slot) Draft {
	return Draft{
		Date:     TruncateToDay(day),
		StartMin: s.StartMin,
		EndMin:   s.EndMin,
	}
}

// StartLabel returns the draft's start time as "HH:MM".
func (d Draft) StartLabel() string {
	return MinutesToTime(d.StartMin)
}

// EndLabel returns the draft's end time as "HH:MM".
func (d Draft) EndLabel() string {
	return MinutesToTime(d.EndMin)
}

// Interval combines the draft's day and minute range into the absolute
// start/end instants handed to the backend on confirmation.
func (d Draft) Interval() (start, end time.Time) {
	start = d.Date.Add(time.Duration(d.StartMin) * time.Minute)
	end = d.Date.Add(time.Duration(d.EndMin) * time.Minute)
	return start, end
}
