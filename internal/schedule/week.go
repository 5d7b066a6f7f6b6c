package schedule

import "time"

// DaysPerWeek is the number of days in a display window.
const DaysPerWeek = 7

// StartOfWeek returns the Monday of the week containing t, at midnight.
// Sunday counts as day 7 of its week, not day 1, so a Sunday rolls back six
// days. Applying StartOfWeek to a Monday returns the same date (idempotent).
func StartOfWeek(t time.Time) time.Time {
	t = TruncateToDay(t)
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday becomes day 7 in ISO week
	}
	return t.AddDate(0, 0, -(weekday - 1))
}

// TruncateToDay returns t with time set to midnight.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Week is the 7-day display window, always anchored to a Monday. Paging
// produces a new value wholesale; a Week is never partially mutated.
type Week struct {
	Start time.Time // Monday, midnight
}

// NewWeek returns the week containing the given date.
func NewWeek(t time.Time) Week {
	return Week{Start: StartOfWeek(t)}
}

// Days expands the window into its 7 dates, Monday through Sunday.
func (w Week) Days() [DaysPerWeek]time.Time {
	var days [DaysPerWeek]time.Time
	for i := range days {
		days[i] = w.Start.AddDate(0, 0, i)
	}
	return days
}

// End returns the Sunday of the week.
func (w Week) End() time.Time {
	return w.Start.AddDate(0, 0, 6)
}

// Next returns the following week. The anchor moves by exactly 7 days, so it
// is already a Monday and re-anchoring is a no-op.
func (w Week) Next() Week {
	return Week{Start: w.Start.AddDate(0, 0, 7)}
}

// Prev returns the preceding week.
func (w Week) Prev() Week {
	return Week{Start: w.Start.AddDate(0, 0, -7)}
}

// Contains reports whether the given date falls inside the window.
func (w Week) Contains(t time.Time) bool {
	d := TruncateToDay(t)
	return !d.Before(w.Start) && !d.After(w.End())
}

// ISODate formats a date as YYYY-MM-DD, the backend's calendar-day format.
func ISODate(t time.Time) string {
	return t.Format("2006-01-02")
}

// WeekdayName returns the name of the weekday (0=Monday).
func WeekdayName(weekday int) string {
	names := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	if weekday < 0 || weekday > 6 {
		return ""
	}
	return names[weekday]
}

// WeekdayShortName returns the short name of the weekday (0=Monday).
func WeekdayShortName(weekday int) string {
	names := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	if weekday < 0 || weekday > 6 {
		return ""
	}
	return names[weekday]
}
