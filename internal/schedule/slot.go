// Package schedule defines the core domain types for figaro: the working-day
// slot grid, overlap classification against booked appointments, and
// Monday-anchored week navigation. Everything here is pure; the package does
// no I/O and holds no state between calls.
package schedule

import "time"

// Slot is a half-open minute-of-day interval [StartMin, EndMin) within a
// single working day. Slots are generated on demand and never persisted.
type Slot struct {
	StartMin int
	EndMin   int
	Label    string // StartMin formatted as zero-padded "HH:MM"
}

// BuildSlots generates the ordered slot sequence for a working day.
// Starting at dayStart, it emits one slot per step until the next slot would
// no longer fit before dayEnd; a trailing remainder shorter than one step is
// dropped. dayStart == dayEnd yields an empty sequence, not an error.
// The result is a pure function of its inputs.
func BuildSlots(dayStart, dayEnd string, stepMin int) []Slot {
	if stepMin <= 0 {
		return nil
	}

	start := TimeToMinutes(dayStart)
	end := TimeToMinutes(dayEnd)

	var slots []Slot
	for t := start; t+stepMin <= end; t += stepMin {
		slots = append(slots, Slot{
			StartMin: t,
			EndMin:   t + stepMin,
			Label:    MinutesToTime(t),
		})
	}
	return slots
}

// Interval is a read-only projection of a booked appointment: its absolute
// start and end instants. Only the local wall-clock hour and minute take part
// in slot classification; the date component is ignored, so the caller must
// pass only intervals belonging to the slot's day. An interval spanning
// midnight is mis-classified by this projection (known limitation).
type Interval struct {
	Start time.Time
	End   time.Time
}

// startMin returns the interval's start as minutes of day.
func (iv Interval) startMin() int {
	return iv.Start.Hour()*60 + iv.Start.Minute()
}

// endMin returns the interval's end as minutes of day.
func (iv Interval) endMin() int {
	return iv.End.Hour()*60 + iv.End.Minute()
}

// Occupied reports whether the slot overlaps at least one of the given
// intervals. Overlap is strict half-open: a slot ending exactly where an
// appointment starts is free. The scan is linear and assumes nothing about
// ordering or duplicates in the input.
func Occupied(s Slot, intervals []Interval) bool {
	for _, iv := range intervals {
		if MinutesOverlap(s.StartMin, s.EndMin, iv.startMin(), iv.endMin()) {
			return true
		}
	}
	return false
}

// SlotState is a slot annotated with its availability for one day.
type SlotState struct {
	Slot
	Occupied bool
}

// Classify annotates every slot with its availability against the day's
// booked intervals. Zero intervals means every slot comes back free.
func Classify(slots []Slot, intervals []Interval) []SlotState {
	states := make([]SlotState, len(slots))
	for i, s := range slots {
		states[i] = SlotState{Slot: s, Occupied: Occupied(s, intervals)}
	}
	return states
}
