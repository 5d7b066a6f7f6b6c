package schedule

import (
	"testing"
	"time"
)

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		expected time.Time
	}{
		{
			name:     "wednesday rolls back two days",
			date:     time.Date(2025, 3, 12, 14, 30, 0, 0, time.UTC),
			expected: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "sunday rolls back six days",
			date:     time.Date(2025, 3, 16, 8, 0, 0, 0, time.UTC),
			expected: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "monday is idempotent",
			date:     time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC),
			expected: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "saturday rolls back five days",
			date:     time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StartOfWeek(tt.date)
			if !got.Equal(tt.expected) {
				t.Errorf("StartOfWeek(%v) = %v, want %v", tt.date, got, tt.expected)
			}
		})
	}
}

func TestWeek_Days(t *testing.T) {
	w := NewWeek(time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC))
	days := w.Days()

	if len(days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(days))
	}
	for i, d := range days {
		expected := time.Date(2025, 3, 10+i, 0, 0, 0, 0, time.UTC)
		if !d.Equal(expected) {
			t.Errorf("day %d: expected %v, got %v", i, expected, d)
		}
	}
	if !w.End().Equal(days[6]) {
		t.Errorf("End() = %v, want %v", w.End(), days[6])
	}
}

func TestWeek_Paging(t *testing.T) {
	w := NewWeek(time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC))

	next := w.Next()
	if !next.Start.Equal(time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Next().Start = %v", next.Start)
	}
	// Paging preserves the Monday anchor by construction.
	if !StartOfWeek(next.Start).Equal(next.Start) {
		t.Errorf("Next().Start %v is not a Monday anchor", next.Start)
	}

	// Round trip: forward one week then back returns the original anchor.
	if back := w.Next().Prev(); !back.Start.Equal(w.Start) {
		t.Errorf("Next().Prev().Start = %v, want %v", back.Start, w.Start)
	}
}

func TestWeek_Contains(t *testing.T) {
	w := NewWeek(time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC))

	if !w.Contains(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)) {
		t.Error("expected Monday to be contained")
	}
	if !w.Contains(time.Date(2025, 3, 16, 23, 0, 0, 0, time.UTC)) {
		t.Error("expected Sunday evening to be contained")
	}
	if w.Contains(time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC)) {
		t.Error("expected next Monday to be outside")
	}
}

func TestDraft(t *testing.T) {
	day := time.Date(2025, 3, 14, 9, 45, 0, 0, time.UTC) // time component ignored
	d := NewDraft(day, Slot{StartMin: 600, EndMin: 660, Label: "10:00"})

	if d.StartLabel() != "10:00" || d.EndLabel() != "11:00" {
		t.Errorf("labels = %s-%s, want 10:00-11:00", d.StartLabel(), d.EndLabel())
	}

	start, end := d.Interval()
	if !start.Equal(time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)) {
		t.Errorf("start = %v", start)
	}
	if !end.Equal(time.Date(2025, 3, 14, 11, 0, 0, 0, time.UTC)) {
		t.Errorf("end = %v", end)
	}
}
